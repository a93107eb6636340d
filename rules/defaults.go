package rules

// The two fallback actions are deliberate policy, not accidental defaults:
// downstream rendering branches on these exact decision strings.
var (
	// NoMatchAction is the terminal outcome when no rule fires.
	NoMatchAction = Action{
		Decision: "MANUAL_REVIEW",
		Reason:   "No specific rule matched",
	}

	// MissingActionGuard replaces the action of a winning rule that has no
	// defined action.
	MissingActionGuard = Action{
		Decision: "REVIEW",
		Reason:   "Matching rule has no defined action",
	}
)

// DefaultRuleSet returns the built-in scholarship rule set, used whenever a
// caller-supplied rule list is missing or fails validation. A fresh copy is
// returned on every call so callers cannot mutate the built-in rules.
func DefaultRuleSet() RuleSet {
	return RuleSet{
		{
			Name:     "Top merit candidate",
			Priority: 100,
			Conditions: []Condition{
				{Field: "cgpa", Op: OpGreaterEqual, Value: Number(3.7)},
				{Field: "co_curricular_score", Op: OpGreaterEqual, Value: Number(80)},
				{Field: "family_income", Op: OpLessEqual, Value: Number(8000)},
				{Field: "disciplinary_actions", Op: OpEqual, Value: Number(0)},
			},
			Action: Action{
				Decision: "AWARD FULL",
				Reason:   "Excellent academic & co-curricular performance, with acceptable need",
			},
		},
		{
			Name:     "Low CGPA not eligible",
			Priority: 95,
			Conditions: []Condition{
				{Field: "cgpa", Op: OpLessThan, Value: Number(2.5)},
			},
			Action: Action{
				Decision: "REJECT",
				Reason:   "CGPA below minimum scholarship requirement",
			},
		},
		{
			Name:     "Serious disciplinary record",
			Priority: 90,
			Conditions: []Condition{
				{Field: "disciplinary_actions", Op: OpGreaterEqual, Value: Number(2)},
			},
			Action: Action{
				Decision: "REJECT",
				Reason:   "Too many disciplinary records",
			},
		},
		{
			Name:     "Good candidate partial scholarship",
			Priority: 80,
			Conditions: []Condition{
				{Field: "cgpa", Op: OpGreaterEqual, Value: Number(3.3)},
				{Field: "co_curricular_score", Op: OpGreaterEqual, Value: Number(60)},
				{Field: "family_income", Op: OpLessEqual, Value: Number(12000)},
				{Field: "disciplinary_actions", Op: OpLessEqual, Value: Number(1)},
			},
			Action: Action{
				Decision: "AWARD PARTIAL",
				Reason:   "Good academic & involvement record with moderate need",
			},
		},
		{
			Name:     "Need-based review",
			Priority: 70,
			Conditions: []Condition{
				{Field: "cgpa", Op: OpGreaterEqual, Value: Number(2.5)},
				{Field: "family_income", Op: OpLessEqual, Value: Number(4000)},
			},
			Action: Action{
				Decision: "REVIEW",
				Reason:   "High need but borderline academic score",
			},
		},
		{
			Name:       "Default non-qualifier",
			Priority:   1,
			Conditions: []Condition{},
			Action: Action{
				Decision: "NOT ELIGIBLE",
				Reason:   "Applicant did not meet the criteria for any defined scholarship or review.",
			},
		},
	}
}

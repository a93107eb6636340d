// Package rules implements a declarative rule-evaluation engine: given a set
// of facts and an ordered list of conditional rules, it determines which
// rules match and selects a single winning action by priority. Malformed
// input degrades to "condition is false" or a fixed review fallback; the
// engine never errors on input shape.
package rules

// Facts maps field names to the scalar values describing the subject under
// evaluation. A facts mapping is supplied fresh for every resolution and is
// never mutated by the engine.
type Facts map[string]Value

// Action is the decision payload attached to a rule: a decision label from an
// open vocabulary plus a human-readable reason. Downstream rendering branches
// on the literal decision strings, so actions are never rewritten after
// construction.
type Action struct {
	Decision string `json:"decision" yaml:"decision"`
	Reason   string `json:"reason" yaml:"reason"`
}

// defined reports whether the action carries a usable decision label.
func (a Action) defined() bool {
	return a.Decision != ""
}

// Rule is a named, prioritized conjunction of conditions paired with the
// action to take when all of them hold. An empty condition list matches
// unconditionally; that is how catch-all rules are written. Priorities carry
// no uniqueness constraint, so ties are possible.
type Rule struct {
	Name       string      `json:"name" yaml:"name"`
	Priority   int         `json:"priority" yaml:"priority"`
	Conditions []Condition `json:"conditions" yaml:"conditions"`
	Action     Action      `json:"action" yaml:"action"`
}

// RuleSet is an ordered collection of rules. Sets are supplied wholesale per
// evaluation; there is no incremental mutation API.
type RuleSet []Rule

// MatchResult is the outcome of one resolution: the winning action and every
// fired rule ordered by priority descending. It is derived per call and never
// persisted.
type MatchResult struct {
	Action Action `json:"action"`
	Fired  []Rule `json:"fired"`
}

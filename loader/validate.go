package loader

import (
	"fmt"

	"github.com/awardly/verdict/rules"
)

// Validate checks the structural shape of a rule set: named rules, registered
// operators, scalar condition values, and a defined action. The engine would
// quietly treat a malformed condition as false; here it is a hard error so
// rule authors hear about it before the set goes live.
func Validate(set rules.RuleSet) error {
	if len(set) == 0 {
		return fmt.Errorf("rule set cannot be empty")
	}

	for i, r := range set {
		if r.Name == "" {
			return fmt.Errorf("rule %d: name is required", i)
		}
		for j, c := range r.Conditions {
			// A condition that decoded to its zero value was not a
			// well-formed [field, operator, value] triple.
			if c.Field == "" {
				return fmt.Errorf("rule %q: condition %d: must be a [field, operator, value] triple", r.Name, j)
			}
			if !rules.Registered(c.Op) {
				return fmt.Errorf("rule %q: condition %d: unknown operator %q", r.Name, j, c.Op)
			}
			if c.Value.Kind() == rules.KindInvalid {
				return fmt.Errorf("rule %q: condition %d: value must be a number, string, or boolean", r.Name, j)
			}
		}
		if r.Action.Decision == "" {
			return fmt.Errorf("rule %q: action decision is required", r.Name)
		}
	}

	return nil
}

package loader

import (
	"slices"
	"sync"

	"github.com/awardly/verdict/rules"
)

// Registry holds the active rule set for a serving process. The set is only
// ever replaced wholesale, and readers get a copy, so no caller can mutate
// the rules another evaluation is using.
type Registry struct {
	mu  sync.RWMutex
	set rules.RuleSet
}

// NewRegistry creates a registry seeded with the given set. A nil seed
// activates the built-in default set.
func NewRegistry(seed rules.RuleSet) *Registry {
	if seed == nil {
		seed = rules.DefaultRuleSet()
	}
	return &Registry{set: cloneSet(seed)}
}

// Active returns a copy of the active rule set.
func (r *Registry) Active() rules.RuleSet {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneSet(r.set)
}

// Len returns the number of active rules.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.set)
}

// Replace validates the new set and swaps it in wholesale. On validation
// failure the previously active set stays in place.
func (r *Registry) Replace(set rules.RuleSet) error {
	if err := Validate(set); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.set = cloneSet(set)
	return nil
}

// Reset restores the built-in default rule set.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.set = rules.DefaultRuleSet()
}

// cloneSet copies the rule slice and each rule's condition slice. Action and
// scalar fields copy by value.
func cloneSet(set rules.RuleSet) rules.RuleSet {
	out := make(rules.RuleSet, len(set))
	for i, rule := range set {
		rule.Conditions = slices.Clone(rule.Conditions)
		out[i] = rule
	}
	return out
}

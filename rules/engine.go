package rules

import (
	"cmp"
	"log/slog"
	"slices"
)

// Engine resolves rule sets against facts. It carries only a logger and
// optional metrics; no state survives a Resolve call, so a single Engine is
// safe for concurrent use by any number of callers.
type Engine struct {
	logger  *slog.Logger
	metrics *Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger used for comparison diagnostics.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics attaches prometheus instrumentation to the engine.
func WithMetrics(m *Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// NewEngine creates an engine with the given options.
func NewEngine(opts ...Option) *Engine {
	e := &Engine{logger: slog.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// EvalCondition evaluates a single condition against the facts. It fails
// safe: an unregistered operator, a field absent from the facts, or a
// comparison unsupported for the value kinds all evaluate to false rather
// than erroring. The unsupported-comparison path is the only one worth
// hearing about, so it is logged and counted.
func (e *Engine) EvalCondition(facts Facts, cond Condition) bool {
	fn, ok := operators[cond.Op]
	if !ok {
		return false
	}

	actual, ok := facts[cond.Field]
	if !ok {
		return false
	}

	result, ok := fn(actual, cond.Value)
	if !ok {
		e.logger.Debug("unsupported comparison, condition treated as false",
			"field", cond.Field,
			"operator", string(cond.Op),
			"fact_kind", actual.Kind().String(),
			"value_kind", cond.Value.Kind().String(),
		)
		e.metrics.recordComparisonFailure(string(cond.Op))
		return false
	}
	return result
}

// Matches reports whether every condition of the rule holds for the facts.
// Conditions are AND-ed; an empty condition list matches everything, which is
// how catch-all rules fire.
func (e *Engine) Matches(facts Facts, rule Rule) bool {
	for _, cond := range rule.Conditions {
		if !e.EvalCondition(facts, cond) {
			return false
		}
	}
	return true
}

// Resolve runs the rule set against the facts and selects a single winning
// action. All fired rules are returned sorted by priority descending; equal
// priorities keep their input order, so the source rule list is the de facto
// secondary sort key. When nothing fires the fixed manual-review fallback is
// returned, and a winning rule without a defined action is substituted with
// the review guard instead of failing.
func (e *Engine) Resolve(facts Facts, set RuleSet) MatchResult {
	var fired []Rule
	for _, rule := range set {
		if e.Matches(facts, rule) {
			fired = append(fired, rule)
		}
	}

	if len(fired) == 0 {
		e.metrics.recordResolution(NoMatchAction.Decision, 0)
		return MatchResult{Action: NoMatchAction, Fired: []Rule{}}
	}

	slices.SortStableFunc(fired, func(a, b Rule) int {
		return cmp.Compare(b.Priority, a.Priority)
	})

	action := fired[0].Action
	if !action.defined() {
		action = MissingActionGuard
	}

	e.metrics.recordResolution(action.Decision, len(fired))
	return MatchResult{Action: action, Fired: fired}
}

var defaultEngine = NewEngine()

// Resolve evaluates the rule set with a plain engine (default logger, no
// metrics).
func Resolve(facts Facts, set RuleSet) MatchResult {
	return defaultEngine.Resolve(facts, set)
}

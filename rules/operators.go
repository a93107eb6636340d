package rules

import (
	"cmp"
	"strings"
)

// Operator identifies one of the six supported comparisons.
type Operator string

const (
	OpEqual        Operator = "=="
	OpNotEqual     Operator = "!="
	OpGreaterThan  Operator = ">"
	OpGreaterEqual Operator = ">="
	OpLessThan     Operator = "<"
	OpLessEqual    Operator = "<="
)

// predicate compares a fact value against a condition literal. ok reports
// whether the pairing is supported for this operator; unsupported pairings
// fail the condition rather than erroring.
type predicate func(a, b Value) (result, ok bool)

// operators is the fixed registry mapping operator tags to predicates. It is
// built once and never mutated, so it is safe to share across concurrent
// evaluations.
var operators = map[Operator]predicate{
	OpEqual:        evalEqual,
	OpNotEqual:     evalNotEqual,
	OpGreaterThan:  ordered(func(c int) bool { return c > 0 }),
	OpGreaterEqual: ordered(func(c int) bool { return c >= 0 }),
	OpLessThan:     ordered(func(c int) bool { return c < 0 }),
	OpLessEqual:    ordered(func(c int) bool { return c <= 0 }),
}

// Registered reports whether op is a member of the operator registry.
func Registered(op Operator) bool {
	_, ok := operators[op]
	return ok
}

// evalEqual is total across all valid kinds: values of different kinds are
// never equal, mirroring how loosely-typed comparison behaved in the rule
// format this engine accepts.
func evalEqual(a, b Value) (bool, bool) {
	if a.kind == KindInvalid || b.kind == KindInvalid {
		return false, false
	}
	if a.kind != b.kind {
		return false, true
	}
	switch a.kind {
	case KindNumber:
		return a.num == b.num, true
	case KindString:
		return a.str == b.str, true
	default:
		return a.b == b.b, true
	}
}

func evalNotEqual(a, b Value) (bool, bool) {
	eq, ok := evalEqual(a, b)
	if !ok {
		return false, false
	}
	return !eq, true
}

// ordered builds a relational predicate from an acceptance test on the
// three-way comparison result. Ordering is defined for number pairs and
// string pairs (lexicographic); everything else is unsupported.
func ordered(accept func(c int) bool) predicate {
	return func(a, b Value) (bool, bool) {
		switch {
		case a.kind == KindNumber && b.kind == KindNumber:
			return accept(cmp.Compare(a.num, b.num)), true
		case a.kind == KindString && b.kind == KindString:
			return accept(strings.Compare(a.str, b.str)), true
		default:
			return false, false
		}
	}
}

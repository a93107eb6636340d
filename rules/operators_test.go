package rules

import "testing"

func TestRegistered(t *testing.T) {
	for _, op := range []Operator{OpEqual, OpNotEqual, OpGreaterThan, OpGreaterEqual, OpLessThan, OpLessEqual} {
		if !Registered(op) {
			t.Errorf("Registered(%q) = false, want true", op)
		}
	}
	for _, op := range []Operator{"", "=", "===", "in", "contains"} {
		if Registered(op) {
			t.Errorf("Registered(%q) = true, want false", op)
		}
	}
}

func TestPredicates(t *testing.T) {
	testCases := []struct {
		name       string
		op         Operator
		a, b       Value
		wantResult bool
		wantOK     bool
	}{
		{"number equal", OpEqual, Number(3.7), Number(3.7), true, true},
		{"number not equal op", OpNotEqual, Number(3.7), Number(2.5), true, true},
		{"number greater", OpGreaterThan, Number(85), Number(80), true, true},
		{"number greater equal at boundary", OpGreaterEqual, Number(80), Number(80), true, true},
		{"number less", OpLessThan, Number(2.0), Number(2.5), true, true},
		{"number less equal fails", OpLessEqual, Number(12001), Number(12000), false, true},
		{"string equal", OpEqual, String("full"), String("full"), true, true},
		{"string ordering is lexicographic", OpLessThan, String("abc"), String("abd"), true, true},
		{"string greater equal", OpGreaterEqual, String("b"), String("a"), true, true},
		{"bool equal", OpEqual, Bool(true), Bool(true), true, true},
		{"bool not equal", OpNotEqual, Bool(true), Bool(false), true, true},
		{"bool ordering unsupported", OpLessThan, Bool(false), Bool(true), false, false},
		{"cross kind equality is false", OpEqual, Number(1), String("1"), false, true},
		{"cross kind inequality is true", OpNotEqual, Number(1), String("1"), true, true},
		{"cross kind ordering unsupported", OpGreaterThan, Number(1), String("1"), false, false},
		{"invalid lhs unsupported", OpEqual, Value{}, Number(1), false, false},
		{"invalid rhs unsupported", OpNotEqual, Number(1), Value{}, false, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			fn, registered := operators[tc.op]
			if !registered {
				t.Fatalf("operator %q not registered", tc.op)
			}
			result, ok := fn(tc.a, tc.b)
			if result != tc.wantResult || ok != tc.wantOK {
				t.Errorf("%#v %s %#v = (%v, %v), want (%v, %v)",
					tc.a, tc.op, tc.b, result, ok, tc.wantResult, tc.wantOK)
			}
		})
	}
}

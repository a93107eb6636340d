package rules

import (
	"encoding/json"
	"fmt"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Kind discriminates the scalar variants a Value can hold.
type Kind int

const (
	// KindInvalid marks values outside the supported scalar set (arrays,
	// objects, null). Conditions touching an invalid value never match.
	KindInvalid Kind = iota
	KindNumber
	KindString
	KindBool
)

func (k Kind) String() string {
	switch k {
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindBool:
		return "bool"
	default:
		return "invalid"
	}
}

// Value is a tagged scalar union covering the JSON-like types a fact or a
// condition literal may carry. Integers and floats share the number kind and
// compare numerically.
type Value struct {
	kind Kind
	num  float64
	str  string
	b    bool
}

// Number returns a numeric Value.
func Number(f float64) Value {
	return Value{kind: KindNumber, num: f}
}

// String returns a text Value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Kind returns the scalar variant held by v.
func (v Value) Kind() Kind {
	return v.kind
}

// GoString renders v for diagnostics.
func (v Value) GoString() string {
	switch v.kind {
	case KindNumber:
		return strconv.FormatFloat(v.num, 'g', -1, 64)
	case KindString:
		return strconv.Quote(v.str)
	case KindBool:
		return strconv.FormatBool(v.b)
	default:
		return "<invalid>"
	}
}

// UnmarshalJSON decodes any JSON scalar. Non-scalar values (arrays, objects,
// null) decode to the invalid kind rather than erroring, matching the
// fail-safe contract: a rule carrying one can load, it just never matches.
func (v *Value) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		*v = Value{}
		return nil
	}
	*v = fromGo(raw)
	return nil
}

// MarshalJSON encodes the scalar; invalid values encode as null.
func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindNumber:
		return json.Marshal(v.num)
	case KindString:
		return json.Marshal(v.str)
	case KindBool:
		return json.Marshal(v.b)
	default:
		return []byte("null"), nil
	}
}

// UnmarshalYAML decodes any YAML scalar, with the same leniency as JSON.
func (v *Value) UnmarshalYAML(node *yaml.Node) error {
	var raw any
	if err := node.Decode(&raw); err != nil {
		*v = Value{}
		return nil
	}
	*v = fromGo(raw)
	return nil
}

// MarshalYAML encodes the scalar for YAML output.
func (v Value) MarshalYAML() (any, error) {
	switch v.kind {
	case KindNumber:
		return v.num, nil
	case KindString:
		return v.str, nil
	case KindBool:
		return v.b, nil
	default:
		return nil, nil
	}
}

// fromGo converts a decoded Go value into the tagged union. Every numeric
// type the JSON and YAML decoders produce collapses to float64.
func fromGo(raw any) Value {
	switch t := raw.(type) {
	case float64:
		return Number(t)
	case int:
		return Number(float64(t))
	case int64:
		return Number(float64(t))
	case uint64:
		return Number(float64(t))
	case json.Number:
		f, err := t.Float64()
		if err != nil {
			return Value{}
		}
		return Number(f)
	case string:
		return String(t)
	case bool:
		return Bool(t)
	default:
		return Value{}
	}
}

var _ fmt.GoStringer = Value{}

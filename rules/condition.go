package rules

import (
	"encoding/json"

	"gopkg.in/yaml.v3"
)

// Condition is an atomic comparison of one fact field against a literal
// value. The wire form is a three-element array: ["cgpa", ">=", 3.7].
type Condition struct {
	Field string
	Op    Operator
	Value Value
}

// UnmarshalJSON decodes the array form. Malformed triples (wrong arity,
// non-string field or operator) decode to a condition with an empty operator,
// which is never registered and therefore never matches. Shape problems are a
// validation concern for loaders, not a decode error here.
func (c *Condition) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil || len(parts) != 3 {
		*c = Condition{}
		return nil
	}

	var field, op string
	if err := json.Unmarshal(parts[0], &field); err != nil {
		*c = Condition{}
		return nil
	}
	if err := json.Unmarshal(parts[1], &op); err != nil {
		*c = Condition{}
		return nil
	}

	var val Value
	_ = val.UnmarshalJSON(parts[2])

	*c = Condition{Field: field, Op: Operator(op), Value: val}
	return nil
}

// MarshalJSON encodes the condition back to its array form.
func (c Condition) MarshalJSON() ([]byte, error) {
	return json.Marshal([3]any{c.Field, string(c.Op), c.Value})
}

// UnmarshalYAML decodes the array form from YAML with the same leniency as
// the JSON decoder.
func (c *Condition) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.SequenceNode || len(node.Content) != 3 {
		*c = Condition{}
		return nil
	}

	var field, op string
	if err := node.Content[0].Decode(&field); err != nil {
		*c = Condition{}
		return nil
	}
	if err := node.Content[1].Decode(&op); err != nil {
		*c = Condition{}
		return nil
	}

	var val Value
	_ = val.UnmarshalYAML(node.Content[2])

	*c = Condition{Field: field, Op: Operator(op), Value: val}
	return nil
}

// MarshalYAML encodes the condition back to its array form.
func (c Condition) MarshalYAML() (any, error) {
	return [3]any{c.Field, string(c.Op), c.Value}, nil
}

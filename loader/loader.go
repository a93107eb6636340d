// Package loader turns externally-supplied rule lists into validated rule
// sets. It is the collaborator side of the engine contract: the engine
// assumes a structurally valid rule set and silently skips anything
// malformed, while this package reports shape problems as errors so callers
// can surface them and substitute the built-in default set.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/awardly/verdict/rules"
)

// ParseJSON decodes a JSON array of rules and validates its shape.
func ParseJSON(data []byte) (rules.RuleSet, error) {
	var set rules.RuleSet
	if err := json.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("invalid rules JSON: %w", err)
	}
	if err := Validate(set); err != nil {
		return nil, err
	}
	return set, nil
}

// ParseYAML decodes a YAML sequence of rules and validates its shape.
func ParseYAML(data []byte) (rules.RuleSet, error) {
	var set rules.RuleSet
	if err := yaml.Unmarshal(data, &set); err != nil {
		return nil, fmt.Errorf("invalid rules YAML: %w", err)
	}
	if err := Validate(set); err != nil {
		return nil, err
	}
	return set, nil
}

// LoadFile reads a rules file, picking the codec from the extension. Files
// without a .yaml/.yml extension are treated as JSON.
func LoadFile(path string) (rules.RuleSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read rules file: %w", err)
	}

	switch filepath.Ext(path) {
	case ".yaml", ".yml":
		return ParseYAML(data)
	default:
		return ParseJSON(data)
	}
}

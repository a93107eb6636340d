package loader

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/awardly/verdict/rules"
)

const validJSON = `[
  {
    "name": "Top merit candidate",
    "priority": 100,
    "conditions": [
      ["cgpa", ">=", 3.7],
      ["family_income", "<=", 8000]
    ],
    "action": {"decision": "AWARD FULL", "reason": "strong profile"}
  },
  {
    "name": "Default non-qualifier",
    "priority": 1,
    "conditions": [],
    "action": {"decision": "NOT ELIGIBLE", "reason": "no rule applied"}
  }
]`

const validYAML = `
- name: Top merit candidate
  priority: 100
  conditions:
    - [cgpa, ">=", 3.7]
    - [family_income, "<=", 8000]
  action:
    decision: AWARD FULL
    reason: strong profile
- name: Default non-qualifier
  priority: 1
  conditions: []
  action:
    decision: NOT ELIGIBLE
    reason: no rule applied
`

func wantSet() rules.RuleSet {
	return rules.RuleSet{
		{
			Name:     "Top merit candidate",
			Priority: 100,
			Conditions: []rules.Condition{
				{Field: "cgpa", Op: rules.OpGreaterEqual, Value: rules.Number(3.7)},
				{Field: "family_income", Op: rules.OpLessEqual, Value: rules.Number(8000)},
			},
			Action: rules.Action{Decision: "AWARD FULL", Reason: "strong profile"},
		},
		{
			Name:       "Default non-qualifier",
			Priority:   1,
			Conditions: []rules.Condition{},
			Action:     rules.Action{Decision: "NOT ELIGIBLE", Reason: "no rule applied"},
		},
	}
}

func TestParseJSON(t *testing.T) {
	set, err := ParseJSON([]byte(validJSON))
	if err != nil {
		t.Fatalf("ParseJSON() returned error: %v", err)
	}
	if diff := cmp.Diff(wantSet(), set, cmp.AllowUnexported(rules.Value{})); diff != "" {
		t.Errorf("ParseJSON() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseYAML(t *testing.T) {
	set, err := ParseYAML([]byte(validYAML))
	if err != nil {
		t.Fatalf("ParseYAML() returned error: %v", err)
	}
	if diff := cmp.Diff(wantSet(), set, cmp.AllowUnexported(rules.Value{})); diff != "" {
		t.Errorf("ParseYAML() mismatch (-want +got):\n%s", diff)
	}
}

func TestParseJSONErrors(t *testing.T) {
	testCases := []struct {
		name    string
		data    string
		wantErr string
	}{
		{"not JSON", `{{{`, "invalid rules JSON"},
		{"not an array", `{"name": "r"}`, "invalid rules JSON"},
		{"empty array", `[]`, "cannot be empty"},
		{
			"missing name",
			`[{"priority": 1, "conditions": [], "action": {"decision": "REVIEW", "reason": "r"}}]`,
			"name is required",
		},
		{
			"malformed condition triple",
			`[{"name": "r", "priority": 1, "conditions": [["cgpa", ">="]], "action": {"decision": "REVIEW", "reason": "r"}}]`,
			"must be a [field, operator, value] triple",
		},
		{
			"unknown operator",
			`[{"name": "r", "priority": 1, "conditions": [["cgpa", "~=", 3]], "action": {"decision": "REVIEW", "reason": "r"}}]`,
			"unknown operator",
		},
		{
			"non-scalar condition value",
			`[{"name": "r", "priority": 1, "conditions": [["cgpa", ">=", [1]]], "action": {"decision": "REVIEW", "reason": "r"}}]`,
			"must be a number, string, or boolean",
		},
		{
			"missing action decision",
			`[{"name": "r", "priority": 1, "conditions": [], "action": {"reason": "r"}}]`,
			"action decision is required",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseJSON([]byte(tc.data))
			if err == nil {
				t.Fatal("ParseJSON() returned nil error, want failure")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not contain %q", err, tc.wantErr)
			}
		})
	}
}

func TestValidateDefaultRuleSet(t *testing.T) {
	if err := Validate(rules.DefaultRuleSet()); err != nil {
		t.Errorf("built-in default set must validate, got: %v", err)
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()

	jsonPath := filepath.Join(dir, "rules.json")
	if err := os.WriteFile(jsonPath, []byte(validJSON), 0o644); err != nil {
		t.Fatal(err)
	}
	yamlPath := filepath.Join(dir, "rules.yaml")
	if err := os.WriteFile(yamlPath, []byte(validYAML), 0o644); err != nil {
		t.Fatal(err)
	}

	for _, path := range []string{jsonPath, yamlPath} {
		set, err := LoadFile(path)
		if err != nil {
			t.Fatalf("LoadFile(%s) returned error: %v", path, err)
		}
		if len(set) != 2 {
			t.Errorf("LoadFile(%s) = %d rules, want 2", path, len(set))
		}
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("LoadFile() on missing file returned nil error")
	}
}

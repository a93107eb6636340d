package main

import (
	"encoding/json"

	"github.com/awardly/verdict/rules"
)

// API request and response models.

// EvaluateRequest carries the facts to evaluate and, optionally, an inline
// rule list used for this call only. When rules is omitted the active set
// from the registry is used.
type EvaluateRequest struct {
	Facts rules.Facts     `json:"facts"`
	Rules json.RawMessage `json:"rules,omitempty"`
}

// FiredRule is one entry of the ordered match trace.
type FiredRule struct {
	Name       string            `json:"name"`
	Priority   int               `json:"priority"`
	Action     rules.Action      `json:"action"`
	Conditions []rules.Condition `json:"conditions"`
}

// EvaluateResponse is the outcome of a single evaluation: the winning
// decision plus the full fired trace for auditing.
type EvaluateResponse struct {
	EvaluationID   string       `json:"evaluationId"`
	Decision       rules.Action `json:"decision"`
	Fired          []FiredRule  `json:"fired"`
	EvaluationTime string       `json:"evaluationTime"`
}

// RulesResponse lists the active rule set.
type RulesResponse struct {
	Rules rules.RuleSet `json:"rules"`
}

// ReplaceRulesResponse acknowledges a wholesale rule-set replacement.
type ReplaceRulesResponse struct {
	Status string `json:"status"`
	Rules  int    `json:"rules"`
}

// HealthResponse is the health check payload.
type HealthResponse struct {
	Status      string `json:"status"`
	ActiveRules int    `json:"activeRules"`
}

// toFiredRules converts the engine's trace into response form.
func toFiredRules(fired []rules.Rule) []FiredRule {
	out := make([]FiredRule, 0, len(fired))
	for _, r := range fired {
		out = append(out, FiredRule{
			Name:       r.Name,
			Priority:   r.Priority,
			Action:     r.Action,
			Conditions: r.Conditions,
		})
	}
	return out
}

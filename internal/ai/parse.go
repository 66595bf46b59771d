package ai

import (
	"encoding/json"
	"fmt"
	"strings"

	"securereq/internal/analysis"
)

// extractJSON strips a markdown code fence if the model wrapped its reply in
// one.
func extractJSON(text string) string {
	if i := strings.Index(text, "```json"); i >= 0 {
		rest := text[i+len("```json"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			return strings.TrimSpace(rest[:j])
		}
		return strings.TrimSpace(rest)
	}
	if i := strings.Index(text, "```"); i >= 0 {
		rest := text[i+len("```"):]
		if j := strings.Index(rest, "```"); j >= 0 {
			return strings.TrimSpace(rest[:j])
		}
		return strings.TrimSpace(rest)
	}
	return strings.TrimSpace(text)
}

// parseResult validates LLM output into the same shape the template fallback
// produces natively: non-nil lists, sequential ids where the model omitted
// them, risk score clamped to [0, 100].
func parseResult(text string) (*analysis.Result, error) {
	var result analysis.Result
	if err := json.Unmarshal([]byte(extractJSON(text)), &result); err != nil {
		return nil, fmt.Errorf("parse LLM response: %w", err)
	}

	if result.AbuseCases == nil {
		result.AbuseCases = []analysis.AbuseCase{}
	}
	if result.StrideThreats == nil {
		result.StrideThreats = []analysis.StrideThreat{}
	}
	if result.SecurityRequirements == nil {
		result.SecurityRequirements = []analysis.SecurityRequirement{}
	}
	if len(result.SecurityRequirements) == 0 {
		return nil, fmt.Errorf("LLM response contains no security requirements")
	}

	for i := range result.AbuseCases {
		if result.AbuseCases[i].ID == "" {
			result.AbuseCases[i].ID = fmt.Sprintf("AC-%03d", i+1)
		}
	}
	for i := range result.SecurityRequirements {
		if result.SecurityRequirements[i].ID == "" {
			result.SecurityRequirements[i].ID = fmt.Sprintf("SR-%03d", i+1)
		}
	}

	if result.RiskScore < 0 {
		result.RiskScore = 0
	}
	if result.RiskScore > 100 {
		result.RiskScore = 100
	}

	return &result, nil
}

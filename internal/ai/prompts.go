package ai

import (
	_ "embed"
	"fmt"
	"strings"

	"securereq/internal/compliance"
)

//go:embed prompts/system_prompt.md
var systemPrompt string

const userPromptTemplate = `Analyze the following user story for security threats, abuse cases, and generate security requirements.

**User Story Title:** %s
**Description:** %s
%s
%s

Produce a thorough security analysis. Return ONLY valid JSON with this exact structure:
{
  "abuse_cases": [
    {"id": "AC-001", "threat": "...", "actor": "...", "description": "...", "impact": "...", "likelihood": "...", "attack_vector": "...", "stride_category": "..."}
  ],
  "stride_threats": [
    {"category": "Spoofing", "threat": "...", "description": "...", "risk_level": "..."}
  ],
  "security_requirements": [
    {"id": "SR-001", "text": "...", "priority": "...", "category": "...", "details": "..."}
  ],
  "risk_score": 0
}

Generate at least 8 abuse cases, 6 STRIDE threats, and 15 security requirements. Be specific to THIS user story, not generic.`

func buildUserPrompt(title, description, acceptanceCriteria string, custom []compliance.CustomStandard) string {
	acSection := ""
	if acceptanceCriteria != "" {
		acSection = "**Acceptance Criteria:** " + acceptanceCriteria
	}

	csSection := ""
	if len(custom) > 0 {
		var sb strings.Builder
		for _, std := range custom {
			for _, c := range std.Controls {
				fmt.Fprintf(&sb, "- [%s] %s - %s\n", c.ID, c.Title, c.Description)
			}
		}
		csSection = "**Organization Custom Security Standards (must also map requirements to these):**\n" + sb.String()
	}

	return fmt.Sprintf(userPromptTemplate, title, description, acSection, csSection)
}

package ai

import "testing"

const sampleResponse = `{
  "abuse_cases": [
    {"id": "AC-001", "threat": "Token theft", "actor": "External Attacker", "description": "Steals tokens.", "impact": "Critical", "likelihood": "Medium", "attack_vector": "XSS", "stride_category": "Spoofing"}
  ],
  "stride_threats": [
    {"category": "Spoofing", "threat": "Token theft", "description": "1 threat(s)", "risk_level": "Critical"}
  ],
  "security_requirements": [
    {"id": "SR-001", "text": "Rotate tokens", "priority": "High", "category": "Authentication & Access Control", "details": "Short TTLs."}
  ],
  "risk_score": 40
}`

func TestParseResultPlainJSON(t *testing.T) {
	result, err := parseResult(sampleResponse)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.AbuseCases) != 1 || result.AbuseCases[0].Threat != "Token theft" {
		t.Errorf("abuse cases not parsed: %+v", result.AbuseCases)
	}
	if result.RiskScore != 40 {
		t.Errorf("expected risk score 40, got %d", result.RiskScore)
	}
}

func TestParseResultFencedJSON(t *testing.T) {
	fenced := "Here is the analysis:\n```json\n" + sampleResponse + "\n```\nLet me know if you need more."
	result, err := parseResult(fenced)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.SecurityRequirements) != 1 {
		t.Errorf("expected 1 requirement, got %d", len(result.SecurityRequirements))
	}
}

func TestParseResultBareFence(t *testing.T) {
	fenced := "```\n" + sampleResponse + "\n```"
	if _, err := parseResult(fenced); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestParseResultAssignsMissingIDs(t *testing.T) {
	raw := `{
	  "abuse_cases": [{"threat": "A", "impact": "High", "stride_category": "Tampering"}],
	  "security_requirements": [{"text": "Do X", "priority": "High", "category": "Input Validation"}],
	  "risk_score": 10
	}`
	result, err := parseResult(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.AbuseCases[0].ID != "AC-001" {
		t.Errorf("expected generated id AC-001, got %q", result.AbuseCases[0].ID)
	}
	if result.SecurityRequirements[0].ID != "SR-001" {
		t.Errorf("expected generated id SR-001, got %q", result.SecurityRequirements[0].ID)
	}
	if result.StrideThreats == nil {
		t.Error("missing stride_threats should normalize to an empty list")
	}
}

func TestParseResultClampsRiskScore(t *testing.T) {
	raw := `{"security_requirements": [{"text": "X"}], "risk_score": 250}`
	result, err := parseResult(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.RiskScore != 100 {
		t.Errorf("expected clamped score 100, got %d", result.RiskScore)
	}
}

func TestParseResultRejectsGarbage(t *testing.T) {
	if _, err := parseResult("I could not produce an analysis."); err == nil {
		t.Error("expected error for non-JSON response")
	}
}

func TestParseResultRejectsEmptyRequirements(t *testing.T) {
	if _, err := parseResult(`{"abuse_cases": [], "security_requirements": [], "risk_score": 0}`); err == nil {
		t.Error("expected error when the model returns no requirements")
	}
}

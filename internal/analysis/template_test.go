package analysis

import (
	"fmt"
	"strings"
	"testing"
)

func TestAnalyzeNoMatches(t *testing.T) {
	res := Analyze("Update footer copyright year", "Change 2025 to 2026 in the page footer.", "")

	if len(res.AbuseCases) != 0 {
		t.Errorf("expected no abuse cases, got %d", len(res.AbuseCases))
	}
	if len(res.StrideThreats) != 0 {
		t.Errorf("expected no STRIDE threats, got %d", len(res.StrideThreats))
	}
	if len(res.SecurityRequirements) != len(baselineRequirements) {
		t.Errorf("expected %d baseline requirements, got %d", len(baselineRequirements), len(res.SecurityRequirements))
	}
	if res.RiskScore != 0 {
		t.Errorf("expected risk score 0, got %d", res.RiskScore)
	}
	for i, r := range res.SecurityRequirements {
		want := fmt.Sprintf("SR-%03d", i+1)
		if r.ID != want {
			t.Errorf("requirement %d: expected ID %s, got %s", i, want, r.ID)
		}
	}
}

func TestAnalyzeAuthAndPayment(t *testing.T) {
	res := Analyze(
		"Password reset for checkout",
		"As a shopper I want to reset my password and pay with my credit card.",
		"",
	)

	threats := make(map[string]bool)
	for _, ac := range res.AbuseCases {
		threats[ac.Threat] = true
	}
	if !threats["Credential Stuffing Attack"] {
		t.Error("expected authentication pattern abuse case (Credential Stuffing Attack)")
	}
	if !threats["Credit Card Skimming (Magecart)"] {
		t.Error("expected payment pattern abuse case (Credit Card Skimming)")
	}

	texts := make(map[string]bool)
	for _, r := range res.SecurityRequirements {
		texts[r.Text] = true
	}
	if !texts["Implement adaptive MFA for all users"] {
		t.Error("missing authentication requirement")
	}
	if !texts["Never store full PAN - use PCI-certified tokenization"] {
		t.Error("missing payment requirement")
	}
	for _, b := range baselineRequirements {
		if !texts[b.Text] {
			t.Errorf("missing baseline requirement %q", b.Text)
		}
	}
}

func TestAnalyzeRequirementsDeduplicated(t *testing.T) {
	// Trigger every pattern at once; requirement texts must still be unique.
	res := Analyze(
		"Everything",
		"password ssn credit card upload wire transfer patient investment",
		"",
	)

	seen := make(map[string]bool)
	for _, r := range res.SecurityRequirements {
		if seen[r.Text] {
			t.Errorf("duplicate requirement text %q", r.Text)
		}
		seen[r.Text] = true
	}
}

func TestAnalyzeSequentialIDs(t *testing.T) {
	res := Analyze("Login", "Users login with a password and upload a receipt.", "")

	for i, ac := range res.AbuseCases {
		want := fmt.Sprintf("AC-%03d", i+1)
		if ac.ID != want {
			t.Errorf("abuse case %d: expected ID %s, got %s", i, want, ac.ID)
		}
	}
	for i, r := range res.SecurityRequirements {
		want := fmt.Sprintf("SR-%03d", i+1)
		if r.ID != want {
			t.Errorf("requirement %d: expected ID %s, got %s", i, want, r.ID)
		}
	}
}

func TestAnalyzeRiskScore(t *testing.T) {
	// Triggers wire_transfer (2 Critical) and, via "beneficiary",
	// financial_data (1 Critical): 3*12 + 0*6 + 2*8 = 52.
	res := Analyze("ACH payout", "Send funds via wire transfer to the beneficiary bank.", "")

	if len(res.AbuseCases) != 3 {
		t.Fatalf("expected 3 abuse cases, got %d", len(res.AbuseCases))
	}
	if res.RiskScore != 52 {
		t.Errorf("expected risk score 52, got %d", res.RiskScore)
	}
}

func TestAnalyzeRiskScoreSaturates(t *testing.T) {
	res := Analyze(
		"Everything at once",
		"password ssn credit card upload wire transfer patient investment portfolio",
		"login file medical",
	)
	if res.RiskScore != 100 {
		t.Errorf("expected saturated risk score 100, got %d", res.RiskScore)
	}
}

func TestAnalyzeStrideGrouping(t *testing.T) {
	res := Analyze("Login", "Users sign in with a password.", "")

	categories := make(map[string]bool)
	for _, ac := range res.AbuseCases {
		categories[ac.StrideCategory] = true
	}
	if len(res.StrideThreats) != len(categories) {
		t.Errorf("expected %d STRIDE entries (one per category), got %d", len(categories), len(res.StrideThreats))
	}

	// Authentication pattern starts with Credential Stuffing (Spoofing,
	// Critical); the Spoofing group must carry its name and impact.
	var spoofing *StrideThreat
	for i := range res.StrideThreats {
		if res.StrideThreats[i].Category == StrideSpoofing {
			spoofing = &res.StrideThreats[i]
		}
	}
	if spoofing == nil {
		t.Fatal("expected a Spoofing STRIDE entry")
	}
	if spoofing.Threat != "Credential Stuffing Attack" {
		t.Errorf("expected representative threat from first abuse case, got %q", spoofing.Threat)
	}
	if spoofing.RiskLevel != ImpactCritical {
		t.Errorf("expected risk level Critical, got %q", spoofing.RiskLevel)
	}
	if !strings.Contains(spoofing.Description, "threat(s) identified") {
		t.Errorf("unexpected description %q", spoofing.Description)
	}
}

func TestAnalyzeCaseInsensitive(t *testing.T) {
	lower := Analyze("password reset", "", "")
	upper := Analyze("PASSWORD RESET", "", "")
	if len(lower.AbuseCases) != len(upper.AbuseCases) {
		t.Errorf("detection should be case-insensitive: %d vs %d abuse cases",
			len(lower.AbuseCases), len(upper.AbuseCases))
	}
}

func TestAnalyzeEmptyInput(t *testing.T) {
	res := Analyze("", "", "")
	if len(res.SecurityRequirements) == 0 {
		t.Error("empty input must still produce baseline requirements")
	}
	if res.RiskScore != 0 {
		t.Errorf("empty input must score 0, got %d", res.RiskScore)
	}
}

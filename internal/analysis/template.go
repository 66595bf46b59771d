// Package analysis implements the keyword-based security analysis used when
// no AI provider is reachable. It is a pure function of the story text: the
// same input always yields the same abuse cases, STRIDE threats, requirements
// and risk score.
package analysis

import (
	"fmt"
	"strings"
)

// Analyze scans the story text against the pattern library and builds a full
// analysis payload. It never fails: with no keyword matches it still returns
// the deduplicated baseline requirements and a risk score of zero.
func Analyze(title, description, acceptanceCriteria string) *Result {
	text := strings.ToLower(title + " " + description + " " + acceptanceCriteria)

	// Non-nil slices so the stored payload serializes as [] rather than null.
	abuseCases := []AbuseCase{}
	requirements := []SecurityRequirement{}
	detected := 0

	for _, p := range patternLibrary {
		if !matchesAny(text, p.keywords) {
			continue
		}
		detected++
		abuseCases = append(abuseCases, p.abuseCases...)
		requirements = append(requirements, p.requirements...)
	}

	requirements = append(requirements, baselineRequirements...)
	requirements = dedupByText(requirements)

	for i := range abuseCases {
		abuseCases[i].ID = fmt.Sprintf("AC-%03d", i+1)
	}
	for i := range requirements {
		requirements[i].ID = fmt.Sprintf("SR-%03d", i+1)
	}

	return &Result{
		AbuseCases:           abuseCases,
		StrideThreats:        strideThreats(abuseCases),
		SecurityRequirements: requirements,
		RiskScore:            riskScore(abuseCases, detected),
	}
}

func matchesAny(text string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(text, kw) {
			return true
		}
	}
	return false
}

// dedupByText drops later requirements whose Text was already seen,
// preserving first-seen order. Pattern order in the library is therefore the
// priority order when two patterns share a requirement.
func dedupByText(reqs []SecurityRequirement) []SecurityRequirement {
	seen := make(map[string]struct{}, len(reqs))
	unique := make([]SecurityRequirement, 0, len(reqs))
	for _, r := range reqs {
		if _, ok := seen[r.Text]; ok {
			continue
		}
		seen[r.Text] = struct{}{}
		unique = append(unique, r)
	}
	return unique
}

// strideThreats emits one summary entry per distinct STRIDE category, in
// first-occurrence order. The representative threat name and risk level come
// from the first abuse case in each category.
func strideThreats(abuseCases []AbuseCase) []StrideThreat {
	counts := make(map[string]int)
	var order []string
	first := make(map[string]AbuseCase)

	for _, ac := range abuseCases {
		if _, ok := counts[ac.StrideCategory]; !ok {
			order = append(order, ac.StrideCategory)
			first[ac.StrideCategory] = ac
		}
		counts[ac.StrideCategory]++
	}

	threats := make([]StrideThreat, 0, len(order))
	for _, cat := range order {
		threats = append(threats, StrideThreat{
			Category:    cat,
			Threat:      first[cat].Threat,
			Description: fmt.Sprintf("%d threat(s) identified in this category", counts[cat]),
			RiskLevel:   first[cat].Impact,
		})
	}
	return threats
}

// riskScore weighs critical and high-impact abuse cases plus the number of
// detected patterns, saturating at 100.
func riskScore(abuseCases []AbuseCase, detectedPatterns int) int {
	critical, high := 0, 0
	for _, ac := range abuseCases {
		switch ac.Impact {
		case ImpactCritical:
			critical++
		case ImpactHigh:
			high++
		}
	}
	score := critical*12 + high*6 + detectedPatterns*8
	if score > 100 {
		score = 100
	}
	return score
}

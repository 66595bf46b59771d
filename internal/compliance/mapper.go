package compliance

import (
	"strings"

	"securereq/internal/analysis"
)

// Mapping associates one generated requirement with one control of a
// standard. Relevance encodes confidence: 0.8 catalog-backed, 0.7 custom
// category match, 0.6 synthetic (no catalog data behind the prefix).
type Mapping struct {
	RequirementID  string  `json:"requirement_id"`
	StandardName   string  `json:"standard_name"`
	ControlID      string  `json:"control_id"`
	ControlTitle   string  `json:"control_title"`
	RelevanceScore float64 `json:"relevance_score"`
}

// perPrefixCap limits catalog-backed mappings per control-id prefix.
const perPrefixCap = 2

// MapRequirements resolves applicable controls for every requirement across
// the requested standards plus any custom standards. A nil standards slice
// means all built-in standards. It never fails: unknown standards and missing
// catalogs degrade to synthetic mappings or to nothing at all.
//
// Output order is standards, then prefixes, then catalog order, so identical
// inputs always produce identical output. Duplicate (requirement, standard,
// control) triples can occur when two prefixes overlap; they are not
// suppressed here.
func MapRequirements(requirements []analysis.SecurityRequirement, standards []string, custom []CustomStandard) []Mapping {
	if standards == nil {
		standards = BuiltinStandards
	}

	mappings := []Mapping{}

	for _, req := range requirements {
		for _, stdName := range standards {
			categoryMap := standardCategoryMap[stdName]
			prefixes := categoryMap[req.Category]
			if len(prefixes) == 0 {
				continue
			}

			controls := LoadStandard(stdName)

			for _, prefix := range prefixes {
				matched := 0
				for _, c := range controls {
					if !strings.HasPrefix(c.ID, prefix) {
						continue
					}
					mappings = append(mappings, Mapping{
						RequirementID:  req.ID,
						StandardName:   stdName,
						ControlID:      c.ID,
						ControlTitle:   c.Title,
						RelevanceScore: 0.8,
					})
					matched++
					if matched == perPrefixCap {
						break
					}
				}
				if matched == 0 {
					mappings = append(mappings, Mapping{
						RequirementID:  req.ID,
						StandardName:   stdName,
						ControlID:      prefix,
						ControlTitle:   syntheticTitle(stdName, prefix),
						RelevanceScore: 0.6,
					})
				}
			}
		}

		for _, cs := range custom {
			for _, c := range cs.Controls {
				if !categoriesOverlap(c.Category, req.Category) {
					continue
				}
				mappings = append(mappings, Mapping{
					RequirementID:  req.ID,
					StandardName:   cs.DisplayName(),
					ControlID:      c.ID,
					ControlTitle:   c.Title,
					RelevanceScore: 0.7,
				})
			}
		}
	}

	return mappings
}

// categoriesOverlap reports whether either category contains the other,
// case-insensitively. An empty control category never matches.
func categoriesOverlap(controlCategory, reqCategory string) bool {
	cc := strings.ToLower(controlCategory)
	rc := strings.ToLower(reqCategory)
	if cc == "" {
		return false
	}
	return strings.Contains(rc, cc) || strings.Contains(cc, rc)
}

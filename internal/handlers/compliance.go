package handlers

import (
	"net/http"

	"securereq/internal/database"
	"securereq/internal/models"

	"github.com/gin-gonic/gin"
)

func ListMappings(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	a, ok := ownedAnalysis(c, id)
	if !ok {
		return
	}

	var mappings []models.ComplianceMapping
	database.DB.Where("analysis_id = ?", a.ID).Order("id asc").Find(&mappings)
	c.JSON(http.StatusOK, mappings)
}

type complianceSummary struct {
	StandardName    string  `json:"standard_name"`
	TotalControls   int     `json:"total_controls"`
	MappedControls  int     `json:"mapped_controls"`
	CoveragePercent float64 `json:"coverage_percent"`
}

// ComplianceSummary aggregates distinct mapped controls per standard.
func ComplianceSummary(c *gin.Context) {
	id, ok := paramID(c, "id")
	if !ok {
		return
	}
	a, ok := ownedAnalysis(c, id)
	if !ok {
		return
	}

	var mappings []models.ComplianceMapping
	database.DB.Where("analysis_id = ?", a.ID).Order("id asc").Find(&mappings)

	byStandard := make(map[string]map[string]struct{})
	var order []string
	for _, m := range mappings {
		if _, ok := byStandard[m.StandardName]; !ok {
			byStandard[m.StandardName] = make(map[string]struct{})
			order = append(order, m.StandardName)
		}
		byStandard[m.StandardName][m.ControlID] = struct{}{}
	}

	out := make([]complianceSummary, 0, len(order))
	for _, name := range order {
		n := len(byStandard[name])
		coverage := float64(n) * 10.0
		if coverage > 100.0 {
			coverage = 100.0
		}
		out = append(out, complianceSummary{
			StandardName:    name,
			TotalControls:   n,
			MappedControls:  n,
			CoveragePercent: coverage,
		})
	}
	c.JSON(http.StatusOK, out)
}

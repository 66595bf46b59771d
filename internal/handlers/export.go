package handlers

import (
	"encoding/csv"
	"fmt"
	"strconv"

	"securereq/internal/database"
	"securereq/internal/models"

	"github.com/gin-gonic/gin"
)

// ExportAnalysisCSV streams one analysis as CSV: abuse cases, requirements
// and compliance mappings in separate sections.
func ExportAnalysisCSV(c *gin.Context) {
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

	c.Header("Content-Type", "text/csv")
	c.Header("Content-Disposition",
		fmt.Sprintf("attachment; filename=analysis-v%d.csv", a.Version))

	w := csv.NewWriter(c.Writer)

	_ = w.Write([]string{"Abuse Cases"})
	_ = w.Write([]string{"ID", "Threat", "Actor", "Description", "Impact", "Likelihood", "Attack Vector", "STRIDE"})
	for _, ac := range a.AbuseCases {
		_ = w.Write([]string{ac.ID, ac.Threat, ac.Actor, ac.Description, ac.Impact, ac.Likelihood, ac.AttackVector, ac.StrideCategory})
	}

	_ = w.Write([]string{})
	_ = w.Write([]string{"Security Requirements"})
	_ = w.Write([]string{"ID", "Requirement", "Priority", "Category", "Details"})
	for _, r := range a.SecurityRequirements {
		_ = w.Write([]string{r.ID, r.Text, r.Priority, r.Category, r.Details})
	}

	_ = w.Write([]string{})
	_ = w.Write([]string{"Compliance Mappings"})
	_ = w.Write([]string{"Requirement", "Standard", "Control", "Title", "Relevance"})
	for _, m := range mappings {
		_ = w.Write([]string{
			m.RequirementID, m.StandardName, m.ControlID, m.ControlTitle,
			strconv.FormatFloat(m.RelevanceScore, 'f', 1, 64),
		})
	}

	w.Flush()
}

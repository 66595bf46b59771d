package models

import "gorm.io/gorm"

// ComplianceMapping rows are owned exclusively by their analysis; they
// reference the analysis, never the standard that produced them, so deleting
// a custom standard leaves past analyses intact.
type ComplianceMapping struct {
	gorm.Model
	AnalysisID uint `gorm:"index;not null" json:"analysis_id"`

	RequirementID  string  `gorm:"size:50" json:"requirement_id"`
	StandardName   string  `gorm:"size:100;not null" json:"standard_name"`
	ControlID      string  `gorm:"size:50;not null" json:"control_id"`
	ControlTitle   string  `gorm:"size:500" json:"control_title"`
	RelevanceScore float64 `json:"relevance_score"`
}

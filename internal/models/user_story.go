package models

import "gorm.io/gorm"

// StorySource records where a story came from.
const (
	SourceManual = "manual"
	SourceJira   = "jira"
	SourceADO    = "ado"
)

type UserStory struct {
	gorm.Model
	ProjectID uint `gorm:"index;not null" json:"project_id"`

	Title              string `gorm:"size:500;not null" json:"title"`
	Description        string `gorm:"type:text;not null" json:"description"`
	AcceptanceCriteria string `gorm:"type:text" json:"acceptance_criteria"`
	Source             string `gorm:"size:50;default:manual" json:"source"`
	ExternalID         string `gorm:"size:255" json:"external_id,omitempty"`
	ExternalURL        string `gorm:"size:500" json:"external_url,omitempty"`
	CreatedBy          uint   `json:"created_by"`

	// Deleting a story removes every analysis snapshot taken of it.
	Analyses []SecurityAnalysis `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

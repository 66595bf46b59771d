package models

import "gorm.io/gorm"

// Webhook event types.
const (
	EventAnalysisCompleted     = "analysis.completed"
	EventAnalysisFailed        = "analysis.failed"
	EventBulkAnalysisCompleted = "bulk_analysis.completed"
)

// ValidEventTypes lists every event a webhook may subscribe to.
var ValidEventTypes = []string{
	EventAnalysisCompleted,
	EventAnalysisFailed,
	EventBulkAnalysisCompleted,
}

type Webhook struct {
	gorm.Model
	ProjectID uint `gorm:"index;not null" json:"project_id"`

	URL        string   `gorm:"size:500;not null" json:"url"`
	Secret     string   `gorm:"size:255;not null" json:"-"`
	EventTypes []string `gorm:"serializer:json" json:"event_types"`
	IsActive   bool     `gorm:"default:true" json:"is_active"`
}

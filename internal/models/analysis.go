package models

import (
	"gorm.io/gorm"

	"securereq/internal/analysis"
)

// SecurityAnalysis is one immutable snapshot of a story's analysis. Versions
// are per story, 1-based, and guarded by the composite unique index: two
// concurrent runs racing on max(version)+1 cannot both commit the same
// number, the loser gets a constraint violation and retries.
type SecurityAnalysis struct {
	gorm.Model
	UserStoryID uint `gorm:"not null;uniqueIndex:idx_story_version" json:"user_story_id"`
	Version     int  `gorm:"not null;uniqueIndex:idx_story_version" json:"version"`

	AbuseCases           []analysis.AbuseCase           `gorm:"serializer:json" json:"abuse_cases"`
	StrideThreats        []analysis.StrideThreat        `gorm:"serializer:json" json:"stride_threats"`
	SecurityRequirements []analysis.SecurityRequirement `gorm:"serializer:json" json:"security_requirements"`
	RiskScore            int                            `json:"risk_score"`
	AIModelUsed          string                         `gorm:"size:100" json:"ai_model_used"`

	ComplianceMappings []ComplianceMapping `gorm:"foreignKey:AnalysisID;constraint:OnDelete:CASCADE" json:"-"`
}

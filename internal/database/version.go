package database

import (
	"errors"
	"fmt"
	"log"

	"gorm.io/gorm"

	"securereq/internal/analysis"
	"securereq/internal/compliance"
	"securereq/internal/models"
)

// ErrVersionConflict is returned when concurrent analyses of the same story
// exhaust the retry budget. Callers may retry the whole operation.
var ErrVersionConflict = errors.New("analysis version conflict")

const versionRetries = 3

// NextVersion reads max(version)+1 for a story. Outside CreateAnalysis it is
// only a hint: the unique index on (user_story_id, version) is authoritative.
func NextVersion(tx *gorm.DB, storyID uint) (int, error) {
	var max int
	err := tx.Model(&models.SecurityAnalysis{}).
		Where("user_story_id = ?", storyID).
		Select("COALESCE(MAX(version), 0)").
		Scan(&max).Error
	if err != nil {
		return 0, err
	}
	return max + 1, nil
}

// CreateAnalysis persists one analysis snapshot with the next free version
// number and its compliance mappings. The version read and the insert run in
// one transaction; a duplicate-key loss against a concurrent writer is
// retried with a fresh read. Mapping rows are best-effort enrichment: they
// are written after the analysis row exists, and a mapping failure does not
// roll back the snapshot.
func CreateAnalysis(storyID uint, result *analysis.Result, aiModel string, mappings []compliance.Mapping) (*models.SecurityAnalysis, error) {
	var created *models.SecurityAnalysis

	for attempt := 0; attempt < versionRetries; attempt++ {
		err := DB.Transaction(func(tx *gorm.DB) error {
			version, err := NextVersion(tx, storyID)
			if err != nil {
				return err
			}
			a := &models.SecurityAnalysis{
				UserStoryID:          storyID,
				Version:              version,
				AbuseCases:           result.AbuseCases,
				StrideThreats:        result.StrideThreats,
				SecurityRequirements: result.SecurityRequirements,
				RiskScore:            result.RiskScore,
				AIModelUsed:          aiModel,
			}
			if err := tx.Create(a).Error; err != nil {
				return err
			}
			created = a
			return nil
		})
		if err == nil {
			break
		}
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			log.Printf("version collision for story %d, retrying (%d/%d)", storyID, attempt+1, versionRetries)
			created = nil
			continue
		}
		return nil, fmt.Errorf("create analysis: %w", err)
	}
	if created == nil {
		return nil, ErrVersionConflict
	}

	for _, m := range mappings {
		row := models.ComplianceMapping{
			AnalysisID:     created.ID,
			RequirementID:  m.RequirementID,
			StandardName:   m.StandardName,
			ControlID:      m.ControlID,
			ControlTitle:   m.ControlTitle,
			RelevanceScore: m.RelevanceScore,
		}
		if err := DB.Create(&row).Error; err != nil {
			log.Printf("failed to store mapping %s/%s for analysis %d: %v",
				m.StandardName, m.ControlID, created.ID, err)
		}
	}

	return created, nil
}

package models

import (
	"gorm.io/gorm"

	"securereq/internal/compliance"
)

type CustomStandard struct {
	gorm.Model
	ProjectID uint `gorm:"index;not null" json:"project_id"`

	Name             string               `gorm:"size:255;not null" json:"name"`
	Description      string               `gorm:"type:text" json:"description"`
	FileType         string               `gorm:"size:10" json:"file_type"`
	OriginalFilename string               `gorm:"size:255" json:"original_filename"`
	Controls         []compliance.Control `gorm:"serializer:json" json:"controls"`
	UploadedBy       uint                 `json:"uploaded_by"`
}

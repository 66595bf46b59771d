package models

import "gorm.io/gorm"

type Project struct {
	gorm.Model
	OwnerID uint `gorm:"index;not null" json:"owner_id"`

	Name        string `gorm:"size:255;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`

	Stories         []UserStory      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	CustomStandards []CustomStandard `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	Webhooks        []Webhook        `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

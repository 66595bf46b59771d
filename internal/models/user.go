package models

import "gorm.io/gorm"

type User struct {
	gorm.Model
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string `gorm:"not null" json:"-"`
	FullName     string `gorm:"size:255" json:"full_name"`

	Projects []Project `gorm:"foreignKey:OwnerID;constraint:OnDelete:CASCADE" json:"-"`
}

package models

import "time"

type AuditLog struct {
	ID        uint `gorm:"primaryKey"`
	CreatedAt time.Time

	UserID uint

	Entity   string `gorm:"size:50;not null"` // "project", "story", "analysis", "standard"
	EntityID uint
	Action   string `gorm:"size:50;not null"` // "create", "delete", "analyze"
	Details  string `gorm:"type:text"`
}

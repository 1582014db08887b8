package models

import (
	"time"

	"github.com/google/uuid"
)

// UserActivity is a logged user event shown on the dashboard feed.
type UserActivity struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID       uuid.UUID `gorm:"type:uuid;column:user_id;not null;index"`
	Title        string    `gorm:"type:text;not null"`
	Description  string    `gorm:"type:text"`
	ActivityType string    `gorm:"column:activity_type;not null"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime"`
}

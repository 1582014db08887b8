package models

import (
	"time"

	"github.com/google/uuid"
)

// AIInsight is an AI-generated recommendation surfaced to the user. The
// newest row wins; a default row is seeded on first visit.
type AIInsight struct {
	ID                 uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID             uuid.UUID `gorm:"type:uuid;column:user_id;not null;index"`
	InsightType        string    `gorm:"column:insight_type;not null"`
	Title              string    `gorm:"type:text;not null"`
	Message            string    `gorm:"type:text;not null"`
	ProgressPercentage int       `gorm:"column:progress_percentage;not null"`
	CreatedAt          time.Time `gorm:"column:created_at;autoCreateTime"`
}

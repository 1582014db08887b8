package models

import (
	"time"

	"github.com/google/uuid"
)

// AppStatistic is an app-wide counters snapshot; the latest row feeds the
// admin panel and the public promo figures.
type AppStatistic struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	TotalUsers          int64     `gorm:"column:total_users;not null"`
	ActiveUsers         int64     `gorm:"column:active_users;not null"`
	PremiumUsers        int64     `gorm:"column:premium_users;not null"`
	TotalHabitsTracked  int64     `gorm:"column:total_habits_tracked;not null"`
	TotalAIInteractions int64     `gorm:"column:total_ai_interactions;not null"`
	CreatedAt           time.Time `gorm:"column:created_at;autoCreateTime"`
}

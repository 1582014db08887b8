package models

import (
	"time"

	"github.com/google/uuid"
)

// Habit categories used by the default seed rows.
const (
	HabitCategoryDaily    = "daily"
	HabitCategoryWellness = "wellness"
)

// UserHabit is a tracked behavior with a 0-100 consistency score.
type UserHabit struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID           uuid.UUID `gorm:"type:uuid;column:user_id;not null;index"`
	HabitName        string    `gorm:"column:habit_name;not null"`
	Category         string    `gorm:"type:text;not null"`
	ConsistencyScore int       `gorm:"column:consistency_score;not null"`
	CreatedAt        time.Time `gorm:"column:created_at;autoCreateTime"`
}

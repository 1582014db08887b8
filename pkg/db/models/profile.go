package models

import (
	"time"

	"github.com/google/uuid"
)

// Subscription statuses stored on a profile.
const (
	SubscriptionFree    = "free"
	SubscriptionTrial   = "trial"
	SubscriptionPremium = "premium"
)

// Profile is the per-user settings/subscription record. Its primary key equals
// the owning account id; the duplicated user_id column is kept for
// compatibility with older row-ownership policies keyed on user_id.
//
// is_admin is deliberately absent: the column is an optional capability probed
// at runtime (see internal/profiles), not part of the base schema.
type Profile struct {
	ID                  uuid.UUID  `gorm:"type:uuid;primaryKey"`
	UserID              uuid.UUID  `gorm:"type:uuid;column:user_id;not null;index"`
	Name                string     `gorm:"type:text;not null"`
	Email               string     `gorm:"type:text;not null"`
	SubscriptionStatus  string     `gorm:"column:subscription_status;not null;default:free"`
	SubscriptionEndDate *time.Time `gorm:"column:subscription_end_date"`
	CreatedAt           time.Time  `gorm:"column:created_at;autoCreateTime"`
	UpdatedAt           time.Time  `gorm:"column:updated_at;autoUpdateTime"`
}

func (Profile) TableName() string { return "user_profiles" }

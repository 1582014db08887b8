package models

import (
	"time"

	"github.com/google/uuid"
)

// AuthAccount is the auth-provider credential record. It is the source of the
// opaque Identity handed to the rest of the system; application data hangs off
// the Profile keyed by the same id.
type AuthAccount struct {
	ID           uuid.UUID  `gorm:"type:uuid;primaryKey"`
	Email        string     `gorm:"type:text;not null;uniqueIndex"`
	PasswordHash string     `gorm:"column:password_hash;not null"`
	Name         string     `gorm:"column:name;not null"`
	LastLoginAt  *time.Time `gorm:"column:last_login_at"`
	CreatedAt    time.Time  `gorm:"column:created_at;autoCreateTime"`
}

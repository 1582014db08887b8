package models

import (
	"time"

	"github.com/google/uuid"
)

// AIConversation records one user message and the response issued for it.
type AIConversation struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey"`
	UserID    uuid.UUID `gorm:"type:uuid;column:user_id;not null;index"`
	Message   string    `gorm:"type:text;not null"`
	Response  string    `gorm:"type:text;not null"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

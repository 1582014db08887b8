package profiles

import (
	"time"

	"github.com/google/uuid"

	"github.com/raizapp/raizapp-backend/pkg/db/models"
)

// Identity is the immutable snapshot of an authenticated user that handlers
// read from the request context.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Name   string
}

// SaveRequest carries the editable profile fields.
type SaveRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=120"`
	Email string `json:"email" validate:"required,email"`
}

// ProfileDTO is the wire shape of a profile.
type ProfileDTO struct {
	ID                  uuid.UUID  `json:"id"`
	Name                string     `json:"name"`
	Email               string     `json:"email"`
	SubscriptionStatus  string     `json:"subscription_status"`
	SubscriptionEndDate *time.Time `json:"subscription_end_date,omitempty"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}

// FromModel converts a stored profile to its wire shape.
func FromModel(p *models.Profile) *ProfileDTO {
	if p == nil {
		return nil
	}
	return &ProfileDTO{
		ID:                  p.ID,
		Name:                p.Name,
		Email:               p.Email,
		SubscriptionStatus:  p.SubscriptionStatus,
		SubscriptionEndDate: p.SubscriptionEndDate,
		CreatedAt:           p.CreatedAt,
		UpdatedAt:           p.UpdatedAt,
	}
}

package activities

import (
	"time"

	"github.com/google/uuid"

	"github.com/raizapp/raizapp-backend/pkg/db/models"
)

// ActivityDTO is the wire shape of a logged activity.
type ActivityDTO struct {
	ID           uuid.UUID `json:"id"`
	Title        string    `json:"title"`
	Description  string    `json:"description,omitempty"`
	ActivityType string    `json:"activity_type"`
	CreatedAt    time.Time `json:"created_at"`
}

// FromModel converts a stored activity to its wire shape.
func FromModel(a *models.UserActivity) *ActivityDTO {
	if a == nil {
		return nil
	}
	return &ActivityDTO{
		ID:           a.ID,
		Title:        a.Title,
		Description:  a.Description,
		ActivityType: a.ActivityType,
		CreatedAt:    a.CreatedAt,
	}
}

// FromModels converts a slice of stored activities.
func FromModels(rows []models.UserActivity) []*ActivityDTO {
	out := make([]*ActivityDTO, 0, len(rows))
	for i := range rows {
		out = append(out, FromModel(&rows[i]))
	}
	return out
}

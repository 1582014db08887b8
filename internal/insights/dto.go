package insights

import (
	"time"

	"github.com/google/uuid"

	"github.com/raizapp/raizapp-backend/pkg/db/models"
)

// InsightDTO is the wire shape of an insight.
type InsightDTO struct {
	ID                 uuid.UUID `json:"id"`
	InsightType        string    `json:"insight_type"`
	Title              string    `json:"title"`
	Message            string    `json:"message"`
	ProgressPercentage int       `json:"progress_percentage"`
	CreatedAt          time.Time `json:"created_at"`
}

// FromModel converts a stored insight to its wire shape.
func FromModel(i *models.AIInsight) *InsightDTO {
	if i == nil {
		return nil
	}
	return &InsightDTO{
		ID:                 i.ID,
		InsightType:        i.InsightType,
		Title:              i.Title,
		Message:            i.Message,
		ProgressPercentage: i.ProgressPercentage,
		CreatedAt:          i.CreatedAt,
	}
}

package habits

import (
	"time"

	"github.com/google/uuid"

	"github.com/raizapp/raizapp-backend/pkg/db/models"
)

// HabitDTO is the wire shape of a tracked habit.
type HabitDTO struct {
	ID               uuid.UUID `json:"id"`
	HabitName        string    `json:"habit_name"`
	Category         string    `json:"category"`
	ConsistencyScore int       `json:"consistency_score"`
	CreatedAt        time.Time `json:"created_at"`
}

// FromModels converts stored habits to their wire shape.
func FromModels(rows []models.UserHabit) []*HabitDTO {
	out := make([]*HabitDTO, 0, len(rows))
	for i := range rows {
		h := rows[i]
		out = append(out, &HabitDTO{
			ID:               h.ID,
			HabitName:        h.HabitName,
			Category:         h.Category,
			ConsistencyScore: h.ConsistencyScore,
			CreatedAt:        h.CreatedAt,
		})
	}
	return out
}

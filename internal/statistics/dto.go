package statistics

import (
	"time"

	"github.com/raizapp/raizapp-backend/pkg/db/models"
)

// SnapshotDTO is the wire shape of an app_statistics row.
type SnapshotDTO struct {
	TotalUsers          int64     `json:"total_users"`
	ActiveUsers         int64     `json:"active_users"`
	PremiumUsers        int64     `json:"premium_users"`
	TotalHabitsTracked  int64     `json:"total_habits_tracked"`
	TotalAIInteractions int64     `json:"total_ai_interactions"`
	CreatedAt           time.Time `json:"created_at"`
}

// FromModel converts a stored snapshot to its wire shape.
func FromModel(s *models.AppStatistic) *SnapshotDTO {
	if s == nil {
		return nil
	}
	return &SnapshotDTO{
		TotalUsers:          s.TotalUsers,
		ActiveUsers:         s.ActiveUsers,
		PremiumUsers:        s.PremiumUsers,
		TotalHabitsTracked:  s.TotalHabitsTracked,
		TotalAIInteractions: s.TotalAIInteractions,
		CreatedAt:           s.CreatedAt,
	}
}

package habits

import (
	"context"

	"github.com/google/uuid"

	"github.com/raizapp/raizapp-backend/pkg/db/models"
	pkgerrors "github.com/raizapp/raizapp-backend/pkg/errors"
)

// Service reads the user's top habits, seeding the defaults on first visit.
type Service interface {
	Ensure(ctx context.Context, userID uuid.UUID) ([]models.UserHabit, error)
}

type service struct {
	repo Repository
}

// NewService wires habits dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "habits repository required")
	}
	return &service{repo: repo}, nil
}

// defaultHabits are the two rows seeded for a fresh user.
func defaultHabits(userID uuid.UUID) []models.UserHabit {
	return []models.UserHabit{
		{UserID: userID, HabitName: "Rotina", Category: models.HabitCategoryDaily, ConsistencyScore: 78},
		{UserID: userID, HabitName: "Equilíbrio", Category: models.HabitCategoryWellness, ConsistencyScore: 82},
	}
}

// Ensure returns the top-2 habits by consistency, inserting the fixed
// defaults when none exist. Partial state is returned as-is: one existing
// habit stays one, no top-up.
func (s *service) Ensure(ctx context.Context, userID uuid.UUID) ([]models.UserHabit, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}

	rows, err := s.repo.TopByConsistency(ctx, userID, 2)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load habits")
	}
	if len(rows) > 0 {
		return rows, nil
	}

	seeded := defaultHabits(userID)
	if err := s.repo.CreateBatch(ctx, seeded); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed default habits")
	}
	return seeded, nil
}

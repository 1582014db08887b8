package insights

import (
	"context"

	"github.com/google/uuid"

	"github.com/raizapp/raizapp-backend/pkg/db/models"
	pkgerrors "github.com/raizapp/raizapp-backend/pkg/errors"
)

// Default insight seeded on a user's first visit.
const (
	defaultInsightType     = "recommendation"
	defaultInsightTitle    = "Recomendações de Hoje"
	defaultInsightMessage  = "Percebi que seus últimos dias foram acelerados. Hoje, tente reservar 10 minutos para respirar e observar sua rotina com calma."
	defaultInsightProgress = 75
)

// Service reads the newest insight, seeding the default on first visit.
type Service interface {
	Ensure(ctx context.Context, userID uuid.UUID) (*models.AIInsight, error)
}

type service struct {
	repo Repository
}

// NewService wires insights dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "insights repository required")
	}
	return &service{repo: repo}, nil
}

// Ensure returns the most recent insight, inserting the fixed default when
// none exists. Idempotent once data is present; a concurrent first call may
// double-seed, which is accepted.
func (s *service) Ensure(ctx context.Context, userID uuid.UUID) (*models.AIInsight, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}

	rows, err := s.repo.LatestByUser(ctx, userID, 1)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load insights")
	}
	if len(rows) > 0 {
		return &rows[0], nil
	}

	seeded := &models.AIInsight{
		UserID:             userID,
		InsightType:        defaultInsightType,
		Title:              defaultInsightTitle,
		Message:            defaultInsightMessage,
		ProgressPercentage: defaultInsightProgress,
	}
	if err := s.repo.Create(ctx, seeded); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "seed default insight")
	}
	return seeded, nil
}

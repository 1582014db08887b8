package activities

import (
	"context"
	"strings"

	"github.com/google/uuid"

	"github.com/raizapp/raizapp-backend/pkg/db/models"
	pkgerrors "github.com/raizapp/raizapp-backend/pkg/errors"
)

const (
	defaultListLimit = 10
	maxListLimit     = 50
)

// Service records and lists dashboard feed activities.
type Service interface {
	Record(ctx context.Context, userID uuid.UUID, title, description, activityType string) (*models.UserActivity, error)
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.UserActivity, error)
}

type service struct {
	repo Repository
}

// NewService wires activities dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "activities repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) Record(ctx context.Context, userID uuid.UUID, title, description, activityType string) (*models.UserActivity, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	title = strings.TrimSpace(title)
	activityType = strings.TrimSpace(activityType)
	if title == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "activity title required")
	}
	if activityType == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "activity type required")
	}

	activity := &models.UserActivity{
		UserID:       userID,
		Title:        title,
		Description:  strings.TrimSpace(description),
		ActivityType: activityType,
	}
	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "record activity")
	}
	return activity, nil
}

func (s *service) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.UserActivity, error) {
	if userID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}
	rows, err := s.repo.ListRecent(ctx, userID, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list activities")
	}
	return rows, nil
}

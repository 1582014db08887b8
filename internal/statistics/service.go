package statistics

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/raizapp/raizapp-backend/pkg/db/models"
	pkgerrors "github.com/raizapp/raizapp-backend/pkg/errors"
)

// Fallback promo figures shown when no statistics snapshot exists yet.
const (
	fallbackTotalUsers   = 12547
	fallbackPremiumUsers = 3421
)

// PublicStats is the subset of a snapshot exposed on unauthenticated pages.
type PublicStats struct {
	TotalUsers   int64 `json:"total_users"`
	PremiumUsers int64 `json:"premium_users"`
}

// Service reads app-wide statistics snapshots.
type Service interface {
	AdminStats(ctx context.Context) (*models.AppStatistic, error)
	PublicStats(ctx context.Context) (PublicStats, error)
}

type service struct {
	repo Repository
}

// NewService wires statistics dependencies.
func NewService(repo Repository) (Service, error) {
	if repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "statistics repository required")
	}
	return &service{repo: repo}, nil
}

// AdminStats returns the latest snapshot in full. A missing snapshot is a
// not-found condition rather than a zero-value row.
func (s *service) AdminStats(ctx context.Context) (*models.AppStatistic, error) {
	snapshot, err := s.repo.Latest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "no statistics snapshot recorded")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load statistics snapshot")
	}
	return snapshot, nil
}

// PublicStats returns the promo counters from the latest snapshot, falling
// back to fixed figures when none has been recorded yet.
func (s *service) PublicStats(ctx context.Context) (PublicStats, error) {
	snapshot, err := s.repo.Latest(ctx)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return PublicStats{TotalUsers: fallbackTotalUsers, PremiumUsers: fallbackPremiumUsers}, nil
		}
		return PublicStats{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load statistics snapshot")
	}
	return PublicStats{TotalUsers: snapshot.TotalUsers, PremiumUsers: snapshot.PremiumUsers}, nil
}

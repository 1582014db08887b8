package activities

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgdb "github.com/raizapp/raizapp-backend/pkg/db"
	"github.com/raizapp/raizapp-backend/pkg/db/models"
)

// Repository exposes persistence helpers for user activities.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, activity *models.UserActivity) error
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.UserActivity, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns an activities repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Create(ctx context.Context, activity *models.UserActivity) error {
	if activity.ID == uuid.Nil {
		activity.ID = uuid.New()
	}
	return pkgdb.WrapStoreError("activities.create", r.db.WithContext(ctx).Create(activity).Error)
}

func (r *repositoryImpl) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.UserActivity, error) {
	var rows []models.UserActivity
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, pkgdb.WrapStoreError("activities.list", err)
	}
	return rows, nil
}

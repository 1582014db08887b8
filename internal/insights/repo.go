package insights

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgdb "github.com/raizapp/raizapp-backend/pkg/db"
	"github.com/raizapp/raizapp-backend/pkg/db/models"
)

// Repository exposes persistence helpers for AI insights.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, insight *models.AIInsight) error
	LatestByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.AIInsight, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns an insights repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Create(ctx context.Context, insight *models.AIInsight) error {
	if insight.ID == uuid.Nil {
		insight.ID = uuid.New()
	}
	return pkgdb.WrapStoreError("insights.create", r.db.WithContext(ctx).Create(insight).Error)
}

func (r *repositoryImpl) LatestByUser(ctx context.Context, userID uuid.UUID, limit int) ([]models.AIInsight, error) {
	var rows []models.AIInsight
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, pkgdb.WrapStoreError("insights.latest", err)
	}
	return rows, nil
}

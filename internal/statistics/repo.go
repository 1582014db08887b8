package statistics

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgdb "github.com/raizapp/raizapp-backend/pkg/db"
	"github.com/raizapp/raizapp-backend/pkg/db/models"
)

// Repository exposes persistence helpers for app-wide statistics snapshots.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Latest(ctx context.Context) (*models.AppStatistic, error)
	Create(ctx context.Context, snapshot *models.AppStatistic) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a statistics repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Latest(ctx context.Context) (*models.AppStatistic, error) {
	var snapshot models.AppStatistic
	err := r.db.WithContext(ctx).Order("created_at DESC").First(&snapshot).Error
	if err != nil {
		return nil, pkgdb.WrapStoreError("statistics.latest", err)
	}
	return &snapshot, nil
}

func (r *repositoryImpl) Create(ctx context.Context, snapshot *models.AppStatistic) error {
	if snapshot.ID == uuid.Nil {
		snapshot.ID = uuid.New()
	}
	return pkgdb.WrapStoreError("statistics.create", r.db.WithContext(ctx).Create(snapshot).Error)
}

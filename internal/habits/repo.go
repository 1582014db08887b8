package habits

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgdb "github.com/raizapp/raizapp-backend/pkg/db"
	"github.com/raizapp/raizapp-backend/pkg/db/models"
)

// Repository exposes persistence helpers for user habits.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	CreateBatch(ctx context.Context, habits []models.UserHabit) error
	TopByConsistency(ctx context.Context, userID uuid.UUID, limit int) ([]models.UserHabit, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a habits repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) CreateBatch(ctx context.Context, habits []models.UserHabit) error {
	if len(habits) == 0 {
		return nil
	}
	for i := range habits {
		if habits[i].ID == uuid.Nil {
			habits[i].ID = uuid.New()
		}
	}
	return pkgdb.WrapStoreError("habits.create", r.db.WithContext(ctx).Create(&habits).Error)
}

func (r *repositoryImpl) TopByConsistency(ctx context.Context, userID uuid.UUID, limit int) ([]models.UserHabit, error) {
	var rows []models.UserHabit
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("consistency_score DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, pkgdb.WrapStoreError("habits.top", err)
	}
	return rows, nil
}

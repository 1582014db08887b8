package quiz

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	pkgdb "github.com/raizapp/raizapp-backend/pkg/db"
	"github.com/raizapp/raizapp-backend/pkg/db/models"
)

// Repository exposes persistence helpers for quiz responses.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	UpsertResponses(ctx context.Context, rows []models.QuizResponse) error
	ListByUser(ctx context.Context, userID uuid.UUID) ([]models.QuizResponse, error)
	CountByUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a quiz repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

// UpsertResponses writes all rows in one statement keyed on
// (user_id, question_id); existing answers are overwritten in place.
func (r *repositoryImpl) UpsertResponses(ctx context.Context, rows []models.QuizResponse) error {
	if len(rows) == 0 {
		return nil
	}
	for i := range rows {
		if rows[i].ID == uuid.Nil {
			rows[i].ID = uuid.New()
		}
	}
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "question_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"question_text", "answer"}),
		}).
		Create(&rows).Error
	return pkgdb.WrapStoreError("quiz.upsert", err)
}

func (r *repositoryImpl) ListByUser(ctx context.Context, userID uuid.UUID) ([]models.QuizResponse, error) {
	var rows []models.QuizResponse
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("question_id ASC").
		Find(&rows).Error
	if err != nil {
		return nil, pkgdb.WrapStoreError("quiz.list", err)
	}
	return rows, nil
}

func (r *repositoryImpl) CountByUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&models.QuizResponse{}).
		Where("user_id = ?", userID).
		Count(&count).Error
	if err != nil {
		return 0, pkgdb.WrapStoreError("quiz.count", err)
	}
	return count, nil
}

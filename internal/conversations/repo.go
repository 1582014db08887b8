package conversations

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgdb "github.com/raizapp/raizapp-backend/pkg/db"
	"github.com/raizapp/raizapp-backend/pkg/db/models"
)

// Repository exposes persistence helpers for AI conversations.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, conversation *models.AIConversation) error
	ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.AIConversation, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a conversations repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Create(ctx context.Context, conversation *models.AIConversation) error {
	if conversation.ID == uuid.Nil {
		conversation.ID = uuid.New()
	}
	return pkgdb.WrapStoreError("conversations.create", r.db.WithContext(ctx).Create(conversation).Error)
}

func (r *repositoryImpl) ListRecent(ctx context.Context, userID uuid.UUID, limit int) ([]models.AIConversation, error) {
	var rows []models.AIConversation
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(limit).
		Find(&rows).Error
	if err != nil {
		return nil, pkgdb.WrapStoreError("conversations.list", err)
	}
	return rows, nil
}

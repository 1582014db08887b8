package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgdb "github.com/raizapp/raizapp-backend/pkg/db"
	"github.com/raizapp/raizapp-backend/pkg/db/models"
)

// Repository exposes persistence helpers for auth accounts.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	Create(ctx context.Context, account *models.AuthAccount) error
	FindByEmail(ctx context.Context, email string) (*models.AuthAccount, error)
	FindByID(ctx context.Context, id uuid.UUID) (*models.AuthAccount, error)
	UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns an auth account repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) Create(ctx context.Context, account *models.AuthAccount) error {
	if account.ID == uuid.Nil {
		account.ID = uuid.New()
	}
	return pkgdb.WrapStoreError("auth.create", r.db.WithContext(ctx).Create(account).Error)
}

func (r *repositoryImpl) FindByEmail(ctx context.Context, email string) (*models.AuthAccount, error) {
	var account models.AuthAccount
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&account).Error
	if err != nil {
		return nil, pkgdb.WrapStoreError("auth.find_by_email", err)
	}
	return &account, nil
}

func (r *repositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.AuthAccount, error) {
	var account models.AuthAccount
	err := r.db.WithContext(ctx).First(&account, "id = ?", id).Error
	if err != nil {
		return nil, pkgdb.WrapStoreError("auth.find_by_id", err)
	}
	return &account, nil
}

func (r *repositoryImpl) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&models.AuthAccount{}).
		Where("id = ?", id).
		Update("last_login_at", at).Error
	return pkgdb.WrapStoreError("auth.update_last_login", err)
}

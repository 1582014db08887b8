package profiles

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgdb "github.com/raizapp/raizapp-backend/pkg/db"
	"github.com/raizapp/raizapp-backend/pkg/db/models"
)

// Repository exposes persistence helpers for user profiles. Every driver
// error leaves this boundary wrapped in a classified StoreError.
type Repository interface {
	WithTx(tx *gorm.DB) Repository
	FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	UpdateNameEmail(ctx context.Context, id uuid.UUID, name, email string, now time.Time) error
	UpdateSubscription(ctx context.Context, id uuid.UUID, status string, endDate *time.Time, now time.Time) error
	IsAdmin(ctx context.Context, id uuid.UUID) (bool, error)
	ListAll(ctx context.Context) ([]models.Profile, error)
}

type repositoryImpl struct {
	db *gorm.DB
}

// NewRepository returns a profiles repository bound to the provided database.
func NewRepository(db *gorm.DB) Repository {
	return &repositoryImpl{db: db}
}

func (r *repositoryImpl) WithTx(tx *gorm.DB) Repository {
	if tx == nil {
		return r
	}
	return &repositoryImpl{db: tx}
}

func (r *repositoryImpl) FindByID(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	var profile models.Profile
	err := r.db.WithContext(ctx).First(&profile, "id = ?", id).Error
	if err != nil {
		return nil, pkgdb.WrapStoreError("profiles.find", err)
	}
	return &profile, nil
}

func (r *repositoryImpl) Create(ctx context.Context, profile *models.Profile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	if profile.UserID == uuid.Nil {
		profile.UserID = profile.ID
	}
	return pkgdb.WrapStoreError("profiles.create", r.db.WithContext(ctx).Create(profile).Error)
}

func (r *repositoryImpl) UpdateNameEmail(ctx context.Context, id uuid.UUID, name, email string, now time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(map[string]any{"name": name, "email": email, "updated_at": now}).Error
	return pkgdb.WrapStoreError("profiles.update", err)
}

func (r *repositoryImpl) UpdateSubscription(ctx context.Context, id uuid.UUID, status string, endDate *time.Time, now time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"subscription_status":   status,
			"subscription_end_date": endDate,
			"updated_at":            now,
		}).Error
	return pkgdb.WrapStoreError("profiles.update_subscription", err)
}

// IsAdmin probes the optional is_admin column with a targeted query. On
// deployments without the column the classified MissingColumn error surfaces
// to the service, which treats the capability as unsupported.
func (r *repositoryImpl) IsAdmin(ctx context.Context, id uuid.UUID) (bool, error) {
	var isAdmin bool
	err := r.db.WithContext(ctx).
		Model(&models.Profile{}).
		Select("is_admin").
		Where("id = ?", id).
		Scan(&isAdmin).Error
	if err != nil {
		return false, pkgdb.WrapStoreError("profiles.is_admin", err)
	}
	return isAdmin, nil
}

func (r *repositoryImpl) ListAll(ctx context.Context) ([]models.Profile, error) {
	var rows []models.Profile
	err := r.db.WithContext(ctx).Order("created_at DESC").Find(&rows).Error
	if err != nil {
		return nil, pkgdb.WrapStoreError("profiles.list", err)
	}
	return rows, nil
}

package profiles

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raizapp/raizapp-backend/pkg/config"
	pkgdb "github.com/raizapp/raizapp-backend/pkg/db"
	"github.com/raizapp/raizapp-backend/pkg/db/models"
	pkgerrors "github.com/raizapp/raizapp-backend/pkg/errors"
	"github.com/raizapp/raizapp-backend/pkg/logger"
)

// Fallback display name when neither identity metadata nor the email yield one.
const defaultProfileName = "Usuário"

// Service reconciles authenticated identities with their stored profile.
type Service interface {
	Find(ctx context.Context, id uuid.UUID) (*models.Profile, bool, error)
	ProvisionIfAbsent(ctx context.Context, identity Identity) (*models.Profile, error)
	Ensure(ctx context.Context, identity Identity) (*models.Profile, error)
	Save(ctx context.Context, id uuid.UUID, req SaveRequest) (*models.Profile, error)
	StartTrial(ctx context.Context, id uuid.UUID) (*models.Profile, error)
	IsAdmin(ctx context.Context, id uuid.UUID) (bool, error)
	ListAll(ctx context.Context) ([]models.Profile, error)
}

type service struct {
	repo      Repository
	logg      *logger.Logger
	trialDays int
}

// ServiceParams bundles the dependencies required to build a profiles service.
type ServiceParams struct {
	Repo         Repository
	Logger       *logger.Logger
	Subscription config.SubscriptionConfig
}

// NewService wires profile reconciliation dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeDependency, "profiles repository required")
	}
	trialDays := params.Subscription.TrialDays
	if trialDays <= 0 {
		trialDays = 7
	}
	return &service{
		repo:      params.Repo,
		logg:      params.Logger,
		trialDays: trialDays,
	}, nil
}

// Find is a pure read. Absence is reported via the bool, not an error.
func (s *service) Find(ctx context.Context, id uuid.UUID) (*models.Profile, bool, error) {
	if id == uuid.Nil {
		return nil, false, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, nil
		}
		return nil, false, err
	}
	return profile, true, nil
}

// ProvisionIfAbsent inserts the default profile for the identity. A
// duplicate-key race is absorbed by re-reading the winner's row; a re-read
// miss after a duplicate is surfaced as a dependency failure, never retried.
func (s *service) ProvisionIfAbsent(ctx context.Context, identity Identity) (*models.Profile, error) {
	if identity.UserID == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}

	profile := s.defaultProfile(identity)
	err := s.repo.Create(ctx, profile)
	if err == nil {
		return profile, nil
	}

	if pkgdb.KindOf(err).Recoverable() {
		existing, err := s.repo.FindByID(ctx, identity.UserID)
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, pkgerrors.New(pkgerrors.CodeDependency, "profile vanished after duplicate insert")
			}
			return nil, err
		}
		return existing, nil
	}
	return nil, err
}

// Ensure finds the profile or provisions the default one. When the store
// fails in a non-structural way the caller still gets a usable snapshot: a
// synthesized, non-persisted default profile. Structural failures (missing
// table or column, denied permission) propagate untouched.
func (s *service) Ensure(ctx context.Context, identity Identity) (*models.Profile, error) {
	profile, found, err := s.Find(ctx, identity.UserID)
	if err != nil {
		typed := pkgerrors.As(err)
		if typed != nil && typed.Code() == pkgerrors.CodeValidation {
			return nil, err
		}
		if pkgdb.KindOf(err).Structural() {
			return nil, err
		}
		return s.degraded(ctx, identity, "profile read failed", err), nil
	}
	if found {
		return profile, nil
	}

	profile, err = s.ProvisionIfAbsent(ctx, identity)
	if err != nil {
		typed := pkgerrors.As(err)
		if typed != nil && typed.Code() == pkgerrors.CodeValidation {
			return nil, err
		}
		if pkgdb.KindOf(err).Structural() {
			return nil, err
		}
		return s.degraded(ctx, identity, "profile provisioning failed", err), nil
	}
	return profile, nil
}

func (s *service) Save(ctx context.Context, id uuid.UUID, req SaveRequest) (*models.Profile, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	now := time.Now().UTC()
	if err := s.repo.UpdateNameEmail(ctx, id, strings.TrimSpace(req.Name), normalizeEmail(req.Email), now); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "save profile")
	}
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload profile")
	}
	return profile, nil
}

// StartTrial marks the profile as trialing until now plus the configured
// window. This is a write path: store errors propagate.
func (s *service) StartTrial(ctx context.Context, id uuid.UUID) (*models.Profile, error) {
	if id == uuid.Nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id required")
	}
	now := time.Now().UTC()
	end := now.AddDate(0, 0, s.trialDays)
	if err := s.repo.UpdateSubscription(ctx, id, models.SubscriptionTrial, &end, now); err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "start trial")
	}
	profile, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "profile not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "reload profile")
	}
	return profile, nil
}

// IsAdmin resolves the optional admin capability. A missing is_admin column
// means the deployment does not support admins: the answer is false, not an
// error.
func (s *service) IsAdmin(ctx context.Context, id uuid.UUID) (bool, error) {
	if id == uuid.Nil {
		return false, nil
	}
	isAdmin, err := s.repo.IsAdmin(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, nil
		}
		if pkgdb.KindOf(err) == pkgdb.KindMissingColumn {
			return false, nil
		}
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "resolve admin status")
	}
	return isAdmin, nil
}

func (s *service) ListAll(ctx context.Context) ([]models.Profile, error) {
	rows, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list profiles")
	}
	return rows, nil
}

// defaultProfile derives the default row for a fresh identity. The display
// name falls back from metadata to the email local-part to a placeholder.
func (s *service) defaultProfile(identity Identity) *models.Profile {
	email := normalizeEmail(identity.Email)
	name := strings.TrimSpace(identity.Name)
	if name == "" {
		name = emailLocalPart(email)
	}
	if name == "" {
		name = defaultProfileName
	}
	return &models.Profile{
		ID:                 identity.UserID,
		UserID:             identity.UserID,
		Name:               name,
		Email:              email,
		SubscriptionStatus: models.SubscriptionFree,
	}
}

// degraded synthesizes a non-persisted default profile so the caller can
// proceed while the store misbehaves. The classified failure is logged.
func (s *service) degraded(ctx context.Context, identity Identity, msg string, err error) *models.Profile {
	if s.logg != nil {
		ctx = s.logg.WithFields(ctx, map[string]any{
			"user_id":    identity.UserID.String(),
			"store_kind": string(pkgdb.KindOf(err)),
			"degraded":   true,
		})
		s.logg.Error(ctx, msg, err)
	}
	return s.defaultProfile(identity)
}

func emailLocalPart(email string) string {
	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}
	return ""
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

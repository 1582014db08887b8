package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/raizapp/raizapp-backend/internal/profiles"
	pkgAuth "github.com/raizapp/raizapp-backend/pkg/auth"
	"github.com/raizapp/raizapp-backend/pkg/auth/session"
	"github.com/raizapp/raizapp-backend/pkg/config"
	pkgdb "github.com/raizapp/raizapp-backend/pkg/db"
	"github.com/raizapp/raizapp-backend/pkg/db/models"
	pkgerrors "github.com/raizapp/raizapp-backend/pkg/errors"
	"github.com/raizapp/raizapp-backend/pkg/security"
)

const invalidCredentialsMessage = "invalid credentials"

// Service defines the behavior needed by the auth controller.
type Service interface {
	SignUp(ctx context.Context, req SignUpRequest) (*Session, error)
	SignIn(ctx context.Context, req LoginRequest) (*Session, error)
	SignOut(ctx context.Context, accessID string) error
	Refresh(ctx context.Context, req RefreshRequest) (*Session, error)
}

type service struct {
	accounts    Repository
	provisioner profileProvisioner
	session     sessionManager
	jwtCfg      config.JWTConfig
	passwordCfg config.PasswordConfig
}

type profileProvisioner interface {
	ProvisionIfAbsent(ctx context.Context, identity profiles.Identity) (*models.Profile, error)
}

type sessionManager interface {
	Generate(ctx context.Context, accessID string) (string, error)
	Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error)
	Revoke(ctx context.Context, accessID string) error
}

// ServiceParams bundles the dependencies required to build an auth service.
type ServiceParams struct {
	Accounts       Repository
	Profiles       profileProvisioner
	SessionManager sessionManager
	JWTConfig      config.JWTConfig
	PasswordConfig config.PasswordConfig
}

// NewService constructs an auth service with the provided dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Accounts == nil {
		return nil, fmt.Errorf("account repository is required")
	}
	if params.Profiles == nil {
		return nil, fmt.Errorf("profile provisioner is required")
	}
	if params.SessionManager == nil {
		return nil, fmt.Errorf("session manager is required")
	}
	return &service{
		accounts:    params.Accounts,
		provisioner: params.Profiles,
		session:     params.SessionManager,
		jwtCfg:      params.JWTConfig,
		passwordCfg: params.PasswordConfig,
	}, nil
}

// SignUp creates the account, provisions its profile, and opens a session.
// All input checks run before the first store call.
func (s *service) SignUp(ctx context.Context, req SignUpRequest) (*Session, error) {
	email := strings.ToLower(strings.TrimSpace(req.Email))
	name := strings.TrimSpace(req.Name)
	if email == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "email is required")
	}
	if name == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name is required")
	}
	minLength := s.passwordCfg.MinLength
	if minLength <= 0 {
		minLength = 6
	}
	if len(req.Password) < minLength {
		return nil, pkgerrors.New(pkgerrors.CodeValidation,
			fmt.Sprintf("password must be at least %d characters", minLength))
	}

	passwordHash, err := security.HashPassword(req.Password, s.passwordCfg)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "hash password")
	}

	account := &models.AuthAccount{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: passwordHash,
		Name:         name,
	}
	if err := s.accounts.Create(ctx, account); err != nil {
		if pkgdb.KindOf(err).Recoverable() {
			return nil, pkgerrors.New(pkgerrors.CodeConflict, "email already registered")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "create account")
	}

	if _, err := s.provisioner.ProvisionIfAbsent(ctx, profiles.Identity{
		UserID: account.ID,
		Email:  account.Email,
		Name:   account.Name,
	}); err != nil {
		return nil, err
	}

	now, err := s.recordLogin(ctx, account)
	if err != nil {
		return nil, err
	}
	return s.openSession(ctx, account, now)
}

// SignIn verifies the credentials and opens a session.
func (s *service) SignIn(ctx context.Context, req LoginRequest) (*Session, error) {
	account, err := s.authenticate(ctx, req.Email, req.Password)
	if err != nil {
		return nil, err
	}

	now, err := s.recordLogin(ctx, account)
	if err != nil {
		return nil, err
	}
	return s.openSession(ctx, account, now)
}

// SignOut revokes the refresh mapping tied to the access identifier.
func (s *service) SignOut(ctx context.Context, accessID string) error {
	if strings.TrimSpace(accessID) == "" {
		return pkgerrors.New(pkgerrors.CodeUnauthorized, "session identifier required")
	}
	if err := s.session.Revoke(ctx, accessID); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "revoke session")
	}
	return nil
}

// Refresh rotates the session and re-mints the access token. The presented
// access token may be expired; any other defect rejects the request.
func (s *service) Refresh(ctx context.Context, req RefreshRequest) (*Session, error) {
	claims, err := pkgAuth.ParseAccessTokenForRefresh(s.jwtCfg, req.AccessToken)
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid access token")
	}
	if claims.UserID == uuid.Nil || claims.RegisteredClaims.ID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid access token")
	}

	newAccessID, refreshToken, err := s.session.Rotate(ctx, claims.RegisteredClaims.ID, req.RefreshToken)
	if err != nil {
		if errors.Is(err, session.ErrInvalidRefreshToken) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "invalid refresh token")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rotate session")
	}

	account, err := s.accounts.FindByID(ctx, claims.UserID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, "account no longer exists")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load account")
	}

	accessToken, err := pkgAuth.MintAccessToken(s.jwtCfg, time.Now().UTC(), pkgAuth.AccessTokenPayload{
		UserID: account.ID,
		Email:  account.Email,
		Name:   account.Name,
		JTI:    newAccessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}

	return &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         accountFromModel(account),
	}, nil
}

func (s *service) authenticate(ctx context.Context, email, password string) (*models.AuthAccount, error) {
	input := strings.TrimSpace(email)
	if input == "" || password == "" {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	account, err := s.accounts.FindByEmail(ctx, strings.ToLower(input))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "lookup account")
	}

	valid, err := security.VerifyPassword(password, account.PasswordHash)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "verify password")
	}
	if !valid {
		return nil, pkgerrors.New(pkgerrors.CodeUnauthorized, invalidCredentialsMessage)
	}
	return account, nil
}

func (s *service) recordLogin(ctx context.Context, account *models.AuthAccount) (time.Time, error) {
	now := time.Now().UTC()
	if err := s.accounts.UpdateLastLogin(ctx, account.ID, now); err != nil {
		return time.Time{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update last login")
	}
	account.LastLoginAt = &now
	return now, nil
}

func (s *service) openSession(ctx context.Context, account *models.AuthAccount, now time.Time) (*Session, error) {
	accessID := session.NewAccessID()
	accessToken, err := pkgAuth.MintAccessToken(s.jwtCfg, now, pkgAuth.AccessTokenPayload{
		UserID: account.ID,
		Email:  account.Email,
		Name:   account.Name,
		JTI:    accessID,
	})
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "mint jwt")
	}
	refreshToken, err := s.session.Generate(ctx, accessID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "store refresh token")
	}

	return &Session{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         accountFromModel(account),
	}, nil
}

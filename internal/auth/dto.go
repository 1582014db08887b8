package auth

import (
	"time"

	"github.com/google/uuid"

	"github.com/raizapp/raizapp-backend/pkg/db/models"
)

// SignUpRequest captures the payload for creating a new account.
type SignUpRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Name     string `json:"name" validate:"required,min=1,max=120"`
}

// LoginRequest captures the credentials sent to the login endpoint.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RefreshRequest carries the expired access token plus its refresh token.
type RefreshRequest struct {
	AccessToken  string `json:"access_token" validate:"required"`
	RefreshToken string `json:"refresh_token" validate:"required"`
}

// AccountDTO is the wire shape of an auth account.
type AccountDTO struct {
	ID          uuid.UUID  `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
}

// Session contains the token pair and account produced by a successful
// signup, login, or refresh.
type Session struct {
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
	User         *AccountDTO `json:"user"`
}

func accountFromModel(a *models.AuthAccount) *AccountDTO {
	if a == nil {
		return nil
	}
	return &AccountDTO{
		ID:          a.ID,
		Email:       a.Email,
		Name:        a.Name,
		LastLoginAt: a.LastLoginAt,
		CreatedAt:   a.CreatedAt,
	}
}

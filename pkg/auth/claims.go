package auth

import (
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AccessTokenPayload captures the data available when minting a JWT. Email and
// name travel in the token so profile reconciliation can derive defaults
// without an extra account lookup.
type AccessTokenPayload struct {
	UserID uuid.UUID
	Email  string
	Name   string
	JTI    string
}

// AccessTokenClaims represents the typed JWT issued to clients.
type AccessTokenClaims struct {
	UserID uuid.UUID `json:"user_id"`
	Email  string    `json:"email"`
	Name   string    `json:"name,omitempty"`
	jwt.RegisteredClaims
}

package service

import (
	"time"

	"saaskit/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrInvalidToken is returned for malformed, wrongly signed or wrongly typed tokens.
	ErrInvalidToken = errors.New("invalid token")
	// ErrExpiredToken is returned for a well-formed token past its expiry.
	ErrExpiredToken = errors.New("token expired")
)

// TokenType distinguishes access from refresh tokens inside the claims.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Identity is what an access token asserts about its bearer.
type Identity struct {
	UserID uuid.UUID
	Email  string
	Role   entity.Role
}

// AccessClaims are carried by access tokens.
type AccessClaims struct {
	UserID uuid.UUID   `json:"uid"`
	Email  string      `json:"email"`
	Role   entity.Role `json:"role"`
	Type   TokenType   `json:"typ"`
	jwt.RegisteredClaims
}

// Identity returns the bearer identity asserted by the claims.
func (c *AccessClaims) Identity() Identity {
	return Identity{UserID: c.UserID, Email: c.Email, Role: c.Role}
}

// RefreshClaims are carried by refresh tokens. TokenID names the server-side record.
type RefreshClaims struct {
	UserID  uuid.UUID `json:"uid"`
	TokenID uuid.UUID `json:"tid"`
	Type    TokenType `json:"typ"`
	jwt.RegisteredClaims
}

// TokenService signs and parses JWTs. It never touches storage.
type TokenService interface {
	// SignAccessToken creates a short-lived token for identity.
	SignAccessToken(identity Identity) (string, error)

	// SignRefreshToken creates a token referencing the stored record tokenID.
	SignRefreshToken(userID, tokenID uuid.UUID, expiresAt time.Time) (string, error)

	// ParseAccessToken checks signature, expiry and type.
	// Fails with ErrInvalidToken or ErrExpiredToken.
	ParseAccessToken(token string) (*AccessClaims, error)

	// ParseRefreshToken checks signature, expiry and type.
	// Fails with ErrInvalidToken or ErrExpiredToken.
	ParseRefreshToken(token string) (*RefreshClaims, error)

	// RefreshTokenDuration returns the configured lifetime of refresh tokens.
	RefreshTokenDuration() time.Duration
}

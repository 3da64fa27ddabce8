// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"saaskit/config"
	"saaskit/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// jwtService is a concrete implementation of the TokenService interface using HS256 JWTs.
// Access and refresh tokens are signed with different secrets so one can never pass as the other.
type jwtService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessTTL     time.Duration
	refreshTTL    time.Duration
	issuer        string
	now           func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" || cfg.SecretKey.Refresh == "" {
		return nil, errors.New("jwt secrets must be provided")
	}

	accessTTL, refreshTTL := 15*time.Minute, 7*24*time.Hour
	if cfg.Auth != nil {
		if cfg.Auth.AccessTokenTTL > 0 {
			accessTTL = cfg.Auth.AccessTokenTTL
		}
		if cfg.Auth.RefreshTokenTTL > 0 {
			refreshTTL = cfg.Auth.RefreshTokenTTL
		}
	}

	return &jwtService{
		accessSecret:  []byte(cfg.SecretKey.Access),
		refreshSecret: []byte(cfg.SecretKey.Refresh),
		accessTTL:     accessTTL,
		refreshTTL:    refreshTTL,
		issuer:        cfg.Env.ServiceName,
		now:           time.Now,
	}, nil
}

// SignAccessToken creates a short-lived token encoding the bearer identity.
func (s *jwtService) SignAccessToken(identity service.Identity) (string, error) {
	now := s.now()
	claims := &service.AccessClaims{
		UserID: identity.UserID,
		Email:  identity.Email,
		Role:   identity.Role,
		Type:   service.TokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.UserID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	return s.sign(claims, s.accessSecret)
}

// SignRefreshToken creates a token that references a stored refresh token record.
func (s *jwtService) SignRefreshToken(userID, tokenID uuid.UUID, expiresAt time.Time) (string, error) {
	claims := &service.RefreshClaims{
		UserID:  userID,
		TokenID: tokenID,
		Type:    service.TokenTypeRefresh,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        tokenID.String(),
			Subject:   userID.String(),
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(s.now()),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	return s.sign(claims, s.refreshSecret)
}

// ParseAccessToken validates an access token and returns its claims.
func (s *jwtService) ParseAccessToken(token string) (*service.AccessClaims, error) {
	claims := &service.AccessClaims{}
	if err := s.parse(token, claims, s.accessSecret); err != nil {
		return nil, err
	}
	if claims.Type != service.TokenTypeAccess || claims.UserID == uuid.Nil {
		return nil, errors.WithStack(service.ErrInvalidToken)
	}

	return claims, nil
}

// ParseRefreshToken validates a refresh token and returns its claims.
func (s *jwtService) ParseRefreshToken(token string) (*service.RefreshClaims, error) {
	claims := &service.RefreshClaims{}
	if err := s.parse(token, claims, s.refreshSecret); err != nil {
		return nil, err
	}
	if claims.Type != service.TokenTypeRefresh || claims.UserID == uuid.Nil || claims.TokenID == uuid.Nil {
		return nil, errors.WithStack(service.ErrInvalidToken)
	}

	return claims, nil
}

// RefreshTokenDuration returns the configured lifetime of refresh tokens.
func (s *jwtService) RefreshTokenDuration() time.Duration {
	return s.refreshTTL
}

func (s *jwtService) sign(claims jwt.Claims, secret []byte) (string, error) {
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return signed, nil
}

func (s *jwtService) parse(token string, claims jwt.Claims, secret []byte) error {
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err == nil {
		return nil
	}
	if errors.Is(err, jwt.ErrTokenExpired) {
		return errors.WithStack(service.ErrExpiredToken)
	}

	return errors.Wrap(service.ErrInvalidToken, err.Error())
}

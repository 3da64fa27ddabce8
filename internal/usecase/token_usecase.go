package usecase

import (
	"context"

	"saaskit/internal/domain/entity"
	"saaskit/internal/domain/service"

	"github.com/google/uuid"
)

// TokenManager owns the access/refresh token lifecycle. It is the only
// component that decides whether a bearer is authenticated.
type TokenManager interface {
	// IssueAccessToken signs a short-lived token for identity. No side effect.
	IssueAccessToken(identity service.Identity) (string, error)

	// IssueRefreshToken persists a record, then signs a token referencing it.
	IssueRefreshToken(ctx context.Context, userID uuid.UUID) (string, error)

	// IssuePair issues an access and a refresh token for user.
	IssuePair(ctx context.Context, user *entity.User) (*TokenPair, error)

	// VerifyAccessToken checks signature and expiry only.
	VerifyAccessToken(token string) (*service.Identity, error)

	// VerifyRefreshToken checks the signature and that the backing record is
	// live and belongs to an active user.
	VerifyRefreshToken(ctx context.Context, token string) (*entity.RefreshToken, error)

	// RotateRefreshToken consumes oldToken and issues a fresh pair.
	RotateRefreshToken(ctx context.Context, oldToken string) (*TokenPair, error)

	// RevokeAllForUser deletes every refresh token record of userID.
	RevokeAllForUser(ctx context.Context, userID uuid.UUID) (int64, error)
}

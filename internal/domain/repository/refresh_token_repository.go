package repository

import (
	"context"
	"time"

	"saaskit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrRefreshTokenNotFound is returned when no live record backs a refresh token.
var ErrRefreshTokenNotFound = errors.New("refresh token not found")

// RefreshTokenRepository stores the server-side half of refresh tokens.
// Multiple records per user are allowed, one per signed-in device.
type RefreshTokenRepository interface {
	// CreateRefreshToken persists a new record.
	CreateRefreshToken(ctx context.Context, token *entity.RefreshToken) error

	// FindRefreshTokenByID retrieves a record by its token id.
	FindRefreshTokenByID(ctx context.Context, id uuid.UUID) (*entity.RefreshToken, error)

	// DeleteRefreshToken removes one record. Returns ErrRefreshTokenNotFound when
	// nothing was deleted, which lets concurrent rotations of the same token
	// agree on a single winner.
	DeleteRefreshToken(ctx context.Context, id uuid.UUID) error

	// DeleteRefreshTokensByUserID removes every record of a user.
	DeleteRefreshTokensByUserID(ctx context.Context, userID uuid.UUID) (int64, error)

	// DeleteExpiredRefreshTokens removes records that expired before now.
	DeleteExpiredRefreshTokens(ctx context.Context, now time.Time) (int64, error)
}

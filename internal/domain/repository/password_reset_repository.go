package repository

import (
	"context"
	"time"

	"saaskit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

var (
	// ErrResetTokenNotFound is returned when the reset token does not exist.
	ErrResetTokenNotFound = errors.New("password reset token not found")
	// ErrResetTokenAlreadyUsed is returned when a token was redeemed concurrently.
	ErrResetTokenAlreadyUsed = errors.New("password reset token already used")
)

// PasswordResetRepository stores emailed password reset tokens.
type PasswordResetRepository interface {
	CreateResetToken(ctx context.Context, token *entity.PasswordResetToken) error

	FindResetToken(ctx context.Context, token string) (*entity.PasswordResetToken, error)

	// DeleteResetTokensByUserID removes every token of a user, used or not.
	DeleteResetTokensByUserID(ctx context.Context, userID uuid.UUID) error

	// MarkResetTokenUsed flips the used flag only if it is still unset.
	// Returns ErrResetTokenAlreadyUsed otherwise.
	MarkResetTokenUsed(ctx context.Context, id uuid.UUID) error

	// DeleteStaleResetTokens removes used tokens and tokens expired before now.
	DeleteStaleResetTokens(ctx context.Context, now time.Time) (int64, error)
}

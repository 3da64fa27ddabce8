package entity

import (
	"time"

	"github.com/google/uuid"
)

// RefreshToken is the server-side record backing a signed refresh token.
// A record is single-use: exchanging the token deletes it.
type RefreshToken struct {
	ID        uuid.UUID // Embedded in the signed token as its token id.
	UserID    uuid.UUID
	ExpiresAt time.Time
	CreatedAt time.Time
}

// IsExpired reports whether the record is past its expiry at now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return !now.Before(t.ExpiresAt)
}

// PasswordResetToken is an emailed one-time secret allowing a password change.
type PasswordResetToken struct {
	ID        uuid.UUID
	Token     string
	UserID    uuid.UUID
	ExpiresAt time.Time
	Used      bool
	CreatedAt time.Time
}

// IsActionable reports whether the token can still be redeemed at now.
func (t *PasswordResetToken) IsActionable(now time.Time) bool {
	return !t.Used && now.Before(t.ExpiresAt)
}

package repository

import (
	"context"

	"saaskit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrSubscriptionNotFound is returned when no subscription matches the lookup.
var ErrSubscriptionNotFound = errors.New("subscription not found")

// SubscriptionRepository persists the one-per-user billing record.
type SubscriptionRepository interface {
	// CreateSubscription inserts a row. The user must not have one yet.
	CreateSubscription(ctx context.Context, sub *entity.Subscription) error

	// UpsertSubscription inserts sub, or on a user id conflict overwrites the
	// plan, status and customer id of the existing row.
	UpsertSubscription(ctx context.Context, sub *entity.Subscription) error

	FindSubscriptionByUserID(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error)

	FindSubscriptionByCustomerID(ctx context.Context, customerID string) (*entity.Subscription, error)

	// FindSubscriptionsByProviderID returns every row referencing the provider subscription id.
	FindSubscriptionsByProviderID(ctx context.Context, providerSubscriptionID string) ([]*entity.Subscription, error)

	// UpdateSubscriptionByUserID applies patch to the user's row.
	// Returns ErrSubscriptionNotFound when the user has none.
	UpdateSubscriptionByUserID(ctx context.Context, userID uuid.UUID, patch *entity.SubscriptionPatch) error

	// UpdateSubscriptionsByProviderID applies patch to every row referencing the
	// provider subscription id and returns how many rows changed. Zero is not an error.
	UpdateSubscriptionsByProviderID(ctx context.Context, providerSubscriptionID string, patch *entity.SubscriptionPatch) (int64, error)
}

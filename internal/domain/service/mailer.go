package service

import (
	"context"

	"saaskit/internal/domain/entity"
)

// Mailer sends the transactional emails of the product.
type Mailer interface {
	SendWelcome(ctx context.Context, user *entity.User) error
	SendPasswordReset(ctx context.Context, user *entity.User, resetURL string) error
	SendSubscriptionNotice(ctx context.Context, user *entity.User, sub *entity.Subscription) error
}

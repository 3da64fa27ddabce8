package usecase

import (
	"context"
	"time"

	"saaskit/internal/domain/entity"
	"saaskit/internal/domain/service"

	"github.com/google/uuid"
)

// SubscriptionStatusOutput summarizes the caller's plan.
type SubscriptionStatusOutput struct {
	HasSubscription    bool                      `json:"hasSubscription"`
	Plan               entity.Plan               `json:"plan"`
	Status             entity.SubscriptionStatus `json:"status"`
	CurrentPeriodStart *time.Time                `json:"currentPeriodStart,omitempty"`
	CurrentPeriodEnd   *time.Time                `json:"currentPeriodEnd,omitempty"`
}

// SubscriptionReconciler maps billing provider events onto local subscription
// rows. Every method returns the rows it touched; none touched is not an error.
type SubscriptionReconciler interface {
	ApplyCheckoutCompleted(ctx context.Context, userID uuid.UUID, plan entity.Plan, customerID string) ([]*entity.Subscription, error)
	ApplySubscriptionCreated(ctx context.Context, customerID, subscriptionID string, periodStart, periodEnd *time.Time) ([]*entity.Subscription, error)
	ApplySubscriptionUpdated(ctx context.Context, subscriptionID string, status entity.SubscriptionStatus, periodStart, periodEnd *time.Time) ([]*entity.Subscription, error)
	ApplySubscriptionDeleted(ctx context.Context, subscriptionID string) ([]*entity.Subscription, error)
	ApplyPaymentSucceeded(ctx context.Context, subscriptionID string) ([]*entity.Subscription, error)
	ApplyPaymentFailed(ctx context.Context, subscriptionID string) ([]*entity.Subscription, error)
}

// SubscriptionUsecase is the billing surface used by the HTTP layer.
type SubscriptionUsecase interface {
	SubscriptionReconciler

	CreateCheckout(ctx context.Context, userID uuid.UUID, plan entity.Plan) (*service.CheckoutSession, error)
	Status(ctx context.Context, userID uuid.UUID) (*SubscriptionStatusOutput, error)
	// Cancel schedules provider cancellation at period end and marks the local row CANCELED right away.
	Cancel(ctx context.Context, userID uuid.UUID) error
	// HandleWebhook verifies and applies one provider event.
	HandleWebhook(ctx context.Context, payload []byte, signature string) error
}

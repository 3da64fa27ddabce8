package service

import (
	"context"
	"time"

	"saaskit/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrInvalidSignature is returned when a webhook payload fails verification.
var ErrInvalidSignature = errors.New("invalid webhook signature")

// BillingEventType is the provider event name.
type BillingEventType string

const (
	BillingCheckoutCompleted    BillingEventType = "checkout.session.completed"
	BillingSubscriptionCreated  BillingEventType = "customer.subscription.created"
	BillingSubscriptionUpdated  BillingEventType = "customer.subscription.updated"
	BillingSubscriptionDeleted  BillingEventType = "customer.subscription.deleted"
	BillingInvoicePaymentPaid   BillingEventType = "invoice.payment_succeeded"
	BillingInvoicePaymentFailed BillingEventType = "invoice.payment_failed"
)

// CheckoutCompleted is the payload of a completed hosted checkout.
type CheckoutCompleted struct {
	UserID     string // From session metadata.
	Plan       string // From session metadata.
	CustomerID string
}

// ProviderSubscription is the provider's view of a subscription.
type ProviderSubscription struct {
	ID          string
	CustomerID  string
	Status      string // Provider status, e.g. "active", "past_due".
	PeriodStart *time.Time
	PeriodEnd   *time.Time
}

// ProviderInvoice is the part of an invoice the reconciler needs.
type ProviderInvoice struct {
	SubscriptionID string
}

// BillingEvent is a verified webhook event. Exactly one payload field is set
// for the known types; unknown types carry none.
type BillingEvent struct {
	ID           string
	Type         BillingEventType
	Checkout     *CheckoutCompleted
	Subscription *ProviderSubscription
	Invoice      *ProviderInvoice
}

// CheckoutRequest opens a hosted checkout for a plan.
type CheckoutRequest struct {
	UserID     uuid.UUID
	Plan       entity.Plan
	CustomerID string
}

// CheckoutSession is the hosted checkout the client is redirected to.
type CheckoutSession struct {
	ID  string `json:"sessionId"`
	URL string `json:"url"`
}

// BillingProvider is the payment provider integration.
type BillingProvider interface {
	// PriceID returns the provider price configured for plan.
	PriceID(plan entity.Plan) (string, bool)

	CreateCustomer(ctx context.Context, email string, userID uuid.UUID) (string, error)

	CreateCheckoutSession(ctx context.Context, req *CheckoutRequest) (*CheckoutSession, error)

	// CancelAtPeriodEnd schedules the provider subscription to end with its current period.
	CancelAtPeriodEnd(ctx context.Context, providerSubscriptionID string) error

	// ParseWebhookEvent verifies signature against payload and decodes the event.
	// Fails with ErrInvalidSignature when verification fails.
	ParseWebhookEvent(payload []byte, signature string) (*BillingEvent, error)
}

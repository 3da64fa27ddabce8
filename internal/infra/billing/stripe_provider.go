// Package billing implements service.BillingProvider on top of stripe-go.
package billing

import (
	"context"
	"strings"

	"saaskit/config"
	"saaskit/internal/domain/entity"
	"saaskit/internal/domain/service"
	"saaskit/internal/errors"

	"github.com/google/uuid"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/client"
	"github.com/stripe/stripe-go/v82/webhook"
)

// Metadata keys attached to customers and checkout sessions.
const (
	MetadataUserID = "userId"
	MetadataPlan   = "plan"
)

// stripeAPI is the subset of the stripe client this package calls.
type stripeAPI interface {
	NewCustomer(params *stripe.CustomerParams) (*stripe.Customer, error)
	NewCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	UpdateSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error)
}

type sdkClient struct {
	sc *client.API
}

func (c *sdkClient) NewCustomer(params *stripe.CustomerParams) (*stripe.Customer, error) {
	return c.sc.Customers.New(params)
}

func (c *sdkClient) NewCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return c.sc.CheckoutSessions.New(params)
}

func (c *sdkClient) UpdateSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	return c.sc.Subscriptions.Update(id, params)
}

type stripeProvider struct {
	api           stripeAPI
	webhookSecret string
	prices        map[entity.Plan]string
	successURL    string
	cancelURL     string
}

// NewStripeProvider builds the provider from the stripe and app config sections.
func NewStripeProvider(cfg *config.Config) service.BillingProvider {
	sc := &client.API{}
	sc.Init(cfg.Stripe.SecretKey, nil)

	return newStripeProvider(&sdkClient{sc: sc}, cfg)
}

func newStripeProvider(api stripeAPI, cfg *config.Config) *stripeProvider {
	frontendURL := strings.TrimRight(cfg.App.FrontendURL, "/")

	prices := make(map[entity.Plan]string)
	if cfg.Stripe.ProPriceID != "" {
		prices[entity.PlanPro] = cfg.Stripe.ProPriceID
	}

	return &stripeProvider{
		api:           api,
		webhookSecret: cfg.Stripe.WebhookSecret,
		prices:        prices,
		successURL:    frontendURL + "/dashboard?success=true",
		cancelURL:     frontendURL + "/pricing?canceled=true",
	}
}

func (p *stripeProvider) PriceID(plan entity.Plan) (string, bool) {
	price, ok := p.prices[plan]

	return price, ok
}

func (p *stripeProvider) CreateCustomer(ctx context.Context, email string, userID uuid.UUID) (string, error) {
	params := &stripe.CustomerParams{
		Email: stripe.String(email),
	}
	params.Context = ctx
	params.AddMetadata(MetadataUserID, userID.String())

	customer, err := p.api.NewCustomer(params)
	if err != nil {
		return "", errors.Wrap(err, "failed to create stripe customer")
	}

	return customer.ID, nil
}

func (p *stripeProvider) CreateCheckoutSession(ctx context.Context, req *service.CheckoutRequest) (*service.CheckoutSession, error) {
	price, ok := p.PriceID(req.Plan)
	if !ok {
		return nil, errors.Errorf("no price configured for plan %s", req.Plan)
	}

	params := &stripe.CheckoutSessionParams{
		Customer:          stripe.String(req.CustomerID),
		ClientReferenceID: stripe.String(req.UserID.String()),
		Mode:              stripe.String(string(stripe.CheckoutSessionModeSubscription)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				Price:    stripe.String(price),
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL: stripe.String(p.successURL),
		CancelURL:  stripe.String(p.cancelURL),
	}
	params.Context = ctx
	params.AddMetadata(MetadataUserID, req.UserID.String())
	params.AddMetadata(MetadataPlan, string(req.Plan))

	session, err := p.api.NewCheckoutSession(params)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create stripe checkout session")
	}

	return &service.CheckoutSession{ID: session.ID, URL: session.URL}, nil
}

func (p *stripeProvider) CancelAtPeriodEnd(ctx context.Context, providerSubscriptionID string) error {
	params := &stripe.SubscriptionParams{
		CancelAtPeriodEnd: stripe.Bool(true),
	}
	params.Context = ctx

	if _, err := p.api.UpdateSubscription(providerSubscriptionID, params); err != nil {
		return errors.Wrapf(err, "failed to cancel stripe subscription %s", providerSubscriptionID)
	}

	return nil
}

// ParseWebhookEvent verifies the Stripe-Signature header. Events pinned to a
// different API version are still accepted; the payload decoding tolerates
// both the legacy and current field layouts.
func (p *stripeProvider) ParseWebhookEvent(payload []byte, signature string) (*service.BillingEvent, error) {
	if p.webhookSecret == "" {
		return nil, errors.Wrap(service.ErrInvalidSignature, "webhook secret is not configured")
	}

	event, err := webhook.ConstructEventWithOptions(payload, signature, p.webhookSecret, webhook.ConstructEventOptions{
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, errors.Wrap(service.ErrInvalidSignature, err.Error())
	}

	return decodeEvent(event.ID, string(event.Type), event.Data)
}

package billing

import (
	"context"
	"fmt"
	"testing"
	"time"

	"saaskit/config"
	"saaskit/internal/domain/entity"
	"saaskit/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/webhook"
)

const testWebhookSecret = "whsec_test"

type fakeStripeAPI struct {
	customerParams *stripe.CustomerParams
	sessionParams  *stripe.CheckoutSessionParams
	updatedID      string
	updateParams   *stripe.SubscriptionParams
	err            error
}

func (f *fakeStripeAPI) NewCustomer(params *stripe.CustomerParams) (*stripe.Customer, error) {
	f.customerParams = params
	if f.err != nil {
		return nil, f.err
	}

	return &stripe.Customer{ID: "cus_123"}, nil
}

func (f *fakeStripeAPI) NewCheckoutSession(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.sessionParams = params
	if f.err != nil {
		return nil, f.err
	}

	return &stripe.CheckoutSession{ID: "cs_123", URL: "https://checkout.stripe.com/c/cs_123"}, nil
}

func (f *fakeStripeAPI) UpdateSubscription(id string, params *stripe.SubscriptionParams) (*stripe.Subscription, error) {
	f.updatedID = id
	f.updateParams = params
	if f.err != nil {
		return nil, f.err
	}

	return &stripe.Subscription{ID: id}, nil
}

func newTestProvider(api stripeAPI) *stripeProvider {
	return newStripeProvider(api, &config.Config{
		App:    config.AppConfig{FrontendURL: "https://app.example.com/"},
		Stripe: &config.StripeConfig{WebhookSecret: testWebhookSecret, ProPriceID: "price_pro"},
	})
}

func signedPayload(t *testing.T, payload string) (body []byte, header string) {
	t.Helper()

	signed := webhook.GenerateTestSignedPayload(&webhook.UnsignedPayload{
		Payload:   []byte(payload),
		Secret:    testWebhookSecret,
		Timestamp: time.Now(),
	})

	return signed.Payload, signed.Header
}

func eventJSON(eventType, object string) string {
	return fmt.Sprintf(`{"id":"evt_1","object":"event","api_version":"2020-08-27","type":%q,"data":{"object":%s}}`, eventType, object)
}

func TestStripeProvider_PriceID(t *testing.T) {
	provider := newTestProvider(&fakeStripeAPI{})

	price, ok := provider.PriceID(entity.PlanPro)
	assert.True(t, ok)
	assert.Equal(t, "price_pro", price)

	_, ok = provider.PriceID(entity.PlanFree)
	assert.False(t, ok)
}

func TestStripeProvider_CreateCustomer(t *testing.T) {
	api := &fakeStripeAPI{}
	provider := newTestProvider(api)
	userID := uuid.New()

	id, err := provider.CreateCustomer(context.Background(), "user@example.com", userID)
	require.NoError(t, err)
	assert.Equal(t, "cus_123", id)
	assert.Equal(t, "user@example.com", *api.customerParams.Email)
	assert.Equal(t, userID.String(), api.customerParams.Metadata[MetadataUserID])

	api.err = errors.New("boom")
	_, err = provider.CreateCustomer(context.Background(), "user@example.com", userID)
	assert.Error(t, err)
}

func TestStripeProvider_CreateCheckoutSession(t *testing.T) {
	api := &fakeStripeAPI{}
	provider := newTestProvider(api)
	userID := uuid.New()

	session, err := provider.CreateCheckoutSession(context.Background(), &service.CheckoutRequest{
		UserID:     userID,
		Plan:       entity.PlanPro,
		CustomerID: "cus_123",
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_123", session.ID)

	params := api.sessionParams
	require.NotNil(t, params)
	assert.Equal(t, "cus_123", *params.Customer)
	assert.Equal(t, string(stripe.CheckoutSessionModeSubscription), *params.Mode)
	require.Len(t, params.LineItems, 1)
	assert.Equal(t, "price_pro", *params.LineItems[0].Price)
	assert.Equal(t, "https://app.example.com/dashboard?success=true", *params.SuccessURL)
	assert.Equal(t, "https://app.example.com/pricing?canceled=true", *params.CancelURL)
	assert.Equal(t, userID.String(), params.Metadata[MetadataUserID])
	assert.Equal(t, "PRO", params.Metadata[MetadataPlan])

	_, err = provider.CreateCheckoutSession(context.Background(), &service.CheckoutRequest{UserID: userID, Plan: entity.PlanFree})
	assert.Error(t, err)
}

func TestStripeProvider_CancelAtPeriodEnd(t *testing.T) {
	api := &fakeStripeAPI{}
	provider := newTestProvider(api)

	require.NoError(t, provider.CancelAtPeriodEnd(context.Background(), "sub_123"))
	assert.Equal(t, "sub_123", api.updatedID)
	assert.True(t, *api.updateParams.CancelAtPeriodEnd)
}

func TestStripeProvider_ParseWebhookEvent(t *testing.T) {
	provider := newTestProvider(&fakeStripeAPI{})
	periodStart := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	periodEnd := periodStart.AddDate(0, 1, 0)

	tests := []struct {
		name   string
		body   string
		assert func(t *testing.T, event *service.BillingEvent)
	}{
		{
			name: "checkout completed with metadata",
			body: eventJSON("checkout.session.completed",
				`{"id":"cs_1","object":"checkout.session","customer":"cus_1","metadata":{"userId":"u-1","plan":"PRO"}}`),
			assert: func(t *testing.T, event *service.BillingEvent) {
				require.NotNil(t, event.Checkout)
				assert.Equal(t, "u-1", event.Checkout.UserID)
				assert.Equal(t, "PRO", event.Checkout.Plan)
				assert.Equal(t, "cus_1", event.Checkout.CustomerID)
			},
		},
		{
			name: "subscription with top level period",
			body: eventJSON("customer.subscription.updated", fmt.Sprintf(
				`{"id":"sub_1","object":"subscription","customer":{"id":"cus_1"},"status":"past_due","current_period_start":%d,"current_period_end":%d}`,
				periodStart.Unix(), periodEnd.Unix())),
			assert: func(t *testing.T, event *service.BillingEvent) {
				require.NotNil(t, event.Subscription)
				assert.Equal(t, "sub_1", event.Subscription.ID)
				assert.Equal(t, "cus_1", event.Subscription.CustomerID)
				assert.Equal(t, "past_due", event.Subscription.Status)
				require.NotNil(t, event.Subscription.PeriodStart)
				assert.True(t, periodStart.Equal(*event.Subscription.PeriodStart))
				assert.True(t, periodEnd.Equal(*event.Subscription.PeriodEnd))
			},
		},
		{
			name: "subscription with item level period",
			body: eventJSON("customer.subscription.created", fmt.Sprintf(
				`{"id":"sub_2","object":"subscription","customer":"cus_2","status":"active","items":{"data":[{"current_period_start":%d,"current_period_end":%d}]}}`,
				periodStart.Unix(), periodEnd.Unix())),
			assert: func(t *testing.T, event *service.BillingEvent) {
				require.NotNil(t, event.Subscription)
				require.NotNil(t, event.Subscription.PeriodEnd)
				assert.True(t, periodEnd.Equal(*event.Subscription.PeriodEnd))
			},
		},
		{
			name: "invoice with parent subscription details",
			body: eventJSON("invoice.payment_failed",
				`{"id":"in_1","object":"invoice","parent":{"subscription_details":{"subscription":"sub_3"}}}`),
			assert: func(t *testing.T, event *service.BillingEvent) {
				require.NotNil(t, event.Invoice)
				assert.Equal(t, "sub_3", event.Invoice.SubscriptionID)
			},
		},
		{
			name: "legacy invoice subscription field",
			body: eventJSON("invoice.payment_succeeded", `{"id":"in_2","object":"invoice","subscription":"sub_4"}`),
			assert: func(t *testing.T, event *service.BillingEvent) {
				require.NotNil(t, event.Invoice)
				assert.Equal(t, "sub_4", event.Invoice.SubscriptionID)
			},
		},
		{
			name: "unknown type carries no payload",
			body: eventJSON("customer.created", `{"id":"cus_9","object":"customer"}`),
			assert: func(t *testing.T, event *service.BillingEvent) {
				assert.Nil(t, event.Checkout)
				assert.Nil(t, event.Subscription)
				assert.Nil(t, event.Invoice)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			body, header := signedPayload(t, tt.body)

			event, err := provider.ParseWebhookEvent(body, header)
			require.NoError(t, err)
			assert.Equal(t, "evt_1", event.ID)
			tt.assert(t, event)
		})
	}
}

func TestStripeProvider_ParseWebhookEvent_RejectsBadSignature(t *testing.T) {
	provider := newTestProvider(&fakeStripeAPI{})
	body, _ := signedPayload(t, eventJSON("customer.subscription.deleted", `{"id":"sub_1"}`))

	_, err := provider.ParseWebhookEvent(body, "t=1,v1=deadbeef")
	assert.ErrorIs(t, err, service.ErrInvalidSignature)

	_, err = provider.ParseWebhookEvent(body, "")
	assert.ErrorIs(t, err, service.ErrInvalidSignature)

	unconfigured := newStripeProvider(&fakeStripeAPI{}, &config.Config{Stripe: &config.StripeConfig{}})
	_, err = unconfigured.ParseWebhookEvent(body, "anything")
	assert.ErrorIs(t, err, service.ErrInvalidSignature)
}

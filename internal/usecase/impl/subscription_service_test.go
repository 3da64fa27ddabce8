package impl

import (
	"context"
	"testing"
	"time"

	"saaskit/internal/domain/entity"
	domainerrors "saaskit/internal/domain/errors"
	"saaskit/internal/domain/service"
	mockSvc "saaskit/internal/mocks/service"
	"saaskit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionFixtures struct {
	service   *subscriptionService
	store     *memStore
	billing   *mockSvc.MockBillingProvider
	publisher *recordingPublisher
}

func createTestSubscriptionService(t *testing.T) subscriptionFixtures {
	store := newMemStore()
	billing := mockSvc.NewMockBillingProvider(t)
	publisher := &recordingPublisher{}

	srv := NewSubscriptionService(SubscriptionServiceParams{
		SubRepo:   store,
		UserRepo:  store,
		Billing:   billing,
		Publisher: publisher,
		Logger:    discardLogger(),
	})

	return subscriptionFixtures{
		service:   srv.(*subscriptionService),
		store:     store,
		billing:   billing,
		publisher: publisher,
	}
}

func attachProviderSubscription(t *testing.T, store *memStore, userID uuid.UUID, subscriptionID string, status entity.SubscriptionStatus) {
	t.Helper()

	plan := entity.PlanPro
	require.NoError(t, store.UpdateSubscriptionByUserID(context.Background(), userID, &entity.SubscriptionPatch{
		Plan:                 &plan,
		Status:               &status,
		StripeCustomerID:     strPtr("cus_" + subscriptionID),
		StripeSubscriptionID: &subscriptionID,
	}))
}

func TestSubscriptionService_ApplyCheckoutCompleted_IsIdempotent(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	user := seedUser(t, fx.store, "alice@example.com", entity.PlanFree, entity.StatusActive)

	touched, err := fx.service.ApplyCheckoutCompleted(ctx, user.ID, entity.PlanPro, "cus_1")
	require.NoError(t, err)
	require.Len(t, touched, 1)

	once, err := fx.store.FindSubscriptionByUserID(ctx, user.ID)
	require.NoError(t, err)

	_, err = fx.service.ApplyCheckoutCompleted(ctx, user.ID, entity.PlanPro, "cus_1")
	require.NoError(t, err)

	twice, err := fx.store.FindSubscriptionByUserID(ctx, user.ID)
	require.NoError(t, err)

	assert.Equal(t, once, twice)
	assert.Equal(t, 1, fx.store.subscriptionCount())
	assert.Equal(t, entity.PlanPro, twice.Plan)
	assert.Equal(t, entity.StatusActive, twice.Status)
	assert.Equal(t, "cus_1", *twice.StripeCustomerID)
}

func TestSubscriptionService_ApplyCheckoutCompleted_UnknownUserIsNoop(t *testing.T) {
	fx := createTestSubscriptionService(t)

	touched, err := fx.service.ApplyCheckoutCompleted(context.Background(), uuid.New(), entity.PlanPro, "cus_1")
	require.NoError(t, err)
	assert.Empty(t, touched)
	assert.Zero(t, fx.store.subscriptionCount())
}

func TestSubscriptionService_ApplySubscriptionCreated(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	user := seedUser(t, fx.store, "alice@example.com", entity.PlanFree, entity.StatusInactive)
	require.NoError(t, fx.store.UpdateSubscriptionByUserID(ctx, user.ID, &entity.SubscriptionPatch{StripeCustomerID: strPtr("cus_1")}))

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)

	touched, err := fx.service.ApplySubscriptionCreated(ctx, "cus_1", "sub_1", &start, &end)
	require.NoError(t, err)
	require.Len(t, touched, 1)

	sub, err := fx.store.FindSubscriptionByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, sub.Status)
	assert.Equal(t, "sub_1", *sub.StripeSubscriptionID)
	assert.Equal(t, start, *sub.CurrentPeriodStart)
	assert.Equal(t, end, *sub.CurrentPeriodEnd)

	touched, err = fx.service.ApplySubscriptionCreated(ctx, "cus_unknown", "sub_2", &start, &end)
	require.NoError(t, err)
	assert.Empty(t, touched)
}

func TestSubscriptionService_LastWriteWins(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	user := seedUser(t, fx.store, "alice@example.com", entity.PlanFree, entity.StatusActive)
	attachProviderSubscription(t, fx.store, user.ID, "sub_1", entity.StatusActive)

	_, err := fx.service.ApplySubscriptionDeleted(ctx, "sub_1")
	require.NoError(t, err)

	sub, err := fx.store.FindSubscriptionByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.Equal(t, entity.StatusCanceled, sub.Status)

	start := time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC)
	end := start.AddDate(0, 1, 0)
	touched, err := fx.service.ApplySubscriptionUpdated(ctx, "sub_1", entity.StatusActive, &start, &end)
	require.NoError(t, err)
	require.Len(t, touched, 1)

	sub, err = fx.store.FindSubscriptionByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, sub.Status)
	assert.Equal(t, end, *sub.CurrentPeriodEnd)
}

func TestSubscriptionService_PaymentEvents(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	user := seedUser(t, fx.store, "alice@example.com", entity.PlanFree, entity.StatusActive)
	attachProviderSubscription(t, fx.store, user.ID, "sub_1", entity.StatusActive)

	_, err := fx.service.ApplyPaymentFailed(ctx, "sub_1")
	require.NoError(t, err)
	sub, _ := fx.store.FindSubscriptionByUserID(ctx, user.ID)
	assert.Equal(t, entity.StatusPastDue, sub.Status)

	_, err = fx.service.ApplyPaymentSucceeded(ctx, "sub_1")
	require.NoError(t, err)
	sub, _ = fx.store.FindSubscriptionByUserID(ctx, user.ID)
	assert.Equal(t, entity.StatusActive, sub.Status)

	touched, err := fx.service.ApplyPaymentFailed(ctx, "sub_unknown")
	require.NoError(t, err)
	assert.Empty(t, touched)

	touched, err = fx.service.ApplyPaymentSucceeded(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, touched)
}

func TestProviderStatus(t *testing.T) {
	tests := []struct {
		in   string
		want entity.SubscriptionStatus
		ok   bool
	}{
		{"active", entity.StatusActive, true},
		{"trialing", entity.StatusActive, true},
		{"past_due", entity.StatusPastDue, true},
		{"unpaid", entity.StatusPastDue, true},
		{"canceled", entity.StatusCanceled, true},
		{"incomplete_expired", entity.StatusCanceled, true},
		{"incomplete", entity.StatusInactive, true},
		{"paused", entity.StatusInactive, true},
		{"ACTIVE", entity.StatusActive, true},
		{"something_new", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := providerStatus(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSubscriptionService_HandleWebhook(t *testing.T) {
	ctx := context.Background()

	t.Run("checkout completed publishes the change", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		user := seedUser(t, fx.store, "alice@example.com", entity.PlanFree, entity.StatusActive)

		fx.billing.EXPECT().ParseWebhookEvent([]byte("payload"), "sig").Return(&service.BillingEvent{
			ID:   "evt_1",
			Type: service.BillingCheckoutCompleted,
			Checkout: &service.CheckoutCompleted{
				UserID:     user.ID.String(),
				Plan:       "pro",
				CustomerID: "cus_1",
			},
		}, nil)

		require.NoError(t, fx.service.HandleWebhook(ctx, []byte("payload"), "sig"))

		sub, err := fx.store.FindSubscriptionByUserID(ctx, user.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.PlanPro, sub.Plan)

		require.Len(t, fx.publisher.events, 1)
		assert.Equal(t, &service.SubscriptionChangedEvent{
			EventID: "evt_1",
			Source:  string(service.BillingCheckoutCompleted),
			UserID:  user.ID.String(),
			Plan:    "PRO",
			Status:  "ACTIVE",
		}, fx.publisher.events[0])
	})

	t.Run("bad signature changes nothing", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		user := seedUser(t, fx.store, "alice@example.com", entity.PlanFree, entity.StatusActive)

		fx.billing.EXPECT().
			ParseWebhookEvent(mock.Anything, "forged").
			Return(nil, errors.Wrap(service.ErrInvalidSignature, "no matching signature"))

		err := fx.service.HandleWebhook(ctx, []byte("payload"), "forged")
		requireAppError(t, err, domainerrors.ErrWebhookSignature)

		sub, _ := fx.store.FindSubscriptionByUserID(ctx, user.ID)
		assert.Equal(t, entity.PlanFree, sub.Plan)
		assert.Empty(t, fx.publisher.events)
	})

	t.Run("unknown status is ignored", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		user := seedUser(t, fx.store, "alice@example.com", entity.PlanFree, entity.StatusActive)
		attachProviderSubscription(t, fx.store, user.ID, "sub_1", entity.StatusActive)

		fx.billing.EXPECT().ParseWebhookEvent(mock.Anything, mock.Anything).Return(&service.BillingEvent{
			ID:           "evt_2",
			Type:         service.BillingSubscriptionUpdated,
			Subscription: &service.ProviderSubscription{ID: "sub_1", Status: "something_new"},
		}, nil)

		require.NoError(t, fx.service.HandleWebhook(ctx, nil, "sig"))

		sub, _ := fx.store.FindSubscriptionByUserID(ctx, user.ID)
		assert.Equal(t, entity.StatusActive, sub.Status)
		assert.Empty(t, fx.publisher.events)
	})

	t.Run("unhandled event type is acknowledged", func(t *testing.T) {
		fx := createTestSubscriptionService(t)

		fx.billing.EXPECT().ParseWebhookEvent(mock.Anything, mock.Anything).
			Return(&service.BillingEvent{ID: "evt_3", Type: "customer.created"}, nil)

		require.NoError(t, fx.service.HandleWebhook(ctx, nil, "sig"))
		assert.Empty(t, fx.publisher.events)
	})

	t.Run("publish failure does not fail the webhook", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		fx.publisher.err = errors.New("topic not found")
		user := seedUser(t, fx.store, "alice@example.com", entity.PlanFree, entity.StatusActive)
		attachProviderSubscription(t, fx.store, user.ID, "sub_1", entity.StatusActive)

		fx.billing.EXPECT().ParseWebhookEvent(mock.Anything, mock.Anything).Return(&service.BillingEvent{
			ID:      "evt_4",
			Type:    service.BillingInvoicePaymentFailed,
			Invoice: &service.ProviderInvoice{SubscriptionID: "sub_1"},
		}, nil)

		require.NoError(t, fx.service.HandleWebhook(ctx, nil, "sig"))
		assert.Len(t, fx.publisher.events, 1)
	})
}

func TestSubscriptionService_HandleWebhook_PublishFailureIsLogged(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	billing := mockSvc.NewMockBillingProvider(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	srv := NewSubscriptionService(SubscriptionServiceParams{
		SubRepo:   store,
		UserRepo:  store,
		Billing:   billing,
		Publisher: publisher,
		Logger:    discardLogger(),
	})
	user := seedUser(t, store, "alice@example.com", entity.PlanFree, entity.StatusInactive)

	billing.EXPECT().ParseWebhookEvent(mock.Anything, "sig").Return(&service.BillingEvent{
		ID:       "evt_1",
		Type:     service.BillingCheckoutCompleted,
		Checkout: &service.CheckoutCompleted{UserID: user.ID.String(), Plan: "PRO", CustomerID: "cus_1"},
	}, nil)
	publisher.EXPECT().
		PublishSubscriptionChanged(mock.Anything, mock.MatchedBy(func(event *service.SubscriptionChangedEvent) bool {
			return event.UserID == user.ID.String() && event.Status == "ACTIVE"
		})).
		Return(errors.New("topic not found")).
		Once()

	require.NoError(t, srv.HandleWebhook(ctx, []byte("payload"), "sig"))

	sub, err := store.FindSubscriptionByUserID(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanPro, sub.Plan)
	assert.Equal(t, entity.StatusActive, sub.Status)
}

func TestSubscriptionService_ApplyCheckoutCompleted_WithoutCustomer(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	first := seedUser(t, fx.store, "alice@example.com", entity.PlanFree, entity.StatusInactive)
	second := seedUser(t, fx.store, "bob@example.com", entity.PlanFree, entity.StatusInactive)

	for _, user := range []*entity.User{first, second} {
		touched, err := fx.service.ApplyCheckoutCompleted(ctx, user.ID, entity.PlanPro, "")
		require.NoError(t, err)
		require.Len(t, touched, 1)
		assert.Nil(t, touched[0].StripeCustomerID)
		assert.Equal(t, entity.StatusActive, touched[0].Status)
	}
}

func TestSubscriptionService_CreateCheckout_RejectsActiveSubscription(t *testing.T) {
	tests := []struct {
		name string
		plan entity.Plan
	}{
		{name: "already on PRO", plan: entity.PlanPro},
		{name: "active FREE row", plan: entity.PlanFree},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestSubscriptionService(t)
			ctx := context.Background()
			user := seedUser(t, fx.store, "alice@example.com", tt.plan, entity.StatusActive)

			fx.billing.EXPECT().PriceID(entity.PlanPro).Return("price_pro", true)

			_, err := fx.service.CreateCheckout(ctx, user.ID, entity.PlanPro)
			requireAppError(t, err, domainerrors.ErrAlreadySubscribed)
			fx.billing.AssertNotCalled(t, "CreateCustomer", mock.Anything, mock.Anything, mock.Anything)
			fx.billing.AssertNotCalled(t, "CreateCheckoutSession", mock.Anything, mock.Anything)
		})
	}
}

func TestSubscriptionService_CreateCheckout_CreatesCustomerOnce(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	user := seedUser(t, fx.store, "alice@example.com", entity.PlanFree, entity.StatusInactive)

	fx.billing.EXPECT().PriceID(entity.PlanPro).Return("price_pro", true)
	fx.billing.EXPECT().CreateCustomer(ctx, "alice@example.com", user.ID).Return("cus_1", nil).Once()
	fx.billing.EXPECT().
		CreateCheckoutSession(ctx, mock.MatchedBy(func(req *service.CheckoutRequest) bool {
			return req.UserID == user.ID && req.Plan == entity.PlanPro && req.CustomerID == "cus_1"
		})).
		Return(&service.CheckoutSession{ID: "cs_1", URL: "https://checkout.example.com/cs_1"}, nil)

	session, err := fx.service.CreateCheckout(ctx, user.ID, entity.PlanPro)
	require.NoError(t, err)
	assert.Equal(t, "cs_1", session.ID)

	sub, err := fx.store.FindSubscriptionByUserID(ctx, user.ID)
	require.NoError(t, err)
	require.NotNil(t, sub.StripeCustomerID)
	assert.Equal(t, "cus_1", *sub.StripeCustomerID)
	assert.Equal(t, entity.PlanFree, sub.Plan)

	// A second attempt reuses the stored customer.
	_, err = fx.service.CreateCheckout(ctx, user.ID, entity.PlanPro)
	require.NoError(t, err)
}

func TestSubscriptionService_CreateCheckout_InvalidPlan(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	_, err := fx.service.CreateCheckout(ctx, uuid.New(), entity.PlanFree)
	requireAppError(t, err, domainerrors.ErrInvalidPlan)

	fx.billing.EXPECT().PriceID(entity.PlanPro).Return("", false)
	_, err = fx.service.CreateCheckout(ctx, uuid.New(), entity.PlanPro)
	requireAppError(t, err, domainerrors.ErrInvalidPlan)
}

func TestSubscriptionService_CreateCheckout_ProviderFailure(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()
	user := seedUser(t, fx.store, "alice@example.com", entity.PlanPro, entity.StatusCanceled)

	fx.billing.EXPECT().PriceID(entity.PlanPro).Return("price_pro", true)
	fx.billing.EXPECT().CreateCustomer(ctx, mock.Anything, user.ID).Return("", errors.New("card_declined"))

	_, err := fx.service.CreateCheckout(ctx, user.ID, entity.PlanPro)
	requireAppError(t, err, domainerrors.ErrBillingFailed)
}

func TestSubscriptionService_Status(t *testing.T) {
	fx := createTestSubscriptionService(t)
	ctx := context.Background()

	out, err := fx.service.Status(ctx, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, &usecase.SubscriptionStatusOutput{
		HasSubscription: false,
		Plan:            entity.PlanFree,
		Status:          entity.StatusInactive,
	}, out)

	user := seedUser(t, fx.store, "alice@example.com", entity.PlanFree, entity.StatusActive)
	out, err = fx.service.Status(ctx, user.ID)
	require.NoError(t, err)
	assert.True(t, out.HasSubscription)
	assert.Equal(t, entity.PlanFree, out.Plan)
	assert.Equal(t, entity.StatusActive, out.Status)
	assert.Nil(t, out.CurrentPeriodEnd)
}

func TestSubscriptionService_Cancel(t *testing.T) {
	ctx := context.Background()

	t.Run("without provider subscription", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		user := seedUser(t, fx.store, "alice@example.com", entity.PlanFree, entity.StatusActive)

		requireAppError(t, fx.service.Cancel(ctx, user.ID), domainerrors.ErrSubscriptionNotFound)
		requireAppError(t, fx.service.Cancel(ctx, uuid.New()), domainerrors.ErrSubscriptionNotFound)
	})

	t.Run("marks canceled right away", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		user := seedUser(t, fx.store, "alice@example.com", entity.PlanFree, entity.StatusActive)
		attachProviderSubscription(t, fx.store, user.ID, "sub_1", entity.StatusActive)

		fx.billing.EXPECT().CancelAtPeriodEnd(ctx, "sub_1").Return(nil)

		require.NoError(t, fx.service.Cancel(ctx, user.ID))

		sub, _ := fx.store.FindSubscriptionByUserID(ctx, user.ID)
		assert.Equal(t, entity.StatusCanceled, sub.Status)
	})

	t.Run("provider failure keeps the row", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		user := seedUser(t, fx.store, "alice@example.com", entity.PlanFree, entity.StatusActive)
		attachProviderSubscription(t, fx.store, user.ID, "sub_1", entity.StatusActive)

		fx.billing.EXPECT().CancelAtPeriodEnd(ctx, "sub_1").Return(errors.New("stripe unavailable"))

		requireAppError(t, fx.service.Cancel(ctx, user.ID), domainerrors.ErrBillingFailed)

		sub, _ := fx.store.FindSubscriptionByUserID(ctx, user.ID)
		assert.Equal(t, entity.StatusActive, sub.Status)
	})
}

package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "saaskit/internal/delivery/context"
	"saaskit/internal/domain/entity"
	domainerrors "saaskit/internal/domain/errors"
	"saaskit/internal/domain/repository"
	"saaskit/internal/domain/service"
	"saaskit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	subRepo   repository.SubscriptionRepository
	userRepo  repository.UserRepository
	billing   service.BillingProvider
	publisher service.EventPublisher
	logger    *slog.Logger
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	SubRepo   repository.SubscriptionRepository
	UserRepo  repository.UserRepository
	Billing   service.BillingProvider
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewSubscriptionService is the constructor for subscriptionService.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		subRepo:   params.SubRepo,
		userRepo:  params.UserRepo,
		billing:   params.Billing,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// providerStatus maps the provider's subscription status onto the local
// state machine. Statuses without a local counterpart report false.
func providerStatus(status string) (entity.SubscriptionStatus, bool) {
	switch strings.ToLower(status) {
	case "active", "trialing":
		return entity.StatusActive, true
	case "past_due", "unpaid":
		return entity.StatusPastDue, true
	case "canceled", "incomplete_expired":
		return entity.StatusCanceled, true
	case "incomplete", "paused":
		return entity.StatusInactive, true
	default:
		return "", false
	}
}

// ApplyCheckoutCompleted upserts the user's row to plan/ACTIVE.
func (srv *subscriptionService) ApplyCheckoutCompleted(ctx context.Context, userID uuid.UUID, plan entity.Plan, customerID string) ([]*entity.Subscription, error) {
	sub := &entity.Subscription{
		ID:     uuid.New(),
		UserID: userID,
		Plan:   plan,
		Status: entity.StatusActive,
	}
	// stripe_customer_id is unique; sessions without a customer store NULL
	if customerID != "" {
		sub.StripeCustomerID = &customerID
	}

	if err := srv.subRepo.UpsertSubscription(ctx, sub); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Checkout completed for unknown user", slog.Any("userID", userID))

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to upsert subscription")
	}

	stored, err := srv.subRepo.FindSubscriptionByUserID(ctx, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload subscription")
	}

	return []*entity.Subscription{stored}, nil
}

// ApplySubscriptionCreated attaches the provider subscription to the row owning customerID.
func (srv *subscriptionService) ApplySubscriptionCreated(ctx context.Context, customerID, subscriptionID string, periodStart, periodEnd *time.Time) ([]*entity.Subscription, error) {
	sub, err := srv.subRepo.FindSubscriptionByCustomerID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			srv.log(ctx).Info("No subscription for provider customer", slog.String("customerID", customerID))

			return nil, nil
		}

		return nil, errors.Wrap(err, "failed to find subscription by customer")
	}

	status := entity.StatusActive
	patch := &entity.SubscriptionPatch{
		Status:               &status,
		StripeSubscriptionID: &subscriptionID,
		CurrentPeriodStart:   periodStart,
		CurrentPeriodEnd:     periodEnd,
	}
	if err := srv.subRepo.UpdateSubscriptionByUserID(ctx, sub.UserID, patch); err != nil {
		return nil, errors.Wrap(err, "failed to attach provider subscription")
	}
	patch.ApplyTo(sub)

	return []*entity.Subscription{sub}, nil
}

// ApplySubscriptionUpdated overwrites status and period of every matching row.
func (srv *subscriptionService) ApplySubscriptionUpdated(ctx context.Context, subscriptionID string, status entity.SubscriptionStatus, periodStart, periodEnd *time.Time) ([]*entity.Subscription, error) {
	return srv.applyByProviderID(ctx, subscriptionID, &entity.SubscriptionPatch{
		Status:             &status,
		CurrentPeriodStart: periodStart,
		CurrentPeriodEnd:   periodEnd,
	})
}

func (srv *subscriptionService) ApplySubscriptionDeleted(ctx context.Context, subscriptionID string) ([]*entity.Subscription, error) {
	return srv.applyStatus(ctx, subscriptionID, entity.StatusCanceled)
}

func (srv *subscriptionService) ApplyPaymentSucceeded(ctx context.Context, subscriptionID string) ([]*entity.Subscription, error) {
	return srv.applyStatus(ctx, subscriptionID, entity.StatusActive)
}

func (srv *subscriptionService) ApplyPaymentFailed(ctx context.Context, subscriptionID string) ([]*entity.Subscription, error) {
	return srv.applyStatus(ctx, subscriptionID, entity.StatusPastDue)
}

func (srv *subscriptionService) applyStatus(ctx context.Context, subscriptionID string, status entity.SubscriptionStatus) ([]*entity.Subscription, error) {
	return srv.applyByProviderID(ctx, subscriptionID, &entity.SubscriptionPatch{Status: &status})
}

func (srv *subscriptionService) applyByProviderID(ctx context.Context, subscriptionID string, patch *entity.SubscriptionPatch) ([]*entity.Subscription, error) {
	if subscriptionID == "" {
		return nil, nil
	}

	affected, err := srv.subRepo.UpdateSubscriptionsByProviderID(ctx, subscriptionID, patch)
	if err != nil {
		return nil, errors.Wrap(err, "failed to update subscriptions by provider id")
	}
	if affected == 0 {
		srv.log(ctx).Info("No subscription for provider subscription", slog.String("subscriptionID", subscriptionID))

		return nil, nil
	}

	subs, err := srv.subRepo.FindSubscriptionsByProviderID(ctx, subscriptionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload subscriptions")
	}

	return subs, nil
}

// HandleWebhook verifies the payload and dispatches the event to the reconciler.
func (srv *subscriptionService) HandleWebhook(ctx context.Context, payload []byte, signature string) error {
	event, err := srv.billing.ParseWebhookEvent(payload, signature)
	if err != nil {
		if errors.Is(err, service.ErrInvalidSignature) {
			srv.log(ctx).Warn("Webhook signature verification failed", slog.Any("error", err))

			return errors.Wrap(domainerrors.ErrWebhookSignature, "webhook rejected")
		}

		return errors.Wrap(domainerrors.ErrInvalidRequest.WithDetails("malformed webhook event"), err.Error())
	}

	logger := srv.log(ctx).With(slog.String("eventID", event.ID), slog.String("eventType", string(event.Type)))

	touched, err := srv.dispatch(ctx, logger, event)
	if err != nil {
		logger.Error("Failed to apply billing event", slog.Any("error", err))

		return err
	}

	for _, sub := range touched {
		srv.publishChange(ctx, event, sub)
	}

	logger.Debug("Billing event applied", slog.Int("rows", len(touched)))

	return nil
}

func (srv *subscriptionService) dispatch(ctx context.Context, logger *slog.Logger, event *service.BillingEvent) ([]*entity.Subscription, error) {
	switch event.Type {
	case service.BillingCheckoutCompleted:
		if event.Checkout == nil {
			return nil, nil
		}
		userID, err := uuid.Parse(event.Checkout.UserID)
		if err != nil {
			logger.Warn("Checkout session without a valid user id", slog.String("userID", event.Checkout.UserID))

			return nil, nil
		}
		plan, ok := entity.ParsePlan(event.Checkout.Plan)
		if !ok {
			logger.Warn("Checkout session with unknown plan", slog.String("plan", event.Checkout.Plan))

			return nil, nil
		}

		return srv.ApplyCheckoutCompleted(ctx, userID, plan, event.Checkout.CustomerID)

	case service.BillingSubscriptionCreated:
		if event.Subscription == nil || event.Subscription.CustomerID == "" {
			return nil, nil
		}

		return srv.ApplySubscriptionCreated(ctx, event.Subscription.CustomerID, event.Subscription.ID,
			event.Subscription.PeriodStart, event.Subscription.PeriodEnd)

	case service.BillingSubscriptionUpdated:
		if event.Subscription == nil {
			return nil, nil
		}
		status, ok := providerStatus(event.Subscription.Status)
		if !ok {
			logger.Info("Ignoring unknown provider status", slog.String("status", event.Subscription.Status))

			return nil, nil
		}

		return srv.ApplySubscriptionUpdated(ctx, event.Subscription.ID, status,
			event.Subscription.PeriodStart, event.Subscription.PeriodEnd)

	case service.BillingSubscriptionDeleted:
		if event.Subscription == nil {
			return nil, nil
		}

		return srv.ApplySubscriptionDeleted(ctx, event.Subscription.ID)

	case service.BillingInvoicePaymentPaid:
		if event.Invoice == nil {
			return nil, nil
		}

		return srv.ApplyPaymentSucceeded(ctx, event.Invoice.SubscriptionID)

	case service.BillingInvoicePaymentFailed:
		if event.Invoice == nil {
			return nil, nil
		}

		return srv.ApplyPaymentFailed(ctx, event.Invoice.SubscriptionID)

	default:
		logger.Info("Unhandled billing event type")

		return nil, nil
	}
}

func (srv *subscriptionService) publishChange(ctx context.Context, event *service.BillingEvent, sub *entity.Subscription) {
	changed := &service.SubscriptionChangedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		EventID:   event.ID,
		Source:    string(event.Type),
		UserID:    sub.UserID.String(),
		Plan:      string(sub.Plan),
		Status:    string(sub.Status),
	}

	if err := srv.publisher.PublishSubscriptionChanged(ctx, changed); err != nil {
		srv.log(ctx).Warn("Failed to publish subscription change",
			slog.String("userID", changed.UserID),
			slog.Any("error", err),
		)
	}
}

// CreateCheckout opens a hosted checkout for a paid plan, creating the
// provider customer on first use.
func (srv *subscriptionService) CreateCheckout(ctx context.Context, userID uuid.UUID, plan entity.Plan) (*service.CheckoutSession, error) {
	if !plan.IsPaid() {
		return nil, domainerrors.ErrInvalidPlan.WithDetails("plan " + string(plan) + " cannot be purchased")
	}
	if _, ok := srv.billing.PriceID(plan); !ok {
		return nil, domainerrors.ErrInvalidPlan.WithDetails("plan " + string(plan) + " is not configured")
	}

	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "checkout")
		}

		return nil, errors.Wrap(err, "failed to load user for checkout")
	}

	if user.Subscription.IsActive() {
		return nil, errors.Wrap(domainerrors.ErrAlreadySubscribed, "checkout rejected")
	}

	customerID, err := srv.ensureCustomer(ctx, user)
	if err != nil {
		return nil, err
	}

	session, err := srv.billing.CreateCheckoutSession(ctx, &service.CheckoutRequest{
		UserID:     user.ID,
		Plan:       plan,
		CustomerID: customerID,
	})
	if err != nil {
		srv.log(ctx).Error("Failed to create checkout session", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrBillingFailed, err.Error())
	}

	srv.log(ctx).Info("Checkout session created",
		slog.Any("userID", user.ID),
		slog.String("plan", string(plan)),
		slog.String("sessionID", session.ID),
	)

	return session, nil
}

// ensureCustomer returns the user's provider customer, creating and storing one if needed.
func (srv *subscriptionService) ensureCustomer(ctx context.Context, user *entity.User) (string, error) {
	sub := user.Subscription
	if sub != nil && sub.StripeCustomerID != nil && *sub.StripeCustomerID != "" {
		return *sub.StripeCustomerID, nil
	}

	customerID, err := srv.billing.CreateCustomer(ctx, user.Email, user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to create billing customer", slog.Any("userID", user.ID), slog.Any("error", err))

		return "", errors.Wrap(domainerrors.ErrBillingFailed, err.Error())
	}

	if sub != nil {
		err = srv.subRepo.UpdateSubscriptionByUserID(ctx, user.ID, &entity.SubscriptionPatch{StripeCustomerID: &customerID})
	} else {
		err = srv.subRepo.UpsertSubscription(ctx, &entity.Subscription{
			ID:               uuid.New(),
			UserID:           user.ID,
			Plan:             entity.PlanFree,
			Status:           entity.StatusInactive,
			StripeCustomerID: &customerID,
		})
	}
	if err != nil {
		return "", errors.Wrap(err, "failed to store billing customer")
	}

	return customerID, nil
}

// Status summarizes the user's subscription.
func (srv *subscriptionService) Status(ctx context.Context, userID uuid.UUID) (*usecase.SubscriptionStatusOutput, error) {
	sub, err := srv.subRepo.FindSubscriptionByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return &usecase.SubscriptionStatusOutput{
				HasSubscription: false,
				Plan:            entity.PlanFree,
				Status:          entity.StatusInactive,
			}, nil
		}

		return nil, errors.Wrap(err, "failed to load subscription")
	}

	return &usecase.SubscriptionStatusOutput{
		HasSubscription:    true,
		Plan:               sub.Plan,
		Status:             sub.Status,
		CurrentPeriodStart: sub.CurrentPeriodStart,
		CurrentPeriodEnd:   sub.CurrentPeriodEnd,
	}, nil
}

// Cancel asks the provider to stop renewing and marks the row CANCELED
// without waiting for the provider's confirmation event.
func (srv *subscriptionService) Cancel(ctx context.Context, userID uuid.UUID) error {
	sub, err := srv.subRepo.FindSubscriptionByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrSubscriptionNotFound) {
			return errors.Wrap(domainerrors.ErrSubscriptionNotFound, "cancel")
		}

		return errors.Wrap(err, "failed to load subscription")
	}
	if sub.StripeSubscriptionID == nil || *sub.StripeSubscriptionID == "" {
		return errors.Wrap(domainerrors.ErrSubscriptionNotFound, "no provider subscription to cancel")
	}

	if err := srv.billing.CancelAtPeriodEnd(ctx, *sub.StripeSubscriptionID); err != nil {
		srv.log(ctx).Error("Failed to cancel provider subscription", slog.Any("userID", userID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrBillingFailed, err.Error())
	}

	status := entity.StatusCanceled
	if err := srv.subRepo.UpdateSubscriptionByUserID(ctx, userID, &entity.SubscriptionPatch{Status: &status}); err != nil {
		return errors.Wrap(err, "failed to mark subscription canceled")
	}

	srv.log(ctx).Info("Subscription canceled at period end", slog.Any("userID", userID))

	return nil
}

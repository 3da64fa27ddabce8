package handler

import (
	"io"
	"log/slog"
	"net/http"

	"saaskit/internal/delivery/http/response"
	"saaskit/internal/domain/entity"
	domainerrors "saaskit/internal/domain/errors"
	"saaskit/internal/errors"
	"saaskit/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// HeaderStripeSignature carries the webhook signature.
const HeaderStripeSignature = "Stripe-Signature"

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler holds dependencies for subscription-related handlers
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// CreateCheckoutRequest represents the request body for starting a checkout
type CreateCheckoutRequest struct {
	Plan string `json:"plan" validate:"required"`
}

// CreateCheckout opens a hosted checkout for a paid plan.
func (h *SubscriptionHandler) CreateCheckout(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	var req CreateCheckoutRequest
	if err := bindRequest(c, &req); err != nil {
		return err
	}

	plan, ok := entity.ParsePlan(req.Plan)
	if !ok {
		return errors.WithStack(domainerrors.ErrInvalidPlan.WithDetails("unknown plan " + req.Plan))
	}

	session, err := h.subscriptionUC.CreateCheckout(c.Request().Context(), userID, plan)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, session, "Checkout session created")
}

// Status summarizes the caller's plan.
func (h *SubscriptionHandler) Status(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	status, err := h.subscriptionUC.Status(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, status, "")
}

// Cancel ends the caller's paid subscription at the end of the period.
func (h *SubscriptionHandler) Cancel(c echo.Context) error {
	userID, err := currentUserID(c)
	if err != nil {
		return err
	}

	if err := h.subscriptionUC.Cancel(c.Request().Context(), userID); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Subscription will be canceled at the end of the billing period")
}

// Webhook receives provider events. The signature covers the raw body, so it
// must be read before anything decodes it.
func (h *SubscriptionHandler) Webhook(c echo.Context) error {
	payload, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return errors.Wrap(domainerrors.ErrInvalidRequest, err.Error())
	}

	if err := h.subscriptionUC.HandleWebhook(c.Request().Context(), payload, c.Request().Header.Get(HeaderStripeSignature)); err != nil {
		return errors.WithStack(err)
	}

	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}

package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"saaskit/config"
	"saaskit/internal/domain/constants"
	"saaskit/internal/domain/service"
	mockUC "saaskit/internal/mocks/usecase"
	"saaskit/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/idtoken"
)

func newTestPushHandler(t *testing.T, cfg *config.Config, validator TokenValidator) (*PushHandler, *mockUC.MockNotificationUsecase, *mockUC.MockMaintenanceUsecase) {
	t.Helper()

	notifications := mockUC.NewMockNotificationUsecase(t)
	maintenance := mockUC.NewMockMaintenanceUsecase(t)

	h := NewPushHandler(PushHandlerParams{
		Config:         cfg,
		Logger:         slog.New(slog.NewTextHandler(io.Discard, nil)),
		NotificationUC: notifications,
		MaintenanceUC:  maintenance,
		TokenValidator: validator,
	})

	return h, notifications, maintenance
}

func developConfig() *config.Config {
	cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderLocal}}
	cfg.Env.Env = constants.EnvDevelop

	return cfg
}

func pushBody(t *testing.T, event *service.SubscriptionChangedEvent) string {
	t.Helper()

	data, err := json.Marshal(event)
	require.NoError(t, err)

	return fmt.Sprintf(`{"message":{"data":%q,"messageId":"m-1","attributes":{"request_id":"req-from-api"}},"subscription":"projects/p/subscriptions/s"}`,
		base64.StdEncoding.EncodeToString(data))
}

func serve(h echo.HandlerFunc, req *http.Request) *httptest.ResponseRecorder {
	e := echo.New()
	rec := httptest.NewRecorder()
	if err := h(e.NewContext(req, rec)); err != nil {
		e.HTTPErrorHandler(err, e.NewContext(req, rec))
	}

	return rec
}

func jsonRequest(method, path, body string) *http.Request {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)

	return req
}

func TestHandleSubscriptionEvent(t *testing.T) {
	event := &service.SubscriptionChangedEvent{
		EventID: "evt_1",
		Source:  "customer.subscription.updated",
		UserID:  "1d9b1c9e-4d0c-4d61-9a57-5d1f3d0f8f10",
		Plan:    "PRO",
		Status:  "PAST_DUE",
	}

	t.Run("delivered", func(t *testing.T) {
		h, notifications, _ := newTestPushHandler(t, developConfig(), nil)
		notifications.EXPECT().NotifySubscriptionChanged(mock.Anything, mock.MatchedBy(func(got *service.SubscriptionChangedEvent) bool {
			return got.UserID == event.UserID && got.RequestID == "req-from-api"
		})).Return(nil)

		rec := serve(h.HandleSubscriptionEvent, jsonRequest(http.MethodPost, "/push/subscription-events", pushBody(t, event)))

		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("transient failure asks for redelivery", func(t *testing.T) {
		h, notifications, _ := newTestPushHandler(t, developConfig(), nil)
		notifications.EXPECT().NotifySubscriptionChanged(mock.Anything, mock.Anything).Return(errors.New("smtp down"))

		rec := serve(h.HandleSubscriptionEvent, jsonRequest(http.MethodPost, "/push/subscription-events", pushBody(t, event)))

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	})

	t.Run("unprocessable event is dropped", func(t *testing.T) {
		h, notifications, _ := newTestPushHandler(t, developConfig(), nil)
		notifications.EXPECT().NotifySubscriptionChanged(mock.Anything, mock.Anything).
			Return(fmt.Errorf("%w: %q", usecase.ErrInvalidEventData, "x"))

		rec := serve(h.HandleSubscriptionEvent, jsonRequest(http.MethodPost, "/push/subscription-events", pushBody(t, event)))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("malformed data", func(t *testing.T) {
		h, _, _ := newTestPushHandler(t, developConfig(), nil)

		rec := serve(h.HandleSubscriptionEvent, jsonRequest(http.MethodPost, "/push/subscription-events", `{"message":{"data":"!!"}}`))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("google push requires a valid token outside development", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
		cfg.Env.Env = constants.EnvProduction

		var audience string
		validator := func(_ context.Context, token, aud string) (*idtoken.Payload, error) {
			audience = aud
			if token != "good" {
				return nil, errors.New("bad token")
			}

			return &idtoken.Payload{Issuer: "https://accounts.google.com", Claims: map[string]any{"email_verified": true}}, nil
		}
		h, notifications, _ := newTestPushHandler(t, cfg, validator)

		rec := serve(h.HandleSubscriptionEvent, jsonRequest(http.MethodPost, "/push/subscription-events", pushBody(t, event)))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)

		notifications.EXPECT().NotifySubscriptionChanged(mock.Anything, mock.Anything).Return(nil)
		req := jsonRequest(http.MethodPost, "/push/subscription-events", pushBody(t, event))
		req.Header.Set(echo.HeaderAuthorization, "Bearer good")
		rec = serve(h.HandleSubscriptionEvent, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "http://example.com/push/subscription-events", audience)
	})

	t.Run("foreign issuer is rejected", func(t *testing.T) {
		cfg := &config.Config{PubSub: &config.PubSubConfig{Provider: constants.PubSubProviderGoogle}}
		cfg.Env.Env = constants.EnvStaging
		validator := func(context.Context, string, string) (*idtoken.Payload, error) {
			return &idtoken.Payload{Issuer: "https://evil.example"}, nil
		}
		h, _, _ := newTestPushHandler(t, cfg, validator)

		req := jsonRequest(http.MethodPost, "/push/subscription-events", pushBody(t, event))
		req.Header.Set(echo.HeaderAuthorization, "Bearer any")

		assert.Equal(t, http.StatusUnauthorized, serve(h.HandleSubscriptionEvent, req).Code)
	})
}

func TestHandleCleanup(t *testing.T) {
	h, _, maintenance := newTestPushHandler(t, developConfig(), nil)
	maintenance.EXPECT().Cleanup(mock.Anything).Return(&usecase.CleanupResult{RefreshTokens: 4, ResetTokens: 2}, nil)

	rec := serve(h.HandleCleanup, httptest.NewRequest(http.MethodPost, "/tasks/cleanup", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"refreshTokens":4`)
	assert.Contains(t, rec.Body.String(), `"resetTokens":2`)
}

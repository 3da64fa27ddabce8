package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"
	"testing"
	"time"

	"saaskit/config"
	"saaskit/internal/domain/entity"
	domainerrors "saaskit/internal/domain/errors"
	"saaskit/internal/domain/service"
	"saaskit/internal/infra/auth"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFrontendURL = "https://app.example.com"

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"
	cfg.SecretKey.Refresh = "test_refresh_secret_key_very_long_for_testing"
	cfg.Auth = &config.AuthConfig{
		BcryptCost:      4,
		AccessTokenTTL:  time.Minute,
		RefreshTokenTTL: time.Hour,
		ResetTokenTTL:   time.Hour,
	}
	cfg.PasswordStrength = &config.PasswordStrengthConfig{MinLength: 8, MaxLength: 72}
	cfg.App.FrontendURL = testFrontendURL
	cfg.Billing = &config.BillingConfig{FreeProjectLimit: 3}

	return cfg
}

// requireAppError asserts err carries target and surfaces with target's kind.
func requireAppError(t *testing.T, err error, target *domainerrors.BaseError) {
	t.Helper()

	require.Error(t, err)
	assert.True(t, errors.Is(err, target), "expected %s, got %v", target.ErrorCode(), err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr), "no AppError in %v", err)
	assert.Equal(t, target.Kind(), appErr.Kind())
}

// recordingMailer keeps every message instead of sending it.
type recordingMailer struct {
	mu        sync.Mutex
	welcomed  []string
	resetURLs []string
	notices   []*entity.Subscription
	err       error
}

func (m *recordingMailer) SendWelcome(_ context.Context, user *entity.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.welcomed = append(m.welcomed, user.Email)

	return m.err
}

func (m *recordingMailer) SendPasswordReset(_ context.Context, _ *entity.User, resetURL string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.resetURLs = append(m.resetURLs, resetURL)

	return nil
}

func (m *recordingMailer) SendSubscriptionNotice(_ context.Context, _ *entity.User, sub *entity.Subscription) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.notices = append(m.notices, sub)

	return nil
}

// recordingPublisher keeps every published event.
type recordingPublisher struct {
	mu     sync.Mutex
	events []*service.SubscriptionChangedEvent
	err    error
}

func (p *recordingPublisher) PublishSubscriptionChanged(_ context.Context, event *service.SubscriptionChangedEvent) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)

	return p.err
}

func (p *recordingPublisher) Close() error { return nil }

// authHarness wires the auth flow against the in-memory store and the real
// JWT and bcrypt implementations.
type authHarness struct {
	store   *memStore
	tokens  service.TokenService
	hasher  service.PasswordHasher
	manager *tokenManager
	auth    *authService
	mailer  *recordingMailer
}

func newAuthHarness(t *testing.T) *authHarness {
	t.Helper()

	cfg := newTestConfig()
	tokens, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	store := newMemStore()
	mailer := &recordingMailer{}
	hasher := auth.NewBcryptHasher(cfg)
	logger := discardLogger()

	manager := NewTokenManager(TokenManagerParams{
		RefreshTokenRepo: store,
		UserRepo:         store,
		TokenService:     tokens,
		Logger:           logger,
	})

	authSvc := NewAuthService(AuthServiceParams{
		TxManager: store,
		UserRepo:  store,
		ResetRepo: store,
		Tokens:    manager,
		Hasher:    hasher,
		Mailer:    mailer,
		Config:    cfg,
		Logger:    logger,
	})

	return &authHarness{
		store:   store,
		tokens:  tokens,
		hasher:  hasher,
		manager: manager.(*tokenManager),
		auth:    authSvc.(*authService),
		mailer:  mailer,
	}
}

// seedUser stores an active user together with a subscription row.
func seedUser(t *testing.T, store *memStore, email string, plan entity.Plan, status entity.SubscriptionStatus) *entity.User {
	t.Helper()

	ctx := context.Background()
	user := &entity.User{Email: email, PasswordHash: "hash", Role: entity.RoleUser, IsActive: true}
	require.NoError(t, store.CreateUser(ctx, user))

	sub := &entity.Subscription{ID: uuid.New(), UserID: user.ID, Plan: plan, Status: status}
	require.NoError(t, store.CreateSubscription(ctx, sub))
	user.Subscription = sub

	return user
}

func strPtr(s string) *string { return &s }

package impl

import (
	"context"
	"strings"
	"testing"
	"time"

	"saaskit/internal/domain/entity"
	domainerrors "saaskit/internal/domain/errors"
	"saaskit/internal/domain/repository"
	mockRepo "saaskit/internal/mocks/repository"
	mockSvc "saaskit/internal/mocks/service"
	mockUsecase "saaskit/internal/mocks/usecase"
	"saaskit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func registerInput(email string) *usecase.RegisterInput {
	return &usecase.RegisterInput{
		Email:     email,
		Password:  "Password123!",
		FirstName: " Alice ",
		LastName:  "Smith",
	}
}

func TestAuthService_Register_CreatesUserAndFreeSubscription(t *testing.T) {
	h := newAuthHarness(t)
	ctx := context.Background()

	out, err := h.auth.Register(ctx, registerInput("Alice@Example.com "))
	require.NoError(t, err)

	require.Len(t, h.store.users, 1)
	assert.Equal(t, 1, h.store.subscriptionCount())
	assert.Equal(t, "alice@example.com", out.User.Email)
	assert.Equal(t, "Alice", out.User.FirstName)
	assert.Equal(t, entity.RoleUser, out.User.Role)
	assert.True(t, out.User.IsActive)

	sub, err := h.store.FindSubscriptionByUserID(ctx, out.User.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.PlanFree, sub.Plan)
	assert.Equal(t, entity.StatusActive, sub.Status)

	claims, err := h.tokens.ParseAccessToken(out.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, claims.UserID)

	assert.Equal(t, 1, h.store.refreshTokenCount(out.User.ID))
	assert.Equal(t, []string{"alice@example.com"}, h.mailer.welcomed)
}

func TestAuthService_Register_DuplicateEmail(t *testing.T) {
	h := newAuthHarness(t)
	ctx := context.Background()

	_, err := h.auth.Register(ctx, registerInput("alice@example.com"))
	require.NoError(t, err)

	_, err = h.auth.Register(ctx, registerInput("ALICE@example.com"))
	requireAppError(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Len(t, h.store.users, 1)
}

func TestAuthService_Register_WeakPassword(t *testing.T) {
	h := newAuthHarness(t)

	input := registerInput("alice@example.com")
	input.Password = "short"

	_, err := h.auth.Register(context.Background(), input)
	requireAppError(t, err, domainerrors.ErrPasswordStrength)
	assert.Empty(t, h.store.users)
}

func TestAuthService_Register_WelcomeMailFailureIsNotFatal(t *testing.T) {
	h := newAuthHarness(t)
	h.mailer.err = errors.New("smtp down")

	out, err := h.auth.Register(context.Background(), registerInput("alice@example.com"))
	require.NoError(t, err)
	assert.NotEmpty(t, out.AccessToken)
}

func TestAuthService_Register_RollsBackWhenSubscriptionFails(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	tokens := mockUsecase.NewMockTokenManager(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	mailer := mockSvc.NewMockMailer(t)

	srv := NewAuthService(AuthServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		ResetRepo: mockRepo.NewMockPasswordResetRepository(t),
		Tokens:    tokens,
		Hasher:    hasher,
		Mailer:    mailer,
		Config:    newTestConfig(),
		Logger:    discardLogger(),
	})

	ctx := context.Background()
	input := registerInput("alice@example.com")
	dbErr := errors.New("insert failed")

	userRepo.EXPECT().FindUserByEmail(ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	hasher.EXPECT().Hash(input.Password).Return("hashed_password", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewSubscriptionRepository().Return(mockSubRepo)

			mockUserRepo.EXPECT().
				CreateUser(ctx, mock.AnythingOfType("*entity.User")).
				Run(func(_ context.Context, user *entity.User) {
					user.ID = uuid.New()
				}).
				Return(nil)
			mockSubRepo.EXPECT().
				CreateSubscription(ctx, mock.AnythingOfType("*entity.Subscription")).
				Return(dbErr)

			return fn(mockFactory)
		})

	_, err := srv.Register(ctx, input)
	require.Error(t, err)
	assert.True(t, errors.Is(err, dbErr))
}

func TestAuthService_Login(t *testing.T) {
	h := newAuthHarness(t)
	ctx := context.Background()

	reg, err := h.auth.Register(ctx, registerInput("alice@example.com"))
	require.NoError(t, err)

	t.Run("valid credentials", func(t *testing.T) {
		out, err := h.auth.Login(ctx, &usecase.LoginInput{Email: " ALICE@example.com", Password: "Password123!"})
		require.NoError(t, err)
		assert.Equal(t, reg.User.ID, out.User.ID)
		assert.NotEmpty(t, out.RefreshToken)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := h.auth.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "nope-nope"})
		requireAppError(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		_, err := h.auth.Login(ctx, &usecase.LoginInput{Email: "bob@example.com", Password: "Password123!"})
		requireAppError(t, err, domainerrors.ErrInvalidCredentials)
	})

	t.Run("disabled account", func(t *testing.T) {
		inactive := false
		_, err := h.store.UpdateUser(ctx, reg.User.ID, &entity.UserPatch{IsActive: &inactive})
		require.NoError(t, err)

		_, err = h.auth.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "Password123!"})
		requireAppError(t, err, domainerrors.ErrInvalidCredentials)
	})
}

func TestAuthService_RegisterLoginMe(t *testing.T) {
	h := newAuthHarness(t)
	ctx := context.Background()

	_, err := h.auth.Register(ctx, registerInput("alice@example.com"))
	require.NoError(t, err)

	login, err := h.auth.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "Password123!"})
	require.NoError(t, err)

	identity, err := h.manager.VerifyAccessToken(login.AccessToken)
	require.NoError(t, err)

	me, err := h.auth.Me(ctx, identity.UserID)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleUser, me.Role)
	require.NotNil(t, me.Subscription)
	assert.Equal(t, entity.PlanFree, me.Subscription.Plan)
	assert.Equal(t, entity.StatusActive, me.Subscription.Status)
}

func TestAuthService_Me_UnknownUser(t *testing.T) {
	h := newAuthHarness(t)

	_, err := h.auth.Me(context.Background(), uuid.New())
	requireAppError(t, err, domainerrors.ErrUserNotFound)
}

func TestAuthService_Logout_RevokesEveryRefreshToken(t *testing.T) {
	h := newAuthHarness(t)
	ctx := context.Background()

	reg, err := h.auth.Register(ctx, registerInput("alice@example.com"))
	require.NoError(t, err)
	second, err := h.auth.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "Password123!"})
	require.NoError(t, err)
	require.Equal(t, 2, h.store.refreshTokenCount(reg.User.ID))

	require.NoError(t, h.auth.Logout(ctx, reg.User.ID))

	for _, token := range []string{reg.RefreshToken, second.RefreshToken} {
		_, err := h.auth.Refresh(ctx, token)
		requireAppError(t, err, domainerrors.ErrRefreshTokenInvalid)
	}
	assert.Zero(t, h.store.refreshTokenCount(reg.User.ID))
}

func resetTokenFrom(t *testing.T, resetURL string) string {
	t.Helper()

	prefix := testFrontendURL + "/reset-password?token="
	require.True(t, strings.HasPrefix(resetURL, prefix), resetURL)

	return strings.TrimPrefix(resetURL, prefix)
}

func TestAuthService_PasswordReset_SingleUse(t *testing.T) {
	h := newAuthHarness(t)
	ctx := context.Background()

	reg, err := h.auth.Register(ctx, registerInput("alice@example.com"))
	require.NoError(t, err)

	require.NoError(t, h.auth.ForgotPassword(ctx, "Alice@Example.com"))
	require.Len(t, h.mailer.resetURLs, 1)
	token := resetTokenFrom(t, h.mailer.resetURLs[0])
	assert.Len(t, token, 2*resetTokenBytes)

	input := &usecase.ResetPasswordInput{Token: token, Password: "BrandNew456!"}
	require.NoError(t, h.auth.ResetPassword(ctx, input))

	err = h.auth.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: token, Password: "Another789!"})
	requireAppError(t, err, domainerrors.ErrResetTokenInvalid)

	// Sessions issued before the reset are gone.
	_, err = h.auth.Refresh(ctx, reg.RefreshToken)
	requireAppError(t, err, domainerrors.ErrRefreshTokenInvalid)

	_, err = h.auth.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "Password123!"})
	requireAppError(t, err, domainerrors.ErrInvalidCredentials)

	_, err = h.auth.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "BrandNew456!"})
	require.NoError(t, err)
}

func TestAuthService_ForgotPassword_ReplacesPreviousToken(t *testing.T) {
	h := newAuthHarness(t)
	ctx := context.Background()

	_, err := h.auth.Register(ctx, registerInput("alice@example.com"))
	require.NoError(t, err)

	require.NoError(t, h.auth.ForgotPassword(ctx, "alice@example.com"))
	require.NoError(t, h.auth.ForgotPassword(ctx, "alice@example.com"))
	require.Len(t, h.mailer.resetURLs, 2)
	assert.Len(t, h.store.resetTokens, 1)

	stale := resetTokenFrom(t, h.mailer.resetURLs[0])
	err = h.auth.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: stale, Password: "BrandNew456!"})
	requireAppError(t, err, domainerrors.ErrResetTokenInvalid)

	fresh := resetTokenFrom(t, h.mailer.resetURLs[1])
	require.NoError(t, h.auth.ResetPassword(ctx, &usecase.ResetPasswordInput{Token: fresh, Password: "BrandNew456!"}))
}

func TestAuthService_ForgotPassword_UnknownEmailIsSilent(t *testing.T) {
	h := newAuthHarness(t)

	require.NoError(t, h.auth.ForgotPassword(context.Background(), "nobody@example.com"))
	assert.Empty(t, h.mailer.resetURLs)
	assert.Empty(t, h.store.resetTokens)
}

func TestAuthService_ForgotPassword_MailFailure(t *testing.T) {
	h := newAuthHarness(t)
	ctx := context.Background()

	_, err := h.auth.Register(ctx, registerInput("alice@example.com"))
	require.NoError(t, err)

	h.mailer.err = errors.New("smtp down")
	err = h.auth.ForgotPassword(ctx, "alice@example.com")
	requireAppError(t, err, domainerrors.ErrMailSendFailed)
}

func TestAuthService_ResetPassword_Rejections(t *testing.T) {
	h := newAuthHarness(t)
	ctx := context.Background()

	reg, err := h.auth.Register(ctx, registerInput("alice@example.com"))
	require.NoError(t, err)

	expired := &entity.PasswordResetToken{
		Token:     "expired-token",
		UserID:    reg.User.ID,
		ExpiresAt: h.auth.now().Add(-time.Minute),
	}
	require.NoError(t, h.store.CreateResetToken(ctx, expired))

	tests := []struct {
		name   string
		input  *usecase.ResetPasswordInput
		target *domainerrors.BaseError
	}{
		{"unknown token", &usecase.ResetPasswordInput{Token: "missing", Password: "BrandNew456!"}, domainerrors.ErrResetTokenInvalid},
		{"expired token", &usecase.ResetPasswordInput{Token: "expired-token", Password: "BrandNew456!"}, domainerrors.ErrResetTokenInvalid},
		{"weak password", &usecase.ResetPasswordInput{Token: "expired-token", Password: "short"}, domainerrors.ErrPasswordStrength},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			requireAppError(t, h.auth.ResetPassword(ctx, tt.input), tt.target)
		})
	}
}

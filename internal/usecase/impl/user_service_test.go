package impl

import (
	"context"
	"fmt"
	"testing"

	"saaskit/internal/domain/entity"
	domainerrors "saaskit/internal/domain/errors"
	"saaskit/internal/domain/repository"
	mockRepo "saaskit/internal/mocks/repository"
	mockSvc "saaskit/internal/mocks/service"
	"saaskit/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service usecase.UserUsecase
	harness *authHarness
}

func createTestUserService(t *testing.T) userServiceFixtures {
	h := newAuthHarness(t)

	srv := NewUserService(UserServiceParams{
		TxManager: h.store,
		UserRepo:  h.store,
		Hasher:    h.hasher,
		Config:    newTestConfig(),
		Logger:    discardLogger(),
	})

	return userServiceFixtures{service: srv, harness: h}
}

func TestUserService_UpdateProfile(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := seedUser(t, fx.harness.store, "alice@example.com", entity.PlanFree, entity.StatusActive)

	updated, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{FirstName: strPtr("  Alice ")})
	require.NoError(t, err)
	assert.Equal(t, "Alice", updated.FirstName)
	assert.Empty(t, updated.LastName)

	unchanged, err := fx.service.UpdateProfile(ctx, user.ID, &usecase.UpdateProfileInput{})
	require.NoError(t, err)
	assert.Equal(t, "Alice", unchanged.FirstName)

	_, err = fx.service.UpdateProfile(ctx, uuid.New(), &usecase.UpdateProfileInput{LastName: strPtr("X")})
	requireAppError(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_ChangePassword(t *testing.T) {
	fx := createTestUserService(t)
	h := fx.harness
	ctx := context.Background()

	reg, err := h.auth.Register(ctx, registerInput("alice@example.com"))
	require.NoError(t, err)

	t.Run("wrong current password", func(t *testing.T) {
		err := fx.service.ChangePassword(ctx, reg.User.ID, &usecase.ChangePasswordInput{
			CurrentPassword: "not-it-at-all",
			NewPassword:     "BrandNew456!",
		})
		requireAppError(t, err, domainerrors.ErrCurrentPasswordWrong)
	})

	t.Run("weak new password", func(t *testing.T) {
		err := fx.service.ChangePassword(ctx, reg.User.ID, &usecase.ChangePasswordInput{
			CurrentPassword: "Password123!",
			NewPassword:     "short",
		})
		requireAppError(t, err, domainerrors.ErrPasswordStrength)
	})

	t.Run("success revokes sessions", func(t *testing.T) {
		err := fx.service.ChangePassword(ctx, reg.User.ID, &usecase.ChangePasswordInput{
			CurrentPassword: "Password123!",
			NewPassword:     "BrandNew456!",
		})
		require.NoError(t, err)

		_, err = h.auth.Refresh(ctx, reg.RefreshToken)
		requireAppError(t, err, domainerrors.ErrRefreshTokenInvalid)

		_, err = h.auth.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "BrandNew456!"})
		require.NoError(t, err)
	})
}

func TestUserService_ChangePassword_RollsBack(t *testing.T) {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	srv := NewUserService(UserServiceParams{
		TxManager: txManager,
		UserRepo:  userRepo,
		Hasher:    hasher,
		Config:    newTestConfig(),
		Logger:    discardLogger(),
	})

	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "old_hash", IsActive: true}
	dbErr := errors.New("deadlock detected")

	userRepo.EXPECT().FindUserByID(ctx, user.ID).Return(user, nil)
	hasher.EXPECT().Check("Password123!", "old_hash").Return(true)
	hasher.EXPECT().Hash("BrandNew456!").Return("new_hash", nil)

	txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			mockUserRepo := mockRepo.NewMockUserRepository(t)
			mockRefreshRepo := mockRepo.NewMockRefreshTokenRepository(t)

			mockFactory.EXPECT().NewUserRepository().Return(mockUserRepo)
			mockFactory.EXPECT().NewRefreshTokenRepository().Return(mockRefreshRepo)

			mockUserRepo.EXPECT().
				UpdateUser(ctx, user.ID, mock.MatchedBy(func(p *entity.UserPatch) bool {
					return p.PasswordHash != nil && *p.PasswordHash == "new_hash"
				})).
				Return(user, nil)
			mockRefreshRepo.EXPECT().DeleteRefreshTokensByUserID(ctx, user.ID).Return(0, dbErr)

			return fn(mockFactory)
		})

	err := srv.ChangePassword(ctx, user.ID, &usecase.ChangePasswordInput{
		CurrentPassword: "Password123!",
		NewPassword:     "BrandNew456!",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, dbErr))
}

func TestUserService_DeleteAccount(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := seedUser(t, fx.harness.store, "alice@example.com", entity.PlanFree, entity.StatusActive)
	_, err := fx.harness.manager.IssueRefreshToken(ctx, user.ID)
	require.NoError(t, err)

	require.NoError(t, fx.service.DeleteAccount(ctx, user.ID))

	_, err = fx.service.GetUser(ctx, user.ID)
	requireAppError(t, err, domainerrors.ErrUserNotFound)
	assert.Zero(t, fx.harness.store.refreshTokenCount(user.ID))
	assert.Zero(t, fx.harness.store.subscriptionCount())

	requireAppError(t, fx.service.DeleteAccount(ctx, user.ID), domainerrors.ErrUserNotFound)
}

func TestUserService_ListUsers(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	for i := range 12 {
		seedUser(t, fx.harness.store, fmt.Sprintf("user%02d@example.com", i), entity.PlanFree, entity.StatusActive)
	}

	list, err := fx.service.ListUsers(ctx, &usecase.ListUsersInput{Page: 2, Limit: 5})
	require.NoError(t, err)
	assert.Len(t, list.Users, 5)
	assert.Equal(t, usecase.Pagination{Page: 2, Limit: 5, Total: 12, Pages: 3}, list.Pagination)

	list, err = fx.service.ListUsers(ctx, &usecase.ListUsersInput{Search: "USER07"})
	require.NoError(t, err)
	require.Len(t, list.Users, 1)
	assert.Equal(t, "user07@example.com", list.Users[0].Email)
	assert.Equal(t, defaultPageLimit, list.Pagination.Limit)

	list, err = fx.service.ListUsers(ctx, &usecase.ListUsersInput{Page: -1, Limit: 1000})
	require.NoError(t, err)
	assert.Equal(t, 1, list.Pagination.Page)
	assert.Equal(t, maxPageLimit, list.Pagination.Limit)
}

func TestUserService_UpdateUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := seedUser(t, fx.harness.store, "alice@example.com", entity.PlanFree, entity.StatusActive)

	t.Run("promote", func(t *testing.T) {
		admin := entity.RoleAdmin
		updated, err := fx.service.UpdateUser(ctx, user.ID, &usecase.AdminUpdateUserInput{Role: &admin})
		require.NoError(t, err)
		assert.True(t, updated.IsAdmin())
	})

	t.Run("invalid role", func(t *testing.T) {
		bogus := entity.Role("ROOT")
		_, err := fx.service.UpdateUser(ctx, user.ID, &usecase.AdminUpdateUserInput{Role: &bogus})
		requireAppError(t, err, domainerrors.ErrValidationFailed)
	})

	t.Run("deactivate revokes refresh tokens", func(t *testing.T) {
		token, err := fx.harness.manager.IssueRefreshToken(ctx, user.ID)
		require.NoError(t, err)

		inactive := false
		updated, err := fx.service.UpdateUser(ctx, user.ID, &usecase.AdminUpdateUserInput{IsActive: &inactive})
		require.NoError(t, err)
		assert.False(t, updated.IsActive)

		_, err = fx.harness.manager.VerifyRefreshToken(ctx, token)
		requireAppError(t, err, domainerrors.ErrRefreshTokenInvalid)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := fx.service.UpdateUser(ctx, uuid.New(), &usecase.AdminUpdateUserInput{FirstName: strPtr("X")})
		requireAppError(t, err, domainerrors.ErrUserNotFound)
	})
}

func TestUserService_DeleteUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	admin := seedUser(t, fx.harness.store, "admin@example.com", entity.PlanFree, entity.StatusActive)
	user := seedUser(t, fx.harness.store, "alice@example.com", entity.PlanFree, entity.StatusActive)

	requireAppError(t, fx.service.DeleteUser(ctx, admin.ID, admin.ID), domainerrors.ErrCannotDeleteSelf)

	require.NoError(t, fx.service.DeleteUser(ctx, admin.ID, user.ID))
	requireAppError(t, fx.service.DeleteUser(ctx, admin.ID, user.ID), domainerrors.ErrUserNotFound)
}

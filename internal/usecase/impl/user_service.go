package impl

import (
	"context"
	"log/slog"
	"strings"

	"saaskit/config"
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

// userService implements the UserUsecase interface.
type userService struct {
	txManager repository.TransactionManager
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	passwords passwordPolicy
	logger    *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Config    *config.Config
	Logger    *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager: params.TxManager,
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		passwords: newPasswordPolicy(params.Config),
		logger:    params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func userNotFound(err error, op string) error {
	if errors.Is(err, repository.ErrUserNotFound) {
		return errors.Wrap(domainerrors.ErrUserNotFound, op)
	}

	return errors.Wrap(err, "failed to "+op)
}

func (srv *userService) GetUser(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, id)
	if err != nil {
		return nil, userNotFound(err, "get user")
	}

	return user, nil
}

// UpdateProfile changes the caller's names.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, input *usecase.UpdateProfileInput) (*entity.User, error) {
	patch := &entity.UserPatch{
		FirstName: trimmedPtr(input.FirstName),
		LastName:  trimmedPtr(input.LastName),
	}
	if patch.IsEmpty() {
		return srv.GetUser(ctx, userID)
	}

	user, err := srv.userRepo.UpdateUser(ctx, userID, patch)
	if err != nil {
		return nil, userNotFound(err, "update profile")
	}

	srv.log(ctx).Debug("Profile updated", slog.Any("userID", userID))

	return user, nil
}

// ChangePassword verifies the current password, stores the new one and
// signs the user out everywhere.
func (srv *userService) ChangePassword(ctx context.Context, userID uuid.UUID, input *usecase.ChangePasswordInput) error {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		return userNotFound(err, "change password")
	}

	if !srv.hasher.Check(input.CurrentPassword, user.PasswordHash) {
		return errors.Wrap(domainerrors.ErrCurrentPasswordWrong, "change password")
	}
	if err := srv.passwords.validate(input.NewPassword); err != nil {
		return err
	}

	hashedPassword, err := srv.hasher.Hash(input.NewPassword)
	if err != nil {
		return errors.Wrap(err, "failed to hash new password")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.NewUserRepository().UpdateUser(ctx, userID, &entity.UserPatch{PasswordHash: &hashedPassword}); err != nil {
			return errors.Wrap(err, "failed to store new password")
		}
		if _, err := repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, userID); err != nil {
			return errors.Wrap(err, "failed to revoke refresh tokens")
		}

		return nil
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute change password transaction")
	}

	srv.log(ctx).Info("Password changed", slog.Any("userID", userID))

	return nil
}

// DeleteAccount hard-deletes the caller. Owned rows go with it.
func (srv *userService) DeleteAccount(ctx context.Context, userID uuid.UUID) error {
	if err := srv.userRepo.DeleteUser(ctx, userID); err != nil {
		return userNotFound(err, "delete account")
	}

	srv.log(ctx).Info("Account deleted", slog.Any("userID", userID))

	return nil
}

func (srv *userService) ListUsers(ctx context.Context, input *usecase.ListUsersInput) (*usecase.UserList, error) {
	page := normalizePage(input.Page, input.Limit)

	users, total, err := srv.userRepo.ListUsers(ctx, repository.UserListFilter{
		Search: strings.TrimSpace(input.Search),
		Page:   page,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to list users")
	}

	return &usecase.UserList{Users: users, Pagination: newPagination(page, total)}, nil
}

// UpdateUser applies an admin change. Deactivating an account also revokes
// its refresh tokens so it cannot outlive the current access token.
func (srv *userService) UpdateUser(ctx context.Context, id uuid.UUID, input *usecase.AdminUpdateUserInput) (*entity.User, error) {
	if input.Role != nil && !input.Role.IsValid() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("role must be USER or ADMIN")
	}

	patch := &entity.UserPatch{
		FirstName: trimmedPtr(input.FirstName),
		LastName:  trimmedPtr(input.LastName),
		Role:      input.Role,
		IsActive:  input.IsActive,
	}
	if patch.IsEmpty() {
		return srv.GetUser(ctx, id)
	}

	var updated *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.NewUserRepository().UpdateUser(ctx, id, patch)
		if err != nil {
			return err
		}
		updated = user

		if input.IsActive != nil && !*input.IsActive {
			if _, err := repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, id); err != nil {
				return errors.Wrap(err, "failed to revoke refresh tokens")
			}
		}

		return nil
	})
	if err != nil {
		return nil, userNotFound(err, "update user")
	}

	srv.log(ctx).Info("User updated by admin", slog.Any("userID", id))

	return updated, nil
}

// DeleteUser removes another account. Admins cannot delete themselves here.
func (srv *userService) DeleteUser(ctx context.Context, actorID, id uuid.UUID) error {
	if actorID == id {
		return errors.Wrap(domainerrors.ErrCannotDeleteSelf, "delete user")
	}

	if err := srv.userRepo.DeleteUser(ctx, id); err != nil {
		return userNotFound(err, "delete user")
	}

	srv.log(ctx).Info("User deleted by admin", slog.Any("userID", id), slog.Any("actorID", actorID))

	return nil
}

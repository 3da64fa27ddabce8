package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

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

// authService implements the AuthUsecase interface.
type authService struct {
	txManager     repository.TransactionManager
	userRepo      repository.UserRepository
	resetRepo     repository.PasswordResetRepository
	tokens        usecase.TokenManager
	hasher        service.PasswordHasher
	mailer        service.Mailer
	passwords     passwordPolicy
	resetTokenTTL time.Duration
	frontendURL   string
	now           func() time.Time
	logger        *slog.Logger
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager repository.TransactionManager
	UserRepo  repository.UserRepository
	ResetRepo repository.PasswordResetRepository
	Tokens    usecase.TokenManager
	Hasher    service.PasswordHasher
	Mailer    service.Mailer
	Config    *config.Config
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	resetTokenTTL := time.Hour
	if params.Config.Auth != nil && params.Config.Auth.ResetTokenTTL > 0 {
		resetTokenTTL = params.Config.Auth.ResetTokenTTL
	}

	return &authService{
		txManager:     params.TxManager,
		userRepo:      params.UserRepo,
		resetRepo:     params.ResetRepo,
		tokens:        params.Tokens,
		hasher:        params.Hasher,
		mailer:        params.Mailer,
		passwords:     newPasswordPolicy(params.Config),
		resetTokenTTL: resetTokenTTL,
		frontendURL:   strings.TrimRight(params.Config.App.FrontendURL, "/"),
		now:           time.Now,
		logger:        params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates the user and its FREE/ACTIVE subscription in one
// transaction, then issues the first token pair.
func (srv *authService) Register(ctx context.Context, input *usecase.RegisterInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Info("Starting registration", slog.String("email", email))

	if err := srv.passwords.validate(input.Password); err != nil {
		return nil, err
	}

	if _, err := srv.userRepo.FindUserByEmail(ctx, email); err == nil {
		return nil, errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration rejected")
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to check existing user")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during registration")
	}

	user := &entity.User{
		Email:        email,
		PasswordHash: hashedPassword,
		FirstName:    strings.TrimSpace(input.FirstName),
		LastName:     strings.TrimSpace(input.LastName),
		Role:         entity.RoleUser,
		IsActive:     true,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewUserRepository().CreateUser(ctx, user); err != nil {
			if errors.Is(err, repository.ErrUserAlreadyExists) {
				return errors.Wrap(domainerrors.ErrUserAlreadyExists, "registration rejected")
			}

			return errors.Wrap(err, "failed to create user")
		}

		sub := entity.NewFreeSubscription(user.ID)
		if err := repoFactory.NewSubscriptionRepository().CreateSubscription(ctx, sub); err != nil {
			return errors.Wrap(err, "failed to create free subscription")
		}
		user.Subscription = sub

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Registration failed", slog.String("email", email), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to execute user registration transaction")
	}

	pair, err := srv.tokens.IssuePair(ctx, user)
	if err != nil {
		return nil, err
	}

	if err := srv.mailer.SendWelcome(ctx, user); err != nil {
		srv.log(ctx).Warn("Failed to send welcome email", slog.Any("userID", user.ID), slog.Any("error", err))
	}

	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: user, TokenPair: *pair}, nil
}

// Login checks the credentials. Unknown email, disabled account and wrong
// password are indistinguishable to the caller.
func (srv *authService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	user, err := srv.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", email), slog.String("reason", "unknown email"))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
		}

		return nil, errors.Wrap(err, "failed to load user for login")
	}

	if !user.IsActive {
		srv.log(ctx).Warn("Login failed", slog.Any("userID", user.ID), slog.String("reason", "account disabled"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.Any("userID", user.ID), slog.String("reason", "password mismatch"))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "login failed")
	}

	pair, err := srv.tokens.IssuePair(ctx, user)
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Debug("User logged in", slog.Any("userID", user.ID))

	return &usecase.AuthOutput{User: user, TokenPair: *pair}, nil
}

// Refresh exchanges a refresh token for a new pair.
func (srv *authService) Refresh(ctx context.Context, refreshToken string) (*usecase.TokenPair, error) {
	return srv.tokens.RotateRefreshToken(ctx, refreshToken)
}

// Logout revokes every refresh token of the user.
func (srv *authService) Logout(ctx context.Context, userID uuid.UUID) error {
	_, err := srv.tokens.RevokeAllForUser(ctx, userID)

	return err
}

// ForgotPassword replaces any pending reset token of the user and mails a link.
func (srv *authService) ForgotPassword(ctx context.Context, email string) error {
	email = normalizeEmail(email)

	user, err := srv.userRepo.FindUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Debug("Password reset requested for unknown email", slog.String("email", email))

			return nil
		}

		return errors.Wrap(err, "failed to load user for password reset")
	}
	if !user.IsActive {
		srv.log(ctx).Debug("Password reset requested for disabled account", slog.Any("userID", user.ID))

		return nil
	}

	token, err := randomToken(resetTokenBytes)
	if err != nil {
		return err
	}

	resetToken := &entity.PasswordResetToken{
		Token:     token,
		UserID:    user.ID,
		ExpiresAt: srv.now().Add(srv.resetTokenTTL),
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		resetRepo := repoFactory.NewPasswordResetRepository()
		if err := resetRepo.DeleteResetTokensByUserID(ctx, user.ID); err != nil {
			return errors.Wrap(err, "failed to delete previous reset tokens")
		}

		return errors.Wrap(resetRepo.CreateResetToken(ctx, resetToken), "failed to create reset token")
	})
	if err != nil {
		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	resetURL := srv.frontendURL + "/reset-password?token=" + token
	if err := srv.mailer.SendPasswordReset(ctx, user, resetURL); err != nil {
		srv.log(ctx).Error("Failed to send password reset email", slog.Any("userID", user.ID), slog.Any("error", err))

		return errors.Wrap(domainerrors.ErrMailSendFailed, err.Error())
	}

	srv.log(ctx).Info("Password reset email sent", slog.Any("userID", user.ID))

	return nil
}

// ResetPassword redeems a reset token. Marking the token used, storing the new
// hash and revoking refresh tokens commit together.
func (srv *authService) ResetPassword(ctx context.Context, input *usecase.ResetPasswordInput) error {
	if err := srv.passwords.validate(input.Password); err != nil {
		return err
	}

	resetToken, err := srv.resetRepo.FindResetToken(ctx, input.Token)
	if err != nil {
		if errors.Is(err, repository.ErrResetTokenNotFound) {
			return errors.Wrap(domainerrors.ErrResetTokenInvalid, "unknown reset token")
		}

		return errors.Wrap(err, "failed to load reset token")
	}
	if !resetToken.IsActionable(srv.now()) {
		return errors.Wrap(domainerrors.ErrResetTokenInvalid, "reset token used or expired")
	}

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return errors.Wrap(err, "failed to hash password during reset")
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewPasswordResetRepository().MarkResetTokenUsed(ctx, resetToken.ID); err != nil {
			if errors.Is(err, repository.ErrResetTokenAlreadyUsed) {
				return errors.Wrap(domainerrors.ErrResetTokenInvalid, "reset token already used")
			}

			return errors.Wrap(err, "failed to mark reset token used")
		}

		if _, err := repoFactory.NewUserRepository().UpdateUser(ctx, resetToken.UserID, &entity.UserPatch{PasswordHash: &hashedPassword}); err != nil {
			return errors.Wrap(err, "failed to update password")
		}

		if _, err := repoFactory.NewRefreshTokenRepository().DeleteRefreshTokensByUserID(ctx, resetToken.UserID); err != nil {
			return errors.Wrap(err, "failed to revoke refresh tokens")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Warn("Password reset failed", slog.Any("userID", resetToken.UserID), slog.Any("error", err))

		return errors.Wrap(err, "failed to execute password reset transaction")
	}

	srv.log(ctx).Info("Password reset completed", slog.Any("userID", resetToken.UserID))

	return nil
}

// Me returns the user with its subscription.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.User, error) {
	user, err := srv.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, errors.Wrap(domainerrors.ErrUserNotFound, "current user")
		}

		return nil, errors.Wrap(err, "failed to load current user")
	}

	return user, nil
}

package impl

import (
	"context"
	"log/slog"
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

// tokenManager implements the TokenManager interface.
type tokenManager struct {
	refreshTokenRepo repository.RefreshTokenRepository
	userRepo         repository.UserRepository
	tokenService     service.TokenService
	now              func() time.Time
	logger           *slog.Logger
}

// TokenManagerParams holds dependencies for TokenManager, injected by Fx.
type TokenManagerParams struct {
	fx.In

	RefreshTokenRepo repository.RefreshTokenRepository
	UserRepo         repository.UserRepository
	TokenService     service.TokenService
	Logger           *slog.Logger
}

// NewTokenManager is the constructor for tokenManager.
func NewTokenManager(params TokenManagerParams) usecase.TokenManager {
	return &tokenManager{
		refreshTokenRepo: params.RefreshTokenRepo,
		userRepo:         params.UserRepo,
		tokenService:     params.TokenService,
		now:              time.Now,
		logger:           params.Logger,
	}
}

func (tm *tokenManager) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, tm.logger)
}

// IssueAccessToken signs a short-lived token for identity.
func (tm *tokenManager) IssueAccessToken(identity service.Identity) (string, error) {
	token, err := tm.tokenService.SignAccessToken(identity)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return token, nil
}

// IssueRefreshToken stores the record first; a failed insert yields no token.
func (tm *tokenManager) IssueRefreshToken(ctx context.Context, userID uuid.UUID) (string, error) {
	record := &entity.RefreshToken{
		ID:        uuid.New(),
		UserID:    userID,
		ExpiresAt: tm.now().Add(tm.tokenService.RefreshTokenDuration()),
	}

	if err := tm.refreshTokenRepo.CreateRefreshToken(ctx, record); err != nil {
		return "", errors.Wrap(err, "failed to store refresh token")
	}

	token, err := tm.tokenService.SignRefreshToken(userID, record.ID, record.ExpiresAt)
	if err != nil {
		if delErr := tm.refreshTokenRepo.DeleteRefreshToken(ctx, record.ID); delErr != nil {
			tm.log(ctx).Warn("Failed to remove unsigned refresh token record", slog.Any("tokenID", record.ID), slog.Any("error", delErr))
		}

		return "", errors.Wrap(err, "failed to sign refresh token")
	}

	return token, nil
}

// IssuePair issues an access and a refresh token for user.
func (tm *tokenManager) IssuePair(ctx context.Context, user *entity.User) (*usecase.TokenPair, error) {
	accessToken, err := tm.IssueAccessToken(service.Identity{UserID: user.ID, Email: user.Email, Role: user.Role})
	if err != nil {
		return nil, err
	}

	refreshToken, err := tm.IssueRefreshToken(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &usecase.TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// VerifyAccessToken checks signature and expiry. It never touches storage.
func (tm *tokenManager) VerifyAccessToken(token string) (*service.Identity, error) {
	claims, err := tm.tokenService.ParseAccessToken(token)
	if err != nil {
		if errors.Is(err, service.ErrExpiredToken) {
			return nil, errors.Wrap(domainerrors.ErrExpiredToken, "access token expired")
		}

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, err.Error())
	}

	identity := claims.Identity()

	return &identity, nil
}

// VerifyRefreshToken checks the signature and that the backing record is live
// and owned by an active user.
func (tm *tokenManager) VerifyRefreshToken(ctx context.Context, token string) (*entity.RefreshToken, error) {
	record, _, err := tm.verifyRefreshToken(ctx, token)

	return record, err
}

func (tm *tokenManager) verifyRefreshToken(ctx context.Context, token string) (*entity.RefreshToken, *entity.User, error) {
	claims, err := tm.tokenService.ParseRefreshToken(token)
	if err != nil {
		return nil, nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, err.Error())
	}

	record, err := tm.refreshTokenRepo.FindRefreshTokenByID(ctx, claims.TokenID)
	if err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token was revoked or already used")
		}

		return nil, nil, errors.Wrap(err, "failed to load refresh token")
	}
	if record.UserID != claims.UserID {
		return nil, nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token owner mismatch")
	}
	if record.IsExpired(tm.now()) {
		return nil, nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token record expired")
	}

	user, err := tm.userRepo.FindUserByID(ctx, record.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token user no longer exists")
		}

		return nil, nil, errors.Wrap(err, "failed to load refresh token user")
	}
	if !user.IsActive {
		return nil, nil, errors.Wrap(domainerrors.ErrAccountDisabled, "refresh token user is disabled")
	}

	return record, user, nil
}

// RotateRefreshToken deletes the backing record before issuing the new pair.
// The delete is the claim: of two concurrent rotations only one removes the
// row, the other fails as if the token had already been used.
func (tm *tokenManager) RotateRefreshToken(ctx context.Context, oldToken string) (*usecase.TokenPair, error) {
	record, user, err := tm.verifyRefreshToken(ctx, oldToken)
	if err != nil {
		tm.log(ctx).Debug("Refresh token rejected", slog.Any("error", err))

		return nil, err
	}

	if err := tm.refreshTokenRepo.DeleteRefreshToken(ctx, record.ID); err != nil {
		if errors.Is(err, repository.ErrRefreshTokenNotFound) {
			tm.log(ctx).Warn("Refresh token reused concurrently", slog.Any("userID", user.ID), slog.Any("tokenID", record.ID))

			return nil, errors.Wrap(domainerrors.ErrRefreshTokenInvalid, "refresh token already used")
		}

		return nil, errors.Wrap(err, "failed to consume refresh token")
	}

	pair, err := tm.IssuePair(ctx, user)
	if err != nil {
		tm.log(ctx).Error("Failed to issue rotated token pair", slog.Any("userID", user.ID), slog.Any("error", err))

		return nil, err
	}

	tm.log(ctx).Debug("Refresh token rotated", slog.Any("userID", user.ID))

	return pair, nil
}

// RevokeAllForUser deletes every refresh token record of userID.
func (tm *tokenManager) RevokeAllForUser(ctx context.Context, userID uuid.UUID) (int64, error) {
	revoked, err := tm.refreshTokenRepo.DeleteRefreshTokensByUserID(ctx, userID)
	if err != nil {
		return 0, errors.Wrap(err, "failed to revoke refresh tokens")
	}

	tm.log(ctx).Info("Revoked refresh tokens", slog.Any("userID", userID), slog.Int64("count", revoked))

	return revoked, nil
}

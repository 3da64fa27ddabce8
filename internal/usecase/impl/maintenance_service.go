package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "saaskit/internal/delivery/context"
	"saaskit/internal/domain/repository"
	"saaskit/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

type maintenanceService struct {
	refreshTokenRepo repository.RefreshTokenRepository
	resetRepo        repository.PasswordResetRepository
	now              func() time.Time
	logger           *slog.Logger
}

// MaintenanceServiceParams holds dependencies for MaintenanceService, injected by Fx.
type MaintenanceServiceParams struct {
	fx.In

	RefreshTokenRepo repository.RefreshTokenRepository
	ResetRepo        repository.PasswordResetRepository
	Logger           *slog.Logger
}

func NewMaintenanceService(params MaintenanceServiceParams) usecase.MaintenanceUsecase {
	return &maintenanceService{
		refreshTokenRepo: params.RefreshTokenRepo,
		resetRepo:        params.ResetRepo,
		now:              time.Now,
		logger:           params.Logger,
	}
}

// Cleanup purges expired refresh tokens and reset tokens that are used or expired.
func (srv *maintenanceService) Cleanup(ctx context.Context) (*usecase.CleanupResult, error) {
	now := srv.now()

	refreshTokens, err := srv.refreshTokenRepo.DeleteExpiredRefreshTokens(ctx, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to purge refresh tokens")
	}

	resetTokens, err := srv.resetRepo.DeleteStaleResetTokens(ctx, now)
	if err != nil {
		return nil, errors.Wrap(err, "failed to purge reset tokens")
	}

	deliverycontext.GetLoggerOrDefault(ctx, srv.logger).Info("Credential cleanup finished",
		slog.Int64("refreshTokens", refreshTokens),
		slog.Int64("resetTokens", resetTokens),
	)

	return &usecase.CleanupResult{RefreshTokens: refreshTokens, ResetTokens: resetTokens}, nil
}

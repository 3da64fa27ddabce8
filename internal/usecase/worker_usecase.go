package usecase

import (
	"context"
	"errors"

	"saaskit/internal/domain/service"
)

// ErrInvalidEventData marks events that can never be processed; redelivering them is pointless.
var ErrInvalidEventData = errors.New("subscription event is missing a valid user id")

// CleanupResult counts the rows purged by one maintenance run.
type CleanupResult struct {
	RefreshTokens int64 `json:"refreshTokens"`
	ResetTokens   int64 `json:"resetTokens"`
}

// MaintenanceUsecase purges expired credentials.
type MaintenanceUsecase interface {
	Cleanup(ctx context.Context) (*CleanupResult, error)
}

// NotificationUsecase reacts to subscription events delivered to the worker.
type NotificationUsecase interface {
	NotifySubscriptionChanged(ctx context.Context, event *service.SubscriptionChangedEvent) error
}

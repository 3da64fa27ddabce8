package impl

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	deliverycontext "saaskit/internal/delivery/context"
	"saaskit/internal/domain/entity"
	"saaskit/internal/domain/repository"
	"saaskit/internal/domain/service"
	"saaskit/internal/usecase"

	"github.com/google/uuid"
)

type notificationService struct {
	userRepo repository.UserRepository
	mailer   service.Mailer
	logger   *slog.Logger
}

// NewNotificationService creates a new notification service instance
func NewNotificationService(
	userRepo repository.UserRepository,
	mailer service.Mailer,
	logger *slog.Logger,
) usecase.NotificationUsecase {
	return &notificationService{
		userRepo: userRepo,
		mailer:   mailer,
		logger:   logger,
	}
}

// NotifySubscriptionChanged emails the user the plan and status carried by the event
func (s *notificationService) NotifySubscriptionChanged(ctx context.Context, event *service.SubscriptionChangedEvent) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, s.logger)

	userID, err := uuid.Parse(event.UserID)
	if err != nil {
		return fmt.Errorf("%w: %q", usecase.ErrInvalidEventData, event.UserID)
	}

	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			// Account deleted after the event was published
			logger.Info("Skipping notice for deleted user", slog.String("userID", event.UserID))

			return nil
		}

		return fmt.Errorf("failed to load user: %w", err)
	}

	sub := &entity.Subscription{
		UserID: userID,
		Plan:   entity.Plan(event.Plan),
		Status: entity.SubscriptionStatus(event.Status),
	}
	if user.Subscription != nil {
		sub.CurrentPeriodEnd = user.Subscription.CurrentPeriodEnd
	}

	if err := s.mailer.SendSubscriptionNotice(ctx, user, sub); err != nil {
		return fmt.Errorf("failed to send subscription notice: %w", err)
	}

	logger.Info("Subscription notice sent",
		slog.String("userID", event.UserID),
		slog.String("eventID", event.EventID),
		slog.String("status", event.Status),
	)

	return nil
}

package mail

import (
	"context"
	"log/slog"

	"saaskit/internal/domain/entity"
)

// logMailer renders messages and writes them to the log instead of sending.
// Used when mail.enabled is false.
type logMailer struct {
	composer *composer
	logger   *slog.Logger
}

func (m *logMailer) SendWelcome(ctx context.Context, user *entity.User) error {
	msg, err := m.composer.welcome(user)
	if err != nil {
		return err
	}
	m.log(ctx, msg)

	return nil
}

func (m *logMailer) SendPasswordReset(ctx context.Context, user *entity.User, resetURL string) error {
	msg, err := m.composer.passwordReset(user, resetURL)
	if err != nil {
		return err
	}
	m.log(ctx, msg, slog.String("reset_url", resetURL))

	return nil
}

func (m *logMailer) SendSubscriptionNotice(ctx context.Context, user *entity.User, sub *entity.Subscription) error {
	msg, err := m.composer.subscriptionNotice(user, sub)
	if err != nil {
		return err
	}
	m.log(ctx, msg, slog.String("plan", string(sub.Plan)), slog.String("status", string(sub.Status)))

	return nil
}

func (m *logMailer) log(ctx context.Context, msg *message, attrs ...slog.Attr) {
	attrs = append([]slog.Attr{
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	}, attrs...)

	m.logger.LogAttrs(ctx, slog.LevelInfo, "[LogMailer] Mail not sent, delivery disabled", attrs...)
}

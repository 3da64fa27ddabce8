package mail

import (
	"context"
	"log/slog"

	"saaskit/config"
	"saaskit/internal/domain/entity"
	"saaskit/internal/errors"

	gomail "github.com/wneessen/go-mail"
)

// sender is satisfied by *gomail.Client.
type sender interface {
	DialAndSendWithContext(ctx context.Context, messages ...*gomail.Msg) error
}

type smtpMailer struct {
	sender    sender
	composer  *composer
	fromName  string
	fromEmail string
	logger    *slog.Logger
}

func newSMTPClient(cfg *config.MailConfig) (*gomail.Client, error) {
	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
		gomail.WithTLSPortPolicy(gomail.TLSOpportunistic),
	}
	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
			gomail.WithPassword(cfg.Password),
		)
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create SMTP client")
	}

	return client, nil
}

func (m *smtpMailer) SendWelcome(ctx context.Context, user *entity.User) error {
	msg, err := m.composer.welcome(user)
	if err != nil {
		return err
	}

	return m.send(ctx, msg)
}

func (m *smtpMailer) SendPasswordReset(ctx context.Context, user *entity.User, resetURL string) error {
	msg, err := m.composer.passwordReset(user, resetURL)
	if err != nil {
		return err
	}

	return m.send(ctx, msg)
}

func (m *smtpMailer) SendSubscriptionNotice(ctx context.Context, user *entity.User, sub *entity.Subscription) error {
	msg, err := m.composer.subscriptionNotice(user, sub)
	if err != nil {
		return err
	}

	return m.send(ctx, msg)
}

func (m *smtpMailer) send(ctx context.Context, msg *message) error {
	out := gomail.NewMsg()
	if err := out.FromFormat(m.fromName, m.fromEmail); err != nil {
		return errors.Wrap(err, "invalid sender address")
	}
	if err := out.To(msg.To); err != nil {
		return errors.Wrapf(err, "invalid recipient address %q", msg.To)
	}
	out.Subject(msg.Subject)
	out.SetBodyString(gomail.TypeTextHTML, msg.HTML)

	if err := m.sender.DialAndSendWithContext(ctx, out); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	m.logger.DebugContext(ctx, "Mail sent",
		slog.String("to", msg.To),
		slog.String("subject", msg.Subject),
	)

	return nil
}

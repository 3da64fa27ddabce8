// Package mail renders and delivers the transactional emails.
package mail

import (
	"log/slog"

	"saaskit/config"
	"saaskit/internal/domain/service"

	"go.uber.org/fx"
)

// Params defines the dependencies of the mailer.
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New returns an SMTP mailer when mail is enabled, otherwise a mailer that only logs.
func New(params Params) (service.Mailer, error) {
	comp, err := newComposer(params.Config)
	if err != nil {
		return nil, err
	}

	mailCfg := params.Config.Mail
	if mailCfg == nil || !mailCfg.Enabled {
		params.Logger.Info("Mail delivery disabled, using log mailer")

		return &logMailer{composer: comp, logger: params.Logger}, nil
	}

	client, err := newSMTPClient(mailCfg)
	if err != nil {
		return nil, err
	}

	params.Logger.Info("SMTP mailer initialized",
		slog.String("host", mailCfg.Host),
		slog.Int("port", mailCfg.Port),
	)

	return &smtpMailer{
		sender:    client,
		composer:  comp,
		fromName:  mailCfg.FromName,
		fromEmail: mailCfg.FromEmail,
		logger:    params.Logger,
	}, nil
}

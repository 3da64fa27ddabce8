package mail

import (
	"strconv"
	"strings"
	"time"

	"saaskit/config"
	"saaskit/internal/domain/entity"
)

// message is a rendered email ready for a transport.
type message struct {
	To      string
	Subject string
	HTML    string
}

// composer turns domain objects into messages. Both mailers share it.
type composer struct {
	renderer    *renderer
	appName     string
	appURL      string
	frontendURL string
	resetTTL    time.Duration
}

func newComposer(cfg *config.Config) (*composer, error) {
	r, err := newRenderer()
	if err != nil {
		return nil, err
	}

	var resetTTL time.Duration
	if cfg.Auth != nil {
		resetTTL = cfg.Auth.ResetTokenTTL
	}

	return &composer{
		renderer:    r,
		appName:     cfg.App.Name,
		appURL:      cfg.App.URL,
		frontendURL: strings.TrimRight(cfg.App.FrontendURL, "/"),
		resetTTL:    resetTTL,
	}, nil
}

func (c *composer) base(user *entity.User, actionURL string) *templateData {
	name := strings.TrimSpace(user.FirstName)
	if name == "" {
		name = "there"
	}

	return &templateData{
		AppName:   c.appName,
		AppURL:    c.appURL,
		Name:      name,
		ActionURL: actionURL,
	}
}

func (c *composer) welcome(user *entity.User) (*message, error) {
	html, err := c.renderer.render(tmplWelcome, c.base(user, c.frontendURL+"/dashboard"))
	if err != nil {
		return nil, err
	}

	return &message{To: user.Email, Subject: "Welcome - " + c.appName, HTML: html}, nil
}

func (c *composer) passwordReset(user *entity.User, resetURL string) (*message, error) {
	data := c.base(user, resetURL)
	data.ValidFor = humanDuration(c.resetTTL)

	html, err := c.renderer.render(tmplPasswordReset, data)
	if err != nil {
		return nil, err
	}

	return &message{To: user.Email, Subject: "Password reset - " + c.appName, HTML: html}, nil
}

func (c *composer) subscriptionNotice(user *entity.User, sub *entity.Subscription) (*message, error) {
	data := c.base(user, c.frontendURL+"/billing")
	data.Plan = string(sub.Plan)
	data.Status = string(sub.Status)
	if sub.CurrentPeriodEnd != nil {
		data.PeriodEnd = sub.CurrentPeriodEnd.UTC().Format("January 2, 2006")
	}

	html, err := c.renderer.render(tmplSubscriptionNotice, data)
	if err != nil {
		return nil, err
	}

	return &message{To: user.Email, Subject: "Subscription update - " + c.appName, HTML: html}, nil
}

func humanDuration(d time.Duration) string {
	switch {
	case d <= 0:
		return "a limited time"
	case d%time.Hour == 0:
		return plural(int(d/time.Hour), "hour")
	case d%time.Minute == 0:
		return plural(int(d/time.Minute), "minute")
	default:
		return d.String()
	}
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}

	return strconv.Itoa(n) + " " + unit + "s"
}

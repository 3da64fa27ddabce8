package mail

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"saaskit/config"
	"saaskit/internal/domain/entity"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomail "github.com/wneessen/go-mail"
)

type fakeSender struct {
	sent []*gomail.Msg
	err  error
}

func (f *fakeSender) DialAndSendWithContext(_ context.Context, messages ...*gomail.Msg) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, messages...)

	return nil
}

func testConfig() *config.Config {
	return &config.Config{
		App: config.AppConfig{
			Name:        "Acme",
			URL:         "https://api.acme.test",
			FrontendURL: "https://acme.test/",
		},
		Auth: &config.AuthConfig{ResetTokenTTL: time.Hour},
		Mail: &config.MailConfig{FromName: "Acme", FromEmail: "noreply@acme.test"},
	}
}

func testUser() *entity.User {
	return &entity.User{Email: "jane@example.com", FirstName: "Jane"}
}

func TestComposer(t *testing.T) {
	comp, err := newComposer(testConfig())
	require.NoError(t, err)

	t.Run("welcome links to the dashboard", func(t *testing.T) {
		msg, err := comp.welcome(testUser())
		require.NoError(t, err)
		assert.Equal(t, "jane@example.com", msg.To)
		assert.Equal(t, "Welcome - Acme", msg.Subject)
		assert.Contains(t, msg.HTML, "Welcome Jane!")
		assert.Contains(t, msg.HTML, `href="https://acme.test/dashboard"`)
		assert.Contains(t, msg.HTML, "Acme - https://api.acme.test")
	})

	t.Run("reset mail carries link and validity", func(t *testing.T) {
		msg, err := comp.passwordReset(testUser(), "https://acme.test/reset-password?token=abc")
		require.NoError(t, err)
		assert.Equal(t, "Password reset - Acme", msg.Subject)
		assert.Contains(t, msg.HTML, "https://acme.test/reset-password?token=abc")
		assert.Contains(t, msg.HTML, "valid for 1 hour")
	})

	t.Run("user content is escaped", func(t *testing.T) {
		msg, err := comp.welcome(&entity.User{Email: "x@example.com", FirstName: "<script>"})
		require.NoError(t, err)
		assert.NotContains(t, msg.HTML, "<script>")
		assert.Contains(t, msg.HTML, "&lt;script&gt;")
	})

	t.Run("missing first name falls back", func(t *testing.T) {
		msg, err := comp.passwordReset(&entity.User{Email: "x@example.com"}, "https://acme.test/r")
		require.NoError(t, err)
		assert.Contains(t, msg.HTML, "Hello there,")
	})

	t.Run("subscription notice shows plan and period end", func(t *testing.T) {
		end := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
		msg, err := comp.subscriptionNotice(testUser(), &entity.Subscription{
			Plan:             entity.PlanPro,
			Status:           entity.StatusPastDue,
			CurrentPeriodEnd: &end,
		})
		require.NoError(t, err)
		assert.Contains(t, msg.HTML, "<strong>PRO</strong>")
		assert.Contains(t, msg.HTML, "<strong>PAST_DUE</strong>")
		assert.Contains(t, msg.HTML, "March 1, 2026")
	})
}

func TestHumanDuration(t *testing.T) {
	tests := []struct {
		in   time.Duration
		want string
	}{
		{in: 0, want: "a limited time"},
		{in: time.Hour, want: "1 hour"},
		{in: 2 * time.Hour, want: "2 hours"},
		{in: 30 * time.Minute, want: "30 minutes"},
		{in: 90 * time.Second, want: "1m30s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, humanDuration(tt.in))
	}
}

func TestSMTPMailer_Send(t *testing.T) {
	comp, err := newComposer(testConfig())
	require.NoError(t, err)

	snd := &fakeSender{}
	mailer := &smtpMailer{
		sender:    snd,
		composer:  comp,
		fromName:  "Acme",
		fromEmail: "noreply@acme.test",
		logger:    slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)),
	}

	require.NoError(t, mailer.SendPasswordReset(context.Background(), testUser(), "https://acme.test/reset-password?token=abc"))
	require.Len(t, snd.sent, 1)

	msg := snd.sent[0]
	assert.Equal(t, []string{"<jane@example.com>"}, msg.GetToString())
	assert.Equal(t, []string{"Password reset - Acme"}, msg.GetGenHeader(gomail.HeaderSubject))

	snd.err = errors.New("connection refused")
	err = mailer.SendWelcome(context.Background(), testUser())
	assert.ErrorContains(t, err, "failed to send mail")

	err = mailer.SendWelcome(context.Background(), &entity.User{Email: "not an address"})
	assert.ErrorContains(t, err, "invalid recipient address")
}

func TestNew_UsesLogMailerWhenDisabled(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	mailer, err := New(Params{Config: testConfig(), Logger: logger})
	require.NoError(t, err)
	require.IsType(t, &logMailer{}, mailer)

	require.NoError(t, mailer.SendPasswordReset(context.Background(), testUser(), "https://acme.test/reset-password?token=abc"))
	assert.Contains(t, buf.String(), "reset_url=")
	assert.Contains(t, buf.String(), "to=jane@example.com")
}

package mail

import (
	"bytes"
	"html/template"

	"saaskit/internal/errors"
)

const layoutTemplate = `{{define "layout"}}<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
{{template "content" .}}
<hr>
<p style="color: #666; font-size: 12px;">{{.AppName}} - {{.AppURL}}</p>
</div>{{end}}`

const welcomeTemplate = `{{define "content"}}<h2>Welcome {{.Name}}!</h2>
<p>Thanks for joining {{.AppName}}.</p>
<p>Your account has been created and is ready to use.</p>
<a href="{{.ActionURL}}" style="background-color: #28a745; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; display: inline-block;">Go to dashboard</a>{{end}}`

const passwordResetTemplate = `{{define "content"}}<h2>Hello {{.Name}},</h2>
<p>We received a request to reset the password of your account.</p>
<p>Click the button below to choose a new password:</p>
<a href="{{.ActionURL}}" style="background-color: #007bff; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; display: inline-block;">Reset password</a>
<p>This link is valid for {{.ValidFor}}.</p>
<p>If you did not request this, you can ignore this email.</p>{{end}}`

const subscriptionNoticeTemplate = `{{define "content"}}<h2>Hello {{.Name}},</h2>
<p>Your {{.AppName}} subscription changed.</p>
<p>Plan: <strong>{{.Plan}}</strong><br>Status: <strong>{{.Status}}</strong></p>
{{if .PeriodEnd}}<p>Current period ends on {{.PeriodEnd}}.</p>{{end}}
<a href="{{.ActionURL}}" style="background-color: #007bff; color: white; padding: 12px 24px; text-decoration: none; border-radius: 4px; display: inline-block;">Manage subscription</a>{{end}}`

type templateName string

const (
	tmplWelcome            templateName = "welcome"
	tmplPasswordReset      templateName = "password_reset"
	tmplSubscriptionNotice templateName = "subscription_notice"
)

// templateData is the union of the fields the templates read.
type templateData struct {
	AppName   string
	AppURL    string
	Name      string
	ActionURL string
	ValidFor  string
	Plan      string
	Status    string
	PeriodEnd string
}

type renderer struct {
	templates map[templateName]*template.Template
}

func newRenderer() (*renderer, error) {
	sources := map[templateName]string{
		tmplWelcome:            welcomeTemplate,
		tmplPasswordReset:      passwordResetTemplate,
		tmplSubscriptionNotice: subscriptionNoticeTemplate,
	}

	r := &renderer{templates: make(map[templateName]*template.Template, len(sources))}
	for name, content := range sources {
		t, err := template.New(string(name)).Parse(layoutTemplate)
		if err != nil {
			return nil, errors.Wrap(err, "failed to parse mail layout")
		}
		if _, err := t.Parse(content); err != nil {
			return nil, errors.Wrapf(err, "failed to parse mail template %s", name)
		}
		r.templates[name] = t
	}

	return r, nil
}

func (r *renderer) render(name templateName, data *templateData) (string, error) {
	t, ok := r.templates[name]
	if !ok {
		return "", errors.Errorf("unknown mail template %s", name)
	}

	var buf bytes.Buffer
	if err := t.ExecuteTemplate(&buf, "layout", data); err != nil {
		return "", errors.Wrapf(err, "failed to render mail template %s", name)
	}

	return buf.String(), nil
}

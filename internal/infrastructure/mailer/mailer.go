package mailer

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	gomail "github.com/wneessen/go-mail"
	"go.uber.org/zap"
	"luckycat.backend/internal/config"
	"luckycat.backend/internal/domain/repositories"
)

// Mailer sends account notifications over SMTP
type Mailer struct {
	cfg    *config.MailConfig
	client *gomail.Client
	log    *zap.Logger
}

var clientSend = func(ctx context.Context, c *gomail.Client, msg *gomail.Msg) error {
	return c.DialAndSendWithContext(ctx, msg)
}

// New creates a mailer from SMTP configuration
func New(cfg *config.MailConfig, log *zap.Logger) (*Mailer, error) {
	if cfg.FromAddress == "" {
		return nil, fmt.Errorf("MAIL_FROM_ADDRESS is required")
	}

	opts := []gomail.Option{
		gomail.WithPort(cfg.Port),
	}

	if cfg.Username != "" {
		opts = append(opts,
			gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
			gomail.WithUsername(cfg.Username),
		)
	}
	if cfg.Password != "" {
		opts = append(opts, gomail.WithPassword(cfg.Password))
	}

	switch cfg.Encryption {
	case "ssl":
		opts = append(opts, gomail.WithSSL())
	case "none":
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.NoTLS))
	default:
		opts = append(opts, gomail.WithTLSPortPolicy(gomail.TLSMandatory))
	}

	client, err := gomail.NewClient(cfg.Host, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create mail client: %w", err)
	}

	return &Mailer{cfg: cfg, client: client, log: log}, nil
}

// Send renders the template for mail.Kind and dispatches it
func (m *Mailer) Send(ctx context.Context, mail *repositories.Mail) error {
	body, subject, err := m.render(mail)
	if err != nil {
		return err
	}

	msg := gomail.NewMsg()
	if err := msg.FromFormat(m.cfg.FromName, m.cfg.FromAddress); err != nil {
		return fmt.Errorf("invalid from address: %w", err)
	}
	if err := msg.AddToFormat(mail.Name, mail.To); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(gomail.TypeTextHTML, body)

	if err := clientSend(ctx, m.client, msg); err != nil {
		m.log.Error("failed to send email",
			zap.String("to", mail.To),
			zap.String("kind", string(mail.Kind)),
			zap.Error(err))
		return fmt.Errorf("failed to send email: %w", err)
	}

	m.log.Info("email sent",
		zap.String("to", mail.To),
		zap.String("kind", string(mail.Kind)))
	return nil
}

type templateData struct {
	Name string
	Link string
}

func (m *Mailer) render(mail *repositories.Mail) (body, subject string, err error) {
	var tmpl *template.Template
	switch mail.Kind {
	case repositories.MailKindVerification:
		tmpl = verificationTemplate
		subject = "Confirm your email"
	case repositories.MailKindReset:
		tmpl = resetTemplate
		subject = "Password reset request"
	case repositories.MailKindWelcome:
		tmpl = welcomeTemplate
		subject = fmt.Sprintf("Welcome, %s!", mail.Name)
	default:
		return "", "", fmt.Errorf("unknown mail kind: %q", mail.Kind)
	}

	data := templateData{Name: mail.Name}
	switch mail.Kind {
	case repositories.MailKindVerification:
		data.Link = m.cfg.FrontendURL + "/confirm-email?token=" + mail.Token
	case repositories.MailKindReset:
		data.Link = m.cfg.FrontendURL + "/reset-password?token=" + mail.Token
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to render %s template: %w", mail.Kind, err)
	}
	return buf.String(), subject, nil
}

var verificationTemplate = template.Must(template.New("verification").Parse(`<html>
  <body>
    <h1>Congratulations {{.Name}}!</h1>
    <p>You just registered on our platform. Please confirm your email address.</p>
    <p>Follow this link to confirm your email: <a href="{{.Link}}">Confirm Email</a></p>
  </body>
</html>`))

var resetTemplate = template.Must(template.New("reset").Parse(`<html>
  <body>
    <h1>Password Reset Request</h1>
    <p>Hello {{.Name}},</p>
    <p>We received a request to reset your password. Click the link below to set a new password:</p>
    <p><a href="{{.Link}}">Reset Password</a></p>
    <p>If you did not request a password reset, please ignore this email.</p>
  </body>
</html>`))

var welcomeTemplate = template.Must(template.New("welcome").Parse(`<html>
  <body>
    <h1>Welcome, {{.Name}}!</h1>
    <p>Your email is confirmed. Enjoy your stay.</p>
  </body>
</html>`))

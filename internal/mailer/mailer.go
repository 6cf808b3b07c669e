package mailer

import (
	"fmt"
	"net/smtp"
	"strings"

	"github.com/rohitpatil07/flaskapp/internal/config"
	"github.com/rohitpatil07/flaskapp/internal/models"

	"github.com/rs/zerolog/log"
)

// Mailer delivers the password-reset email. Delivery failures are the
// collaborator's problem; callers only log them.
type Mailer interface {
	SendPasswordReset(user *models.User, resetLink string) error
}

// New picks the implementation from config: a dry-run mailer that only logs,
// or a real SMTP sender.
func New(cfg config.MailConfig) Mailer {
	if cfg.DryRun || cfg.Host == "" {
		return &logMailer{}
	}
	return &smtpMailer{cfg: cfg}
}

type smtpMailer struct {
	cfg config.MailConfig
}

func (m *smtpMailer) SendPasswordReset(user *models.User, resetLink string) error {
	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.cfg.From)
	fmt.Fprintf(&b, "To: %s\r\n", user.Email)
	fmt.Fprintf(&b, "Subject: Reset your password\r\n")
	fmt.Fprintf(&b, "\r\n")
	fmt.Fprintf(&b, "Hi %s,\r\n\r\n", user.Username)
	fmt.Fprintf(&b, "To reset your password, open the link below:\r\n\r\n%s\r\n\r\n", resetLink)
	fmt.Fprintf(&b, "The link expires shortly. If you did not request a reset, ignore this email.\r\n")

	addr := fmt.Sprintf("%s:%d", m.cfg.Host, m.cfg.Port)
	var auth smtp.Auth
	if m.cfg.Username != "" {
		auth = smtp.PlainAuth("", m.cfg.Username, m.cfg.Password, m.cfg.Host)
	}
	if err := smtp.SendMail(addr, auth, m.cfg.From, []string{user.Email}, []byte(b.String())); err != nil {
		return fmt.Errorf("send reset mail: %w", err)
	}
	return nil
}

// logMailer is the development mailer: it writes the link to the log instead
// of delivering anything.
type logMailer struct{}

func (m *logMailer) SendPasswordReset(user *models.User, resetLink string) error {
	log.Info().
		Str("to", user.Email).
		Str("link", resetLink).
		Msg("password reset mail (dry run)")
	return nil
}

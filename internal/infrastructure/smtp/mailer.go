package smtp

import (
	"fmt"
	"log/slog"
	"net/smtp"

	"github.com/vsb-platform/notification-api/internal/config"
)

// Mailer sends HTML emails.
type Mailer interface {
	SendEmail(to, subject, body string) error
	// SendBulk attempts delivery to every recipient, continuing past
	// individual failures, and returns the recipients that failed.
	SendBulk(recipients []string, subject, body string) []string
}

type mailer struct {
	host     string
	port     string
	from     string
	username string
	password string
}

func NewMailer(cfg *config.Config) Mailer {
	return &mailer{
		host:     cfg.SMTPHost,
		port:     cfg.SMTPPort,
		from:     cfg.SMTPFrom,
		username: cfg.SMTPUsername,
		password: cfg.SMTPPassword,
	}
}

func (m *mailer) SendEmail(to, subject, body string) error {
	msg := fmt.Sprintf("From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/html; charset=UTF-8\r\n\r\n%s",
		m.from, to, subject, body)
	addr := fmt.Sprintf("%s:%s", m.host, m.port)

	var auth smtp.Auth
	if m.username != "" {
		auth = smtp.PlainAuth("", m.username, m.password, m.host)
	}

	return smtp.SendMail(addr, auth, m.from, []string{to}, []byte(msg))
}

func (m *mailer) SendBulk(recipients []string, subject, body string) []string {
	var failed []string
	for _, to := range recipients {
		if err := m.SendEmail(to, subject, body); err != nil {
			failed = append(failed, to)
			slog.Warn("bulk send: delivery failed", "to", to, "err", err)
		}
	}
	return failed
}

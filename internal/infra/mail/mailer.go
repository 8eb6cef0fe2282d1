// Package mail delivers transactional email over SMTP, with a log-only
// fallback for local development.
package mail

import (
	"context"
	"fmt"
	"log/slog"
	"net/smtp"
	"strings"

	"storefront/config"
	"storefront/internal/domain/service"
	"storefront/internal/errors"
)

// smtpMailer sends mail through a plain SMTP relay.
type smtpMailer struct {
	addr   string
	auth   smtp.Auth
	from   string
	logger *slog.Logger
}

// logMailer writes messages to the log instead of sending them. Used when no
// SMTP relay is configured, typically in local development.
type logMailer struct {
	logger *slog.Logger
}

// NewMailer is the constructor for the Mailer implementation. It returns an
// SMTP-backed mailer when a relay is configured and a log-only mailer otherwise.
func NewMailer(cfg *config.Config, logger *slog.Logger) service.Mailer {
	if cfg.SMTP == nil || cfg.SMTP.Host == "" {
		logger.Warn("No SMTP relay configured, mail will only be logged")

		return &logMailer{logger: logger}
	}

	var auth smtp.Auth
	if cfg.SMTP.Username != "" {
		auth = smtp.PlainAuth("", cfg.SMTP.Username, cfg.SMTP.Password, cfg.SMTP.Host)
	}

	return &smtpMailer{
		addr:   fmt.Sprintf("%s:%d", cfg.SMTP.Host, cfg.SMTP.Port),
		auth:   auth,
		from:   cfg.SMTP.From,
		logger: logger,
	}
}

// Send delivers a plain text message to the recipient.
func (m *smtpMailer) Send(_ context.Context, to string, subject string, body string) error {
	var msg strings.Builder
	msg.WriteString("From: " + m.from + "\r\n")
	msg.WriteString("To: " + to + "\r\n")
	msg.WriteString("Subject: " + subject + "\r\n")
	msg.WriteString("MIME-Version: 1.0\r\n")
	msg.WriteString("Content-Type: text/plain; charset=utf-8\r\n")
	msg.WriteString("\r\n")
	msg.WriteString(body)

	if err := smtp.SendMail(m.addr, m.auth, m.from, []string{to}, []byte(msg.String())); err != nil {
		return errors.Wrap(err, "failed to send mail")
	}

	return nil
}

// Send logs the message instead of sending it.
func (m *logMailer) Send(ctx context.Context, to string, subject string, body string) error {
	m.logger.LogAttrs(ctx, slog.LevelInfo, "Mail delivery skipped, no relay configured",
		slog.String("to", to),
		slog.String("subject", subject),
		slog.String("body", body),
	)

	return nil
}

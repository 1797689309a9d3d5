// Package email sends ticket notifications over SMTP.
package email

import (
	"os"

	"gopkg.in/gomail.v2"

	"helpdesk/internal/shared/config"
	apperrors "helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
)

type SMTPDispatcher struct {
	cfg    *config.EmailConfig
	dialer *gomail.Dialer
	logger logger.Interface
}

func NewSMTPDispatcher(cfg *config.EmailConfig) *SMTPDispatcher {
	return &SMTPDispatcher{
		cfg:    cfg,
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword),
		logger: logger.NewLogger().With("component", "email.smtp"),
	}
}

// Send delivers one message to all recipients. The attachment is
// skipped silently when the path is empty or the file does not exist;
// a send failure surfaces as a transport error so callers can decide
// whether to swallow it.
func (d *SMTPDispatcher) Send(subject, body string, recipients []string, attachmentPath string) error {
	if len(recipients) == 0 {
		return apperrors.NewValidationError("at least one recipient is required")
	}

	m := gomail.NewMessage()
	m.SetAddressHeader("From", d.cfg.FromAddress, d.cfg.FromName)
	m.SetHeader("To", recipients...)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	if attachmentPath != "" {
		if _, err := os.Stat(attachmentPath); err == nil {
			m.Attach(attachmentPath)
		} else {
			d.logger.Warnw("attachment missing, sending without it",
				"path", attachmentPath)
		}
	}

	if err := d.dialer.DialAndSend(m); err != nil {
		return apperrors.NewTransportError("failed to send email", err.Error())
	}

	return nil
}

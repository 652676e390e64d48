package mail

import (
	"fmt"

	"go.uber.org/zap"
	gomail "gopkg.in/gomail.v2"

	"github.com/WebArtifcatsind/my-project-backend/internal/config"
)

// Mailer sends transactional mail. Failures propagate to the caller; nothing
// is queued or retried.
type Mailer interface {
	Send(to, subject, body string) error
}

type smtpMailer struct {
	dialer *gomail.Dialer
	from   string
	logger *zap.Logger
}

// NewSMTPMailer builds a gomail-backed Mailer from config.
func NewSMTPMailer(cfg config.SMTPConfig, logger *zap.Logger) Mailer {
	return &smtpMailer{
		dialer: gomail.NewDialer(cfg.Host, cfg.Port, cfg.Username, cfg.Password),
		from:   cfg.From,
		logger: logger,
	}
}

func (m *smtpMailer) Send(to, subject, body string) error {
	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	if err := m.dialer.DialAndSend(msg); err != nil {
		m.logger.Error("smtp send failed", zap.String("to", to), zap.Error(err))
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

package channels

import (
	"context"
	"fmt"

	"charterlink/internal/pkg/config"
	"charterlink/internal/pkg/errs"

	"gopkg.in/gomail.v2"
)

// EmailSender delivers notifications over SMTP.
type EmailSender struct {
	cfg config.EmailConfig
}

func NewEmailSender(cfg config.EmailConfig) *EmailSender {
	return &EmailSender{cfg: cfg}
}

func (s *EmailSender) Send(ctx context.Context, to, subject, body string) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", fmt.Sprintf("%s <%s>", s.cfg.FromName, s.cfg.FromAddr))
	msg.SetHeader("To", to)
	msg.SetHeader("Subject", subject)
	msg.SetBody("text/plain", body)

	dialer := gomail.NewDialer(s.cfg.SMTPHost, s.cfg.SMTPPort, s.cfg.Username, s.cfg.Password)
	if err := dialer.DialAndSend(msg); err != nil {
		return errs.Wrap(err, "smtp delivery failed")
	}
	return nil
}

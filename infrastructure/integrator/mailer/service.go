package mailer

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-report-api/internal/config"
	"gopkg.in/gomail.v2"
)

const defaultSendTimeout = 15 * time.Second

var ErrMailerNotConfigured = errors.New("servidor SMTP não configurado")

// Sender é satisfeito por *gomail.Dialer
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Service struct {
	from    string
	timeout time.Duration
	sender  Sender
}

func New(cfg *config.Config) *Service {
	var sender Sender
	if cfg.Mail.Host != "" {
		sender = gomail.NewDialer(cfg.Mail.Host, cfg.Mail.Port, cfg.Mail.Username, cfg.Mail.Password)
	} else {
		logrus.Warn("SMTP_HOST não configurado, envio de emails desabilitado")
	}

	return NewWithSender(cfg, sender)
}

func NewWithSender(cfg *config.Config, sender Sender) *Service {
	timeout := defaultSendTimeout
	if cfg.Mail.TimeoutSeconds > 0 {
		timeout = time.Duration(cfg.Mail.TimeoutSeconds) * time.Second
	}

	return &Service{
		from:    cfg.Mail.From,
		timeout: timeout,
		sender:  sender,
	}
}

// SendSimpleEmail envia um email em texto puro
func (s *Service) SendSimpleEmail(ctx context.Context, to, subject, body string) error {
	if s.sender == nil {
		return ErrMailerNotConfigured
	}

	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", body)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() {
		done <- s.sender.DialAndSend(m)
	}()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("erro ao enviar email: %w", err)
		}
	case <-ctx.Done():
		return fmt.Errorf("tempo esgotado ao enviar email: %w", ctx.Err())
	}

	logrus.WithFields(logrus.Fields{
		"to":      to,
		"subject": subject,
	}).Info("Email enviado")

	return nil
}

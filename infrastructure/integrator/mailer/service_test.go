package mailer

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/sales-report-api/internal/config"
	"gopkg.in/gomail.v2"
)

type fakeSender struct {
	messages []*gomail.Message
	err      error
	delay    time.Duration
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	f.messages = append(f.messages, m...)
	return f.err
}

func testConfig() *config.Config {
	return &config.Config{
		Mail: config.Mail{
			From:           "reportes@oreo.local",
			TimeoutSeconds: 1,
		},
	}
}

func TestService_SendSimpleEmail(t *testing.T) {
	tests := []struct {
		name     string
		sender   *fakeSender
		validate func(t *testing.T, sender *fakeSender, err error)
	}{
		{
			name:   "Envia mensagem em texto puro",
			sender: &fakeSender{},
			validate: func(t *testing.T, sender *fakeSender, err error) {
				require.NoError(t, err)
				require.Len(t, sender.messages, 1)

				m := sender.messages[0]
				assert.Equal(t, []string{"reportes@oreo.local"}, m.GetHeader("From"))
				assert.Equal(t, []string{"ana@example.com"}, m.GetHeader("To"))
				assert.Equal(t, []string{"Reporte Semanal Oreo - 2025-09-01 a 2025-09-07"}, m.GetHeader("Subject"))

				var buf bytes.Buffer
				_, writeErr := m.WriteTo(&buf)
				require.NoError(t, writeErr)
				assert.Contains(t, buf.String(), "Content-Type: text/plain")
				assert.Contains(t, buf.String(), "Gracias.")
			},
		},
		{
			name:   "Erro do servidor SMTP é propagado",
			sender: &fakeSender{err: errors.New("connection refused")},
			validate: func(t *testing.T, sender *fakeSender, err error) {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "connection refused")
			},
		},
		{
			name:   "Servidor lento estoura o tempo limite",
			sender: &fakeSender{delay: 2 * time.Second},
			validate: func(t *testing.T, sender *fakeSender, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, context.DeadlineExceeded)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewWithSender(testConfig(), tt.sender)

			err := service.SendSimpleEmail(
				context.Background(),
				"ana@example.com",
				"Reporte Semanal Oreo - 2025-09-01 a 2025-09-07",
				"Resumen:\n\nTexto\n\nGracias.",
			)

			tt.validate(t, tt.sender, err)
		})
	}
}

func TestService_SendSimpleEmail_NotConfigured(t *testing.T) {
	service := New(testConfig())

	err := service.SendSimpleEmail(context.Background(), "ana@example.com", "assunto", "corpo")

	assert.ErrorIs(t, err, ErrMailerNotConfigured)
}

// Package mail envía correos por SMTP con gomail.
package mail

import (
	"context"
	"crypto/tls"
	"fmt"
	"io"
	"time"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/raash-api/internal/application/checkout"
	"github.com/jhoicas/raash-api/pkg/config"
)

var _ checkout.Notifier = (*SMTPSender)(nil)

// sendTimeout tope para conectar y entregar un mensaje.
const sendTimeout = 20 * time.Second

// SMTPSender implementa checkout.Notifier.
type SMTPSender struct {
	from    string
	send    func(msgs ...*gomail.Message) error
	timeout time.Duration
}

// NewSMTPSender construye el emisor a partir de la configuración de correo.
func NewSMTPSender(cfg config.MailConfig) *SMTPSender {
	d := gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	d.TLSConfig = &tls.Config{
		ServerName:         cfg.Host,
		InsecureSkipVerify: cfg.InsecureTLS, //nolint:gosec // configurable para relays con certificado propio
	}
	return &SMTPSender{from: cfg.Sender(), send: d.DialAndSend, timeout: sendTimeout}
}

// Send entrega la notificación. Respeta la cancelación de ctx aunque gomail no la soporte.
func (s *SMTPSender) Send(ctx context.Context, n checkout.Notification) error {
	msg := s.buildMessage(n)

	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	done := make(chan error, 1)
	go func() { done <- s.send(msg) }()

	select {
	case err := <-done:
		if err != nil {
			return fmt.Errorf("smtp: enviar a %s: %w", n.To, err)
		}
		return nil
	case <-ctx.Done():
		return fmt.Errorf("smtp: enviar a %s: %w", n.To, ctx.Err())
	}
}

func (s *SMTPSender) buildMessage(n checkout.Notification) *gomail.Message {
	m := gomail.NewMessage()
	m.SetHeader("From", s.from)
	m.SetHeader("To", n.To)
	m.SetHeader("Subject", n.Subject)
	m.SetBody("text/plain", n.Body)
	for _, a := range n.Attachments {
		content := a.Content
		m.Attach(a.Filename,
			gomail.SetCopyFunc(func(w io.Writer) error {
				_, err := w.Write(content)
				return err
			}),
			gomail.SetHeader(map[string][]string{"Content-Type": {a.ContentType}}),
		)
	}
	return m
}

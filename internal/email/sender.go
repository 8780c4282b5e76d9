// Package email envía los códigos del factor alternativo por SMTP.
// Sin SMTP configurado se usa el sender de log: el código queda en el
// log local para entornos de desarrollo.
package email

import (
	"context"
	"crypto/tls"
	"fmt"

	mail "github.com/go-mail/mail"
	"go.uber.org/zap"

	"github.com/eliteclan/backoffice/internal/observability/logger"
)

// SMTPSender implementa auth.CodeSender sobre SMTP con go-mail.
type SMTPSender struct {
	Host string
	Port int
	From string
	User string
	Pass string
}

func NewSMTPSender(host string, port int, from, user, pass string) *SMTPSender {
	return &SMTPSender{Host: host, Port: port, From: from, User: user, Pass: pass}
}

func (s *SMTPSender) SendCode(ctx context.Context, to, code string) error {
	m := mail.NewMessage()
	m.SetHeader("From", s.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", "Tu código de acceso al backoffice")
	m.SetBody("text/plain", fmt.Sprintf("Tu código de verificación es: %s\n\nExpira en unos minutos.", code))

	d := mail.NewDialer(s.Host, s.Port, s.User, s.Pass)
	d.TLSConfig = &tls.Config{ServerName: s.Host}

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("enviando código a %s: %w", to, err)
	}
	return nil
}

// LogSender escribe el código en el log en vez de enviarlo. Solo dev.
type LogSender struct{}

func (LogSender) SendCode(ctx context.Context, to, code string) error {
	logger.Named("email").Info("código de verificación (sender de log, solo dev)",
		zap.String("to", to), zap.String("code", code))
	return nil
}

// Package mail envía los avisos de vencimiento por SMTP.
package mail

import (
	"context"
	"errors"
	"fmt"

	"gopkg.in/gomail.v2"

	"github.com/jhoicas/banco-horas-api/internal/application/alert"
	"github.com/jhoicas/banco-horas-api/pkg/config"
)

// ErrNotConfigured se devuelve en cada envío si faltan host, usuario o contraseña SMTP.
var ErrNotConfigured = errors.New("SMTP no configurado: defina SMTP_HOST, SMTP_PORT, SMTP_USER y SMTP_PASS")

var _ alert.Notifier = (*SMTPNotifier)(nil)

// Sender abstrae el envío para poder sustituir el dialer en tests.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

// SMTPNotifier implementa alert.Notifier con gomail (STARTTLS cuando el servidor lo ofrece).
type SMTPNotifier struct {
	cfg    config.SMTPConfig
	sender Sender
}

// NewSMTPNotifier construye el notificador. Con configuración incompleta se crea
// igualmente: cada envío falla con ErrNotConfigured y el programador lo registra.
func NewSMTPNotifier(cfg config.SMTPConfig) *SMTPNotifier {
	n := &SMTPNotifier{cfg: cfg}
	if cfg.Configured() {
		n.sender = gomail.NewDialer(cfg.Host, cfg.Port, cfg.User, cfg.Password)
	}
	return n
}

// WithSender sustituye el dialer.
func (n *SMTPNotifier) WithSender(s Sender) *SMTPNotifier {
	n.sender = s
	return n
}

// Send envía el aviso en texto plano UTF-8.
func (n *SMTPNotifier) Send(ctx context.Context, to string, msg alert.Message) error {
	if n.sender == nil {
		return ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := n.sender.DialAndSend(BuildMessage(n.cfg.From, to, msg)); err != nil {
		return fmt.Errorf("smtp: enviar a %s: %w", to, err)
	}
	return nil
}

// BuildMessage arma el mensaje MIME del aviso.
func BuildMessage(from, to string, msg alert.Message) *gomail.Message {
	m := gomail.NewMessage(gomail.SetCharset("UTF-8"))
	m.SetHeader("From", from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", msg.Subject)
	m.SetBody("text/plain", msg.Body)
	return m
}

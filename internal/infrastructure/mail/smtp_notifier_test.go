package mail_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/jhoicas/banco-horas-api/internal/application/alert"
	"github.com/jhoicas/banco-horas-api/internal/infrastructure/mail"
	"github.com/jhoicas/banco-horas-api/pkg/config"
)

type captureSender struct {
	msgs []*gomail.Message
	err  error
}

func (c *captureSender) DialAndSend(m ...*gomail.Message) error {
	if c.err != nil {
		return c.err
	}
	c.msgs = append(c.msgs, m...)
	return nil
}

var aviso = alert.Message{Subject: "[Banco de Horas] Alerta de prazo - Maria", Body: "Olá,\n\nprazo máx.: 01/07/2025"}

func TestSend_SinConfiguracion(t *testing.T) {
	n := mail.NewSMTPNotifier(config.SMTPConfig{Host: "smtp.example.org"})
	err := n.Send(context.Background(), "ana@example.org", aviso)
	assert.ErrorIs(t, err, mail.ErrNotConfigured)
}

func TestSend_UsaElRemitenteConfigurado(t *testing.T) {
	sender := &captureSender{}
	n := mail.NewSMTPNotifier(config.SMTPConfig{From: "avisos@example.org"}).WithSender(sender)

	require.NoError(t, n.Send(context.Background(), "ana@example.org", aviso))
	require.Len(t, sender.msgs, 1)

	m := sender.msgs[0]
	assert.Equal(t, []string{"avisos@example.org"}, m.GetHeader("From"))
	assert.Equal(t, []string{"ana@example.org"}, m.GetHeader("To"))
	assert.Equal(t, []string{aviso.Subject}, m.GetHeader("Subject"))
}

func TestSend_PropagaErrorDelServidor(t *testing.T) {
	sender := &captureSender{err: errors.New("535 auth failed")}
	n := mail.NewSMTPNotifier(config.SMTPConfig{}).WithSender(sender)

	err := n.Send(context.Background(), "ana@example.org", aviso)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ana@example.org")
}

func TestBuildMessage_CuerpoUTF8(t *testing.T) {
	m := mail.BuildMessage("avisos@example.org", "ana@example.org", aviso)

	var buf bytes.Buffer
	_, err := m.WriteTo(&buf)
	require.NoError(t, err)
	out := buf.String()
	assert.Contains(t, out, "charset=UTF-8")
	assert.Contains(t, out, "Content-Type: text/plain")
}

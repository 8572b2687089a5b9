package notifier

import (
	"context"
	"fmt"
	"net/smtp"

	"github.com/cruzmath/alert-system-for-meta-ads/internal/config"
)

// EmailChannel envia a notificação por e-mail via SMTP com STARTTLS para um
// único destinatário fixo
type EmailChannel struct {
	cfg config.Email

	// Injetável nos testes para capturar os argumentos do envio
	sendMail func(addr string, auth smtp.Auth, from string, to []string, msg []byte) error
}

func NewEmailChannel(cfg *config.Config) *EmailChannel {
	return &EmailChannel{
		cfg:      cfg.Email,
		sendMail: smtp.SendMail,
	}
}

func (e *EmailChannel) Type() string { return "email" }

func (e *EmailChannel) Send(_ context.Context, subject, message string) error {
	body := fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\n\r\n%s",
		e.cfg.From,
		e.cfg.To,
		subject,
		message,
	)

	addr := fmt.Sprintf("%s:%d", e.cfg.SMTPServer, e.cfg.SMTPPort)
	auth := smtp.PlainAuth("", e.cfg.From, e.cfg.Password, e.cfg.SMTPServer)

	// smtp.SendMail negocia STARTTLS quando o servidor anuncia suporte,
	// que é o caso da porta 587
	return e.sendMail(addr, auth, e.cfg.From, []string{e.cfg.To}, []byte(body))
}

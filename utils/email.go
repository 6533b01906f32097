package utils

import (
	"fmt"
	"net/smtp"
	"strings"

	"salao/config"
)

// EmailSender delivers plain-text email.
type EmailSender interface {
	Send(to string, subject string, body string) error
}

// SMTPSender sends email via unauthenticated SMTP (Mailpit-compatible).
type SMTPSender struct {
	addr string
	from string
}

// NewSMTPSender builds a sender from the configured SMTP endpoint.
func NewSMTPSender() *SMTPSender {
	from := strings.TrimSpace(config.AppConfig.SMTPFrom)
	if from == "" {
		from = "no-reply@salao.local"
	}
	return &SMTPSender{
		addr: fmt.Sprintf("%s:%s", strings.TrimSpace(config.AppConfig.SMTPHost), strings.TrimSpace(config.AppConfig.SMTPPort)),
		from: from,
	}
}

func (s *SMTPSender) Send(to string, subject string, body string) error {
	msg := buildMessage(s.from, to, subject, body)
	return smtp.SendMail(s.addr, nil, s.from, []string{to}, []byte(msg))
}

func buildMessage(from, to, subject, body string) string {
	// Minimal RFC 5322 message; enough for Mailpit and most SMTP relays.
	return fmt.Sprintf(
		"From: %s\r\nTo: %s\r\nSubject: %s\r\nMIME-Version: 1.0\r\nContent-Type: text/plain; charset=utf-8\r\n\r\n%s\r\n",
		from,
		to,
		subject,
		body,
	)
}

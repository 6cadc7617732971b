package mailer

import (
	"context"
	"fmt"
	"net/smtp"
	"strings"
)

// SMTPMailer implements Mailer over plain SMTP with AUTH.
type SMTPMailer struct {
	addr string
	host string
	from string
	auth smtp.Auth
}

// SMTPConfig holds SMTP connection configuration.
type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

// NewSMTPMailer creates a mailer for the given SMTP server.
func NewSMTPMailer(cfg SMTPConfig) (*SMTPMailer, error) {
	if cfg.Host == "" {
		return nil, fmt.Errorf("smtp host is required")
	}
	if cfg.Username == "" || cfg.Password == "" {
		return nil, fmt.Errorf("smtp credentials are required")
	}

	from := cfg.From
	if from == "" {
		from = cfg.Username
	}

	return &SMTPMailer{
		addr: fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		host: cfg.Host,
		from: from,
		auth: smtp.PlainAuth("", cfg.Username, cfg.Password, cfg.Host),
	}, nil
}

// Send dispatches a single email. The context deadline is honored only up
// to connection setup; smtp.SendMail handles the rest of the session.
func (m *SMTPMailer) Send(ctx context.Context, msg *Message) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if msg.To == "" {
		return fmt.Errorf("recipient is required")
	}

	var b strings.Builder
	fmt.Fprintf(&b, "From: %s\r\n", m.from)
	fmt.Fprintf(&b, "To: %s\r\n", msg.To)
	fmt.Fprintf(&b, "Subject: %s\r\n", msg.Subject)
	b.WriteString("MIME-Version: 1.0\r\n")
	b.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	b.WriteString("\r\n")
	b.WriteString(msg.HTML)

	if err := smtp.SendMail(m.addr, m.auth, envelopeFrom(m.from), []string{msg.To}, []byte(b.String())); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}
	return nil
}

// envelopeFrom strips a display name from "Name <addr>" for the SMTP
// envelope.
func envelopeFrom(from string) string {
	if start := strings.Index(from, "<"); start >= 0 {
		if end := strings.Index(from[start:], ">"); end > 0 {
			return from[start+1 : start+end]
		}
	}
	return from
}

// Package mailer sends outbound email for the outreach and contact-form
// endpoints.
package mailer

import "context"

// Message is one outbound email.
type Message struct {
	To      string
	Subject string
	// HTML is the message body, sent as text/html.
	HTML string
}

// Mailer dispatches email. Implementations are injected into handlers so
// tests can substitute a double.
type Mailer interface {
	Send(ctx context.Context, msg *Message) error
}

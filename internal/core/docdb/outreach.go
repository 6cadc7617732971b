package docdb

import (
	"context"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

// OutreachStore persists email templates, sent-email records, and imported
// contacts.
type OutreachStore interface {
	// AddTemplate inserts an email template.
	AddTemplate(ctx context.Context, template *models.EmailTemplate) error

	// GetTemplate returns a user's template by ID, or nil when unknown.
	GetTemplate(ctx context.Context, userID, id string) (*models.EmailTemplate, error)

	// ListTemplates returns a user's templates, newest first.
	ListTemplates(ctx context.Context, userID string) ([]*models.EmailTemplate, error)

	// RecordSentEmail inserts a record of a dispatched email.
	RecordSentEmail(ctx context.Context, email *models.SentEmail) error

	// AddContacts bulk-inserts imported contacts.
	AddContacts(ctx context.Context, contacts []*models.Contact) error

	// ListContacts returns a user's contacts, newest first.
	ListContacts(ctx context.Context, userID string) ([]*models.Contact, error)
}

package docdb

import (
	"context"
	"errors"
	"io"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

// Store-level sentinel errors, mapped to HTTP statuses by the handlers.
var (
	// ErrDocumentNotFound indicates the requested document does not exist.
	ErrDocumentNotFound = errors.New("document not found")
	// ErrNotOwner indicates the document belongs to another user.
	ErrNotOwner = errors.New("document owned by another user")
)

// DocumentStore persists knowledge-base files with per-user scoping.
type DocumentStore interface {
	// Upload stores a file and returns its metadata.
	Upload(ctx context.Context, userID, name, contentType string, content io.Reader) (*models.Document, error)

	// List returns the metadata of a user's documents.
	List(ctx context.Context, userID string) ([]*models.Document, error)

	// Delete removes a document. Returns ErrDocumentNotFound or ErrNotOwner
	// when the id is unknown or owned by someone else.
	Delete(ctx context.Context, userID, id string) error
}

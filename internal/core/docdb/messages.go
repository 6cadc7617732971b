package docdb

import (
	"context"
	"time"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

// SortOrder represents the sort direction for createdAt.
type SortOrder string

const (
	// SortOrderAsc represents ascending order.
	SortOrderAsc SortOrder = "asc"
	// SortOrderDesc represents descending order.
	SortOrderDesc SortOrder = "desc"
)

// ListMessagesOptions narrows a message query. UserID is required; Since
// is ignored when zero.
type ListMessagesOptions struct {
	UserID  string
	Since   time.Time
	Limit   int64
	OrderBy SortOrder
}

// MessagesStore persists and queries chat messages.
type MessagesStore interface {
	// Add inserts a message.
	Add(ctx context.Context, message *models.ChatMessage) error

	// List returns a user's messages per the given options.
	List(ctx context.Context, opts *ListMessagesOptions) ([]*models.ChatMessage, error)

	// CountByUser returns the number of messages a user owns.
	CountByUser(ctx context.Context, userID string) (int64, error)
}

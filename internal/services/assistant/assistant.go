// Package assistant generates AI replies for the chat endpoint.
package assistant

import (
	"context"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

// Service produces an assistant reply for a conversation. Implementations
// are injected into the chat handler so tests can substitute a double and
// concurrent requests never share hidden session state.
type Service interface {
	// Reply generates an assistant response to the conversation, where the
	// last entry is the user's new message.
	Reply(ctx context.Context, conversation []*models.ChatMessage) (string, error)
}

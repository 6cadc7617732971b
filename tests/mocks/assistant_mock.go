package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

// MockAssistant is a mock implementation of assistant.Service.
type MockAssistant struct {
	mock.Mock
}

// Reply generates an assistant reply for the conversation.
func (m *MockAssistant) Reply(ctx context.Context, conversation []*models.ChatMessage) (string, error) {
	args := m.Called(ctx, conversation)
	return args.String(0), args.Error(1)
}

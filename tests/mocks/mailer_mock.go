package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/services/mailer"
)

// MockMailer is a mock implementation of mailer.Mailer.
type MockMailer struct {
	mock.Mock
}

// Send dispatches an email.
func (m *MockMailer) Send(ctx context.Context, msg *mailer.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

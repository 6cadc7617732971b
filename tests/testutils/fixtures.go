// Package testutils provides test utilities and helpers.
package testutils

import (
	"time"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

// Test constants
const (
	TestUserID     = "user-test-123"
	TestMessageID  = "msg-test-456"
	TestDocumentID = "doc-test-789"
	TestTemplateID = "tmpl-test-abc"
	TestToken      = "test-token"
)

// NewTestMessage creates a test user message with default values.
func NewTestMessage() *models.ChatMessage {
	return &models.ChatMessage{
		ID:        TestMessageID,
		UserID:    TestUserID,
		Role:      models.RoleUser,
		Content:   "I have a problem with my account",
		CreatedAt: time.Now().UTC(),
	}
}

// NewTestAssistantMessage creates a test assistant message.
func NewTestAssistantMessage() *models.ChatMessage {
	return &models.ChatMessage{
		ID:        TestMessageID + "-assistant",
		UserID:    TestUserID,
		Role:      models.RoleAssistant,
		Content:   "Happy to help with your account.",
		CreatedAt: time.Now().UTC(),
	}
}

// NewTestConversation creates an alternating user/assistant exchange. The
// user message at index 2i precedes the assistant reply at index 2i+1 by
// the given gap.
func NewTestConversation(turns int, gap time.Duration) []*models.ChatMessage {
	base := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	messages := make([]*models.ChatMessage, 0, turns*2)
	for i := 0; i < turns; i++ {
		at := base.Add(time.Duration(i) * time.Hour)
		user := NewTestMessage()
		user.ID = TestMessageID + "-u" + string(rune('0'+i))
		user.CreatedAt = at
		assistant := NewTestAssistantMessage()
		assistant.ID = TestMessageID + "-a" + string(rune('0'+i))
		assistant.CreatedAt = at.Add(gap)
		messages = append(messages, user, assistant)
	}
	return messages
}

// NewTestDocument creates a test document with default values.
func NewTestDocument() *models.Document {
	return &models.Document{
		ID:         TestDocumentID,
		Name:       "faq.pdf",
		Type:       "application/pdf",
		UploadDate: time.Now().UTC(),
	}
}

// NewTestTemplate creates a test email template with default values.
func NewTestTemplate() *models.EmailTemplate {
	return &models.EmailTemplate{
		ID:        TestTemplateID,
		UserID:    TestUserID,
		Name:      "welcome",
		Subject:   "Welcome aboard",
		Content:   "<p>Thanks for signing up.</p>",
		CreatedAt: time.Now().UTC(),
	}
}

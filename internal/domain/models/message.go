// Package models contains domain models for the SupportGenie backend.
package models

import (
	"time"

	"github.com/google/uuid"
)

// MessageRole represents the role of a message sender.
type MessageRole string

const (
	// RoleUser represents a message from the end user.
	RoleUser MessageRole = "user"
	// RoleAssistant represents a message from the AI assistant.
	RoleAssistant MessageRole = "assistant"
	// RoleSystem represents a system message.
	RoleSystem MessageRole = "system"
)

// ChatMessage represents a single chat turn persisted for a user.
// The optional Type field carries a pre-assigned category from the chat
// widget; its taxonomy is independent of the dashboard categories derived
// by the analytics classifier.
type ChatMessage struct {
	ID        string                 `json:"id" bson:"_id"`
	UserID    string                 `json:"userId" bson:"userId"`
	Role      MessageRole            `json:"role" bson:"role"`
	Content   string                 `json:"content" bson:"content"`
	Type      string                 `json:"type,omitempty" bson:"type,omitempty"`
	CreatedAt time.Time              `json:"created_at" bson:"createdAt"`
	Metadata  map[string]interface{} `json:"metadata,omitempty" bson:"metadata,omitempty"`
}

// NewChatMessage creates a chat message with a generated ID and UTC timestamp.
func NewChatMessage(userID string, role MessageRole, content string) *ChatMessage {
	return &ChatMessage{
		ID:        uuid.NewString(),
		UserID:    userID,
		Role:      role,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

// IsUserMessage returns true if the message was sent by the end user.
func (m *ChatMessage) IsUserMessage() bool {
	return m.Role == RoleUser
}

// IsAssistantMessage returns true if the message was sent by the assistant.
func (m *ChatMessage) IsAssistantMessage() bool {
	return m.Role == RoleAssistant
}

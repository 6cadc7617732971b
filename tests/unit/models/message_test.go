// Package models_test provides unit tests for the domain models.
package models_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

func TestNewChatMessage(t *testing.T) {
	before := time.Now().UTC()
	msg := models.NewChatMessage("user-1", models.RoleUser, "hello")
	after := time.Now().UTC()

	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "user-1", msg.UserID)
	assert.Equal(t, models.RoleUser, msg.Role)
	assert.Equal(t, "hello", msg.Content)
	assert.False(t, msg.CreatedAt.Before(before))
	assert.False(t, msg.CreatedAt.After(after))
	assert.Equal(t, time.UTC, msg.CreatedAt.Location())
}

func TestNewChatMessage_UniqueIDs(t *testing.T) {
	first := models.NewChatMessage("user-1", models.RoleUser, "a")
	second := models.NewChatMessage("user-1", models.RoleUser, "a")

	assert.NotEqual(t, first.ID, second.ID)
}

func TestChatMessage_RoleHelpers(t *testing.T) {
	user := models.NewChatMessage("user-1", models.RoleUser, "question")
	assistant := models.NewChatMessage("user-1", models.RoleAssistant, "answer")
	system := models.NewChatMessage("user-1", models.RoleSystem, "prompt")

	assert.True(t, user.IsUserMessage())
	assert.False(t, user.IsAssistantMessage())
	assert.True(t, assistant.IsAssistantMessage())
	assert.False(t, assistant.IsUserMessage())
	assert.False(t, system.IsUserMessage())
	assert.False(t, system.IsAssistantMessage())
}

func TestDefaultSettings(t *testing.T) {
	settings := models.DefaultSettings("user-1")

	assert.Equal(t, "user-1", settings.UserID)
	assert.True(t, settings.Notifications)
	assert.False(t, settings.DarkMode)
	assert.Equal(t, "en", settings.Language)
	assert.Equal(t, "UTC", settings.Timezone)
	assert.Empty(t, settings.EmailPassword)
}

func TestNewEmailTemplate(t *testing.T) {
	template := models.NewEmailTemplate("user-1", "welcome", "Welcome", "<p>Hi</p>")

	assert.NotEmpty(t, template.ID)
	assert.Equal(t, "user-1", template.UserID)
	assert.Equal(t, "welcome", template.Name)
	assert.Equal(t, "Welcome", template.Subject)
	assert.Equal(t, time.UTC, template.CreatedAt.Location())
}

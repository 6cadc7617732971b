package docdb

import (
	"context"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

// SettingsStore persists per-user settings documents.
type SettingsStore interface {
	// Get returns a user's settings, or nil when none have been saved.
	Get(ctx context.Context, userID string) (*models.UserSettings, error)

	// Upsert creates or replaces a user's settings.
	Upsert(ctx context.Context, settings *models.UserSettings) error
}

package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

// SettingsStore implements docdb.SettingsStore for MongoDB.
type SettingsStore struct {
	collection *mongo.Collection
}

// NewSettingsStore creates a settings store on the given collection.
func NewSettingsStore(collection *mongo.Collection) *SettingsStore {
	return &SettingsStore{collection: collection}
}

// Get returns a user's settings, or nil when none have been saved.
func (s *SettingsStore) Get(ctx context.Context, userID string) (*models.UserSettings, error) {
	var settings models.UserSettings
	err := s.collection.FindOne(ctx, bson.M{"userId": userID}).Decode(&settings)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user settings: %w", err)
	}
	return &settings, nil
}

// Upsert creates or replaces a user's settings.
func (s *SettingsStore) Upsert(ctx context.Context, settings *models.UserSettings) error {
	if settings.UserID == "" {
		return fmt.Errorf("user ID is required")
	}

	opts := options.Replace().SetUpsert(true)
	_, err := s.collection.ReplaceOne(ctx, bson.M{"userId": settings.UserID}, settings, opts)
	if err != nil {
		return fmt.Errorf("failed to upsert user settings: %w", err)
	}
	return nil
}

// EnsureIndexes creates the unique userId index.
func (s *SettingsStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "userId", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return fmt.Errorf("failed to create settings index: %w", err)
	}
	return nil
}

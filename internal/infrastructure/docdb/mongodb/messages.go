package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/core/docdb"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

// MessagesStore implements docdb.MessagesStore for MongoDB.
type MessagesStore struct {
	collection *mongo.Collection
}

// NewMessagesStore creates a messages store on the given collection.
func NewMessagesStore(collection *mongo.Collection) *MessagesStore {
	return &MessagesStore{collection: collection}
}

// Add inserts a message.
func (s *MessagesStore) Add(ctx context.Context, message *models.ChatMessage) error {
	if message.ID == "" {
		return fmt.Errorf("message ID is required")
	}

	if _, err := s.collection.InsertOne(ctx, message); err != nil {
		return fmt.Errorf("failed to insert chat message: %w", err)
	}
	return nil
}

// List returns a user's messages per the given options.
func (s *MessagesStore) List(ctx context.Context, opts *docdb.ListMessagesOptions) ([]*models.ChatMessage, error) {
	if opts == nil || opts.UserID == "" {
		return nil, fmt.Errorf("user ID is required")
	}

	filter := bson.M{"userId": opts.UserID}
	if !opts.Since.IsZero() {
		filter["createdAt"] = bson.M{"$gte": opts.Since}
	}

	order := 1
	if opts.OrderBy == docdb.SortOrderDesc {
		order = -1
	}

	findOpts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: order}})
	if opts.Limit > 0 {
		findOpts.SetLimit(opts.Limit)
	}

	cursor, err := s.collection.Find(ctx, filter, findOpts)
	if err != nil {
		return nil, fmt.Errorf("failed to find chat messages: %w", err)
	}
	defer cursor.Close(ctx)

	var messages []*models.ChatMessage
	if err := cursor.All(ctx, &messages); err != nil {
		return nil, fmt.Errorf("failed to decode chat messages: %w", err)
	}

	return messages, nil
}

// CountByUser returns the number of messages a user owns.
func (s *MessagesStore) CountByUser(ctx context.Context, userID string) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, bson.M{"userId": userID})
	if err != nil {
		return 0, fmt.Errorf("failed to count chat messages: %w", err)
	}
	return count, nil
}

// EnsureIndexes creates the indexes message queries rely on.
func (s *MessagesStore) EnsureIndexes(ctx context.Context) error {
	_, err := s.collection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "userId", Value: 1},
			{Key: "createdAt", Value: 1},
		},
	})
	if err != nil {
		return fmt.Errorf("failed to create message index: %w", err)
	}
	return nil
}

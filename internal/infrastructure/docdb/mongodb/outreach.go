package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

// OutreachStore implements docdb.OutreachStore for MongoDB.
type OutreachStore struct {
	templates  *mongo.Collection
	sentEmails *mongo.Collection
	contacts   *mongo.Collection
}

// NewOutreachStore creates an outreach store on the given collections.
func NewOutreachStore(templates, sentEmails, contacts *mongo.Collection) *OutreachStore {
	return &OutreachStore{
		templates:  templates,
		sentEmails: sentEmails,
		contacts:   contacts,
	}
}

// AddTemplate inserts an email template.
func (s *OutreachStore) AddTemplate(ctx context.Context, template *models.EmailTemplate) error {
	if _, err := s.templates.InsertOne(ctx, template); err != nil {
		return fmt.Errorf("failed to insert email template: %w", err)
	}
	return nil
}

// GetTemplate returns a user's template by ID, or nil when unknown.
func (s *OutreachStore) GetTemplate(ctx context.Context, userID, id string) (*models.EmailTemplate, error) {
	var template models.EmailTemplate
	err := s.templates.FindOne(ctx, bson.M{"_id": id, "userId": userID}).Decode(&template)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get email template: %w", err)
	}
	return &template, nil
}

// ListTemplates returns a user's templates, newest first.
func (s *OutreachStore) ListTemplates(ctx context.Context, userID string) ([]*models.EmailTemplate, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.templates.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list email templates: %w", err)
	}
	defer cursor.Close(ctx)

	var templates []*models.EmailTemplate
	if err := cursor.All(ctx, &templates); err != nil {
		return nil, fmt.Errorf("failed to decode email templates: %w", err)
	}
	return templates, nil
}

// RecordSentEmail inserts a record of a dispatched email.
func (s *OutreachStore) RecordSentEmail(ctx context.Context, email *models.SentEmail) error {
	if _, err := s.sentEmails.InsertOne(ctx, email); err != nil {
		return fmt.Errorf("failed to record sent email: %w", err)
	}
	return nil
}

// AddContacts bulk-inserts imported contacts.
func (s *OutreachStore) AddContacts(ctx context.Context, contacts []*models.Contact) error {
	if len(contacts) == 0 {
		return nil
	}

	docs := make([]interface{}, 0, len(contacts))
	for _, c := range contacts {
		docs = append(docs, c)
	}

	if _, err := s.contacts.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert contacts: %w", err)
	}
	return nil
}

// ListContacts returns a user's contacts, newest first.
func (s *OutreachStore) ListContacts(ctx context.Context, userID string) ([]*models.Contact, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.contacts.Find(ctx, bson.M{"userId": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list contacts: %w", err)
	}
	defer cursor.Close(ctx)

	var contacts []*models.Contact
	if err := cursor.All(ctx, &contacts); err != nil {
		return nil, fmt.Errorf("failed to decode contacts: %w", err)
	}
	return contacts, nil
}

// EnsureIndexes creates the per-user indexes outreach queries rely on.
func (s *OutreachStore) EnsureIndexes(ctx context.Context) error {
	userIndex := mongo.IndexModel{Keys: bson.D{{Key: "userId", Value: 1}}}

	for name, collection := range map[string]*mongo.Collection{
		"email templates": s.templates,
		"sent emails":     s.sentEmails,
		"contacts":        s.contacts,
	} {
		if _, err := collection.Indexes().CreateOne(ctx, userIndex); err != nil {
			return fmt.Errorf("failed to create %s index: %w", name, err)
		}
	}
	return nil
}

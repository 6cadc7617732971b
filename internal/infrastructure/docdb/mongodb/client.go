// Package mongodb implements the docdb interfaces on MongoDB.
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/core/docdb"
)

// Collection names.
const (
	MessagesCollection       = "chat_messages"
	SettingsCollection       = "user_settings"
	EmailTemplatesCollection = "email_templates"
	SentEmailsCollection     = "sent_emails"
	ContactsCollection       = "contacts"

	// DocumentsBucket is the GridFS bucket holding knowledge-base files.
	DocumentsBucket = "documents"
)

// Client implements docdb.Client for MongoDB.
type Client struct {
	client    *mongo.Client
	messages  *MessagesStore
	settings  *SettingsStore
	documents *DocumentStore
	outreach  *OutreachStore
}

// ClientConfig holds MongoDB connection configuration.
type ClientConfig struct {
	URI          string
	DatabaseName string
}

// NewClient connects to MongoDB and wires the typed stores.
func NewClient(ctx context.Context, config *ClientConfig) (*Client, error) {
	if config == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	if config.URI == "" {
		return nil, fmt.Errorf("mongodb URI is required")
	}
	if config.DatabaseName == "" {
		return nil, fmt.Errorf("database name is required")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(config.URI))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to mongodb: %w", err)
	}

	if err := client.Ping(ctx, nil); err != nil {
		return nil, fmt.Errorf("failed to ping mongodb: %w", err)
	}

	db := client.Database(config.DatabaseName)

	bucket, err := gridfs.NewBucket(db, options.GridFSBucket().SetName(DocumentsBucket))
	if err != nil {
		return nil, fmt.Errorf("failed to open gridfs bucket: %w", err)
	}

	return &Client{
		client:    client,
		messages:  NewMessagesStore(db.Collection(MessagesCollection)),
		settings:  NewSettingsStore(db.Collection(SettingsCollection)),
		documents: NewDocumentStore(bucket),
		outreach: NewOutreachStore(
			db.Collection(EmailTemplatesCollection),
			db.Collection(SentEmailsCollection),
			db.Collection(ContactsCollection),
		),
	}, nil
}

// Messages returns the chat message store.
func (c *Client) Messages() docdb.MessagesStore {
	return c.messages
}

// Settings returns the user settings store.
func (c *Client) Settings() docdb.SettingsStore {
	return c.settings
}

// Documents returns the knowledge-base document store.
func (c *Client) Documents() docdb.DocumentStore {
	return c.documents
}

// Outreach returns the email template / contact store.
func (c *Client) Outreach() docdb.OutreachStore {
	return c.outreach
}

// EnsureIndexes creates all indexes the stores rely on.
func (c *Client) EnsureIndexes(ctx context.Context) error {
	if err := c.messages.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to ensure message indexes: %w", err)
	}
	if err := c.settings.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to ensure settings indexes: %w", err)
	}
	if err := c.outreach.EnsureIndexes(ctx); err != nil {
		return fmt.Errorf("failed to ensure outreach indexes: %w", err)
	}
	return nil
}

// Ping verifies the connection to MongoDB.
func (c *Client) Ping(ctx context.Context) error {
	if err := c.client.Ping(ctx, nil); err != nil {
		return fmt.Errorf("mongodb ping failed: %w", err)
	}
	return nil
}

// Close closes the MongoDB connection.
func (c *Client) Close(ctx context.Context) error {
	if err := c.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from mongodb: %w", err)
	}
	return nil
}

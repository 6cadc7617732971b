// Package docdb defines the document database interfaces the service is
// built against. Implementations live under infrastructure/docdb.
package docdb

import "context"

// Type represents the kind of document database backing the service.
type Type string

const (
	// TypeMongoDB represents a MongoDB database.
	TypeMongoDB Type = "mongodb"
	// TypeCosmosDB represents an Azure Cosmos DB database (MongoDB protocol).
	TypeCosmosDB Type = "cosmosdb"
)

// Client bundles the typed stores backed by one database connection.
type Client interface {
	// Messages returns the chat message store.
	Messages() MessagesStore

	// Settings returns the user settings store.
	Settings() SettingsStore

	// Documents returns the knowledge-base document store.
	Documents() DocumentStore

	// Outreach returns the email template / contact store.
	Outreach() OutreachStore

	// EnsureIndexes creates the indexes the stores rely on.
	EnsureIndexes(ctx context.Context) error

	// Ping verifies the database connection.
	Ping(ctx context.Context) error

	// Close closes the database connection.
	Close(ctx context.Context) error
}

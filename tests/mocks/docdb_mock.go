// Package mocks provides mock implementations for testing.
package mocks

import (
	"context"
	"io"

	"github.com/stretchr/testify/mock"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/core/docdb"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

// MockMessagesStore is a mock implementation of docdb.MessagesStore.
type MockMessagesStore struct {
	mock.Mock
}

// Add inserts a message.
func (m *MockMessagesStore) Add(ctx context.Context, message *models.ChatMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}

// List returns a user's messages per the given options.
func (m *MockMessagesStore) List(ctx context.Context, opts *docdb.ListMessagesOptions) ([]*models.ChatMessage, error) {
	args := m.Called(ctx, opts)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.ChatMessage), args.Error(1)
}

// CountByUser returns the number of messages a user owns.
func (m *MockMessagesStore) CountByUser(ctx context.Context, userID string) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// MockSettingsStore is a mock implementation of docdb.SettingsStore.
type MockSettingsStore struct {
	mock.Mock
}

// Get returns a user's settings.
func (m *MockSettingsStore) Get(ctx context.Context, userID string) (*models.UserSettings, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.UserSettings), args.Error(1)
}

// Upsert creates or replaces a user's settings.
func (m *MockSettingsStore) Upsert(ctx context.Context, settings *models.UserSettings) error {
	args := m.Called(ctx, settings)
	return args.Error(0)
}

// MockDocumentStore is a mock implementation of docdb.DocumentStore.
type MockDocumentStore struct {
	mock.Mock
}

// Upload stores a file and returns its metadata.
func (m *MockDocumentStore) Upload(ctx context.Context, userID, name, contentType string, content io.Reader) (*models.Document, error) {
	args := m.Called(ctx, userID, name, contentType, content)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Document), args.Error(1)
}

// List returns the metadata of a user's documents.
func (m *MockDocumentStore) List(ctx context.Context, userID string) ([]*models.Document, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Document), args.Error(1)
}

// Delete removes a document.
func (m *MockDocumentStore) Delete(ctx context.Context, userID, id string) error {
	args := m.Called(ctx, userID, id)
	return args.Error(0)
}

// MockOutreachStore is a mock implementation of docdb.OutreachStore.
type MockOutreachStore struct {
	mock.Mock
}

// AddTemplate inserts an email template.
func (m *MockOutreachStore) AddTemplate(ctx context.Context, template *models.EmailTemplate) error {
	args := m.Called(ctx, template)
	return args.Error(0)
}

// GetTemplate returns a user's template by ID.
func (m *MockOutreachStore) GetTemplate(ctx context.Context, userID, id string) (*models.EmailTemplate, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.EmailTemplate), args.Error(1)
}

// ListTemplates returns a user's templates.
func (m *MockOutreachStore) ListTemplates(ctx context.Context, userID string) ([]*models.EmailTemplate, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.EmailTemplate), args.Error(1)
}

// RecordSentEmail inserts a record of a dispatched email.
func (m *MockOutreachStore) RecordSentEmail(ctx context.Context, email *models.SentEmail) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}

// AddContacts bulk-inserts imported contacts.
func (m *MockOutreachStore) AddContacts(ctx context.Context, contacts []*models.Contact) error {
	args := m.Called(ctx, contacts)
	return args.Error(0)
}

// ListContacts returns a user's contacts.
func (m *MockOutreachStore) ListContacts(ctx context.Context, userID string) ([]*models.Contact, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Contact), args.Error(1)
}

// MockDocDBClient is a mock implementation of docdb.Client.
type MockDocDBClient struct {
	mock.Mock
	MessagesStore *MockMessagesStore
	SettingsStore *MockSettingsStore
	DocumentStore *MockDocumentStore
	OutreachStore *MockOutreachStore
}

// NewMockDocDBClient creates a new MockDocDBClient with fresh store mocks.
func NewMockDocDBClient() *MockDocDBClient {
	return &MockDocDBClient{
		MessagesStore: &MockMessagesStore{},
		SettingsStore: &MockSettingsStore{},
		DocumentStore: &MockDocumentStore{},
		OutreachStore: &MockOutreachStore{},
	}
}

// Messages returns the chat message store.
func (m *MockDocDBClient) Messages() docdb.MessagesStore {
	return m.MessagesStore
}

// Settings returns the user settings store.
func (m *MockDocDBClient) Settings() docdb.SettingsStore {
	return m.SettingsStore
}

// Documents returns the knowledge-base document store.
func (m *MockDocDBClient) Documents() docdb.DocumentStore {
	return m.DocumentStore
}

// Outreach returns the email template / contact store.
func (m *MockDocDBClient) Outreach() docdb.OutreachStore {
	return m.OutreachStore
}

// EnsureIndexes creates the indexes the stores rely on.
func (m *MockDocDBClient) EnsureIndexes(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Ping verifies the database connection.
func (m *MockDocDBClient) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

// Close closes the database connection.
func (m *MockDocDBClient) Close(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

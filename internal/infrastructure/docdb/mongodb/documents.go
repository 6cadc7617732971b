package mongodb

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/gridfs"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/core/docdb"
	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/domain/models"
)

// DocumentStore implements docdb.DocumentStore on a GridFS bucket.
// Ownership lives in the file metadata, the same shape the knowledge-base
// dashboard has always written.
type DocumentStore struct {
	bucket *gridfs.Bucket
}

// NewDocumentStore creates a document store on the given bucket.
func NewDocumentStore(bucket *gridfs.Bucket) *DocumentStore {
	return &DocumentStore{bucket: bucket}
}

// gridfsFile is the subset of the GridFS files collection document the
// store reads back.
type gridfsFile struct {
	ID         primitive.ObjectID `bson:"_id"`
	Filename   string             `bson:"filename"`
	UploadDate time.Time          `bson:"uploadDate"`
	Metadata   struct {
		UserID       string `bson:"userId"`
		ContentType  string `bson:"contentType"`
		OriginalName string `bson:"originalName"`
	} `bson:"metadata"`
}

// Upload stores a file and returns its metadata.
func (s *DocumentStore) Upload(ctx context.Context, userID, name, contentType string, content io.Reader) (*models.Document, error) {
	if deadline, ok := ctx.Deadline(); ok {
		_ = s.bucket.SetWriteDeadline(deadline)
	}

	opts := options.GridFSUpload().SetMetadata(bson.M{
		"userId":       userID,
		"contentType":  contentType,
		"originalName": name,
	})

	id, err := s.bucket.UploadFromStream(name, content, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to upload document: %w", err)
	}

	return &models.Document{
		ID:         id.Hex(),
		Name:       name,
		Type:       contentType,
		UploadDate: time.Now().UTC(),
	}, nil
}

// List returns the metadata of a user's documents.
func (s *DocumentStore) List(ctx context.Context, userID string) ([]*models.Document, error) {
	cursor, err := s.bucket.Find(bson.M{"metadata.userId": userID})
	if err != nil {
		return nil, fmt.Errorf("failed to find documents: %w", err)
	}
	defer cursor.Close(ctx)

	var files []gridfsFile
	if err := cursor.All(ctx, &files); err != nil {
		return nil, fmt.Errorf("failed to decode documents: %w", err)
	}

	documents := make([]*models.Document, 0, len(files))
	for _, f := range files {
		documents = append(documents, &models.Document{
			ID:         f.ID.Hex(),
			Name:       f.Metadata.OriginalName,
			Type:       f.Metadata.ContentType,
			UploadDate: f.UploadDate,
		})
	}

	return documents, nil
}

// Delete removes a document after checking ownership.
func (s *DocumentStore) Delete(ctx context.Context, userID, id string) error {
	objectID, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return docdb.ErrDocumentNotFound
	}

	cursor, err := s.bucket.Find(bson.M{"_id": objectID})
	if err != nil {
		return fmt.Errorf("failed to find document: %w", err)
	}
	defer cursor.Close(ctx)

	var files []gridfsFile
	if err := cursor.All(ctx, &files); err != nil {
		return fmt.Errorf("failed to decode document: %w", err)
	}
	if len(files) == 0 {
		return docdb.ErrDocumentNotFound
	}
	if files[0].Metadata.UserID != userID {
		return docdb.ErrNotOwner
	}

	if err := s.bucket.Delete(objectID); err != nil {
		return fmt.Errorf("failed to delete document: %w", err)
	}
	return nil
}

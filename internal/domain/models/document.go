package models

import "time"

// Document describes a knowledge-base file stored in GridFS. Only the
// metadata is modeled here; file bytes live in the bucket.
type Document struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	Type       string    `json:"type"`
	UploadDate time.Time `json:"uploadDate"`
}

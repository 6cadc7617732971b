package models

import (
	"time"

	"github.com/google/uuid"
)

// EmailTemplate is a reusable outbound email body owned by a user.
type EmailTemplate struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"userId" bson:"userId"`
	Name      string    `json:"name" bson:"name"`
	Subject   string    `json:"subject" bson:"subject"`
	Content   string    `json:"content" bson:"content"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
}

// NewEmailTemplate creates a template with a generated ID and UTC timestamp.
func NewEmailTemplate(userID, name, subject, content string) *EmailTemplate {
	return &EmailTemplate{
		ID:        uuid.NewString(),
		UserID:    userID,
		Name:      name,
		Subject:   subject,
		Content:   content,
		CreatedAt: time.Now().UTC(),
	}
}

// SentEmail records an email dispatched through the outreach endpoint.
type SentEmail struct {
	ID         string    `json:"id" bson:"_id"`
	UserID     string    `json:"userId" bson:"userId"`
	Recipient  string    `json:"recipient" bson:"recipient"`
	Subject    string    `json:"subject" bson:"subject"`
	Content    string    `json:"content" bson:"content"`
	TemplateID string    `json:"templateId,omitempty" bson:"templateId,omitempty"`
	SentAt     time.Time `json:"sent_at" bson:"sentAt"`
}

// Contact is an imported outreach contact.
type Contact struct {
	ID        string    `json:"id" bson:"_id"`
	UserID    string    `json:"userId" bson:"userId"`
	Name      string    `json:"name" bson:"name"`
	Email     string    `json:"email" bson:"email"`
	Source    string    `json:"source" bson:"source"`
	CreatedAt time.Time `json:"created_at" bson:"createdAt"`
}

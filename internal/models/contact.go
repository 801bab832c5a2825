package models

import "katalog/internal/docid"

// ContactMessage is a contact-form submission. Write-only: messages are
// stored on creation and never read back through the API.
// Collection: "contactmessage".
type ContactMessage struct {
	ID      docid.ID `bson:"_id,omitempty" json:"id"`
	Name    string   `bson:"name" json:"name" validate:"required"`
	Email   string   `bson:"email" json:"email" validate:"required,email"`
	Message string   `bson:"message" json:"message" validate:"required"`
}

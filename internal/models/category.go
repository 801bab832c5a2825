package models

import "katalog/internal/docid"

// Category is a product grouping addressed by its URL slug.
// Collection: "category". The bson/json tags surface the store's _id as
// the public "id" field on every response.
type Category struct {
	ID          docid.ID `bson:"_id,omitempty" json:"id"`
	Name        string   `bson:"name" json:"name" validate:"required"`
	Slug        string   `bson:"slug" json:"slug" validate:"required"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
}

package models

import "katalog/internal/docid"

// Product is a catalog entry. Category holds a Category slug; dangling
// references are tolerated (no foreign key).
// Collection: "product".
type Product struct {
	ID          docid.ID `bson:"_id,omitempty" json:"id"`
	Name        string   `bson:"name" json:"name" validate:"required"`
	Description string   `bson:"description,omitempty" json:"description,omitempty"`
	Price       float64  `bson:"price" json:"price" validate:"gte=0"`
	Category    string   `bson:"category" json:"category" validate:"required"`
	Images      []string `bson:"images" json:"images"`
	InStock     bool     `bson:"in_stock" json:"in_stock"`
	Stock       *int     `bson:"stock,omitempty" json:"stock,omitempty" validate:"omitempty,gte=0"`
	Featured    bool     `bson:"featured" json:"featured"`
}

package services

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Summary is the admin overview: document counts per collection.
type Summary struct {
	Products   int64 `json:"products"`
	Categories int64 `json:"categories"`
}

// AdminService produces read-only aggregates for the admin dashboard.
type AdminService struct {
	products   *mongo.Collection
	categories *mongo.Collection
}

func NewAdminService(db *mongo.Database) *AdminService {
	return &AdminService{
		products:   db.Collection("product"),
		categories: db.Collection("category"),
	}
}

// Summarize counts products and categories, issuing both counts in parallel.
func (s *AdminService) Summarize(ctx context.Context) (Summary, error) {
	type countResult struct {
		n   int64
		err error
	}
	prodCh := make(chan countResult, 1)
	catCh := make(chan countResult, 1)

	go func() {
		n, err := s.products.CountDocuments(ctx, bson.M{})
		prodCh <- countResult{n, err}
	}()
	go func() {
		n, err := s.categories.CountDocuments(ctx, bson.M{})
		catCh <- countResult{n, err}
	}()

	prod := <-prodCh
	cat := <-catCh
	if prod.err != nil {
		return Summary{}, fmt.Errorf("failed to count products: %w", prod.err)
	}
	if cat.err != nil {
		return Summary{}, fmt.Errorf("failed to count categories: %w", cat.err)
	}

	return Summary{Products: prod.n, Categories: cat.n}, nil
}

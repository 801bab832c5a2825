package services

import (
	"context"
	"errors"
	"fmt"

	"katalog/internal/docid"
	"katalog/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// CategoryService handles category CRUD against the "category" collection.
type CategoryService struct {
	coll *mongo.Collection
}

func NewCategoryService(db *mongo.Database) *CategoryService {
	return &CategoryService{coll: db.Collection("category")}
}

// List returns all categories ordered by name ascending.
func (s *CategoryService) List(ctx context.Context) ([]models.Category, error) {
	opts := options.Find().SetSort(bson.D{{Key: "name", Value: 1}})
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer cursor.Close(ctx)

	categories := make([]models.Category, 0)
	if err := cursor.All(ctx, &categories); err != nil {
		return nil, fmt.Errorf("failed to decode categories: %w", err)
	}
	return categories, nil
}

// Get fetches a single category by id.
func (s *CategoryService) Get(ctx context.Context, id docid.ID) (models.Category, error) {
	var cat models.Category
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&cat)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Category{}, ErrNotFound
	}
	if err != nil {
		return models.Category{}, fmt.Errorf("failed to fetch category: %w", err)
	}
	return cat, nil
}

// Create inserts a category after checking that its slug is unused. The
// check and the insert are two separate store calls: two concurrent
// creates with the same slug can both pass the check. There is no unique
// index backing this up.
func (s *CategoryService) Create(ctx context.Context, cat models.Category) (models.Category, error) {
	err := s.coll.FindOne(ctx, bson.M{"slug": cat.Slug}).Err()
	if err == nil {
		return models.Category{}, ErrDuplicateSlug
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return models.Category{}, fmt.Errorf("slug lookup failed: %w", err)
	}

	cat.ID = docid.New()
	if _, err := s.coll.InsertOne(ctx, cat); err != nil {
		return models.Category{}, fmt.Errorf("failed to insert category: %w", err)
	}
	return cat, nil
}

// Update replaces every field of the identified category.
func (s *CategoryService) Update(ctx context.Context, id docid.ID, cat models.Category) (models.Category, error) {
	cat.ID = docid.ID{} // never rewrite _id
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": cat})
	if err != nil {
		return models.Category{}, fmt.Errorf("failed to update category: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.Category{}, ErrNotFound
	}
	cat.ID = id
	return cat, nil
}

// Delete removes the identified category.
func (s *CategoryService) Delete(ctx context.Context, id docid.ID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

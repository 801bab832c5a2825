package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"katalog/internal/docid"
	"katalog/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	defaultLimit         = 12
	maxLimit             = 100
	defaultFeaturedLimit = 8
)

// ListParams are the listing inputs taken from the query string. Nil price
// bounds mean "no bound".
type ListParams struct {
	Search   string
	Category string
	MinPrice *float64
	MaxPrice *float64
	Sort     string // price_asc, price_desc, name_asc; anything else is natural order
	Page     int
	Limit    int
}

// normalized clamps pagination to sane values: page below 1 becomes 1,
// limit outside 1..100 falls back to the default.
func (p ListParams) normalized() ListParams {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 || p.Limit > maxLimit {
		p.Limit = defaultLimit
	}
	return p
}

// ListResult is a page of products plus the total over the whole filtered set.
type ListResult struct {
	Items []models.Product `json:"items"`
	Total int64            `json:"total"`
	Page  int              `json:"page"`
	Limit int              `json:"limit"`
}

// buildListQuery translates normalized listing params into a Mongo filter
// and find options. All present filters combine with AND; the search term
// is regex-quoted so it always means a literal substring.
func buildListQuery(p ListParams) (bson.M, *options.FindOptions) {
	filter := bson.M{}
	if p.Search != "" {
		filter["name"] = primitive.Regex{Pattern: regexp.QuoteMeta(p.Search), Options: "i"}
	}
	if p.Category != "" {
		filter["category"] = p.Category
	}
	if p.MinPrice != nil || p.MaxPrice != nil {
		price := bson.M{}
		if p.MinPrice != nil {
			price["$gte"] = *p.MinPrice
		}
		if p.MaxPrice != nil {
			price["$lte"] = *p.MaxPrice
		}
		filter["price"] = price
	}

	opts := options.Find().
		SetSkip(int64((p.Page - 1) * p.Limit)).
		SetLimit(int64(p.Limit))
	switch p.Sort {
	case "price_asc":
		opts.SetSort(bson.D{{Key: "price", Value: 1}})
	case "price_desc":
		opts.SetSort(bson.D{{Key: "price", Value: -1}})
	case "name_asc":
		opts.SetSort(bson.D{{Key: "name", Value: 1}})
	}
	return filter, opts
}

// ProductService handles product listing and CRUD against the "product"
// collection.
type ProductService struct {
	coll *mongo.Collection
}

func NewProductService(db *mongo.Database) *ProductService {
	return &ProductService{coll: db.Collection("product")}
}

// List returns one page of the filtered, sorted product set. Total is
// counted over the filter before pagination is applied.
func (s *ProductService) List(ctx context.Context, params ListParams) (ListResult, error) {
	params = params.normalized()
	filter, opts := buildListQuery(params)

	total, err := s.coll.CountDocuments(ctx, filter)
	if err != nil {
		return ListResult{}, fmt.Errorf("failed to count products: %w", err)
	}

	cursor, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return ListResult{}, fmt.Errorf("failed to list products: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.Product, 0, params.Limit)
	if err := cursor.All(ctx, &items); err != nil {
		return ListResult{}, fmt.Errorf("failed to decode products: %w", err)
	}

	return ListResult{Items: items, Total: total, Page: params.Page, Limit: params.Limit}, nil
}

// Featured returns up to limit featured products ordered by name.
func (s *ProductService) Featured(ctx context.Context, limit int) ([]models.Product, error) {
	if limit < 1 || limit > maxLimit {
		limit = defaultFeaturedLimit
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "name", Value: 1}}).
		SetLimit(int64(limit))
	cursor, err := s.coll.Find(ctx, bson.M{"featured": true}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list featured products: %w", err)
	}
	defer cursor.Close(ctx)

	items := make([]models.Product, 0, limit)
	if err := cursor.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("failed to decode featured products: %w", err)
	}
	return items, nil
}

// Get fetches a single product by id.
func (s *ProductService) Get(ctx context.Context, id docid.ID) (models.Product, error) {
	var prod models.Product
	err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&prod)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return models.Product{}, ErrNotFound
	}
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to fetch product: %w", err)
	}
	return prod, nil
}

// Create inserts a product with a freshly generated id.
func (s *ProductService) Create(ctx context.Context, prod models.Product) (models.Product, error) {
	if prod.Images == nil {
		prod.Images = []string{}
	}
	prod.ID = docid.New()
	if _, err := s.coll.InsertOne(ctx, prod); err != nil {
		return models.Product{}, fmt.Errorf("failed to insert product: %w", err)
	}
	return prod, nil
}

// Update replaces every field of the identified product.
func (s *ProductService) Update(ctx context.Context, id docid.ID, prod models.Product) (models.Product, error) {
	if prod.Images == nil {
		prod.Images = []string{}
	}
	prod.ID = docid.ID{} // never rewrite _id
	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": prod})
	if err != nil {
		return models.Product{}, fmt.Errorf("failed to update product: %w", err)
	}
	if res.MatchedCount == 0 {
		return models.Product{}, ErrNotFound
	}
	prod.ID = id
	return prod, nil
}

// Delete removes the identified product.
func (s *ProductService) Delete(ctx context.Context, id docid.ID) error {
	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

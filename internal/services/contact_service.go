package services

import (
	"context"
	"fmt"

	"katalog/internal/docid"
	"katalog/internal/models"

	"go.mongodb.org/mongo-driver/mongo"
)

// ContactService stores contact-form submissions in the "contactmessage"
// collection. Creation only; there is no read or lifecycle beyond that.
type ContactService struct {
	coll *mongo.Collection
}

func NewContactService(db *mongo.Database) *ContactService {
	return &ContactService{coll: db.Collection("contactmessage")}
}

func (s *ContactService) Create(ctx context.Context, msg models.ContactMessage) error {
	msg.ID = docid.New()
	if _, err := s.coll.InsertOne(ctx, msg); err != nil {
		return fmt.Errorf("failed to store contact message: %w", err)
	}
	return nil
}

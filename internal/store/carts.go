package store

import (
	"context"
	"time"

	"github.com/arzan03/DrugHouse/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type CartStore struct {
	base
}

func NewCartStore(db *mongo.Database, timeout time.Duration) *CartStore {
	return &CartStore{base: newBase(db.Collection("carts"), timeout)}
}

func (s *CartStore) Insert(ctx context.Context, item *models.CartItem) (primitive.ObjectID, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	if item.ID.IsZero() {
		item.ID = primitive.NewObjectID()
	}
	if _, err := s.coll.InsertOne(ctx, item); err != nil {
		return primitive.NilObjectID, translate(err)
	}
	return item.ID, nil
}

// ListByEmail returns the owner's items, newest first.
func (s *CartStore) ListByEmail(ctx context.Context, email string) ([]models.CartItem, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	cursor, err := s.coll.Find(ctx, bson.M{"email": email}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	items := []models.CartItem{}
	if err := cursor.All(ctx, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// Delete removes the item only when email owns it.
func (s *CartStore) Delete(ctx context.Context, id primitive.ObjectID, email string) error {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	res, err := s.coll.DeleteOne(ctx, bson.M{"_id": id, "email": email})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

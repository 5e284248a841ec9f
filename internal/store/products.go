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

// visible excludes banned products from listings.
var visible = bson.M{"isBanned": bson.M{"$ne": true}}

type ProductStore struct {
	base
}

func NewProductStore(db *mongo.Database, timeout time.Duration) *ProductStore {
	return &ProductStore{base: newBase(db.Collection("products"), timeout)}
}

// Count reports the number of products that are not banned.
func (s *ProductStore) Count(ctx context.Context) (int64, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return s.coll.CountDocuments(ctx, visible)
}

// List returns non-banned products, newest id first.
func (s *ProductStore) List(ctx context.Context, skip, limit int64) ([]models.Product, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "_id", Value: -1}}).
		SetSkip(skip).
		SetLimit(limit)
	cursor, err := s.coll.Find(ctx, visible, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []models.Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

func (s *ProductStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	var product models.Product
	if err := s.coll.FindOne(ctx, bson.M{"_id": id}).Decode(&product); err != nil {
		return nil, translate(err)
	}
	return &product, nil
}

// IncrementViews adds delta to the view counter in a single update. A
// missing views field counts as zero.
func (s *ProductStore) IncrementViews(ctx context.Context, id primitive.ObjectID, delta float64) error {
	return s.update(ctx, id, bson.M{"$inc": bson.M{"views": delta}})
}

// AddImage records an object key on the product.
func (s *ProductStore) AddImage(ctx context.Context, id primitive.ObjectID, key string) error {
	return s.update(ctx, id, bson.M{"$push": bson.M{"images": key}})
}

func (s *ProductStore) update(ctx context.Context, id primitive.ObjectID, update bson.M) error {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	res, err := s.coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

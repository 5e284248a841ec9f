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

// CatalogStore serves every reference collection; the kind selects the
// collection and text field.
type CatalogStore struct {
	db      *mongo.Database
	timeout time.Duration
}

func NewCatalogStore(db *mongo.Database, timeout time.Duration) *CatalogStore {
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	return &CatalogStore{db: db, timeout: timeout}
}

func (s *CatalogStore) collection(kind models.CatalogKind) base {
	return newBase(s.db.Collection(kind.Collection), s.timeout)
}

// Search matches approved terms whose text contains pattern. The pattern is
// used as a case-sensitive regular expression without escaping.
func (s *CatalogStore) Search(ctx context.Context, kind models.CatalogKind, pattern string) ([]bson.M, error) {
	b := s.collection(kind)
	ctx, cancel := b.ctx(ctx)
	defer cancel()

	filter := bson.M{
		kind.Field: bson.M{"$regex": pattern},
		"status":   models.StatusApproved,
	}
	opts := options.Find().SetProjection(bson.M{kind.Field: 1})

	cursor, err := b.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	results := []bson.M{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *CatalogStore) Insert(ctx context.Context, kind models.CatalogKind, term *models.CatalogTerm) (primitive.ObjectID, error) {
	b := s.collection(kind)
	ctx, cancel := b.ctx(ctx)
	defer cancel()

	if term.ID.IsZero() {
		term.ID = primitive.NewObjectID()
	}
	doc := bson.M{
		"_id":       term.ID,
		kind.Field:  term.Text,
		"status":    term.Status,
		"addedBy":   term.AddedBy,
		"createdAt": term.CreatedAt,
	}
	if _, err := b.coll.InsertOne(ctx, doc); err != nil {
		return primitive.NilObjectID, translate(err)
	}
	return term.ID, nil
}

func (s *CatalogStore) SetStatus(ctx context.Context, kind models.CatalogKind, id primitive.ObjectID, status string) error {
	b := s.collection(kind)
	ctx, cancel := b.ctx(ctx)
	defer cancel()

	res, err := b.coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{"status": status}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

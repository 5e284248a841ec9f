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

type UserStore struct {
	base
}

func NewUserStore(db *mongo.Database, timeout time.Duration) *UserStore {
	return &UserStore{base: newBase(db.Collection("users"), timeout)}
}

func (s *UserStore) Count(ctx context.Context) (int64, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()
	return s.coll.CountDocuments(ctx, bson.M{})
}

// List returns users oldest first.
func (s *UserStore) List(ctx context.Context, skip, limit int64) ([]models.User, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: 1}}).
		SetSkip(skip).
		SetLimit(limit)
	cursor, err := s.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	users := []models.User{}
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (s *UserStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.findOne(ctx, bson.M{"_id": id})
}

func (s *UserStore) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return s.findOne(ctx, bson.M{"email": email})
}

func (s *UserStore) findOne(ctx context.Context, filter bson.M) (*models.User, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	var user models.User
	if err := s.coll.FindOne(ctx, filter).Decode(&user); err != nil {
		return nil, translate(err)
	}
	return &user, nil
}

// Insert stores user and returns its new id. A second user with the same
// email fails with ErrDuplicate.
func (s *UserStore) Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	ctx, cancel := s.ctx(ctx)
	defer cancel()

	if user.ID.IsZero() {
		user.ID = primitive.NewObjectID()
	}
	if _, err := s.coll.InsertOne(ctx, user); err != nil {
		return primitive.NilObjectID, translate(err)
	}
	return user.ID, nil
}

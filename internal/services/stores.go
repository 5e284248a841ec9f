package services

import (
	"context"
	"io"
	"time"

	"github.com/arzan03/DrugHouse/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type UserStore interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, skip, limit int64) ([]models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	Insert(ctx context.Context, user *models.User) (primitive.ObjectID, error)
}

type ProductStore interface {
	Count(ctx context.Context) (int64, error)
	List(ctx context.Context, skip, limit int64) ([]models.Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	IncrementViews(ctx context.Context, id primitive.ObjectID, delta float64) error
	AddImage(ctx context.Context, id primitive.ObjectID, key string) error
}

type CatalogStore interface {
	Search(ctx context.Context, kind models.CatalogKind, pattern string) ([]bson.M, error)
	Insert(ctx context.Context, kind models.CatalogKind, term *models.CatalogTerm) (primitive.ObjectID, error)
	SetStatus(ctx context.Context, kind models.CatalogKind, id primitive.ObjectID, status string) error
}

type CartStore interface {
	Insert(ctx context.Context, item *models.CartItem) (primitive.ObjectID, error)
	ListByEmail(ctx context.Context, email string) ([]models.CartItem, error)
	Delete(ctx context.Context, id primitive.ObjectID, email string) error
}

// ObjectStore keeps binary blobs such as product images.
type ObjectStore interface {
	Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error
	Remove(ctx context.Context, key string) error
	PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error)
}

// EventPublisher announces domain events. Delivery failures never fail the
// operation that raised them.
type EventPublisher interface {
	Publish(ctx context.Context, subject string, payload any) error
}

func parseID(hex string) (primitive.ObjectID, error) {
	id, err := primitive.ObjectIDFromHex(hex)
	if err != nil {
		return primitive.NilObjectID, ErrInvalidID
	}
	return id, nil
}

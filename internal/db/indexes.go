package db

import (
	"context"
	"fmt"

	"github.com/arzan03/DrugHouse/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Indexes returns the index set each collection needs, keyed by collection.
func Indexes() map[string][]mongo.IndexModel {
	idx := map[string][]mongo.IndexModel{
		"users": {
			{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("email_unique")},
			{Keys: bson.D{{Key: "createdAt", Value: 1}}},
		},
		"products": {
			{Keys: bson.D{{Key: "isBanned", Value: 1}, {Key: "_id", Value: -1}}},
		},
		"carts": {
			{Keys: bson.D{{Key: "email", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
	}
	for _, kind := range models.CatalogKinds() {
		idx[kind.Collection] = append(idx[kind.Collection], mongo.IndexModel{
			Keys: bson.D{{Key: "status", Value: 1}, {Key: kind.Field, Value: 1}},
		})
	}
	return idx
}

// EnsureIndexes creates every index from Indexes. Creating an existing
// index is a no-op on the server.
func EnsureIndexes(ctx context.Context, database *mongo.Database) error {
	for coll, idx := range Indexes() {
		if _, err := database.Collection(coll).Indexes().CreateMany(ctx, idx); err != nil {
			return fmt.Errorf("create indexes on %s: %w", coll, err)
		}
	}
	return nil
}

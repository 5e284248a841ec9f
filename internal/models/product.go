package models

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog item. Only the fields the API acts on are typed;
// the rest of the document travels in Extra.
type Product struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	IsBanned bool               `bson:"isBanned,omitempty" json:"isBanned,omitempty"`
	Views    float64            `bson:"views,omitempty" json:"views"`
	Images   []string           `bson:"images,omitempty" json:"images,omitempty"`
	Extra    bson.M             `bson:",inline" json:"-"`
}

func (p Product) MarshalJSON() ([]byte, error) {
	type plain Product
	return mergeJSON(plain(p), p.Extra)
}

package models

import (
	"encoding/json"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleCustomer = "customer"
	RoleAdmin    = "admin"
)

// User is a customer account. Fields the client sends beyond the modelled
// ones are kept in Extra and stored alongside them.
type User struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id,omitempty"`
	Email         string             `bson:"email" json:"email"`
	Role          string             `bson:"role" json:"role"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	RoleCreatedAt time.Time          `bson:"role_createdAt" json:"role_createdAt"`
	Extra         bson.M             `bson:",inline" json:"-"`
}

var userKeys = []string{"_id", "email", "role", "createdAt", "role_createdAt"}

func (u User) MarshalJSON() ([]byte, error) {
	type plain User
	return mergeJSON(plain(u), u.Extra)
}

func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	extra, err := splitJSON(data, userKeys...)
	if err != nil {
		return err
	}
	p.Extra = extra
	*u = User(p)
	return nil
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// CatalogKind describes one reference collection. The term text lives in a
// field named after the kind.
type CatalogKind struct {
	Name       string
	Collection string
	Field      string
}

var catalogKinds = map[string]CatalogKind{
	"generic":      {Name: "generic", Collection: "generic", Field: "generic"},
	"manufacturer": {Name: "manufacturer", Collection: "manufacturer", Field: "manufacturer"},
	"dosageForm":   {Name: "dosageForm", Collection: "dosageForm", Field: "dosageForm"},
	"country":      {Name: "country", Collection: "country", Field: "country"},
}

// LookupCatalogKind reports the kind registered under name.
func LookupCatalogKind(name string) (CatalogKind, bool) {
	k, ok := catalogKinds[name]
	return k, ok
}

// CatalogKinds lists every registered kind.
func CatalogKinds() []CatalogKind {
	kinds := make([]CatalogKind, 0, len(catalogKinds))
	for _, k := range catalogKinds {
		kinds = append(kinds, k)
	}
	return kinds
}

// ValidStatus reports whether s is a catalog term status.
func ValidStatus(s string) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// CatalogTerm is a submitted reference entry before it is written under its
// kind's field name.
type CatalogTerm struct {
	ID        primitive.ObjectID
	Text      string
	Status    string
	AddedBy   string
	CreatedAt time.Time
}

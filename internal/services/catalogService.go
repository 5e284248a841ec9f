package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arzan03/DrugHouse/internal/models"
	"github.com/arzan03/DrugHouse/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// CatalogService searches and curates the reference catalogs.
type CatalogService struct {
	catalog CatalogStore
	now     func() time.Time
}

// NewCatalogService returns a CatalogService over catalog.
func NewCatalogService(catalog CatalogStore) *CatalogService {
	return &CatalogService{catalog: catalog, now: time.Now}
}

func kindOf(name string) (models.CatalogKind, error) {
	kind, ok := models.LookupCatalogKind(name)
	if !ok {
		return models.CatalogKind{}, fmt.Errorf("%w: %q", ErrUnknownKind, name)
	}
	return kind, nil
}

// Search returns approved terms of kind whose text matches pattern.
func (s *CatalogService) Search(ctx context.Context, kindName, pattern string) ([]bson.M, error) {
	kind, err := kindOf(kindName)
	if err != nil {
		return nil, err
	}
	results, err := s.catalog.Search(ctx, kind, pattern)
	if err != nil {
		return nil, fmt.Errorf("search %s: %w", kind.Name, err)
	}
	return results, nil
}

// Submit stores a pending term proposed by addedBy.
func (s *CatalogService) Submit(ctx context.Context, kindName, text, addedBy string) (primitive.ObjectID, error) {
	kind, err := kindOf(kindName)
	if err != nil {
		return primitive.NilObjectID, err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return primitive.NilObjectID, fmt.Errorf("%w: text is required", ErrInvalidInput)
	}

	term := &models.CatalogTerm{
		Text:      text,
		Status:    models.StatusPending,
		AddedBy:   addedBy,
		CreatedAt: s.now(),
	}
	id, err := s.catalog.Insert(ctx, kind, term)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("insert %s: %w", kind.Name, err)
	}
	return id, nil
}

// SetStatus moves a term to pending, approved or rejected.
func (s *CatalogService) SetStatus(ctx context.Context, kindName, hexID, status string) error {
	kind, err := kindOf(kindName)
	if err != nil {
		return err
	}
	if !models.ValidStatus(status) {
		return fmt.Errorf("%w: unknown status %q", ErrInvalidInput, status)
	}
	id, err := parseID(hexID)
	if err != nil {
		return err
	}
	if err := s.catalog.SetStatus(ctx, kind, id, status); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrTermNotFound
		}
		return fmt.Errorf("set %s status: %w", kind.Name, err)
	}
	return nil
}

package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/arzan03/DrugHouse/internal/events"
	"github.com/arzan03/DrugHouse/internal/metrics"
	"github.com/arzan03/DrugHouse/internal/models"
	"github.com/arzan03/DrugHouse/internal/store"
	"github.com/arzan03/DrugHouse/internal/utils"
	"go.uber.org/zap"
)

// ProductService reads products and tracks their views.
type ProductService struct {
	products ProductStore
	events   EventPublisher
	metrics  *metrics.Metrics
	log      *zap.Logger
}

// NewProductService returns a ProductService. A nil pub discards events.
func NewProductService(products ProductStore, pub EventPublisher, m *metrics.Metrics, log *zap.Logger) *ProductService {
	if pub == nil {
		pub = events.Nop{}
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &ProductService{products: products, events: pub, metrics: m, log: log.Named("products")}
}

// List returns one page of products that are not banned, newest first.
func (s *ProductService) List(ctx context.Context, page int64) (models.Page[models.Product], error) {
	if page < 1 {
		page = 1
	}

	var (
		total    int64
		products []models.Product
	)
	err := utils.RunParallel(ctx,
		func(ctx context.Context) error {
			n, err := s.products.Count(ctx)
			total = n
			return err
		},
		func(ctx context.Context) error {
			p, err := s.products.List(ctx, models.Offset(page), models.PageSize)
			products = p
			return err
		},
	)
	if err != nil {
		return models.Page[models.Product]{}, fmt.Errorf("list products: %w", err)
	}
	return models.NewPage(page, total, products), nil
}

// GetByID returns the product with the given hex id.
func (s *ProductService) GetByID(ctx context.Context, hexID string) (*models.Product, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	product, err := s.products.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("find product %s: %w", hexID, err)
	}
	return product, nil
}

// AddViews adds delta, which may be negative, to the product's view counter.
func (s *ProductService) AddViews(ctx context.Context, hexID string, delta float64) error {
	id, err := parseID(hexID)
	if err != nil {
		return err
	}
	if err := s.products.IncrementViews(ctx, id, delta); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("increment views on %s: %w", hexID, err)
	}

	s.metrics.ProductViewed()
	evt := events.ProductViewed{ProductID: hexID, Delta: delta}
	if err := s.events.Publish(ctx, events.SubjectProductViewed, evt); err != nil {
		s.log.Warn("publish product viewed", zap.String("productID", hexID), zap.Error(err))
	}
	return nil
}

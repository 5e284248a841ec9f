package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/arzan03/DrugHouse/internal/models"
	"github.com/arzan03/DrugHouse/internal/store"
)

// CartService manages per-customer cart items.
type CartService struct {
	carts    CartStore
	products ProductStore
	now      func() time.Time
}

// NewCartService returns a CartService that checks items against products.
func NewCartService(carts CartStore, products ProductStore) *CartService {
	return &CartService{carts: carts, products: products, now: time.Now}
}

// Add puts quantity units of a product in the owner's cart. The product
// must exist.
func (s *CartService) Add(ctx context.Context, email, productHex string, quantity int) (*models.CartItem, error) {
	if quantity == 0 {
		quantity = 1
	}
	if quantity < 0 {
		return nil, fmt.Errorf("%w: quantity must be positive", ErrInvalidInput)
	}
	productID, err := parseID(productHex)
	if err != nil {
		return nil, err
	}
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("find product %s: %w", productHex, err)
	}

	item := &models.CartItem{
		Email:     email,
		ProductID: productID,
		Quantity:  quantity,
		CreatedAt: s.now(),
	}
	if _, err := s.carts.Insert(ctx, item); err != nil {
		return nil, fmt.Errorf("insert cart item: %w", err)
	}
	return item, nil
}

// List returns the items owned by email, newest first.
func (s *CartService) List(ctx context.Context, email string) ([]models.CartItem, error) {
	items, err := s.carts.ListByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("list cart: %w", err)
	}
	return items, nil
}

// Remove deletes the item if email owns it.
func (s *CartService) Remove(ctx context.Context, email, hexID string) error {
	id, err := parseID(hexID)
	if err != nil {
		return err
	}
	if err := s.carts.Delete(ctx, id, email); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrCartItemNotFound
		}
		return fmt.Errorf("delete cart item: %w", err)
	}
	return nil
}

package services

import (
	"context"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/arzan03/DrugHouse/internal/models"
	"github.com/arzan03/DrugHouse/internal/store"
	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memUsers struct {
	mu    sync.Mutex
	users []models.User
	err   error

	// skipLookup makes FindByEmail miss so the unique index path is taken.
	skipLookup bool
}

func (m *memUsers) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), m.err
}

func (m *memUsers) List(_ context.Context, skip, limit int64) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	sorted := append([]models.User(nil), m.users...)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].CreatedAt.Before(sorted[j].CreatedAt) })
	return window(sorted, skip, limit), nil
}

func (m *memUsers) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	if m.skipLookup {
		return nil, store.ErrNotFound
	}
	for _, u := range m.users {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, store.ErrNotFound
}

func (m *memUsers) Insert(_ context.Context, user *models.User) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.Email == user.Email {
			return primitive.NilObjectID, store.ErrDuplicate
		}
	}
	user.ID = primitive.NewObjectID()
	m.users = append(m.users, *user)
	return user.ID, nil
}

type memProducts struct {
	mu       sync.Mutex
	products []models.Product
	err      error
}

func (m *memProducts) visible() []models.Product {
	var out []models.Product
	for _, p := range m.products {
		if !p.IsBanned {
			out = append(out, p)
		}
	}
	return out
}

func (m *memProducts) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.visible())), m.err
}

func (m *memProducts) List(_ context.Context, skip, limit int64) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	sorted := m.visible()
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].ID.Hex() > sorted[j].ID.Hex() })
	return window(sorted, skip, limit), nil
}

func (m *memProducts) find(id primitive.ObjectID) *models.Product {
	for i := range m.products {
		if m.products[i].ID == id {
			return &m.products[i]
		}
	}
	return nil
}

func (m *memProducts) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return nil, m.err
	}
	p := m.find(id)
	if p == nil {
		return nil, store.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (m *memProducts) IncrementViews(_ context.Context, id primitive.ObjectID, delta float64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	p := m.find(id)
	if p == nil {
		return store.ErrNotFound
	}
	p.Views += delta
	return nil
}

func (m *memProducts) AddImage(_ context.Context, id primitive.ObjectID, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	p := m.find(id)
	if p == nil {
		return store.ErrNotFound
	}
	p.Images = append(p.Images, key)
	return nil
}

// addProduct inserts a product with an id that sorts after every earlier one.
func (m *memProducts) addProduct(banned bool) primitive.ObjectID {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectIDFromTimestamp(time.Unix(int64(1_700_000_000+len(m.products)), 0))
	m.products = append(m.products, models.Product{ID: id, IsBanned: banned})
	return id
}

type memCatalog struct {
	terms map[string][]bson.M
}

func newMemCatalog() *memCatalog {
	return &memCatalog{terms: map[string][]bson.M{}}
}

func (m *memCatalog) Search(_ context.Context, kind models.CatalogKind, pattern string) ([]bson.M, error) {
	out := []bson.M{}
	for _, t := range m.terms[kind.Collection] {
		text, _ := t[kind.Field].(string)
		if t["status"] == models.StatusApproved && strings.Contains(text, pattern) {
			out = append(out, bson.M{"_id": t["_id"], kind.Field: text})
		}
	}
	return out, nil
}

func (m *memCatalog) Insert(_ context.Context, kind models.CatalogKind, term *models.CatalogTerm) (primitive.ObjectID, error) {
	term.ID = primitive.NewObjectID()
	m.terms[kind.Collection] = append(m.terms[kind.Collection], bson.M{
		"_id":      term.ID,
		kind.Field: term.Text,
		"status":   term.Status,
		"addedBy":  term.AddedBy,
	})
	return term.ID, nil
}

func (m *memCatalog) SetStatus(_ context.Context, kind models.CatalogKind, id primitive.ObjectID, status string) error {
	for _, t := range m.terms[kind.Collection] {
		if t["_id"] == id {
			t["status"] = status
			return nil
		}
	}
	return store.ErrNotFound
}

type memCarts struct {
	items []models.CartItem
}

func (m *memCarts) Insert(_ context.Context, item *models.CartItem) (primitive.ObjectID, error) {
	item.ID = primitive.NewObjectID()
	m.items = append(m.items, *item)
	return item.ID, nil
}

func (m *memCarts) ListByEmail(_ context.Context, email string) ([]models.CartItem, error) {
	out := []models.CartItem{}
	for i := len(m.items) - 1; i >= 0; i-- {
		if m.items[i].Email == email {
			out = append(out, m.items[i])
		}
	}
	return out, nil
}

func (m *memCarts) Delete(_ context.Context, id primitive.ObjectID, email string) error {
	for i, it := range m.items {
		if it.ID == id && it.Email == email {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type mockObjects struct {
	mock.Mock
}

func (m *mockObjects) Put(ctx context.Context, key string, r io.Reader, size int64, contentType string) error {
	return m.Called(ctx, key, r, size, contentType).Error(0)
}

func (m *mockObjects) Remove(ctx context.Context, key string) error {
	return m.Called(ctx, key).Error(0)
}

func (m *mockObjects) PresignedURL(ctx context.Context, key string, expiry time.Duration) (string, error) {
	args := m.Called(ctx, key, expiry)
	return args.String(0), args.Error(1)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(ctx context.Context, subject string, payload any) error {
	return m.Called(ctx, subject, payload).Error(0)
}

func window[T any](items []T, skip, limit int64) []T {
	out := []T{}
	for i := skip; i < int64(len(items)) && i < skip+limit; i++ {
		out = append(out, items[i])
	}
	return out
}

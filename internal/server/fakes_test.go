package server

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/arzan03/DrugHouse/internal/models"
	"github.com/arzan03/DrugHouse/internal/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func window[T any](items []T, skip, limit int64) []T {
	if skip >= int64(len(items)) {
		return []T{}
	}
	end := skip + limit
	if end > int64(len(items)) {
		end = int64(len(items))
	}
	return items[skip:end]
}

type memUsers struct {
	mu    sync.Mutex
	users []models.User
}

func (m *memUsers) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

func (m *memUsers) List(_ context.Context, skip, limit int64) ([]models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return window(append([]models.User(nil), m.users...), skip, limit), nil
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
}

func (m *memProducts) add(banned bool, extra bson.M) primitive.ObjectID {
	m.mu.Lock()
	defer m.mu.Unlock()
	id := primitive.NewObjectIDFromTimestamp(time.Unix(int64(1_700_000_000+len(m.products)), 0))
	m.products = append(m.products, models.Product{ID: id, IsBanned: banned, Extra: extra})
	return id
}

func (m *memProducts) visible() []models.Product {
	var out []models.Product
	for _, p := range m.products {
		if !p.IsBanned {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID.Hex() > out[j].ID.Hex() })
	return out
}

func (m *memProducts) find(id primitive.ObjectID) *models.Product {
	for i := range m.products {
		if m.products[i].ID == id {
			return &m.products[i]
		}
	}
	return nil
}

func (m *memProducts) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.visible())), nil
}

func (m *memProducts) List(_ context.Context, skip, limit int64) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return window(m.visible(), skip, limit), nil
}

func (m *memProducts) FindByID(_ context.Context, id primitive.ObjectID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
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
	p := m.find(id)
	if p == nil {
		return store.ErrNotFound
	}
	p.Images = append(p.Images, key)
	return nil
}

type memCatalog struct {
	mu       sync.Mutex
	terms    map[string][]models.CatalogTerm
	searched []string
}

func (m *memCatalog) Search(_ context.Context, kind models.CatalogKind, pattern string) ([]bson.M, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.searched = append(m.searched, pattern)
	out := []bson.M{}
	for _, t := range m.terms[kind.Collection] {
		if t.Status == models.StatusApproved && strings.Contains(t.Text, pattern) {
			out = append(out, bson.M{"_id": t.ID, kind.Field: t.Text})
		}
	}
	return out, nil
}

func (m *memCatalog) Insert(_ context.Context, kind models.CatalogKind, term *models.CatalogTerm) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.terms == nil {
		m.terms = map[string][]models.CatalogTerm{}
	}
	term.ID = primitive.NewObjectID()
	m.terms[kind.Collection] = append(m.terms[kind.Collection], *term)
	return term.ID, nil
}

func (m *memCatalog) SetStatus(_ context.Context, kind models.CatalogKind, id primitive.ObjectID, status string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	terms := m.terms[kind.Collection]
	for i := range terms {
		if terms[i].ID == id {
			terms[i].Status = status
			return nil
		}
	}
	return store.ErrNotFound
}

type memCarts struct {
	mu    sync.Mutex
	items []models.CartItem
}

func (m *memCarts) Insert(_ context.Context, item *models.CartItem) (primitive.ObjectID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	item.ID = primitive.NewObjectID()
	m.items = append(m.items, *item)
	return item.ID, nil
}

func (m *memCarts) ListByEmail(_ context.Context, email string) ([]models.CartItem, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := []models.CartItem{}
	for _, it := range m.items {
		if it.Email == email {
			out = append(out, it)
		}
	}
	return out, nil
}

func (m *memCarts) Delete(_ context.Context, id primitive.ObjectID, email string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, it := range m.items {
		if it.ID == id && it.Email == email {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return nil
		}
	}
	return store.ErrNotFound
}

type memObjects struct {
	mu      sync.Mutex
	objects map[string][]byte
}

func (m *memObjects) Put(_ context.Context, key string, r io.Reader, _ int64, _ string) error {
	data, err := io.ReadAll(r)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.objects == nil {
		m.objects = map[string][]byte{}
	}
	m.objects[key] = data
	return nil
}

func (m *memObjects) Remove(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	return nil
}

func (m *memObjects) PresignedURL(_ context.Context, key string, expiry time.Duration) (string, error) {
	return fmt.Sprintf("http://objects.test/%s?expires=%d", key, int(expiry.Seconds())), nil
}

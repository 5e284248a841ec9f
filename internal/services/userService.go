package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/arzan03/DrugHouse/internal/events"
	"github.com/arzan03/DrugHouse/internal/metrics"
	"github.com/arzan03/DrugHouse/internal/models"
	"github.com/arzan03/DrugHouse/internal/store"
	"github.com/arzan03/DrugHouse/internal/utils"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

// UserService manages customer accounts.
type UserService struct {
	users   UserStore
	events  EventPublisher
	metrics *metrics.Metrics
	loc     *time.Location
	now     func() time.Time
	log     *zap.Logger
}

// NewUserService returns a UserService stamping times in loc. A nil pub
// discards events and a nil loc means UTC.
func NewUserService(users UserStore, pub EventPublisher, m *metrics.Metrics, loc *time.Location, log *zap.Logger) *UserService {
	if pub == nil {
		pub = events.Nop{}
	}
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &UserService{
		users:   users,
		events:  pub,
		metrics: m,
		loc:     loc,
		now:     time.Now,
		log:     log.Named("users"),
	}
}

// List returns one page of users, oldest first.
func (s *UserService) List(ctx context.Context, page int64) (models.Page[models.User], error) {
	if page < 1 {
		page = 1
	}

	var (
		total int64
		users []models.User
	)
	err := utils.RunParallel(ctx,
		func(ctx context.Context) error {
			n, err := s.users.Count(ctx)
			total = n
			return err
		},
		func(ctx context.Context) error {
			u, err := s.users.List(ctx, models.Offset(page), models.PageSize)
			users = u
			return err
		},
	)
	if err != nil {
		return models.Page[models.User]{}, fmt.Errorf("list users: %w", err)
	}
	return models.NewPage(page, total, users), nil
}

// GetByID returns the user with the given hex id.
func (s *UserService) GetByID(ctx context.Context, hexID string) (*models.User, error) {
	id, err := parseID(hexID)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user %s: %w", hexID, err)
	}
	return user, nil
}

// GetByEmail returns the user registered under email.
func (s *UserService) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	return user, nil
}

// Create inserts user as a customer unless the email is already taken, in
// which case it returns ErrUserExists. The unique index on email decides
// races between concurrent creates.
func (s *UserService) Create(ctx context.Context, user *models.User) (primitive.ObjectID, error) {
	user.Email = strings.TrimSpace(user.Email)
	if user.Email == "" {
		return primitive.NilObjectID, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	if _, err := s.users.FindByEmail(ctx, user.Email); err == nil {
		return primitive.NilObjectID, ErrUserExists
	} else if !errors.Is(err, store.ErrNotFound) {
		return primitive.NilObjectID, fmt.Errorf("check existing user: %w", err)
	}

	now := s.now().In(s.loc)
	user.ID = primitive.NilObjectID
	user.Role = models.RoleCustomer
	user.CreatedAt = now
	user.RoleCreatedAt = now

	id, err := s.users.Insert(ctx, user)
	if err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			s.log.Info("duplicate user insert rejected by index", zap.String("email", user.Email))
			return primitive.NilObjectID, ErrUserExists
		}
		return primitive.NilObjectID, fmt.Errorf("insert user: %w", err)
	}

	s.metrics.UserCreated()
	evt := events.UserCreated{ID: id.Hex(), Email: user.Email, CreatedAt: now}
	if err := s.events.Publish(ctx, events.SubjectUserCreated, evt); err != nil {
		s.log.Warn("publish user created", zap.String("userID", id.Hex()), zap.Error(err))
	}
	return id, nil
}

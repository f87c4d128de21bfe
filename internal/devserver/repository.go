package devserver

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/subtracker/internal/client/models"
)

var ErrNotFound = errors.New("subscription not found")

// Repository keeps subscriptions in insertion order.
type Repository interface {
	List(ctx context.Context) ([]models.Subscription, error)
	Get(ctx context.Context, id models.ID) (models.Subscription, error)
	Create(ctx context.Context, f models.Fields) (models.Subscription, error)
	Update(ctx context.Context, id models.ID, f models.Fields) (models.Subscription, error)
	Delete(ctx context.Context, id models.ID) error
}

type InMemoryRepository struct {
	mu    sync.RWMutex
	items []models.Subscription
	newID func() models.ID
}

func NewInMemoryRepository() *InMemoryRepository {
	return &InMemoryRepository{
		newID: func() models.ID { return models.ID(uuid.NewString()) },
	}
}

func (r *InMemoryRepository) List(_ context.Context) ([]models.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Subscription, len(r.items))
	copy(out, r.items)
	return out, nil
}

func (r *InMemoryRepository) Get(_ context.Context, id models.ID) (models.Subscription, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Subscription{}, ErrNotFound
	}
	return r.items[i], nil
}

func (r *InMemoryRepository) Create(_ context.Context, f models.Fields) (models.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	s := models.Subscription{ID: r.newID(), Fields: f}
	r.items = append(r.items, s)
	return s, nil
}

func (r *InMemoryRepository) Update(_ context.Context, id models.ID, f models.Fields) (models.Subscription, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return models.Subscription{}, ErrNotFound
	}
	r.items[i].Fields = f
	return r.items[i], nil
}

func (r *InMemoryRepository) Delete(_ context.Context, id models.ID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i := r.indexOf(id)
	if i < 0 {
		return ErrNotFound
	}
	r.items = append(r.items[:i], r.items[i+1:]...)
	return nil
}

// indexOf expects the caller to hold the lock.
func (r *InMemoryRepository) indexOf(id models.ID) int {
	for i := range r.items {
		if r.items[i].ID == id {
			return i
		}
	}
	return -1
}

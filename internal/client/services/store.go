package services

import (
	"context"
	"slices"
	"sync"

	"github.com/dmitrijs2005/subtracker/internal/client/client"
	"github.com/dmitrijs2005/subtracker/internal/client/models"
	"github.com/dmitrijs2005/subtracker/internal/client/repositories/snapshot"
	"github.com/dmitrijs2005/subtracker/internal/logging"
)

// Store owns the canonical in-memory list of subscriptions.
//
// Items always mirror the server's list as of the last successful fetch:
// every successful mutation is followed by a full refresh rather than a local
// patch. Remote failures are recorded as the last error and never returned.
//
// Concurrent Refresh calls are allowed to race; the last response to land
// wins.
type Store struct {
	client    client.Client
	snapshots snapshot.Repository
	log       logging.Logger

	mu      sync.Mutex
	items   []models.Subscription
	loading bool
	lastErr string
}

// StoreOption customizes a Store.
type StoreOption func(*Store)

// WithSnapshots persists every successfully fetched list to repo.
func WithSnapshots(repo snapshot.Repository) StoreOption {
	return func(s *Store) { s.snapshots = repo }
}

// WithStoreLogger sets the logger used for failed remote calls.
func WithStoreLogger(l logging.Logger) StoreOption {
	return func(s *Store) { s.log = l }
}

// NewStore builds an empty store over c.
func NewStore(c client.Client, opts ...StoreOption) *Store {
	s := &Store{client: c, log: logging.Discard(), items: []models.Subscription{}}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Items returns a copy of the current list in server order.
func (s *Store) Items() []models.Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.items)
}

// Find returns the item with the given id from the current list.
func (s *Store) Find(id models.ID) (models.Subscription, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.ID == id {
			return it, true
		}
	}
	return models.Subscription{}, false
}

// Loading reports whether a refresh is in flight.
func (s *Store) Loading() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loading
}

// LastError returns the message of the most recent failure, or "".
func (s *Store) LastError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

// DismissError clears the last error.
func (s *Store) DismissError() {
	s.setError("")
}

// Restore seeds the list from the snapshot repository, if one is configured
// and holds data. It does not contact the server.
func (s *Store) Restore(ctx context.Context) {
	if s.snapshots == nil {
		return
	}
	items, savedAt, err := s.snapshots.Load(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to load snapshot", "error", err)
		return
	}
	if items == nil {
		return
	}

	s.mu.Lock()
	s.items = items
	s.mu.Unlock()
	s.log.Info(ctx, "restored snapshot", "items", len(items), "saved_at", savedAt)
}

// Refresh replaces the list with the server's. On failure the previous list
// is kept and the error is recorded.
func (s *Store) Refresh(ctx context.Context) {
	s.mu.Lock()
	s.loading = true
	s.lastErr = ""
	s.mu.Unlock()

	items, err := s.client.List(ctx)

	s.mu.Lock()
	s.loading = false
	if err != nil {
		s.lastErr = err.Error()
		s.mu.Unlock()
		s.log.Error(ctx, "refresh failed", "op", "refresh", "error", err)
		return
	}
	s.items = items
	s.mu.Unlock()

	if s.snapshots != nil {
		if err := s.snapshots.Save(ctx, items); err != nil {
			s.log.Warn(ctx, "failed to save snapshot", "error", err)
		}
	}
}

// Create sends f to the server and refreshes on success.
func (s *Store) Create(ctx context.Context, f models.Fields) {
	s.mutate(ctx, "create", func() error { return s.client.Create(ctx, f) })
}

// Update sends the full record f for id and refreshes on success.
func (s *Store) Update(ctx context.Context, id models.ID, f models.Fields) {
	s.mutate(ctx, "update", func() error { return s.client.Update(ctx, id, f) })
}

// Delete removes id on the server and refreshes on success.
func (s *Store) Delete(ctx context.Context, id models.ID) {
	s.mutate(ctx, "delete", func() error { return s.client.Delete(ctx, id) })
}

func (s *Store) mutate(ctx context.Context, op string, call func() error) {
	if err := call(); err != nil {
		s.setError(err.Error())
		s.log.Error(ctx, "mutation failed", "op", op, "error", err)
		return
	}
	s.Refresh(ctx)
}

func (s *Store) setError(msg string) {
	s.mu.Lock()
	s.lastErr = msg
	s.mu.Unlock()
}

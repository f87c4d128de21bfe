package services

import (
	"context"
	"errors"
	"strconv"
	"sync"

	"github.com/dmitrijs2005/subtracker/internal/client/client"
	"github.com/dmitrijs2005/subtracker/internal/client/models"
)

// fakeRemote simulates the remote store in memory. Injected errors apply to
// the next call of the matching operation only.
type fakeRemote struct {
	mu     sync.Mutex
	items  []models.Subscription
	nextID int

	listErr, createErr, updateErr, deleteErr error

	calls []string
}

var _ client.Client = (*fakeRemote)(nil)

func newFakeRemote(items ...models.Subscription) *fakeRemote {
	return &fakeRemote{items: items, nextID: 100}
}

func (f *fakeRemote) record(op string) {
	f.calls = append(f.calls, op)
}

func (f *fakeRemote) take(p *error) error {
	err := *p
	*p = nil
	return err
}

func (f *fakeRemote) List(ctx context.Context) ([]models.Subscription, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("list")
	if err := f.take(&f.listErr); err != nil {
		return nil, &client.RequestError{Kind: client.ErrFetch, Err: err}
	}
	out := make([]models.Subscription, len(f.items))
	copy(out, f.items)
	return out, nil
}

func (f *fakeRemote) Create(ctx context.Context, fields models.Fields) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("create")
	if err := f.take(&f.createErr); err != nil {
		return &client.RequestError{Kind: client.ErrCreate, Err: err}
	}
	f.nextID++
	f.items = append(f.items, models.Subscription{ID: models.ID(strconv.Itoa(f.nextID)), Fields: fields})
	return nil
}

func (f *fakeRemote) Update(ctx context.Context, id models.ID, fields models.Fields) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("update")
	if err := f.take(&f.updateErr); err != nil {
		return &client.RequestError{Kind: client.ErrUpdate, Err: err}
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items[i].Fields = fields
			return nil
		}
	}
	return &client.RequestError{Kind: client.ErrUpdate, StatusCode: 404}
}

func (f *fakeRemote) Delete(ctx context.Context, id models.ID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("delete")
	if err := f.take(&f.deleteErr); err != nil {
		return &client.RequestError{Kind: client.ErrDelete, Err: err}
	}
	for i := range f.items {
		if f.items[i].ID == id {
			f.items = append(f.items[:i], f.items[i+1:]...)
			return nil
		}
	}
	return &client.RequestError{Kind: client.ErrDelete, StatusCode: 404}
}

func (f *fakeRemote) count(op string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.calls {
		if c == op {
			n++
		}
	}
	return n
}

// recordingStore captures what the form dispatches.
type recordingStore struct {
	created []models.Fields
	updated []updateCall
	deleted []models.ID
}

type updateCall struct {
	id     models.ID
	fields models.Fields
}

func (r *recordingStore) Create(_ context.Context, f models.Fields) {
	r.created = append(r.created, f)
}

func (r *recordingStore) Update(_ context.Context, id models.ID, f models.Fields) {
	r.updated = append(r.updated, updateCall{id: id, fields: f})
}

func (r *recordingStore) Delete(_ context.Context, id models.ID) {
	r.deleted = append(r.deleted, id)
}

var errBoom = errors.New("connection refused")

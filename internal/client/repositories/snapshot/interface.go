package snapshot

import (
	"context"
	"time"

	"github.com/dmitrijs2005/subtracker/internal/client/models"
)

// Repository persists the list last confirmed by the remote store.
type Repository interface {
	// Save replaces the stored snapshot with items, preserving their order.
	Save(ctx context.Context, items []models.Subscription) error

	// Load returns the stored snapshot and when it was saved.
	// An empty repository yields a nil slice and a zero time.
	Load(ctx context.Context) ([]models.Subscription, time.Time, error)
}

package client

import (
	"context"

	"github.com/dmitrijs2005/subtracker/internal/client/models"
)

// Client is the contract of the remote subscription store.
type Client interface {
	List(ctx context.Context) ([]models.Subscription, error)
	Create(ctx context.Context, f models.Fields) error
	Update(ctx context.Context, id models.ID, f models.Fields) error
	Delete(ctx context.Context, id models.ID) error
}

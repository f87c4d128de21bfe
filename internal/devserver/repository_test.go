package devserver

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/subtracker/internal/client/models"
)

func fields(name string) models.Fields {
	return models.Fields{
		Name:            name,
		Amount:          100,
		BillingCycle:    models.BillingMonthly,
		NextBillingDate: models.NewDate(2026, time.December, 1),
		Category:        models.CategoryOther,
	}
}

func TestInMemoryRepository_CRUD(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	a, err := r.Create(ctx, fields("a"))
	require.NoError(t, err)
	b, err := r.Create(ctx, fields("b"))
	require.NoError(t, err)
	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)

	items, err := r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Subscription{a, b}, items, "insertion order")

	changed := fields("a2")
	u, err := r.Update(ctx, a.ID, changed)
	require.NoError(t, err)
	assert.Equal(t, a.ID, u.ID)

	got, err := r.Get(ctx, a.ID)
	require.NoError(t, err)
	assert.Equal(t, "a2", got.Name)

	require.NoError(t, r.Delete(ctx, a.ID))
	items, err = r.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Subscription{b}, items)
}

func TestInMemoryRepository_NotFound(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()

	_, err := r.Get(ctx, "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	_, err = r.Update(ctx, "missing", fields("x"))
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, r.Delete(ctx, "missing"), ErrNotFound)
}

func TestInMemoryRepository_ListIsACopy(t *testing.T) {
	r := NewInMemoryRepository()
	ctx := context.Background()
	_, err := r.Create(ctx, fields("a"))
	require.NoError(t, err)

	items, _ := r.List(ctx)
	items[0].Name = "mutated"

	again, _ := r.List(ctx)
	assert.Equal(t, "a", again[0].Name)
}

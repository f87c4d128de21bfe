package devserver

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/subtracker/internal/client/client"
	"github.com/dmitrijs2005/subtracker/internal/client/models"
	"github.com/dmitrijs2005/subtracker/internal/logging"
)

// TestApp_ServesRemoteClient drives the real HTTP client against a running
// dev server.
func TestApp_ServesRemoteClient(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)

	app, err := NewApp(&Config{ShutdownTimeout: time.Second}, logging.Discard())
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- app.Serve(ctx, ln) }()

	c, err := client.NewHTTPClient("http://"+ln.Addr().String()+CollectionPath, client.WithTimeout(2*time.Second))
	require.NoError(t, err)

	f := models.Fields{
		Name:            "Netflix",
		Amount:          649,
		BillingCycle:    models.BillingMonthly,
		NextBillingDate: models.NewDate(2026, time.November, 1),
		Category:        models.CategoryEntertainment,
	}
	require.NoError(t, c.Create(ctx, f))

	items, err := c.List(ctx)
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, f, items[0].Fields)

	f.Amount = 799
	require.NoError(t, c.Update(ctx, items[0].ID, f))
	require.ErrorIs(t, c.Update(ctx, "missing", f), client.ErrUpdate)

	require.NoError(t, c.Delete(ctx, items[0].ID))
	err = c.Delete(ctx, items[0].ID)
	var rerr *client.RequestError
	require.ErrorAs(t, err, &rerr)
	assert.Equal(t, 404, rerr.StatusCode)

	f.Amount = -1
	assert.ErrorIs(t, c.Create(ctx, f), client.ErrCreate)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop")
	}
}

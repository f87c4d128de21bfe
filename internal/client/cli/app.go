package cli

import (
	"bufio"
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/subtracker/internal/client/client"
	"github.com/dmitrijs2005/subtracker/internal/client/config"
	"github.com/dmitrijs2005/subtracker/internal/client/repositories/snapshot"
	"github.com/dmitrijs2005/subtracker/internal/client/services"
	"github.com/dmitrijs2005/subtracker/internal/logging"

	_ "modernc.org/sqlite"
)

type App struct {
	config *config.Config
	logger logging.Logger
	store  *services.Store
	form   *services.Form
	db     *sql.DB
	reader *bufio.Reader
	out    io.Writer
}

// NewApp wires the remote client, the optional snapshot database and the
// store. Client metrics are registered with reg when it is not nil.
func NewApp(ctx context.Context, c *config.Config, logger logging.Logger, reg prometheus.Registerer) (*App, error) {
	opts := []client.Option{
		client.WithTimeout(c.RequestTimeout),
		client.WithLogger(logger.With("module", "remote")),
	}
	if reg != nil {
		m, err := client.NewMetrics(reg)
		if err != nil {
			return nil, fmt.Errorf("metrics: %w", err)
		}
		opts = append(opts, client.WithMetrics(m))
	}

	remote, err := client.NewHTTPClient(c.BaseURL, opts...)
	if err != nil {
		return nil, err
	}

	storeOpts := []services.StoreOption{services.WithStoreLogger(logger.With("module", "store"))}

	var db *sql.DB
	if c.SnapshotPath != "" {
		db, err = client.InitDatabase(ctx, c.SnapshotPath)
		if err != nil {
			logger.Error(ctx, "error initializing database", "error", err)
			return nil, err
		}
		storeOpts = append(storeOpts, services.WithSnapshots(snapshot.NewSQLiteRepository(db)))
	}

	store := services.NewStore(remote, storeOpts...)

	return &App{
		config: c,
		logger: logger,
		store:  store,
		form:   services.NewForm(store),
		db:     db,
		reader: bufio.NewReader(os.Stdin),
		out:    os.Stdout,
	}, nil
}

// Run restores the snapshot, starts the initial refresh in the background
// and blocks in the REPL until the user exits.
func (a *App) Run(ctx context.Context) error {
	defer a.Close()

	a.store.Restore(ctx)

	var g errgroup.Group
	g.Go(func() error {
		a.store.Refresh(ctx)
		return nil
	})

	fmt.Fprintln(a.out, "Subscription tracker (type 'help' for commands)")
	runREPL(ctx, a, a.status, a.reader)

	return g.Wait()
}

func (a *App) Close() error {
	if a.db == nil {
		return nil
	}
	return a.db.Close()
}

// status is shown in the prompt.
func (a *App) status() string {
	if a.store.Loading() {
		return "(loading) "
	}
	return ""
}

func (a *App) banner() string {
	return a.store.LastError()
}

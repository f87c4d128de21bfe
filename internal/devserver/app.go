// Package devserver is an in-memory stand-in for the remote subscription
// store. It serves the same REST contract the CLI client consumes.
package devserver

import (
	"context"
	"errors"
	"net"
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/subtracker/internal/logging"
)

type App struct {
	config  *Config
	logger  logging.Logger
	handler http.Handler
}

func NewApp(c *Config, logger logging.Logger) (*App, error) {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())

	m, err := NewMetrics(reg)
	if err != nil {
		return nil, err
	}

	opts := RouterOptions{Metrics: m, Gatherer: reg}
	if c.RateLimit > 0 {
		opts.Limiter = rate.NewLimiter(rate.Limit(c.RateLimit), c.RateBurst)
	}

	return &App{
		config:  c,
		logger:  logger.With("module", "devserver"),
		handler: NewRouter(logger, NewInMemoryRepository(), opts),
	}, nil
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (app *App) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", app.config.Addr)
	if err != nil {
		return err
	}
	return app.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (app *App) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{Handler: app.handler}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		app.logger.Info(ctx, "Starting HTTP server", "address", ln.Addr().String())
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		app.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), app.config.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

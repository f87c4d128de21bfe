package main

import (
	"context"
	"errors"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"github.com/dmitrijs2005/subtracker/internal/client/cli"
	"github.com/dmitrijs2005/subtracker/internal/client/config"
	"github.com/dmitrijs2005/subtracker/internal/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := config.LoadConfig()

	logger, err := logging.New(os.Stderr, cfg.LogLevel)
	if err != nil {
		log.Fatalf("%v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer stop()

	var reg *prometheus.Registry
	if cfg.MetricsAddr != "" {
		reg = prometheus.NewRegistry()
	}

	app, err := cli.NewApp(ctx, cfg, logger, registerer(reg))
	if err != nil {
		log.Fatalf("%v", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	appDone := make(chan struct{})

	if reg != nil {
		ln, err := net.Listen("tcp", cfg.MetricsAddr)
		if err != nil {
			log.Fatalf("metrics: %v", err)
		}
		srv := &http.Server{
			Handler:           promhttp.HandlerFor(reg, promhttp.HandlerOpts{}),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			logger.Info(gctx, "serving metrics", "address", cfg.MetricsAddr)
			if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
				return err
			}
			return nil
		})
		g.Go(func() error {
			select {
			case <-gctx.Done():
			case <-appDone:
			}
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		defer close(appDone)
		return app.Run(gctx)
	})

	if err := g.Wait(); err != nil {
		log.Fatalf("%v", err)
	}
}

// registerer avoids handing a typed nil to NewApp.
func registerer(reg *prometheus.Registry) prometheus.Registerer {
	if reg == nil {
		return nil
	}
	return reg
}

package devserver

import (
	"net/http"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/subtracker/internal/logging"
)

// CollectionPath is where the subscription resource is mounted.
const CollectionPath = "/api/subscriptions"

// RouterOptions tunes NewRouter. Zero values disable the feature.
type RouterOptions struct {
	Limiter  *rate.Limiter
	Metrics  *Metrics
	Gatherer prometheus.Gatherer
}

// NewRouter wires the subscription endpoints:
//
//	GET    /api/subscriptions
//	POST   /api/subscriptions
//	GET    /api/subscriptions/{id}
//	PUT    /api/subscriptions/{id}
//	DELETE /api/subscriptions/{id}
//
// plus GET /metrics when a Gatherer is given.
func NewRouter(log logging.Logger, repo Repository, opts RouterOptions) http.Handler {
	h := NewHandler(log, repo)

	r := chi.NewRouter()
	r.Use(
		middleware.RequestID,
		AccessLog(log, opts.Metrics),
		Recover(log),
	)

	r.Route(CollectionPath, func(r chi.Router) {
		if opts.Limiter != nil {
			r.Use(RateLimit(log, opts.Limiter))
		}
		r.Get("/", h.List)
		r.Post("/", h.Create)
		r.Get("/{id}", h.Get)
		r.Put("/{id}", h.Update)
		r.Delete("/{id}", h.Delete)
	})

	if opts.Gatherer != nil {
		r.Handle("/metrics", promhttp.HandlerFor(opts.Gatherer, promhttp.HandlerOpts{}))
	}

	return r
}

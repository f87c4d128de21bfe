package devserver

import (
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"github.com/dmitrijs2005/subtracker/internal/logging"
)

// RateLimit answers 429 once the shared token bucket is empty.
func RateLimit(log logging.Logger, limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Warn(r.Context(), "too many requests", "request_id", middleware.GetReqID(r.Context()))
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, errorResponse("too many requests"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AccessLog logs one line per request and feeds the request metrics.
func AccessLog(log logging.Logger, m *Metrics) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()

			next.ServeHTTP(ww, r)

			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			elapsed := time.Since(start)
			m.observe(r.Method, strconv.Itoa(status), elapsed)
			log.Info(r.Context(), "request",
				"method", r.Method,
				"path", r.URL.Path,
				"status", status,
				"duration", elapsed,
				"request_id", middleware.GetReqID(r.Context()),
			)
		})
	}
}

// Recover turns a handler panic into a logged 500. http.ErrAbortHandler is
// re-raised so net/http can abort the connection.
func Recover(log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rvr := recover()
				if rvr == nil {
					return
				}
				if rvr == http.ErrAbortHandler { //nolint:errorlint
					panic(rvr)
				}
				log.Error(r.Context(), "handler panic",
					"panic", rvr,
					"stack", string(debug.Stack()),
					"request_id", middleware.GetReqID(r.Context()),
				)
				render.Status(r, http.StatusInternalServerError)
				render.JSON(w, r, errorResponse("internal error"))
			}()
			next.ServeHTTP(w, r)
		})
	}
}

// Package httptransport assembles the HTTP router: middleware stack, the
// snapshot API, and the operational endpoints.
package httptransport

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"talentdeck/internal/platform/config"
	"talentdeck/internal/platform/middleware"
	snaphandler "talentdeck/internal/snapshot/handler"
)

// NewRouter wires all endpoints with the middleware stack.
func NewRouter(cfg config.Server, snapshot *snaphandler.Handler, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Timeout(30 * time.Second))

	r.Get("/healthz", handleHealthz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(cfg.RequestsPerSecond, cfg.RequestBurst))
		snapshot.Register(r)
	})

	return r
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

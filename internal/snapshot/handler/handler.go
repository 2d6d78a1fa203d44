// Package handler exposes the dashboard snapshot over HTTP.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"talentdeck/internal/platform/httputil"
	"talentdeck/internal/platform/middleware"
	"talentdeck/internal/snapshot/models"
	"talentdeck/internal/snapshot/service"
	dErrors "talentdeck/pkg/domain-errors"
)

// Service defines the snapshot operation the handler consumes.
type Service interface {
	GetDashboardSnapshot(ctx context.Context, query service.GetSnapshotQuery) (*models.DashboardSnapshot, error)
}

type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

func (h *Handler) Register(r chi.Router) {
	r.Get("/api/dashboard/snapshot", h.HandleGetSnapshot)
}

// HandleGetSnapshot serves the dashboard snapshot. Both query parameters are
// optional: workspace_id falls back to the current workspace, lookback_days
// to the configured default.
func (h *Handler) HandleGetSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := middleware.GetRequestID(ctx)

	var query service.GetSnapshotQuery
	if raw := r.URL.Query().Get("workspace_id"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || id <= 0 {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid workspace_id"))
			return
		}
		query.WorkspaceID = &id
	}
	if raw := r.URL.Query().Get("lookback_days"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			httputil.WriteError(w, dErrors.New(dErrors.CodeBadRequest, "invalid lookback_days"))
			return
		}
		query.LookbackDays = &days
	}

	snapshot, err := h.service.GetDashboardSnapshot(ctx, query)
	if err != nil {
		h.logger.ErrorContext(ctx, "get dashboard snapshot failed",
			"error", err,
			"request_id", requestID,
		)
		httputil.WriteError(w, err)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, snapshot)
}

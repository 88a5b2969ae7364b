// Package handler wires AR encounter endpoints to the encounters service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"trailtail/internal/encounters"
	"trailtail/pkg/domain"
	dErrors "trailtail/pkg/domain-errors"
	"trailtail/pkg/platform/httputil"
	"trailtail/pkg/requestcontext"
)

// Service defines the encounter operations this handler exposes.
type Service interface {
	Generate(ctx context.Context, routeID string, mode domain.Mode, childAge, count int) ([]encounters.Encounter, error)
	Details(ctx context.Context, encounterID string) (*encounters.Detail, error)
}

// Handler is the thin HTTP layer over the encounters service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts encounter endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/ar-encounters", func(r chi.Router) {
		r.Get("/generate/{routeID}", h.handleGenerate)
		r.Get("/{encounterID}", h.handleDetails)
	})
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	routeID := chi.URLParam(r, "routeID")

	mode := r.URL.Query().Get("narrative_mode")
	if mode == "" {
		mode = string(domain.ModeHistory)
	}
	parsed, err := domain.ParseMode(mode)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	age, err := queryInt(r, "child_age", 10)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	count, err := queryInt(r, "count", 5)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	list, err := h.service.Generate(ctx, routeID, parsed, age, count)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "encounters generated",
		"request_id", requestcontext.RequestID(ctx),
		"route_id", routeID,
		"mode", parsed,
		"count", len(list),
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"encounters": list})
}

func (h *Handler) handleDetails(w http.ResponseWriter, r *http.Request) {
	detail, err := h.service.Details(r.Context(), chi.URLParam(r, "encounterID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, detail)
}

func queryInt(r *http.Request, name string, fallback int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, dErrors.Newf(dErrors.CodeInvalidInput, "%s must be an integer", name)
	}
	return v, nil
}

// Package handler wires route endpoints to the routes service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"trailtail/internal/routes"
	"trailtail/pkg/domain"
	dErrors "trailtail/pkg/domain-errors"
	"trailtail/pkg/platform/httputil"
	"trailtail/pkg/requestcontext"
)

// Service defines the route operations this handler exposes.
type Service interface {
	Generate(ctx context.Context, req routes.GenerateRequest) (*routes.Route, error)
	Get(ctx context.Context, routeID string) (*routes.Route, error)
	Nearby(ctx context.Context, lat, lng, radius float64) ([]routes.Summary, error)
}

// Handler is the thin HTTP layer over the routes service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts route endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/routes", func(r chi.Router) {
		r.Get("/generate", h.handleGenerate)
		r.Get("/nearby", h.handleNearby)
		r.Get("/{routeID}", h.handleGet)
	})
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	lat, err := queryFloat(r, "start_lat", 0)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	lng, err := queryFloat(r, "start_lng", 0)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	distance, err := queryFloat(r, "distance", 3.0)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	withChildren, err := queryBool(r, "with_children", true)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	difficulty := r.URL.Query().Get("difficulty")
	if difficulty == "" {
		difficulty = string(domain.DifficultyEasy)
	}
	parsed, err := domain.ParseDifficulty(difficulty)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	route, err := h.service.Generate(ctx, routes.GenerateRequest{
		StartLat:     lat,
		StartLng:     lng,
		Distance:     distance,
		Difficulty:   parsed,
		WithChildren: withChildren,
	})
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "route generated",
		"request_id", requestcontext.RequestID(ctx),
		"route_id", route.ID,
		"difficulty", route.Difficulty,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, route)
}

func (h *Handler) handleNearby(w http.ResponseWriter, r *http.Request) {
	lat, err := queryFloat(r, "lat", 0)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	lng, err := queryFloat(r, "lng", 0)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	radius, err := queryFloat(r, "radius", 10.0)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	summaries, err := h.service.Nearby(r.Context(), lat, lng, radius)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"routes": summaries})
}

func (h *Handler) handleGet(w http.ResponseWriter, r *http.Request) {
	route, err := h.service.Get(r.Context(), chi.URLParam(r, "routeID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, route)
}

func queryFloat(r *http.Request, name string, fallback float64) (float64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, dErrors.Newf(dErrors.CodeInvalidInput, "%s must be a number", name)
	}
	return v, nil
}

func queryBool(r *http.Request, name string, fallback bool) (bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return false, dErrors.Newf(dErrors.CodeInvalidInput, "%s must be a boolean", name)
	}
	return v, nil
}

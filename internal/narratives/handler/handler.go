// Package handler wires narrative endpoints to the narratives service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"trailtail/internal/narratives"
	"trailtail/pkg/domain"
	dErrors "trailtail/pkg/domain-errors"
	"trailtail/pkg/platform/httputil"
	"trailtail/pkg/requestcontext"
)

// Service defines the narrative operations this handler exposes.
type Service interface {
	Generate(ctx context.Context, routeID string, mode domain.Mode, childAge int, language, userID string) ([]narratives.Narrative, error)
	PreviewForParents(ctx context.Context, routeID string, mode domain.Mode) (*narratives.Preview, error)
	History(ctx context.Context, userID string, limit int) ([]narratives.HistoryEntry, error)
}

// Handler is the thin HTTP layer over the narratives service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts narrative endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/narratives", func(r chi.Router) {
		r.Get("/generate/{routeID}", h.handleGenerate)
		r.Get("/preview/{routeID}", h.handlePreview)
		r.Get("/history/{userID}", h.handleHistory)
	})
}

func (h *Handler) handleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()
	routeID := chi.URLParam(r, "routeID")

	mode, err := queryMode(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	age, err := queryInt(r, "child_age", 10)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	language := r.URL.Query().Get("language")
	if language == "" {
		language = "en"
	}
	userID := r.URL.Query().Get("user_id")

	list, err := h.service.Generate(ctx, routeID, mode, age, language, userID)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "narratives generated",
		"request_id", requestcontext.RequestID(ctx),
		"route_id", routeID,
		"mode", mode,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, list)
}

func (h *Handler) handlePreview(w http.ResponseWriter, r *http.Request) {
	mode, err := queryMode(r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	preview, err := h.service.PreviewForParents(r.Context(), chi.URLParam(r, "routeID"), mode)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, preview)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	limit, err := queryInt(r, "limit", 10)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	entries, err := h.service.History(r.Context(), chi.URLParam(r, "userID"), limit)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, map[string]any{"history": entries})
}

func queryMode(r *http.Request) (domain.Mode, error) {
	raw := r.URL.Query().Get("mode")
	if raw == "" {
		return domain.ModeFantasy, nil
	}
	return domain.ParseMode(raw)
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

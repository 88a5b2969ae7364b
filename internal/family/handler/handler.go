// Package handler wires family endpoints to the family service.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"trailtail/internal/family"
	"trailtail/pkg/platform/httputil"
	"trailtail/pkg/requestcontext"
)

// Service defines the family operations this handler exposes.
type Service interface {
	Register(ctx context.Context, req family.RegisterRequest) (*family.RegistrationAck, error)
	Get(ctx context.Context, familyID string) (*family.Family, error)
	Progress(ctx context.Context, familyID string) (*family.Progress, error)
	UpdatePreferences(ctx context.Context, userID string, prefs map[string]any) (*family.PreferencesAck, error)
	CompleteRoute(ctx context.Context, familyID, routeID string, activity family.CompletionRequest) (*family.CompletionAck, error)
}

// Handler is the thin HTTP layer over the family service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts family endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/users", func(r chi.Router) {
		r.Post("/register-family", h.handleRegister)
		r.Get("/family/{familyID}", h.handleGetFamily)
		r.Get("/family-progress/{familyID}", h.handleProgress)
		r.Post("/preferences/{userID}", h.handleUpdatePreferences)
		r.Post("/complete-route/{familyID}/{routeID}", h.handleCompleteRoute)
	})
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	req, err := httputil.DecodeJSON[family.RegisterRequest](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ack, err := h.service.Register(r.Context(), req)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "family registered",
		"request_id", requestcontext.RequestID(r.Context()),
		"family_id", ack.FamilyID,
	)
	httputil.WriteJSON(w, http.StatusOK, ack)
}

func (h *Handler) handleGetFamily(w http.ResponseWriter, r *http.Request) {
	fam, err := h.service.Get(r.Context(), chi.URLParam(r, "familyID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, fam)
}

func (h *Handler) handleProgress(w http.ResponseWriter, r *http.Request) {
	progress, err := h.service.Progress(r.Context(), chi.URLParam(r, "familyID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, progress)
}

func (h *Handler) handleUpdatePreferences(w http.ResponseWriter, r *http.Request) {
	prefs, err := httputil.DecodeJSON[map[string]any](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ack, err := h.service.UpdatePreferences(r.Context(), chi.URLParam(r, "userID"), prefs)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, ack)
}

func (h *Handler) handleCompleteRoute(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "familyID")
	routeID := chi.URLParam(r, "routeID")

	activity, err := httputil.DecodeJSON[family.CompletionRequest](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ack, err := h.service.CompleteRoute(r.Context(), familyID, routeID, activity)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "route completion recorded",
		"request_id", requestcontext.RequestID(r.Context()),
		"family_id", familyID,
		"route_id", routeID,
		"completion_id", ack.CompletionID,
	)
	httputil.WriteJSON(w, http.StatusOK, ack)
}

// Package handler wires safety endpoints to the safety service.
package handler

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"trailtail/internal/safety"
	dErrors "trailtail/pkg/domain-errors"
	"trailtail/pkg/platform/httputil"
	"trailtail/pkg/requestcontext"
)

// Service defines the safety operations this handler exposes.
type Service interface {
	ParentalControls(ctx context.Context, familyID string) (*safety.Controls, error)
	UpdateParentalControls(ctx context.Context, familyID string, controls safety.Controls) (*safety.ControlsAck, error)
	CheckContent(ctx context.Context, text string, childAge int) (*safety.Verdict, error)
	RouteSafety(ctx context.Context, routeID string) (*safety.RouteSafetyInfo, error)
	ReportIssue(ctx context.Context, routeID string, issue safety.Issue) (*safety.IssueAck, error)
}

// Handler is the thin HTTP layer over the safety service.
type Handler struct {
	service Service
	logger  *slog.Logger
}

func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{service: service, logger: logger}
}

// Register mounts safety endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Route("/safety", func(r chi.Router) {
		r.Get("/parental-controls/{familyID}", h.handleGetControls)
		r.Post("/parental-controls/{familyID}", h.handleUpdateControls)
		r.Get("/content-check", h.handleContentCheck)
		r.Get("/route-safety/{routeID}", h.handleRouteSafety)
		r.Post("/report-issue/{routeID}", h.handleReportIssue)
	})
}

func (h *Handler) handleGetControls(w http.ResponseWriter, r *http.Request) {
	controls, err := h.service.ParentalControls(r.Context(), chi.URLParam(r, "familyID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, controls)
}

func (h *Handler) handleUpdateControls(w http.ResponseWriter, r *http.Request) {
	familyID := chi.URLParam(r, "familyID")

	controls, err := httputil.DecodeJSON[safety.Controls](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ack, err := h.service.UpdateParentalControls(r.Context(), familyID, controls)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "parental controls updated",
		"request_id", requestcontext.RequestID(r.Context()),
		"family_id", familyID,
	)
	httputil.WriteJSON(w, http.StatusOK, ack)
}

func (h *Handler) handleContentCheck(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	start := time.Now()

	content := r.URL.Query().Get("content")
	age, err := queryInt(r, "child_age", 10)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	verdict, err := h.service.CheckContent(ctx, content, age)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "content checked",
		"request_id", requestcontext.RequestID(ctx),
		"verdict", verdict.Verdict,
		"child_age", age,
		"duration_ms", time.Since(start).Milliseconds(),
	)
	httputil.WriteJSON(w, http.StatusOK, verdict)
}

func (h *Handler) handleRouteSafety(w http.ResponseWriter, r *http.Request) {
	info, err := h.service.RouteSafety(r.Context(), chi.URLParam(r, "routeID"))
	if err != nil {
		httputil.WriteError(w, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, info)
}

func (h *Handler) handleReportIssue(w http.ResponseWriter, r *http.Request) {
	routeID := chi.URLParam(r, "routeID")

	issue, err := httputil.DecodeJSON[safety.Issue](r)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	ack, err := h.service.ReportIssue(r.Context(), routeID, issue)
	if err != nil {
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(r.Context(), "safety issue reported",
		"request_id", requestcontext.RequestID(r.Context()),
		"route_id", routeID,
		"issue_id", ack.IssueID,
		"priority", ack.Priority,
	)
	httputil.WriteJSON(w, http.StatusOK, ack)
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

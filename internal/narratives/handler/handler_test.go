package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"trailtail/internal/narratives"
	narrativesStore "trailtail/internal/narratives/store"
)

func newNarrativesRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	svc, err := narratives.New(narrativesStore.NewInMemoryHistoryStore(), logger)
	if err != nil {
		t.Fatalf("failed to build narratives service: %v", err)
	}

	router := chi.NewRouter()
	New(svc, logger).Register(router)
	return router
}

func TestGenerateNarratives(t *testing.T) {
	router := newNarrativesRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/narratives/generate/route_easy_12345?mode=history&child_age=7", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var list []narratives.Narrative
	if err := json.NewDecoder(rec.Body).Decode(&list); err != nil {
		t.Fatalf("failed to decode narratives: %v", err)
	}
	if len(list) == 0 {
		t.Fatal("expected narratives in response")
	}
	for _, n := range list {
		if n.Story == "" {
			t.Fatalf("narrative %q has no story", n.Title)
		}
	}
}

func TestGenerateNarrativesValidation(t *testing.T) {
	router := newNarrativesRouter(t)

	t.Run("unknown mode", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
			"/narratives/generate/route_easy_12345?mode=noir", nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})

	t.Run("age outside domain", func(t *testing.T) {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
			"/narratives/generate/route_easy_12345?child_age=25", nil))
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", rec.Code)
		}
	})
}

func TestPreviewNarratives(t *testing.T) {
	router := newNarrativesRouter(t)

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
		"/narratives/preview/route_easy_12345?mode=fantasy", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var preview narratives.Preview
	if err := json.NewDecoder(rec.Body).Decode(&preview); err != nil {
		t.Fatalf("failed to decode preview: %v", err)
	}
	if !preview.ParentalGuidance.AgeAppropriate {
		t.Fatal("expected age-appropriate guidance")
	}
	if len(preview.Narratives) == 0 {
		t.Fatal("expected narratives in preview")
	}
}

func TestNarrativeHistory(t *testing.T) {
	router := newNarrativesRouter(t)

	// Two generations for the same user, then a limited history read.
	for _, routeID := range []string{"route_easy_1", "route_easy_2"} {
		rec := httptest.NewRecorder()
		router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet,
			"/narratives/generate/"+routeID+"?mode=history&user_id=user_42", nil))
		if rec.Code != http.StatusOK {
			t.Fatalf("expected 200 generating, got %d", rec.Code)
		}
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/narratives/history/user_42?limit=1", nil))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var resp struct {
		History []narratives.HistoryEntry `json:"history"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode history: %v", err)
	}
	if len(resp.History) != 1 {
		t.Fatalf("expected 1 entry with limit=1, got %d", len(resp.History))
	}
	if resp.History[0].RouteID != "route_easy_2" {
		t.Fatalf("expected most recent entry, got %s", resp.History[0].RouteID)
	}
}

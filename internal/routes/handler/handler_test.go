package handler

import (
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"trailtail/internal/routes"
)

func newRoutesRouter(t *testing.T) chi.Router {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := chi.NewRouter()
	New(routes.New(logger), logger).Register(router)
	return router
}

func TestGenerateRoute(t *testing.T) {
	router := newRoutesRouter(t)

	req := httptest.NewRequest(http.MethodGet,
		"/routes/generate?start_lat=47.6062&start_lng=-122.3321&distance=3.0&difficulty=easy&with_children=true", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 generating route, got %d: %s", rec.Code, rec.Body.String())
	}

	var route routes.Route
	if err := json.NewDecoder(rec.Body).Decode(&route); err != nil {
		t.Fatalf("failed to decode route response: %v", err)
	}
	if route.ID == "" {
		t.Fatal("expected route id in response")
	}
	if len(route.Points) != 10 {
		t.Fatalf("expected 10 waypoints, got %d", len(route.Points))
	}
	if !route.SuitableFor.Children {
		t.Fatal("expected a family route to suit children")
	}
}

func TestGenerateRouteDefaults(t *testing.T) {
	router := newRoutesRouter(t)

	// Only coordinates supplied; distance, difficulty, and with_children
	// fall back to their defaults.
	req := httptest.NewRequest(http.MethodGet, "/routes/generate?start_lat=47.6062&start_lng=-122.3321", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var route routes.Route
	if err := json.NewDecoder(rec.Body).Decode(&route); err != nil {
		t.Fatalf("failed to decode route response: %v", err)
	}
	if route.Difficulty != "easy" {
		t.Fatalf("expected default difficulty easy, got %s", route.Difficulty)
	}
	if route.Distance != 3.0 {
		t.Fatalf("expected default distance 3.0, got %v", route.Distance)
	}
}

func TestGenerateRouteValidation(t *testing.T) {
	router := newRoutesRouter(t)

	tests := []struct {
		name string
		url  string
	}{
		{"bad latitude", "/routes/generate?start_lat=91&start_lng=0"},
		{"non-numeric latitude", "/routes/generate?start_lat=north&start_lng=0"},
		{"bad difficulty", "/routes/generate?start_lat=47.6&start_lng=-122.3&difficulty=extreme"},
		{"bad with_children", "/routes/generate?start_lat=47.6&start_lng=-122.3&with_children=perhaps"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, tt.url, nil))

			if rec.Code != http.StatusBadRequest {
				t.Fatalf("expected 400, got %d", rec.Code)
			}
			var resp struct {
				Error string `json:"error"`
			}
			if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
				t.Fatalf("failed to decode error response: %v", err)
			}
			if resp.Error != "invalid_input" {
				t.Fatalf("expected invalid_input, got %q", resp.Error)
			}
		})
	}
}

func TestGetRoute(t *testing.T) {
	router := newRoutesRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/routes/route_moderate_67890", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var route routes.Route
	if err := json.NewDecoder(rec.Body).Decode(&route); err != nil {
		t.Fatalf("failed to decode route response: %v", err)
	}
	if route.ID != "route_moderate_67890" {
		t.Fatalf("expected id round-trip, got %s", route.ID)
	}
	if len(route.Reviews) == 0 {
		t.Fatal("expected reviews on a detail lookup")
	}
}

func TestNearbyRoutes(t *testing.T) {
	router := newRoutesRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/routes/nearby?lat=47.6062&lng=-122.3321", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Routes []routes.Summary `json:"routes"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode nearby response: %v", err)
	}
	if len(resp.Routes) == 0 {
		t.Fatal("expected nearby routes")
	}
}

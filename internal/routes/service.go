package routes

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"

	"trailtail/internal/routes/metrics"
	"trailtail/pkg/domain"
	dErrors "trailtail/pkg/domain-errors"
	"trailtail/pkg/procgen"
)

// Service implements the routes capability. It holds no mutable state;
// every call seeds its own generator, so concurrent requests never interfere.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a Service.
type Option func(*Service)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New constructs the routes service.
func New(logger *slog.Logger, opts ...Option) *Service {
	s := &Service{logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate synthesizes a route outward from a start coordinate. The route id
// is derived from the request parameters, so the same request reproduces the
// same route and the id round-trips through Get.
func (s *Service) Generate(ctx context.Context, req GenerateRequest) (*Route, error) {
	if err := validateGenerate(req); err != nil {
		return nil, err
	}

	key := fmt.Sprintf("%.4f:%.4f:%.1f:%s:%t",
		req.StartLat, req.StartLng, req.Distance, req.Difficulty, req.WithChildren)
	seed := procgen.Seed(key)

	id := fmt.Sprintf("route_%s%s_%05d", req.Difficulty, familySegment(req.WithChildren), 10000+seed%90000)

	route, err := s.synthesize(id, req, seed, false)
	if err != nil {
		return nil, dErrors.WrapProvider("routes", "generate_route", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementGenerated(string(req.Difficulty))
	}
	return route, nil
}

// Get reconstructs a route from its id. Difficulty and family suitability
// are embedded in the id; distance falls back to the difficulty default.
func (s *Service) Get(ctx context.Context, routeID string) (*Route, error) {
	if routeID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "route_id is required")
	}

	difficulty := domain.DifficultyFromRouteID(routeID)
	req := GenerateRequest{
		StartLat:     47.6062,
		StartLng:     -122.3321,
		Distance:     defaultDistance[difficulty],
		Difficulty:   difficulty,
		WithChildren: domain.FamilyRoute(routeID),
	}

	route, err := s.synthesize(routeID, req, procgen.Seed(routeID), true)
	if err != nil {
		return nil, dErrors.WrapProvider("routes", "get_route", err)
	}
	return route, nil
}

// Nearby returns the regional route catalog. The radius bounds the caller's
// intent but the catalog is small enough to return whole.
func (s *Service) Nearby(ctx context.Context, lat, lng, radius float64) ([]Summary, error) {
	if err := validateCoords(lat, lng); err != nil {
		return nil, err
	}
	if radius <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "radius must be positive")
	}
	out := make([]Summary, len(nearbyBank))
	copy(out, nearbyBank)
	return out, nil
}

// synthesize builds the route payload. detail adds the fields only returned
// by id lookups (reviews, popularity, season).
func (s *Service) synthesize(id string, req GenerateRequest, seed uint64, detail bool) (*Route, error) {
	if len(waypointBank) == 0 {
		return nil, fmt.Errorf("waypoint bank is empty")
	}

	rng := procgen.New(seed)
	points := interpolate(rng, req)

	route := &Route{
		ID:            id,
		Name:          trailName(req.Difficulty, req.WithChildren),
		Distance:      req.Distance,
		ElevationGain: elevationGain[req.Difficulty],
		EstimatedTime: int(req.Distance * minutesPerKm[req.Difficulty]),
		Difficulty:    req.Difficulty,
		Points:        points,
		Description: fmt.Sprintf("A beautiful %s trail through the forest, perfect for %s. %s",
			req.Difficulty, audience(req.WithChildren), trailDescription(req.Difficulty, req.WithChildren)),
		Features:   trailFeatures(req.Difficulty, req.WithChildren),
		SafetyInfo: safetyMeta(req.Difficulty),
		SuitableFor: SuitableFor{
			Beginners: req.Difficulty == domain.DifficultyEasy,
			Children:  req.WithChildren || req.Difficulty == domain.DifficultyEasy,
			Elderly:   req.Difficulty == domain.DifficultyEasy,
			Pets:      req.Difficulty != domain.DifficultyHard,
		},
		Images: []string{
			fmt.Sprintf("%s_trail1.jpg", req.Difficulty),
			fmt.Sprintf("%s_trail2.jpg", req.Difficulty),
			fmt.Sprintf("%s_viewpoint.jpg", req.Difficulty),
			fmt.Sprintf("%s_creek.jpg", req.Difficulty),
		},
	}

	if detail {
		route.Reviews = append(route.Reviews, reviewBank...)
		route.Popularity = popularity(req.Difficulty)
		route.BestSeason = "Spring to Fall"
	}

	return route, nil
}

// interpolate expands the waypoint bank outward from the start coordinate.
// Offsets are tuned for a 3 km loop and scale linearly with the requested
// distance; every waypoint after the trailhead gets a small seeded jitter so
// distinct routes do not overlap exactly. The first waypoint always sits at
// the start coordinate.
func interpolate(rng *rand.Rand, req GenerateRequest) []Point {
	scale := req.Distance / 3.0
	gain := elevationGain[req.Difficulty] / elevationGain[domain.DifficultyEasy]

	points := make([]Point, 0, len(waypointBank))
	for i, tmpl := range waypointBank {
		jitter := 1.0
		if i > 0 {
			jitter = 0.9 + rng.Float64()*0.2
		}
		points = append(points, Point{
			Lat:         req.StartLat + tmpl.dLat*scale*jitter,
			Lng:         req.StartLng + tmpl.dLng*scale*jitter,
			Elevation:   trailheadElevation + tmpl.rise*gain,
			Description: tmpl.desc,
		})
	}
	return points
}

func validateGenerate(req GenerateRequest) error {
	if err := validateCoords(req.StartLat, req.StartLng); err != nil {
		return err
	}
	if req.Distance <= 0 {
		return dErrors.New(dErrors.CodeInvalidInput, "distance must be positive")
	}
	if _, err := domain.ParseDifficulty(string(req.Difficulty)); err != nil {
		return err
	}
	return nil
}

func validateCoords(lat, lng float64) error {
	if lat < -90 || lat > 90 {
		return dErrors.New(dErrors.CodeInvalidInput, "latitude must be between -90 and 90")
	}
	if lng < -180 || lng > 180 {
		return dErrors.New(dErrors.CodeInvalidInput, "longitude must be between -180 and 180")
	}
	return nil
}

func familySegment(withChildren bool) string {
	if withChildren {
		return "_family"
	}
	return ""
}

func audience(withChildren bool) string {
	if withChildren {
		return "families with children"
	}
	return "hikers"
}

func popularity(d domain.Difficulty) string {
	switch d {
	case domain.DifficultyEasy:
		return "High"
	case domain.DifficultyModerate:
		return "Medium"
	default:
		return "Low"
	}
}

package routes

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"trailtail/pkg/domain"
	dErrors "trailtail/pkg/domain-errors"
)

// =============================================================================
// Routes Service Test Suite
// =============================================================================
// Justification for unit tests: Route synthesis is pure computation with a
// strict determinism contract. Unit tests pin the seed derivation, waypoint
// scaling, and id round-trip behavior directly, without a server in the way.

type RoutesServiceSuite struct {
	suite.Suite
	service *Service
}

func TestRoutesServiceSuite(t *testing.T) {
	suite.Run(t, new(RoutesServiceSuite))
}

func (s *RoutesServiceSuite) SetupTest() {
	s.service = New(slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func (s *RoutesServiceSuite) defaultRequest() GenerateRequest {
	return GenerateRequest{
		StartLat:     47.6062,
		StartLng:     -122.3321,
		Distance:     3.0,
		Difficulty:   domain.DifficultyEasy,
		WithChildren: true,
	}
}

// =============================================================================
// Generation Tests
// =============================================================================

func (s *RoutesServiceSuite) TestGenerate() {
	ctx := context.Background()

	s.Run("produces a full route from the default request", func() {
		route, err := s.service.Generate(ctx, s.defaultRequest())
		s.Require().NoError(err)

		s.Len(route.Points, 10)
		s.Equal(47.6062, route.Points[0].Lat)
		s.Equal(-122.3321, route.Points[0].Lng)
		s.Equal(3.0, route.Distance)
		s.Equal(domain.DifficultyEasy, route.Difficulty)
		s.Equal(60, route.EstimatedTime)
		s.True(route.SuitableFor.Children)
		s.True(route.SuitableFor.Beginners)
		s.True(strings.HasPrefix(route.ID, "route_easy_family_"), "got %s", route.ID)
		s.Empty(route.Reviews)
	})

	s.Run("identical requests reproduce identical routes", func() {
		a, err := s.service.Generate(ctx, s.defaultRequest())
		s.Require().NoError(err)
		b, err := s.service.Generate(ctx, s.defaultRequest())
		s.Require().NoError(err)
		s.Equal(a, b)
	})

	s.Run("different parameters change the route", func() {
		a, err := s.service.Generate(ctx, s.defaultRequest())
		s.Require().NoError(err)

		req := s.defaultRequest()
		req.Distance = 5.0
		b, err := s.service.Generate(ctx, req)
		s.Require().NoError(err)

		s.NotEqual(a.ID, b.ID)
		s.NotEqual(a.Points[1], b.Points[1])
	})

	s.Run("difficulty scales duration and elevation", func() {
		req := s.defaultRequest()
		req.Difficulty = domain.DifficultyHard
		req.WithChildren = false
		route, err := s.service.Generate(ctx, req)
		s.Require().NoError(err)

		s.Equal(105, route.EstimatedTime)
		s.Equal(450.2, route.ElevationGain)
		s.False(route.SuitableFor.Children)
		s.False(route.SuitableFor.Pets)
		s.True(strings.HasPrefix(route.ID, "route_hard_"), "got %s", route.ID)
	})

	s.Run("waypoints after the trailhead stay within jitter bounds", func() {
		route, err := s.service.Generate(ctx, s.defaultRequest())
		s.Require().NoError(err)

		for i, p := range route.Points[1:] {
			tmpl := waypointBank[i+1]
			s.InDelta(47.6062+tmpl.dLat, p.Lat, tmpl.dLat*0.11, "point %d lat", i+1)
			s.InDelta(-122.3321+tmpl.dLng, p.Lng, tmpl.dLng*0.11, "point %d lng", i+1)
		}
	})
}

func (s *RoutesServiceSuite) TestGenerateValidation() {
	ctx := context.Background()

	s.Run("latitude out of range", func() {
		req := s.defaultRequest()
		req.StartLat = 91
		_, err := s.service.Generate(ctx, req)
		s.Equal(dErrors.CodeInvalidInput, dErrors.CodeOf(err))
	})

	s.Run("longitude out of range", func() {
		req := s.defaultRequest()
		req.StartLng = -181
		_, err := s.service.Generate(ctx, req)
		s.Equal(dErrors.CodeInvalidInput, dErrors.CodeOf(err))
	})

	s.Run("non-positive distance", func() {
		req := s.defaultRequest()
		req.Distance = 0
		_, err := s.service.Generate(ctx, req)
		s.Equal(dErrors.CodeInvalidInput, dErrors.CodeOf(err))
	})

	s.Run("unknown difficulty", func() {
		req := s.defaultRequest()
		req.Difficulty = "extreme"
		_, err := s.service.Generate(ctx, req)
		s.Equal(dErrors.CodeInvalidInput, dErrors.CodeOf(err))
	})
}

// =============================================================================
// Lookup Tests
// =============================================================================

func (s *RoutesServiceSuite) TestGet() {
	ctx := context.Background()

	s.Run("empty id is invalid input", func() {
		_, err := s.service.Get(ctx, "")
		s.Equal(dErrors.CodeInvalidInput, dErrors.CodeOf(err))
	})

	s.Run("reconstructs difficulty and family flag from the id", func() {
		route, err := s.service.Get(ctx, "route_moderate_67890")
		s.Require().NoError(err)

		s.Equal("route_moderate_67890", route.ID)
		s.Equal(domain.DifficultyModerate, route.Difficulty)
		s.Equal(5.0, route.Distance)
		s.False(route.SuitableFor.Children)
	})

	s.Run("detail lookups carry reviews and popularity", func() {
		route, err := s.service.Get(ctx, "route_easy_family_12345")
		s.Require().NoError(err)

		s.NotEmpty(route.Reviews)
		s.Equal("High", route.Popularity)
		s.Equal("Spring to Fall", route.BestSeason)
		s.True(route.SuitableFor.Children)
	})

	s.Run("same id yields the same route", func() {
		a, err := s.service.Get(ctx, "route_hard_24680")
		s.Require().NoError(err)
		b, err := s.service.Get(ctx, "route_hard_24680")
		s.Require().NoError(err)
		s.Equal(a, b)
	})
}

// =============================================================================
// Nearby Tests
// =============================================================================

func (s *RoutesServiceSuite) TestNearby() {
	ctx := context.Background()

	s.Run("returns the regional catalog", func() {
		summaries, err := s.service.Nearby(ctx, 47.6062, -122.3321, 10.0)
		s.Require().NoError(err)
		s.NotEmpty(summaries)
		for _, sum := range summaries {
			s.NotEmpty(sum.ID)
			s.NotEmpty(sum.Name)
			s.NotZero(sum.Rating)
		}
	})

	s.Run("rejects invalid coordinates", func() {
		_, err := s.service.Nearby(ctx, -91, 0, 10.0)
		s.Equal(dErrors.CodeInvalidInput, dErrors.CodeOf(err))
	})

	s.Run("rejects non-positive radius", func() {
		_, err := s.service.Nearby(ctx, 47.6062, -122.3321, 0)
		s.Equal(dErrors.CodeInvalidInput, dErrors.CodeOf(err))
	})
}

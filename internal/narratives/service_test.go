package narratives_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"trailtail/internal/narratives"
	narrativesStore "trailtail/internal/narratives/store"
	"trailtail/pkg/domain"
	dErrors "trailtail/pkg/domain-errors"
	"trailtail/pkg/requestcontext"
)

// =============================================================================
// Narratives Service Test Suite
// =============================================================================
// Justification for unit tests: Story selection is pure (mode and age band
// fully determine the prose) but the history side effect, the preview
// guidance block, and the error taxonomy all carry behavior worth pinning
// below the HTTP layer.

type NarrativesServiceSuite struct {
	suite.Suite
	store   *narrativesStore.InMemoryHistoryStore
	service *narratives.Service
}

func TestNarrativesServiceSuite(t *testing.T) {
	suite.Run(t, new(NarrativesServiceSuite))
}

func (s *NarrativesServiceSuite) SetupTest() {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	s.store = narrativesStore.NewInMemoryHistoryStore()

	var err error
	s.service, err = narratives.New(s.store, logger)
	s.Require().NoError(err)
}

// =============================================================================
// Constructor Tests
// =============================================================================

func (s *NarrativesServiceSuite) TestNew() {
	s.Run("nil history store returns error", func() {
		_, err := narratives.New(nil, slog.New(slog.NewTextHandler(io.Discard, nil)))
		s.Error(err)
		s.Contains(err.Error(), "history store is required")
	})
}

// =============================================================================
// Generation Tests
// =============================================================================

func (s *NarrativesServiceSuite) TestGenerate() {
	ctx := context.Background()

	s.Run("returns the full story set for the mode", func() {
		got, err := s.service.Generate(ctx, "route_easy_12345", domain.ModeHistory, 10, "en", "")
		s.Require().NoError(err)
		s.Len(got, len(narratives.StoryBanks[domain.ModeHistory]))
		for _, n := range got {
			s.NotEmpty(n.Title)
			s.NotEmpty(n.Story)
			s.NotEmpty(n.WaypointID)
		}
	})

	s.Run("age band selects the prose", func() {
		younger, err := s.service.Generate(ctx, "route_easy_12345", domain.ModeFantasy, 5, "en", "")
		s.Require().NoError(err)
		older, err := s.service.Generate(ctx, "route_easy_12345", domain.ModeFantasy, 15, "en", "")
		s.Require().NoError(err)

		s.Equal(younger[0].Title, older[0].Title)
		s.NotEqual(younger[0].Story, older[0].Story)
	})

	s.Run("ages within one band read the same story", func() {
		a, err := s.service.Generate(ctx, "route_easy_12345", domain.ModeHistory, 8, "en", "")
		s.Require().NoError(err)
		b, err := s.service.Generate(ctx, "route_easy_12345", domain.ModeHistory, 11, "en", "")
		s.Require().NoError(err)
		s.Equal(a, b)
	})

	s.Run("generation records history for known users", func() {
		at := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
		tctx := requestcontext.WithTime(ctx, at)

		_, err := s.service.Generate(tctx, "route_easy_12345", domain.ModeFantasy, 10, "en", "user_42")
		s.Require().NoError(err)

		entries, err := s.store.List(ctx, "user_42", 10)
		s.Require().NoError(err)
		s.Require().Len(entries, 1)
		s.Equal("route_easy_12345", entries[0].RouteID)
		s.Equal(domain.ModeFantasy, entries[0].Mode)
		s.Equal(at, entries[0].Timestamp)
		s.NotEmpty(entries[0].Preview)
	})

	s.Run("anonymous generation records nothing", func() {
		_, err := s.service.Generate(ctx, "route_easy_12345", domain.ModeFantasy, 10, "en", "")
		s.Require().NoError(err)

		entries, err := s.store.List(ctx, "", 10)
		s.Require().NoError(err)
		s.Empty(entries)
	})

	s.Run("history write failure does not fail generation", func() {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		svc, err := narratives.New(failingHistoryStore{}, logger)
		s.Require().NoError(err)

		got, err := svc.Generate(ctx, "route_easy_12345", domain.ModeHistory, 10, "en", "user_42")
		s.NoError(err)
		s.NotEmpty(got)
	})
}

func (s *NarrativesServiceSuite) TestGenerateValidation() {
	ctx := context.Background()

	s.Run("empty route id", func() {
		_, err := s.service.Generate(ctx, "", domain.ModeHistory, 10, "en", "")
		s.Equal(dErrors.CodeInvalidInput, dErrors.CodeOf(err))
	})

	s.Run("age outside domain", func() {
		_, err := s.service.Generate(ctx, "route_easy_12345", domain.ModeHistory, 0, "en", "")
		s.Equal(dErrors.CodeInvalidInput, dErrors.CodeOf(err))
	})

	s.Run("empty language", func() {
		_, err := s.service.Generate(ctx, "route_easy_12345", domain.ModeHistory, 10, "", "")
		s.Equal(dErrors.CodeInvalidInput, dErrors.CodeOf(err))
	})
}

// =============================================================================
// Preview Tests
// =============================================================================

func (s *NarrativesServiceSuite) TestPreviewForParents() {
	ctx := context.Background()

	s.Run("empty route id is invalid input", func() {
		_, err := s.service.PreviewForParents(ctx, "", domain.ModeHistory)
		s.Equal(dErrors.CodeInvalidInput, dErrors.CodeOf(err))
	})

	s.Run("preview uses the middle band and carries guidance", func() {
		preview, err := s.service.PreviewForParents(ctx, "route_easy_12345", domain.ModeHistory)
		s.Require().NoError(err)

		middle, err := s.service.Generate(ctx, "route_easy_12345", domain.ModeHistory, 10, "en", "")
		s.Require().NoError(err)

		s.Equal("route_easy_12345", preview.RouteID)
		s.Equal(middle, preview.Narratives)
		s.True(preview.ParentalGuidance.AgeAppropriate)
		s.NotEmpty(preview.ParentalGuidance.EducationalContent)
		s.Empty(preview.ParentalGuidance.SensitiveContent)
	})
}

// =============================================================================
// History Tests
// =============================================================================

func (s *NarrativesServiceSuite) TestHistory() {
	ctx := context.Background()

	s.Run("empty user id is invalid input", func() {
		_, err := s.service.History(ctx, "", 10)
		s.Equal(dErrors.CodeInvalidInput, dErrors.CodeOf(err))
	})

	s.Run("non-positive limit is invalid input", func() {
		_, err := s.service.History(ctx, "user_42", 0)
		s.Equal(dErrors.CodeInvalidInput, dErrors.CodeOf(err))
	})

	s.Run("users with no history get an empty list", func() {
		entries, err := s.service.History(ctx, "user_new", 10)
		s.Require().NoError(err)
		s.NotNil(entries)
		s.Empty(entries)
	})

	s.Run("limit keeps the most recent entries", func() {
		for i, routeID := range []string{"route_easy_1", "route_easy_2", "route_easy_3"} {
			at := time.Date(2026, 8, 30, 10+i, 0, 0, 0, time.UTC)
			_, err := s.service.Generate(requestcontext.WithTime(ctx, at), routeID, domain.ModeHistory, 10, "en", "user_42")
			s.Require().NoError(err)
		}

		entries, err := s.service.History(ctx, "user_42", 2)
		s.Require().NoError(err)
		s.Require().Len(entries, 2)
		s.Equal("route_easy_2", entries[0].RouteID)
		s.Equal("route_easy_3", entries[1].RouteID)
	})

	s.Run("store failures surface as provider errors", func() {
		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		svc, err := narratives.New(failingHistoryStore{}, logger)
		s.Require().NoError(err)

		_, err = svc.History(ctx, "user_42", 10)
		s.Equal(dErrors.CodeProvider, dErrors.CodeOf(err))
	})
}

// failingHistoryStore errors on every operation.
type failingHistoryStore struct{}

func (failingHistoryStore) Record(ctx context.Context, userID string, entry narratives.HistoryEntry) error {
	return errors.New("store unavailable")
}

func (failingHistoryStore) List(ctx context.Context, userID string, limit int) ([]narratives.HistoryEntry, error) {
	return nil, errors.New("store unavailable")
}

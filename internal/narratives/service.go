package narratives

import (
	"context"
	"fmt"
	"log/slog"

	"trailtail/internal/narratives/metrics"
	"trailtail/pkg/ageband"
	"trailtail/pkg/domain"
	dErrors "trailtail/pkg/domain-errors"
	"trailtail/pkg/requestcontext"
)

// HistoryStore persists per-user narrative history, oldest entry first.
type HistoryStore interface {
	Record(ctx context.Context, userID string, entry HistoryEntry) error
	List(ctx context.Context, userID string, limit int) ([]HistoryEntry, error)
}

// Service implements the narratives capability. Story content is fully
// determined by mode and age band; the history store is the only state.
type Service struct {
	history HistoryStore
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a Service.
type Option func(*Service)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New constructs the narratives service.
func New(history HistoryStore, logger *slog.Logger, opts ...Option) (*Service, error) {
	if history == nil {
		return nil, fmt.Errorf("history store is required")
	}
	s := &Service{history: history, logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Generate returns the route's stories in the given mode with prose chosen
// for the child's age band. When userID is non-empty the generation is
// recorded in that user's history; a history write failure is logged but
// does not fail the request.
func (s *Service) Generate(ctx context.Context, routeID string, mode domain.Mode, childAge int, language, userID string) ([]Narrative, error) {
	if routeID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "route_id is required")
	}
	if !ageband.Valid(childAge) {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput,
			"child_age must be between %d and %d; got %d", ageband.MinAge, ageband.MaxAge, childAge)
	}
	if language == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "language is required")
	}

	band := ageband.ForAge(childAge)
	out := buildNarratives(mode, band)

	if userID != "" {
		entry := HistoryEntry{
			RouteID:   routeID,
			Mode:      mode,
			Timestamp: requestcontext.Now(ctx),
			Preview:   out[0].Title,
		}
		if err := s.history.Record(ctx, userID, entry); err != nil {
			s.logger.WarnContext(ctx, "narrative history write failed",
				"request_id", requestcontext.RequestID(ctx),
				"user_id", userID,
				"error", err,
			)
		}
	}

	if s.metrics != nil {
		s.metrics.IncrementGenerated(mode.String(), band.String())
	}
	return out, nil
}

// PreviewForParents returns the middle-band stories together with the
// guidance block parents review before approving a route.
func (s *Service) PreviewForParents(ctx context.Context, routeID string, mode domain.Mode) (*Preview, error) {
	if routeID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "route_id is required")
	}
	if s.metrics != nil {
		s.metrics.IncrementPreviews()
	}
	return &Preview{
		RouteID:          routeID,
		Mode:             mode,
		Narratives:       buildNarratives(mode, ageband.Middle),
		ParentalGuidance: previewGuidance,
	}, nil
}

// History returns the user's most recent entries, up to limit.
func (s *Service) History(ctx context.Context, userID string, limit int) ([]HistoryEntry, error) {
	if userID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "user_id is required")
	}
	if limit <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "limit must be positive")
	}
	entries, err := s.history.List(ctx, userID, limit)
	if err != nil {
		return nil, dErrors.WrapProvider("narratives", "get_narrative_history", err)
	}
	if entries == nil {
		entries = []HistoryEntry{}
	}
	return entries, nil
}

func buildNarratives(mode domain.Mode, band ageband.Band) []Narrative {
	bank := storyBanks[mode]
	out := make([]Narrative, 0, len(bank))
	for _, t := range bank {
		out = append(out, Narrative{
			Title:      t.title,
			Story:      t.stories[band],
			WaypointID: t.waypointID,
			Images:     t.images,
			Facts:      t.facts,
		})
	}
	return out
}

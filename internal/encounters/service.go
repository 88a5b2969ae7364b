package encounters

import (
	"context"
	"fmt"
	"log/slog"

	"trailtail/internal/encounters/metrics"
	"trailtail/pkg/ageband"
	"trailtail/pkg/domain"
	dErrors "trailtail/pkg/domain-errors"
	"trailtail/pkg/procgen"
)

// difficultyPools maps an age band to the difficulties an encounter may be
// assigned. The younger pool repeats "easy" so the draw distribution matches
// the other bands without special casing.
var difficultyPools = map[ageband.Band][]string{
	ageband.Younger: {"easy", "easy"},
	ageband.Middle:  {"easy", "medium"},
	ageband.Older:   {"easy", "medium", "hard"},
}

// Service implements the AR encounters capability. Like the other
// generators it is stateless; determinism comes from the seeded draw.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a Service.
type Option func(*Service)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New constructs the encounters service.
func New(logger *slog.Logger, opts ...Option) *Service {
	s := &Service{logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Generate places up to count themed encounters along a route. Encounters
// are drawn without replacement from the mode's bank, so a request for more
// encounters than the bank holds returns the whole bank. Difficulty is
// drawn per encounter from the child's age band pool.
func (s *Service) Generate(ctx context.Context, routeID string, mode domain.Mode, childAge, count int) ([]Encounter, error) {
	if routeID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "route_id is required")
	}
	if !ageband.Valid(childAge) {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput,
			"child_age must be between %d and %d; got %d", ageband.MinAge, ageband.MaxAge, childAge)
	}
	if count <= 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "count must be positive")
	}

	bank := historyBank
	if mode == domain.ModeFantasy {
		bank = fantasyBank
	}

	rng := procgen.New(procgen.SeedFor(routeID, mode.String()))
	pool := difficultyPools[ageband.ForAge(childAge)]
	suffix := procgen.IDSuffix(routeID, 5)

	selected := procgen.Sample(rng, bank, count)
	out := make([]Encounter, 0, len(selected))
	for i, a := range selected {
		e := Encounter{
			ID:              fmt.Sprintf("%s_%s_%d", a.typ, suffix, i+1),
			Type:            a.typ,
			Title:           a.title,
			Description:     a.description,
			ARModel:         a.arModel,
			InteractionType: a.interactionType,
			Difficulty:      procgen.Pick(rng, pool),
			Reward:          a.reward,
		}
		if e.Reward == "" {
			if a.typ == domain.EncounterPuzzle {
				e.Reward = fmt.Sprintf("%s Badge: %s Solver", mode.Title(), a.title)
			} else {
				e.Reward = fmt.Sprintf("%s Badge: %s Explorer", mode.Title(), a.title)
			}
		}
		out = append(out, e)
	}

	if s.metrics != nil {
		s.metrics.AddGenerated(mode.String(), len(out))
	}
	return out, nil
}

// Details reconstructs the full payload for a single encounter from its id.
func (s *Service) Details(ctx context.Context, encounterID string) (*Detail, error) {
	if encounterID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "encounter_id is required")
	}
	if s.metrics != nil {
		s.metrics.IncrementDetailLookups()
	}
	return buildDetail(encounterID), nil
}

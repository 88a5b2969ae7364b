package family

import (
	"context"
	"fmt"
	"log/slog"

	"trailtail/internal/family/metrics"
	dErrors "trailtail/pkg/domain-errors"
	"trailtail/pkg/procgen"
	"trailtail/pkg/requestcontext"
)

// Service implements the family capability. Profiles and progress are
// synthesized on demand from the family id; acknowledgements carry the
// request time.
type Service struct {
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures a Service.
type Option func(*Service)

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New constructs the family service.
func New(logger *slog.Logger, opts ...Option) *Service {
	s := &Service{logger: logger}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Register accepts a new family. The supplied id is kept when present;
// otherwise one is derived from the family name so re-registration of the
// same family yields the same id.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*RegistrationAck, error) {
	if req.Name == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "family name is required")
	}
	for _, m := range req.Members {
		if m.Role != "parent" && m.Role != "child" {
			return nil, dErrors.Newf(dErrors.CodeInvalidInput, "member role must be parent or child; got %q", m.Role)
		}
	}

	familyID := req.ID
	if familyID == "" {
		familyID = fmt.Sprintf("family_%d", 1000+procgen.Seed(req.Name)%9000)
	}

	if s.metrics != nil {
		s.metrics.IncrementRegistered()
	}
	return &RegistrationAck{
		Message:            "Family registered successfully",
		FamilyID:           familyID,
		CreatedAt:          requestcontext.Now(ctx),
		AccountStatus:      "active",
		WelcomeBadge:       "Trail Pioneer",
		OnboardingComplete: false,
		NextSteps: []string{
			"Complete family profiles",
			"Set safety preferences",
			"Choose favorite activity types",
			"Enable notifications for the best experience",
		},
		RecommendedTrails: []TrailRecommendation{
			{ID: "route_easy_family_12345", Name: "Forest Family Adventure Trail", Difficulty: "easy"},
			{ID: "route_easy_23456", Name: "Lakeside Loop Trail", Difficulty: "easy"},
		},
	}, nil
}

// Get returns the synthesized profile for a family id.
func (s *Service) Get(ctx context.Context, familyID string) (*Family, error) {
	if familyID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "family_id is required")
	}
	return synthesizeFamily(familyID, requestcontext.Now(ctx)), nil
}

// Progress returns the synthesized trip history for a family id.
func (s *Service) Progress(ctx context.Context, familyID string) (*Progress, error) {
	if familyID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "family_id is required")
	}
	return synthesizeProgress(familyID, requestcontext.Now(ctx)), nil
}

// UpdatePreferences acknowledges a preference update, echoing the new
// preferences back to the caller.
func (s *Service) UpdatePreferences(ctx context.Context, userID string, prefs map[string]any) (*PreferencesAck, error) {
	if userID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "user_id is required")
	}
	if len(prefs) == 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "preferences must not be empty")
	}
	return &PreferencesAck{
		Message:            "Preferences updated successfully",
		UserID:             userID,
		UpdatedPreferences: prefs,
		UpdatedAt:          requestcontext.Now(ctx),
		EffectiveNow:       true,
		NotificationSent:   true,
	}, nil
}

// CompleteRoute records a finished trip. The completion id and the reward
// fields are derived from the family and route ids, so retrying the same
// completion returns the same acknowledgement.
func (s *Service) CompleteRoute(ctx context.Context, familyID, routeID string, activity CompletionRequest) (*CompletionAck, error) {
	if familyID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "family_id is required")
	}
	if routeID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "route_id is required")
	}
	if activity.Distance < 0 {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "distance must not be negative")
	}

	rng := procgen.New(procgen.SeedFor(familyID, routeID))

	badges := activity.BadgesEarned
	if badges == nil {
		badges = []string{}
	}
	unlocked := procgen.Sample(rng, unlockableAchievements, rng.IntN(3))
	if unlocked == nil {
		unlocked = []string{}
	}

	ack := &CompletionAck{
		Message: "Route completion recorded",
		CompletionID: fmt.Sprintf("completion_%s_%s_%d",
			procgen.IDSuffix(familyID, 4), procgen.IDSuffix(routeID, 4), procgen.Between(rng, 1000, 9999)),
		Timestamp:            requestcontext.Now(ctx),
		BadgesEarned:         badges,
		ExperiencePoints:     procgen.Between(rng, 50, 200),
		AchievementsUnlocked: unlocked,
		FamilyProgress: ProgressSnapshot{
			TotalRoutes:   procgen.Between(rng, 2, 15),
			TotalDistance: procgen.Round1(procgen.FloatBetween(rng, 8.5, 50.0)),
			BadgesCount:   procgen.Between(rng, 5, 20),
		},
		NextRecommendedTrails: []TrailRecommendation{
			{
				ID:         fmt.Sprintf("route_%d", 10000+rng.IntN(90000)),
				Name:       procgen.Pick(rng, recommendedTrailNames),
				Difficulty: procgen.Pick(rng, []string{"easy", "moderate", "hard"}),
				Distance:   procgen.Round1(procgen.FloatBetween(rng, 2.0, 10.0)),
			},
		},
		ChallengeProgressMoved: coin(rng),
		StreakMaintained:       true,
	}

	if s.metrics != nil {
		s.metrics.IncrementCompleted()
	}
	return ack, nil
}

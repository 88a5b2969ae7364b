package safety

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"trailtail/internal/audit"
	"trailtail/internal/safety/metrics"
	"trailtail/pkg/ageband"
	"trailtail/pkg/domain"
	dErrors "trailtail/pkg/domain-errors"
	"trailtail/pkg/procgen"
	"trailtail/pkg/requestcontext"
)

// ControlsStore persists per-family parental controls. Get returns nil when
// the family never customized its settings.
type ControlsStore interface {
	Get(ctx context.Context, familyID string) (*Controls, error)
	Put(ctx context.Context, familyID string, controls Controls) error
}

// AuditPublisher records safety-relevant actions.
type AuditPublisher interface {
	Emit(ctx context.Context, event audit.Event)
}

// Service implements the safety capability.
type Service struct {
	controls ControlsStore
	auditor  AuditPublisher
	logger   *slog.Logger
	metrics  *metrics.Metrics

	mu      sync.Mutex
	reports map[string][]Report // route id -> reports, process lifetime only
}

// Option configures a Service.
type Option func(*Service)

func WithAuditPublisher(p AuditPublisher) Option {
	return func(s *Service) { s.auditor = p }
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) { s.metrics = m }
}

// New constructs the safety service.
func New(controls ControlsStore, logger *slog.Logger, opts ...Option) (*Service, error) {
	if controls == nil {
		return nil, fmt.Errorf("controls store is required")
	}
	s := &Service{
		controls: controls,
		logger:   logger,
		reports:  make(map[string][]Report),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// ParentalControls returns the family's settings, falling back to defaults
// for families that never customized them.
func (s *Service) ParentalControls(ctx context.Context, familyID string) (*Controls, error) {
	if familyID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "family_id is required")
	}
	stored, err := s.controls.Get(ctx, familyID)
	if err != nil {
		return nil, dErrors.WrapProvider("safety", "get_parental_controls", err)
	}
	if stored == nil {
		defaults := DefaultControls()
		return &defaults, nil
	}
	return stored, nil
}

// UpdateParentalControls validates and persists new settings.
func (s *Service) UpdateParentalControls(ctx context.Context, familyID string, controls Controls) (*ControlsAck, error) {
	if familyID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "family_id is required")
	}
	if err := validateControls(controls); err != nil {
		return nil, err
	}

	if err := s.controls.Put(ctx, familyID, controls); err != nil {
		return nil, dErrors.WrapProvider("safety", "update_parental_controls", err)
	}

	if s.metrics != nil {
		s.metrics.IncrementControlsSaved()
	}
	s.emit(ctx, audit.Event{
		Action:  audit.ActionControlsUpdated,
		Subject: familyID,
	})

	return &ControlsAck{
		Message:              "Parental controls updated successfully",
		FamilyID:             familyID,
		Controls:             controls,
		UpdatedAt:            requestcontext.Now(ctx),
		EffectiveImmediately: true,
		RequiresDeviceSync:   true,
	}, nil
}

func validateControls(c Controls) error {
	switch c.ContentFilter {
	case FilterNone, FilterMild, FilterStrict:
	default:
		return dErrors.Newf(dErrors.CodeInvalidInput, "content_filter must be none, mild, or strict; got %q", c.ContentFilter)
	}
	if _, err := domain.ParseDifficulty(c.MaxDifficulty); err != nil {
		return err
	}
	for _, m := range c.NarrativeModes {
		if _, err := domain.ParseMode(m); err != nil {
			return err
		}
	}
	return nil
}

// CheckContent classifies free text for a child of the given age. The
// classifier itself never fails; only the age contract is enforced here.
func (s *Service) CheckContent(ctx context.Context, text string, childAge int) (*Verdict, error) {
	if !ageband.Valid(childAge) {
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "child_age must be between %d and %d", ageband.MinAge, ageband.MaxAge)
	}

	verdict := Classify(text, childAge)

	if s.metrics != nil {
		s.metrics.ObserveContentCheck(string(verdict.Verdict))
	}
	switch verdict.Verdict {
	case VerdictRejected:
		s.emit(ctx, audit.Event{
			Action: audit.ActionContentRejected,
			Reason: verdict.Reason,
		})
	case VerdictFlagged:
		s.emit(ctx, audit.Event{
			Action: audit.ActionContentFlagged,
			Reason: verdict.Reason,
		})
	}

	return &verdict, nil
}

// RouteSafety builds the safety briefing for a route. Difficulty is inferred
// from the route id; amenities scale down monotonically from easy to hard.
func (s *Service) RouteSafety(ctx context.Context, routeID string) (*RouteSafetyInfo, error) {
	if routeID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "route_id is required")
	}
	difficulty := domain.DifficultyFromRouteID(routeID)
	info := buildRouteSafety(routeID, difficulty)
	return info, nil
}

// ReportIssue records a safety concern and acknowledges it. Urgent issues
// get high priority and immediate maintenance notification.
func (s *Service) ReportIssue(ctx context.Context, routeID string, issue Issue) (*IssueAck, error) {
	if routeID == "" {
		return nil, dErrors.New(dErrors.CodeInvalidInput, "route_id is required")
	}

	now := requestcontext.Now(ctx)

	s.mu.Lock()
	sequence := len(s.reports[routeID]) + 1
	id := fmt.Sprintf("issue_%s_%d", procgen.IDSuffix(routeID, 5), sequence)
	similar := sequence - 1
	s.reports[routeID] = append(s.reports[routeID], Report{
		ID:         id,
		RouteID:    routeID,
		Issue:      issue,
		ReportedAt: now,
	})
	s.mu.Unlock()

	urgent := issue.Severity == "urgent"
	priority := "medium"
	if urgent {
		priority = "high"
	}

	if s.metrics != nil {
		s.metrics.IncrementIssuesReported()
	}
	s.emit(ctx, audit.Event{
		Action:  audit.ActionIssueReported,
		Subject: routeID,
		Reason:  issue.Category,
	})

	return &IssueAck{
		Message:               "Safety issue reported successfully",
		IssueID:               id,
		Status:                "under review",
		ReportedAt:            now,
		EstimatedResponseTime: "24-48 hours",
		Priority:              priority,
		Notifications: IssueNotifications{
			EmailUpdates:      true,
			PushNotifications: true,
		},
		SimilarReports:          similar,
		MaintenanceTeamNotified: urgent,
	}, nil
}

func (s *Service) emit(ctx context.Context, event audit.Event) {
	if s.auditor != nil {
		s.auditor.Emit(ctx, event)
	}
}

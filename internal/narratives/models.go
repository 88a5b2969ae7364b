// Package narratives implements the story generator: waypoint-bound stories
// themed by narrative mode, with prose complexity keyed to the child's age
// band, plus the parent preview surface and per-user story history.
package narratives

import (
	"time"

	"trailtail/pkg/domain"
)

// Narrative is one waypoint-bound story.
type Narrative struct {
	Title      string   `json:"title"`
	Story      string   `json:"story"`
	WaypointID string   `json:"waypoint_id"`
	Images     []string `json:"images,omitempty"`
	Facts      []string `json:"facts,omitempty"`
}

// ParentalGuidance summarizes a story set for parent review.
type ParentalGuidance struct {
	AgeAppropriate     bool     `json:"age_appropriate"`
	EducationalContent []string `json:"educational_content"`
	SensitiveContent   []string `json:"sensitive_content"`
	EstimatedDuration  string   `json:"estimated_duration"`
}

// Preview is the parent-facing view of a route's stories before children
// see them.
type Preview struct {
	RouteID          string           `json:"route_id"`
	Mode             domain.Mode      `json:"mode"`
	Narratives       []Narrative      `json:"narratives"`
	ParentalGuidance ParentalGuidance `json:"parental_guidance"`
}

// HistoryEntry records one story generation for a user.
type HistoryEntry struct {
	RouteID   string      `json:"route_id"`
	Mode      domain.Mode `json:"mode"`
	Timestamp time.Time   `json:"timestamp"`
	Preview   string      `json:"preview"`
}

// Package audit captures safety-relevant actions as structured events. The
// pipeline is in-process: domain code emits to a publisher, a worker drains
// the buffer into a store. Keep events transport-agnostic so sinks can fan
// out later.
package audit

import "time"

// Action names what happened.
type Action string

const (
	ActionContentRejected Action = "content_rejected"
	ActionContentFlagged  Action = "content_flagged"
	ActionIssueReported   Action = "issue_reported"
	ActionControlsUpdated Action = "parental_controls_updated"
)

// Event is emitted from domain logic to capture key safety actions.
type Event struct {
	Timestamp time.Time
	Action    Action
	Subject   string // family id, route id, or other entity acted on
	Reason    string
	RequestID string
}

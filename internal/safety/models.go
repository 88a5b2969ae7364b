// Package safety implements the content-safety domain: the lexical
// classifier, parental controls, per-route safety information, and issue
// reporting.
package safety

import "time"

// ContentFilter strictness levels for parental controls.
type ContentFilter string

const (
	FilterNone   ContentFilter = "none"
	FilterMild   ContentFilter = "mild"
	FilterStrict ContentFilter = "strict"
)

// Controls is a family's parental control settings.
type Controls struct {
	NarrativeModes        []string             `json:"narrative_mode"`
	ContentFilter         ContentFilter        `json:"content_filter"`
	MaxDifficulty         string               `json:"max_difficulty"`
	AllowSocialFeatures   bool                 `json:"allow_social_features"`
	PreviewRequired       bool                 `json:"preview_required"`
	ScreenTimeLimit       int                  `json:"screen_time_limit"`
	LocationSharing       string               `json:"location_sharing"`
	AgeAppropriateContent bool                 `json:"age_appropriate_content"`
	ApprovedTrailTypes    []string             `json:"approved_trail_types"`
	Notifications         NotificationSettings `json:"notification_settings"`
}

// NotificationSettings controls which notification classes reach the family.
type NotificationSettings struct {
	SafetyAlerts             bool `json:"safety_alerts"`
	AchievementNotifications bool `json:"achievement_notifications"`
	FriendRequests           bool `json:"friend_requests"`
	MarketingMessages        bool `json:"marketing_messages"`
}

// DefaultControls are returned for families that never customized settings.
func DefaultControls() Controls {
	return Controls{
		NarrativeModes:        []string{"history", "fantasy"},
		ContentFilter:         FilterMild,
		MaxDifficulty:         "moderate",
		AllowSocialFeatures:   true,
		PreviewRequired:       true,
		ScreenTimeLimit:       60,
		LocationSharing:       "family_only",
		AgeAppropriateContent: true,
		ApprovedTrailTypes:    []string{"easy", "moderate"},
		Notifications: NotificationSettings{
			SafetyAlerts:             true,
			AchievementNotifications: true,
		},
	}
}

// ControlsAck acknowledges a parental-controls update.
type ControlsAck struct {
	Message              string    `json:"message"`
	FamilyID             string    `json:"family_id"`
	Controls             Controls  `json:"controls"`
	UpdatedAt            time.Time `json:"updated_at"`
	EffectiveImmediately bool      `json:"effective_immediately"`
	RequiresDeviceSync   bool      `json:"requires_device_sync"`
}

// RouteSafetyInfo is the full safety briefing for a route.
type RouteSafetyInfo struct {
	DifficultyRating      string             `json:"difficulty_rating"`
	SafetyNotes           []string           `json:"safety_notes"`
	WeatherConsiderations []string           `json:"weather_considerations"`
	Emergency             EmergencyInfo      `json:"emergency_info"`
	TrailConditions       TrailConditions    `json:"trail_conditions"`
	FamilyFriendliness    FamilyFriendliness `json:"family_friendliness"`
	Wildlife              WildlifeAwareness  `json:"wildlife_awareness"`
	Recommendations       []string           `json:"recommendations"`
}

// EmergencyInfo points at the nearest help.
type EmergencyInfo struct {
	NearestHelp       string   `json:"nearest_help"`
	EmergencyContacts []string `json:"emergency_contacts"`
	CellCoverage      string   `json:"cell_coverage"`
}

// TrailConditions reports maintenance state and hazards.
type TrailConditions struct {
	LastUpdated       string   `json:"last_updated"`
	Condition         string   `json:"condition"`
	RecentMaintenance string   `json:"recent_maintenance"`
	Hazards           []string `json:"hazards"`
}

// FamilyFriendliness flags amenities relevant to families.
type FamilyFriendliness struct {
	SuitableForChildren bool `json:"suitable_for_children"`
	StrollerAccessible  bool `json:"stroller_accessible"`
	RestroomFacilities  bool `json:"restroom_facilities"`
	WaterFountains      bool `json:"water_fountains"`
}

// WildlifeAwareness lists expected wildlife and precautions.
type WildlifeAwareness struct {
	CommonWildlife []string `json:"common_wildlife"`
	Precautions    []string `json:"precautions"`
}

// Issue is a caller-reported safety concern on a route.
type Issue struct {
	Category    string `json:"category,omitempty"`
	Description string `json:"description,omitempty"`
	Severity    string `json:"severity,omitempty"`
	Location    string `json:"location,omitempty"`
}

// IssueAck acknowledges a reported issue.
type IssueAck struct {
	Message                 string             `json:"message"`
	IssueID                 string             `json:"issue_id"`
	Status                  string             `json:"status"`
	ReportedAt              time.Time          `json:"reported_at"`
	EstimatedResponseTime   string             `json:"estimated_response_time"`
	Priority                string             `json:"priority"`
	Notifications           IssueNotifications `json:"notification_preferences"`
	SimilarReports          int                `json:"similar_reports"`
	MaintenanceTeamNotified bool               `json:"maintenance_team_notified"`
}

// IssueNotifications describes how the reporter is kept informed.
type IssueNotifications struct {
	EmailUpdates      bool `json:"email_updates"`
	PushNotifications bool `json:"push_notifications"`
}

// Report is a stored issue report.
type Report struct {
	ID         string
	RouteID    string
	Issue      Issue
	ReportedAt time.Time
}

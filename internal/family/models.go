// Package family implements the family profile and progress synthesizer:
// registration, deterministic family details, trip history with badges and
// journal entries, preference updates, and route completions.
package family

import "time"

// Preferences carries the per-member settings; parent and child members
// populate different subsets.
type Preferences struct {
	NarrativePreference  string   `json:"narrative_preference,omitempty"`
	DifficultyPreference string   `json:"difficulty_preference,omitempty"`
	MaxDistance          float64  `json:"max_distance,omitempty"`
	Interests            []string `json:"interests,omitempty"`
	FavoriteFeatures     []string `json:"favorite_features,omitempty"`
	FavoriteEncounters   []string `json:"favorite_encounters,omitempty"`
	FavoriteCharacters   []string `json:"favorite_characters,omitempty"`
}

// ActivityStats summarizes a member's hiking activity.
type ActivityStats struct {
	TotalHikes       int      `json:"total_hikes"`
	TotalDistance    float64  `json:"total_distance,omitempty"`
	BadgesEarned     []string `json:"badges_earned"`
	CompletedPuzzles int      `json:"completed_puzzles,omitempty"`
}

// LearningProgress tracks what a child has picked up on the trail.
type LearningProgress struct {
	NatureFactsLearned int      `json:"nature_facts_learned"`
	WildlifeIdentified []string `json:"wildlife_identified"`
}

// MemberSettings are the account-level toggles parents carry.
type MemberSettings struct {
	Notifications     bool   `json:"notifications"`
	ShareAchievements bool   `json:"share_achievements"`
	Units             string `json:"units"`
}

// Member is one person in a family.
type Member struct {
	ID               string            `json:"id"`
	Name             string            `json:"name"`
	Role             string            `json:"role"`
	Age              int               `json:"age,omitempty"`
	Preferences      Preferences       `json:"preferences"`
	ActivityStats    ActivityStats     `json:"activity_stats"`
	Settings         *MemberSettings   `json:"settings,omitempty"`
	LearningProgress *LearningProgress `json:"learning_progress,omitempty"`
}

// Achievements aggregates family-wide accomplishments.
type Achievements struct {
	TrailsCompleted     int               `json:"trails_completed"`
	TotalDistance       float64           `json:"total_distance"`
	TotalElevationGain  int               `json:"total_elevation_gain"`
	Badges              []string          `json:"badges"`
	SpecialAchievements []string          `json:"special_achievements"`
	ChallengeProgress   map[string]string `json:"challenge_progress"`
}

// SavedTrail is a bookmarked route.
type SavedTrail struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	SavedDate string `json:"saved_date"`
}

// SafetySettings are the family-level safety toggles.
type SafetySettings struct {
	EmergencyContact string `json:"emergency_contact"`
	ShareLocation    bool   `json:"share_location"`
	AutoCheckIn      bool   `json:"auto_check_in"`
	WeatherAlerts    bool   `json:"weather_alerts"`
	SafeZonesOnly    bool   `json:"safe_zones_only"`
}

// Family is the full family profile.
type Family struct {
	ID             string         `json:"id"`
	Name           string         `json:"name"`
	CreatedDate    string         `json:"created_date"`
	Members        []Member       `json:"members"`
	Achievements   Achievements   `json:"family_achievements"`
	SavedTrails    []SavedTrail   `json:"saved_trails"`
	SafetySettings SafetySettings `json:"safety_settings"`
}

// RegisterMember is one member in a registration request.
type RegisterMember struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
	Age  int    `json:"age,omitempty"`
}

// RegisterRequest is the registration payload.
type RegisterRequest struct {
	ID      string           `json:"id"`
	Name    string           `json:"name"`
	Members []RegisterMember `json:"members"`
}

// TrailRecommendation is a suggested route in an acknowledgement.
type TrailRecommendation struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Difficulty string  `json:"difficulty"`
	Distance   float64 `json:"distance,omitempty"`
}

// RegistrationAck confirms a new family account.
type RegistrationAck struct {
	Message            string                `json:"message"`
	FamilyID           string                `json:"family_id"`
	CreatedAt          time.Time             `json:"created_at"`
	AccountStatus      string                `json:"account_status"`
	WelcomeBadge       string                `json:"welcome_badge"`
	OnboardingComplete bool                  `json:"onboarding_complete"`
	NextSteps          []string              `json:"next_steps"`
	RecommendedTrails  []TrailRecommendation `json:"recommended_trails"`
}

// CompletedRoute is one finished trip in the family's history.
type CompletedRoute struct {
	RouteID             string   `json:"route_id"`
	RouteName           string   `json:"route_name"`
	CompletionDate      string   `json:"completion_date"`
	Duration            int      `json:"duration"`
	Distance            float64  `json:"distance"`
	BadgesEarned        []string `json:"badges_earned"`
	Photos              []string `json:"photos"`
	Weather             string   `json:"weather"`
	Rating              int      `json:"rating"`
	SpecialAchievements []string `json:"special_achievements"`
}

// JournalEntry is a family trip journal entry.
type JournalEntry struct {
	Date    string   `json:"date"`
	Title   string   `json:"title"`
	Content string   `json:"content"`
	Photos  []string `json:"photos"`
	Mood    string   `json:"mood"`
	Author  string   `json:"author"`
}

// AdventureStats are derived aggregates over the completed routes.
type AdventureStats struct {
	LongestHike           float64 `json:"longest_hike"`
	AverageHikeDistance   float64 `json:"average_hike_distance"`
	FavoriteTrail         string  `json:"favorite_trail"`
	WildlifeEncountered   int     `json:"wildlife_encountered"`
	AREncountersCompleted int     `json:"ar_encounters_completed"`
	PuzzlesSolved         int     `json:"puzzles_solved"`
}

// Challenge is an upcoming family challenge.
type Challenge struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Progress    string `json:"progress"`
	Reward      string `json:"reward"`
}

// FavoriteRoute is a route reference in a progress payload.
type FavoriteRoute struct {
	RouteID   string `json:"route_id"`
	RouteName string `json:"route_name"`
}

// LearningSummary aggregates educational progress across trips.
type LearningSummary struct {
	NatureFacts         int      `json:"nature_facts"`
	HistoricalKnowledge int      `json:"historical_knowledge"`
	SkillDevelopment    []string `json:"skill_development"`
}

// Progress is the family's full trip history and derived achievements.
type Progress struct {
	CompletedRoutes       []CompletedRoute `json:"completed_routes"`
	Badges                []string         `json:"badges"`
	TotalDistance         float64          `json:"total_distance"`
	TotalRoutes           int              `json:"total_routes"`
	TotalElevationGain    int              `json:"total_elevation_gain"`
	JournalEntries        []JournalEntry   `json:"journal_entries"`
	MilestoneAchievements []string         `json:"milestone_achievements"`
	AdventureStats        AdventureStats   `json:"adventure_stats"`
	FavoriteRoutes        []FavoriteRoute  `json:"favorite_routes"`
	CompletionStreak      int              `json:"completion_streak"`
	UpcomingChallenges    []Challenge      `json:"upcoming_challenges"`
	LearningProgress      LearningSummary  `json:"learning_progress"`
}

// PreferencesAck confirms a preference update.
type PreferencesAck struct {
	Message            string         `json:"message"`
	UserID             string         `json:"user_id"`
	UpdatedPreferences map[string]any `json:"updated_preferences"`
	UpdatedAt          time.Time      `json:"updated_at"`
	EffectiveNow       bool           `json:"effective_immediately"`
	NotificationSent   bool           `json:"notification_sent"`
}

// CompletionRequest records one finished trip.
type CompletionRequest struct {
	RouteID        string   `json:"route_id"`
	CompletionDate string   `json:"completion_date"`
	Duration       int      `json:"duration"`
	Distance       float64  `json:"distance"`
	BadgesEarned   []string `json:"badges_earned"`
	Photos         []string `json:"photos,omitempty"`
}

// ProgressSnapshot is the abbreviated progress block in a completion ack.
type ProgressSnapshot struct {
	TotalRoutes   int     `json:"total_routes"`
	TotalDistance float64 `json:"total_distance"`
	BadgesCount   int     `json:"badges_count"`
}

// CompletionAck confirms a recorded route completion.
type CompletionAck struct {
	Message                string                `json:"message"`
	CompletionID           string                `json:"completion_id"`
	Timestamp              time.Time             `json:"timestamp"`
	BadgesEarned           []string              `json:"badges_earned"`
	ExperiencePoints       int                   `json:"experience_points"`
	AchievementsUnlocked   []string              `json:"achievements_unlocked"`
	FamilyProgress         ProgressSnapshot      `json:"family_progress"`
	NextRecommendedTrails  []TrailRecommendation `json:"next_recommended_trails"`
	ChallengeProgressMoved bool                  `json:"challenge_progress_updated"`
	StreakMaintained       bool                  `json:"streak_maintained"`
}

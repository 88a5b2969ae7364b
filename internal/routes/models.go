// Package routes implements the trail-route generator: deterministic
// synthesis of waypoint sequences, difficulty-scaled estimates, and safety
// metadata from a start coordinate or a route id.
package routes

import "trailtail/pkg/domain"

// GenerateRequest are the parameters for route generation.
type GenerateRequest struct {
	StartLat     float64
	StartLng     float64
	Distance     float64 // kilometers
	Difficulty   domain.Difficulty
	WithChildren bool
}

// Point is one waypoint on a route.
type Point struct {
	Lat         float64 `json:"lat"`
	Lng         float64 `json:"lng"`
	Elevation   float64 `json:"elevation"`
	Description string  `json:"description"`
}

// SafetyMeta is the per-route safety summary embedded in a route payload.
// Amenity counts scale down monotonically from easy to hard.
type SafetyMeta struct {
	CellCoverage    string   `json:"cell_coverage"`
	WaterSources    int      `json:"water_sources"`
	BailoutPoints   int      `json:"bailout_points"`
	Recommendations []string `json:"recommendations"`
}

// SuitableFor flags the audiences a route works for.
type SuitableFor struct {
	Beginners   bool `json:"beginners"`
	Children    bool `json:"children"`
	Elderly     bool `json:"elderly"`
	Pets        bool `json:"pets"`
	Wheelchairs bool `json:"wheelchairs"`
}

// Review is a rider on the detail payload; review content is curated, not
// generated.
type Review struct {
	User    string `json:"user"`
	Rating  int    `json:"rating"`
	Date    string `json:"date"`
	Comment string `json:"comment"`
}

// Route is a full generated route.
type Route struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	Distance      float64           `json:"distance"`
	ElevationGain float64           `json:"elevation_gain"`
	EstimatedTime int               `json:"estimated_time"` // minutes
	Difficulty    domain.Difficulty `json:"difficulty"`
	Points        []Point           `json:"points"`
	Description   string            `json:"description"`
	Features      []string          `json:"features"`
	SafetyInfo    SafetyMeta        `json:"safety_info"`
	SuitableFor   SuitableFor       `json:"suitable_for"`
	Images        []string          `json:"images"`
	Reviews       []Review          `json:"reviews,omitempty"`
	Popularity    string            `json:"popularity,omitempty"`
	BestSeason    string            `json:"best_season,omitempty"`
}

// Summary is the abbreviated form returned by nearby-route lookups.
type Summary struct {
	ID                  string            `json:"id"`
	Name                string            `json:"name"`
	Distance            float64           `json:"distance"`
	Difficulty          domain.Difficulty `json:"difficulty"`
	PreviewImage        string            `json:"preview_image"`
	SuitableForChildren bool              `json:"suitable_for_children"`
	EstimatedTime       int               `json:"estimated_time"`
	Rating              float64           `json:"rating"`
	Location            string            `json:"location"`
	ElevationGain       float64           `json:"elevation_gain"`
}

package routes

import "trailtail/pkg/domain"

// waypointTemplate is one entry in the waypoint bank: a lat/lng offset from
// the start coordinate (tuned for a 3 km loop and scaled by requested
// distance), a base elevation rise, and a description. The bank is immutable
// after load and shared read-only across calls.
type waypointTemplate struct {
	dLat, dLng float64
	rise       float64 // meters above trailhead at easy difficulty
	desc       string
}

var waypointBank = []waypointTemplate{
	{0, 0, 0, "Starting point - Trailhead parking area"},
	{0.005, 0.005, 10.2, "Trail entrance - Information board"},
	{0.010, 0.010, 20.5, "Forest entry - Dense pine grove"},
	{0.015, 0.015, 35.0, "Wooden footbridge - Small stream crossing"},
	{0.020, 0.020, 50.2, "Scenic viewpoint - Valley overlook"},
	{0.025, 0.020, 45.5, "Rest area - Picnic benches"},
	{0.030, 0.015, 35.8, "Small creek - Wildlife viewing area"},
	{0.025, 0.010, 25.3, "Fern grove - Shaded rest spot"},
	{0.020, 0.005, 15.0, "Historical marker - Old mill site"},
	{0.010, 0.030, 10.5, "End point - Trail loop completion"},
}

// trailheadElevation is the base elevation every route profile builds on.
const trailheadElevation = 100.0

// minutesPerKm is the duration model per difficulty.
var minutesPerKm = map[domain.Difficulty]float64{
	domain.DifficultyEasy:     20,
	domain.DifficultyModerate: 25,
	domain.DifficultyHard:     35,
}

// elevationGain is the total climb per difficulty, in meters.
var elevationGain = map[domain.Difficulty]float64{
	domain.DifficultyEasy:     120.5,
	domain.DifficultyModerate: 250.8,
	domain.DifficultyHard:     450.2,
}

// defaultDistance is the assumed length when looking a route up by id.
var defaultDistance = map[domain.Difficulty]float64{
	domain.DifficultyEasy:     3.0,
	domain.DifficultyModerate: 5.0,
	domain.DifficultyHard:     8.0,
}

// nearbyBank is the curated regional catalog behind nearby-route lookups.
var nearbyBank = []Summary{
	{
		ID:                  "route_easy_family_12345",
		Name:                "Forest Family Adventure Trail",
		Distance:            3.0,
		Difficulty:          domain.DifficultyEasy,
		PreviewImage:        "forest_trail.jpg",
		SuitableForChildren: true,
		EstimatedTime:       60,
		Rating:              4.8,
		Location:            "Cedar Grove Park",
		ElevationGain:       120,
	},
	{
		ID:            "route_moderate_67890",
		Name:          "Mountain Explorer Path",
		Distance:      5.0,
		Difficulty:    domain.DifficultyModerate,
		PreviewImage:  "mountain_path.jpg",
		EstimatedTime: 120,
		Rating:        4.6,
		Location:      "Eagle Ridge Preserve",
		ElevationGain: 250,
	},
	{
		ID:                  "route_easy_23456",
		Name:                "Lakeside Loop Trail",
		Distance:            2.5,
		Difficulty:          domain.DifficultyEasy,
		PreviewImage:        "lake_trail.jpg",
		SuitableForChildren: true,
		EstimatedTime:       50,
		Rating:              4.7,
		Location:            "Blue Lake Park",
		ElevationGain:       80,
	},
	{
		ID:            "route_hard_78901",
		Name:          "Summit Challenge Trail",
		Distance:      8.0,
		Difficulty:    domain.DifficultyHard,
		PreviewImage:  "summit_trail.jpg",
		EstimatedTime: 240,
		Rating:        4.9,
		Location:      "Granite Peak Wilderness",
		ElevationGain: 450,
	},
	{
		ID:                  "route_moderate_family_34567",
		Name:                "Waterfall Explorer Trail",
		Distance:            4.5,
		Difficulty:          domain.DifficultyModerate,
		PreviewImage:        "waterfall_trail.jpg",
		SuitableForChildren: true,
		EstimatedTime:       100,
		Rating:              4.5,
		Location:            "Cascade Valley Park",
		ElevationGain:       200,
	},
}

// reviewBank rides along on detail lookups.
var reviewBank = []Review{
	{
		User:    "HikingEnthusiast42",
		Rating:  5,
		Date:    "2025-08-10",
		Comment: "Wonderful trail! Perfect for our family outing.",
	},
	{
		User:    "NatureLover23",
		Rating:  4,
		Date:    "2025-07-22",
		Comment: "Great views, well-maintained path. Highly recommend!",
	},
}

func trailName(difficulty domain.Difficulty, withChildren bool) string {
	grade := "Easy"
	switch difficulty {
	case domain.DifficultyModerate:
		grade = "Moderate"
	case domain.DifficultyHard:
		grade = "Challenging"
	}
	if withChildren {
		return "Family-friendly " + grade + " Adventure Trail"
	}
	return grade + " Adventure Trail"
}

func trailDescription(difficulty domain.Difficulty, withChildren bool) string {
	switch {
	case difficulty == domain.DifficultyEasy && withChildren:
		return "This wide, well-maintained trail offers gentle slopes and plenty of rest areas, making it ideal for families with young children. Enjoy the easy terrain, educational nature signs, and wildlife spotting opportunities."
	case difficulty == domain.DifficultyEasy:
		return "This smooth, well-marked trail is perfect for beginners or those looking for a relaxing hike. The gentle terrain allows you to focus on enjoying the natural surroundings rather than watching your footing."
	case difficulty == domain.DifficultyModerate && withChildren:
		return "This moderately challenging trail is suitable for families with older children who have some hiking experience. The trail offers some elevation gain and varied terrain, with interesting features that will keep young adventurers engaged."
	case difficulty == domain.DifficultyModerate:
		return "This trail offers a good balance of challenge and accessibility. With moderate elevation gain and varied terrain, it's perfect for hikers looking for a bit more adventure without extreme difficulty."
	default:
		return "This challenging trail features significant elevation gain, rugged terrain, and some technical sections that require careful footing. Recommended for experienced hikers who enjoy a physical challenge and solitude on the trail."
	}
}

func trailFeatures(difficulty domain.Difficulty, withChildren bool) []string {
	features := []string{"Forest scenery", "Wildlife viewing opportunities", "Seasonal wildflowers"}

	if withChildren {
		features = append(features, "Educational nature signs", "Child-friendly rest areas")
	}

	switch difficulty {
	case domain.DifficultyEasy:
		features = append(features, "Gentle slopes", "Well-maintained path", "Clear trail markers")
	case domain.DifficultyModerate:
		features = append(features, "Some steep sections", "Creek crossings", "Varied terrain")
	case domain.DifficultyHard:
		features = append(features, "Challenging terrain", "Significant elevation gain", "Remote sections")
	}

	if difficulty != domain.DifficultyEasy {
		features = append(features, "Scenic overlooks")
	}
	if difficulty == domain.DifficultyEasy || (difficulty == domain.DifficultyModerate && withChildren) {
		features = append(features, "Picnic spots")
	}

	return features
}

func safetyMeta(difficulty domain.Difficulty) SafetyMeta {
	meta := SafetyMeta{
		Recommendations: []string{
			"Bring water and snacks",
			"Wear appropriate footwear",
		},
	}
	switch difficulty {
	case domain.DifficultyEasy:
		meta.CellCoverage = "Good"
		meta.WaterSources = 2
		meta.BailoutPoints = 3
		meta.Recommendations = append(meta.Recommendations, "Check weather before starting")
	case domain.DifficultyModerate:
		meta.CellCoverage = "Spotty"
		meta.WaterSources = 1
		meta.BailoutPoints = 2
		meta.Recommendations = append(meta.Recommendations, "Check weather before starting, trail can be slippery when wet")
	case domain.DifficultyHard:
		meta.CellCoverage = "Limited"
		meta.WaterSources = 0
		meta.BailoutPoints = 1
		meta.Recommendations = append(meta.Recommendations, "Check weather before starting, trail not recommended in bad weather")
	}
	return meta
}

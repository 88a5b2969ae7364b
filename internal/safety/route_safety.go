package safety

import (
	"fmt"
	"strings"

	"trailtail/pkg/domain"
)

// buildRouteSafety assembles the briefing for one route. Every field scales
// with difficulty in one direction: easy trails have the most amenities and
// the fewest hazards.
func buildRouteSafety(routeID string, difficulty domain.Difficulty) *RouteSafetyInfo {
	info := &RouteSafetyInfo{
		DifficultyRating: difficulty.String(),
		SafetyNotes: []string{
			"Trail is well-maintained and marked",
			pick(difficulty,
				"Cell phone reception available throughout",
				"Cell phone reception variable",
				"Limited cell phone reception"),
			pick(difficulty,
				"Water crossing has a sturdy bridge",
				"Water crossing has a sturdy bridge",
				"Water crossing may require careful footing"),
		},
		WeatherConsiderations: []string{
			pick(difficulty,
				"Not recommended during heavy rain",
				"Not recommended during heavy rain or snow",
				"Not recommended during heavy rain or snow"),
			"Sunny areas require sunscreen",
			"Trail may be muddy for 1-2 days after rainfall",
		},
		Emergency: EmergencyInfo{
			NearestHelp: fmt.Sprintf("Ranger station %.1f km from the trailhead",
				pickFloat(difficulty, 1.5, 3.0, 5.0)),
			EmergencyContacts: []string{"Park Rangers: 555-1234", "Emergency Services: 911"},
			CellCoverage: pick(difficulty,
				"Good throughout trail",
				"Available at higher elevations",
				"Very limited"),
		},
		TrailConditions: TrailConditions{
			LastUpdated:       "2025-09-03",
			Condition:         pick(difficulty, "Excellent", "Good", "Fair"),
			RecentMaintenance: "2025-08-15",
		},
		FamilyFriendliness: FamilyFriendliness{
			SuitableForChildren: difficulty == domain.DifficultyEasy ||
				(difficulty == domain.DifficultyModerate && domain.FamilyRoute(routeID)),
			StrollerAccessible: difficulty == domain.DifficultyEasy && containsAccessible(routeID),
			RestroomFacilities: difficulty == domain.DifficultyEasy,
			WaterFountains:     difficulty == domain.DifficultyEasy,
		},
		Wildlife: WildlifeAwareness{
			CommonWildlife: []string{"Deer", "Squirrels", "Various birds"},
			Precautions: []string{
				"Store food properly",
				"Do not feed wildlife",
				"Observe from a distance",
			},
		},
		Recommendations: []string{
			"Bring plenty of water",
			"Wear appropriate footwear",
			"Check weather forecast before starting",
			"Share your route plan with someone",
		},
	}

	switch difficulty {
	case domain.DifficultyEasy:
		info.TrailConditions.Hazards = []string{"Occasional exposed tree roots"}
	case domain.DifficultyModerate:
		info.TrailConditions.Hazards = []string{
			"Occasional steep sections",
			"Some rocky terrain",
			"One narrow path along hillside",
		}
		info.Wildlife.CommonWildlife = append(info.Wildlife.CommonWildlife, "Foxes", "Raccoons")
	case domain.DifficultyHard:
		info.TrailConditions.Hazards = []string{
			"Several steep drops",
			"Rocky and uneven terrain",
			"Stream crossing without bridge",
			"Loose gravel on steep sections",
		}
		info.Wildlife.CommonWildlife = append(info.Wildlife.CommonWildlife,
			"Foxes", "Raccoons", "Occasional bear sightings")
		info.Wildlife.Precautions = append(info.Wildlife.Precautions,
			"Make noise while hiking to avoid startling wildlife")
	}

	if difficulty != domain.DifficultyEasy {
		info.Recommendations = append(info.Recommendations,
			"Bring a basic first aid kit",
			"Consider hiking poles for steep sections")
	}
	if difficulty == domain.DifficultyHard {
		info.Recommendations = append(info.Recommendations,
			"Not recommended for inexperienced hikers",
			"Bring navigation tools (map, compass, or GPS)",
			"Plan for a full day excursion")
	}

	return info
}

func pick(d domain.Difficulty, easy, moderate, hard string) string {
	switch d {
	case domain.DifficultyModerate:
		return moderate
	case domain.DifficultyHard:
		return hard
	default:
		return easy
	}
}

func pickFloat(d domain.Difficulty, easy, moderate, hard float64) float64 {
	switch d {
	case domain.DifficultyModerate:
		return moderate
	case domain.DifficultyHard:
		return hard
	default:
		return easy
	}
}

func containsAccessible(routeID string) bool {
	return strings.Contains(strings.ToLower(routeID), "accessible")
}

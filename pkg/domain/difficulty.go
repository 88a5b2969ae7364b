// Package domain holds the small shared vocabulary types used across
// generators: trail difficulty, narrative mode, and encounter type.
package domain

import (
	"strings"

	dErrors "trailtail/pkg/domain-errors"
)

// Difficulty grades a trail. Safety amenities scale down monotonically from
// easy to hard.
type Difficulty string

const (
	DifficultyEasy     Difficulty = "easy"
	DifficultyModerate Difficulty = "moderate"
	DifficultyHard     Difficulty = "hard"
)

// Difficulties lists valid values in ascending order of challenge.
func Difficulties() []Difficulty {
	return []Difficulty{DifficultyEasy, DifficultyModerate, DifficultyHard}
}

// ParseDifficulty validates a caller-supplied difficulty string.
func ParseDifficulty(s string) (Difficulty, error) {
	switch Difficulty(s) {
	case DifficultyEasy, DifficultyModerate, DifficultyHard:
		return Difficulty(s), nil
	}
	return "", dErrors.Newf(dErrors.CodeInvalidInput, "difficulty must be one of easy, moderate, hard; got %q", s)
}

// DifficultyFromRouteID infers a difficulty from an opaque route id. Route
// ids embed their grade ("route_moderate_67890"); anything unrecognized is
// treated as easy.
func DifficultyFromRouteID(routeID string) Difficulty {
	id := strings.ToLower(routeID)
	switch {
	case strings.Contains(id, "hard"), strings.Contains(id, "challenging"):
		return DifficultyHard
	case strings.Contains(id, "moderate"):
		return DifficultyModerate
	default:
		return DifficultyEasy
	}
}

// FamilyRoute reports whether a route id marks a family-friendly trail.
func FamilyRoute(routeID string) bool {
	return strings.Contains(strings.ToLower(routeID), "family")
}

func (d Difficulty) String() string { return string(d) }

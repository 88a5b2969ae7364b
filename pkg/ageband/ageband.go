// Package ageband classifies a child's age into the content band that every
// generator uses to select vocabulary and complexity.
package ageband

import "fmt"

// Band is an age classification. Bands are totally ordered and exhaustive
// over the valid age domain (1-18).
type Band string

const (
	Younger Band = "younger" // under 8
	Middle  Band = "middle"  // 8-11
	Older   Band = "older"   // 12 and up
)

const (
	MinAge = 1
	MaxAge = 18
)

// ForAge maps an age to its band. Callers are responsible for rejecting ages
// outside the valid domain before invoking generators; see Valid.
func ForAge(age int) Band {
	switch {
	case age < 8:
		return Younger
	case age < 12:
		return Middle
	default:
		return Older
	}
}

// Valid reports whether age is inside the supported domain.
func Valid(age int) bool {
	return age >= MinAge && age <= MaxAge
}

// ReadingLevel describes the vocabulary level for clean content at this band.
func (b Band) ReadingLevel() string {
	switch b {
	case Younger:
		return "Simple vocabulary, appropriate for early readers"
	case Middle:
		return "Appropriate vocabulary for middle-grade readers"
	default:
		return "Vocabulary suitable for young teens"
	}
}

// AgeRating is the suitability label for clean content at this band.
func (b Band) AgeRating() string {
	switch b {
	case Younger:
		return "Suitable for ages 3-7"
	case Middle:
		return "Suitable for ages 7-12"
	default:
		return "Suitable for ages 12+"
	}
}

func (b Band) String() string { return string(b) }

// Parse converts a stored band label back to a Band.
func Parse(s string) (Band, error) {
	switch Band(s) {
	case Younger, Middle, Older:
		return Band(s), nil
	}
	return "", fmt.Errorf("unknown age band %q", s)
}

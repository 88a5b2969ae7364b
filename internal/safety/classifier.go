package safety

import (
	"strconv"
	"strings"

	"trailtail/pkg/ageband"
)

// VerdictKind is the three-way outcome of a content check.
type VerdictKind string

const (
	VerdictAppropriate VerdictKind = "appropriate"
	VerdictFlagged     VerdictKind = "flagged"
	VerdictRejected    VerdictKind = "rejected"
)

// Lexical tiers. This is a heuristic substring filter, not a semantic
// classifier: text that avoids every listed term passes, which is an
// accepted limitation of the design.
var (
	highConcernTerms = []string{
		"scary", "violent", "blood", "kill", "dead", "weapon", "gun", "knife", "die",
	}
	mildConcernTerms = []string{
		"fight", "dark", "afraid", "scream", "monster", "ghost",
	}
)

// Flagged content is still appropriate for children at or above this age.
const mildConcernAgeFloor = 9

// Verdict is the result of classifying free text for a given age.
type Verdict struct {
	Verdict       VerdictKind       `json:"verdict"`
	Appropriate   bool              `json:"appropriate"`
	Reason        string            `json:"reason,omitempty"`
	SuggestedEdit string            `json:"suggested_edit,omitempty"`
	FlaggedTerms  []string          `json:"flagged_terms,omitempty"`
	AgeRating     string            `json:"age_rating"`
	ContentType   string            `json:"content_type,omitempty"`
	ReadingLevel  string            `json:"reading_level,omitempty"`
	Confidence    string            `json:"confidence"`
	Moderation    ModerationDetails `json:"moderation_details"`
}

// ModerationDetails carries the per-dimension assessment attached to every
// verdict for parental review.
type ModerationDetails struct {
	ViolenceLevel       string `json:"violence_level"`
	FearLevel           string `json:"fear_level"`
	Analysis            string `json:"age_appropriate_analysis,omitempty"`
	EducationalValue    string `json:"educational_value,omitempty"`
	EngagementPotential string `json:"engagement_potential,omitempty"`
}

// Classify scores text against the concern lexicons. High-concern matches
// take precedence: any high-concern term rejects the content regardless of
// age or mild matches. Mild-only matches flag it, appropriate only from age
// 9 up. The flagged-terms list carries every matched term, for auditability.
// Classify is total; it never fails, and empty text is appropriate.
func Classify(text string, age int) Verdict {
	lower := strings.ToLower(text)

	high := matchTerms(lower, highConcernTerms)
	mild := matchTerms(lower, mildConcernTerms)

	switch {
	case len(high) > 0:
		return rejectedVerdict(lower, age, append(high, mild...))
	case len(mild) > 0:
		return flaggedVerdict(age, mild)
	default:
		return appropriateVerdict(lower, age)
	}
}

func matchTerms(lower string, terms []string) []string {
	var matched []string
	for _, term := range terms {
		if strings.Contains(lower, term) {
			matched = append(matched, term)
		}
	}
	return matched
}

func rejectedVerdict(lower string, age int, terms []string) Verdict {
	minAge := age + 2
	if minAge < 13 {
		minAge = 13
	}

	violence := "low"
	if strings.Contains(lower, "blood") || strings.Contains(lower, "kill") {
		violence = "moderate"
	}
	fear := "moderate"
	if strings.Contains(lower, "scary") {
		fear = "high"
	}

	return Verdict{
		Verdict:       VerdictRejected,
		Appropriate:   false,
		Reason:        "Contains potentially scary or inappropriate content",
		SuggestedEdit: "Consider using more child-friendly language",
		FlaggedTerms:  terms,
		AgeRating:     "Not suitable for children under " + strconv.Itoa(minAge),
		Confidence:    "high",
		Moderation: ModerationDetails{
			ViolenceLevel: violence,
			FearLevel:     fear,
			Analysis:      "Content contains themes or language that may cause distress",
		},
	}
}

func flaggedVerdict(age int, terms []string) Verdict {
	return Verdict{
		Verdict:       VerdictFlagged,
		Appropriate:   age >= mildConcernAgeFloor,
		Reason:        "Contains some terms that may be concerning for very young children",
		SuggestedEdit: "Consider gentler language for younger audiences",
		FlaggedTerms:  terms,
		AgeRating:     "Suitable for ages 9+",
		Confidence:    "medium",
		Moderation: ModerationDetails{
			ViolenceLevel: "minimal",
			FearLevel:     "low to moderate",
			Analysis:      "Generally appropriate but includes mild elements that very young children might find unsettling",
		},
	}
}

func appropriateVerdict(lower string, age int) Verdict {
	band := ageband.ForAge(age)

	educational := strings.Contains(lower, "learn") || strings.Contains(lower, "history")
	contentType := "entertainment"
	eduValue := "moderate"
	if educational {
		contentType = "informational and educational"
		eduValue = "high"
	}
	engagement := "moderate"
	if strings.Contains(lower, "adventure") || strings.Contains(lower, "discover") {
		engagement = "high"
	}

	return Verdict{
		Verdict:      VerdictAppropriate,
		Appropriate:  true,
		AgeRating:    band.AgeRating(),
		ContentType:  contentType,
		ReadingLevel: band.ReadingLevel(),
		Confidence:   "high",
		Moderation: ModerationDetails{
			ViolenceLevel:       "none",
			FearLevel:           "none",
			EducationalValue:    eduValue,
			EngagementPotential: engagement,
		},
	}
}

package safety

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"trailtail/pkg/ageband"
)

func TestClassifyRejected(t *testing.T) {
	t.Run("high concern term rejects regardless of age", func(t *testing.T) {
		v := Classify("A scary monster with blood", 10)
		assert.Equal(t, VerdictRejected, v.Verdict)
		assert.False(t, v.Appropriate)
		assert.Contains(t, v.FlaggedTerms, "scary")
		assert.Contains(t, v.FlaggedTerms, "blood")
		assert.Contains(t, v.FlaggedTerms, "monster")
		assert.Equal(t, "Not suitable for children under 13", v.AgeRating)
		assert.Equal(t, "moderate", v.Moderation.ViolenceLevel)
		assert.Equal(t, "high", v.Moderation.FearLevel)
	})

	t.Run("minimum age tracks the child's age from 11 up", func(t *testing.T) {
		v := Classify("scary story", 15)
		assert.Equal(t, "Not suitable for children under 17", v.AgeRating)
	})

	t.Run("rejection beats mild matches and age", func(t *testing.T) {
		v := Classify("a dark weapon", 18)
		assert.Equal(t, VerdictRejected, v.Verdict)
		assert.Equal(t, []string{"weapon", "dark"}, v.FlaggedTerms)
	})
}

func TestClassifyFlagged(t *testing.T) {
	t.Run("mild terms flag and pass from age nine", func(t *testing.T) {
		v := Classify("The dark forest hides a friendly ghost", 9)
		assert.Equal(t, VerdictFlagged, v.Verdict)
		assert.True(t, v.Appropriate)
		assert.Equal(t, []string{"dark", "ghost"}, v.FlaggedTerms)
		assert.Equal(t, "Suitable for ages 9+", v.AgeRating)
	})

	t.Run("mild terms fail below age nine", func(t *testing.T) {
		v := Classify("The dark forest hides a friendly ghost", 8)
		assert.Equal(t, VerdictFlagged, v.Verdict)
		assert.False(t, v.Appropriate)
	})
}

func TestClassifyAppropriate(t *testing.T) {
	t.Run("clean text rates by age band", func(t *testing.T) {
		tests := []struct {
			age  int
			band ageband.Band
		}{
			{5, ageband.Younger},
			{10, ageband.Middle},
			{14, ageband.Older},
		}
		for _, tt := range tests {
			v := Classify("A gentle walk by the creek", tt.age)
			assert.Equal(t, VerdictAppropriate, v.Verdict)
			assert.True(t, v.Appropriate)
			assert.Equal(t, tt.band.AgeRating(), v.AgeRating)
			assert.Equal(t, tt.band.ReadingLevel(), v.ReadingLevel)
			assert.Empty(t, v.FlaggedTerms)
		}
	})

	t.Run("educational markers raise the content assessment", func(t *testing.T) {
		v := Classify("Learn about the history of the old mill", 10)
		assert.Equal(t, "informational and educational", v.ContentType)
		assert.Equal(t, "high", v.Moderation.EducationalValue)
	})

	t.Run("adventure markers raise engagement", func(t *testing.T) {
		v := Classify("Discover a hidden waterfall on this adventure", 10)
		assert.Equal(t, "high", v.Moderation.EngagementPotential)
	})

	t.Run("empty text is appropriate", func(t *testing.T) {
		v := Classify("", 7)
		assert.Equal(t, VerdictAppropriate, v.Verdict)
		assert.True(t, v.Appropriate)
	})
}

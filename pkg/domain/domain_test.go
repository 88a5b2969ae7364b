package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "trailtail/pkg/domain-errors"
)

func TestParseDifficulty(t *testing.T) {
	for _, want := range Difficulties() {
		got, err := ParseDifficulty(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseDifficulty("extreme")
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeInvalidInput, dErrors.CodeOf(err))
}

func TestDifficultyFromRouteID(t *testing.T) {
	tests := []struct {
		routeID string
		want    Difficulty
	}{
		{"route_easy_12345", DifficultyEasy},
		{"route_moderate_67890", DifficultyModerate},
		{"route_hard_24680", DifficultyHard},
		{"route_challenging_ridge", DifficultyHard},
		{"ROUTE_MODERATE_11111", DifficultyModerate},
		{"something_else", DifficultyEasy},
		{"", DifficultyEasy},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DifficultyFromRouteID(tt.routeID), "routeID %q", tt.routeID)
	}
}

func TestFamilyRoute(t *testing.T) {
	assert.True(t, FamilyRoute("route_easy_family_12345"))
	assert.True(t, FamilyRoute("ROUTE_FAMILY_99999"))
	assert.False(t, FamilyRoute("route_hard_24680"))
}

func TestParseMode(t *testing.T) {
	for _, want := range []Mode{ModeHistory, ModeFantasy} {
		got, err := ParseMode(want.String())
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}

	_, err := ParseMode("scifi")
	require.Error(t, err)
	assert.Equal(t, dErrors.CodeInvalidInput, dErrors.CodeOf(err))
}

func TestModeTitle(t *testing.T) {
	assert.Equal(t, "History", ModeHistory.Title())
	assert.Equal(t, "Fantasy", ModeFantasy.Title())
}

func TestEncounterTypeFromID(t *testing.T) {
	tests := []struct {
		encounterID string
		want        EncounterType
	}{
		{"animal_ab12c_1", EncounterAnimal},
		{"treasure_ab12c_2", EncounterTreasure},
		{"character_ab12c_3", EncounterCharacter},
		{"puzzle_ab12c_4", EncounterPuzzle},
		{"landmark_ab12c_5", EncounterLandmark},
		{"dragon_ab12c_6", EncounterLandmark},
		{"noseparator", EncounterLandmark},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EncounterTypeFromID(tt.encounterID), "encounterID %q", tt.encounterID)
	}
}

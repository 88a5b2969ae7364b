package domain

import "strings"

// EncounterType classifies an AR encounter archetype. The type doubles as
// the prefix of generated encounter ids, which is how detail lookups route
// to the right payload.
type EncounterType string

const (
	EncounterAnimal    EncounterType = "animal"
	EncounterTreasure  EncounterType = "treasure"
	EncounterCharacter EncounterType = "character"
	EncounterPuzzle    EncounterType = "puzzle"
	EncounterLandmark  EncounterType = "landmark"
)

// EncounterTypeFromID extracts the type prefix from an encounter id of the
// form "{type}_{parent-suffix}_{index}". Unknown prefixes fall back to
// landmark, the most generic archetype.
func EncounterTypeFromID(encounterID string) EncounterType {
	prefix, _, _ := strings.Cut(encounterID, "_")
	switch EncounterType(prefix) {
	case EncounterAnimal, EncounterTreasure, EncounterCharacter, EncounterPuzzle:
		return EncounterType(prefix)
	default:
		return EncounterLandmark
	}
}

func (t EncounterType) String() string { return string(t) }

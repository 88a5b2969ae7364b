package family

import (
	"fmt"
	"math/rand/v2"
	"time"

	"trailtail/pkg/procgen"
)

// synthesizeFamily builds the full profile for a family id. Everything but
// the calendar dates is a pure function of the id; dates are anchored to the
// request time.
func synthesizeFamily(familyID string, now time.Time) *Family {
	rng := procgen.New(procgen.Seed(familyID))

	numParents := procgen.Between(rng, 1, 2)
	numChildren := procgen.Between(rng, 1, 3)

	members := make([]Member, 0, numParents+numChildren)
	for i := 0; i < numParents; i++ {
		members = append(members, synthesizeParent(rng))
	}
	for i := 0; i < numChildren; i++ {
		members = append(members, synthesizeChild(rng))
	}

	trailsCompleted := 0
	totalDistance := 0.0
	for _, m := range members {
		if m.ActivityStats.TotalHikes > trailsCompleted {
			trailsCompleted = m.ActivityStats.TotalHikes
		}
		totalDistance += m.ActivityStats.TotalDistance
	}
	if totalDistance == 0 {
		totalDistance = procgen.Round1(float64(trailsCompleted) * procgen.FloatBetween(rng, 2.5, 4.0))
	}
	totalDistance = procgen.Round1(totalDistance)

	challenge := fmt.Sprintf("%d/%d %s",
		procgen.Between(rng, 1, 8), procgen.Between(rng, 5, 10), procgen.Pick(rng, challengeUnits))

	return &Family{
		ID:          familyID,
		Name:        procgen.Pick(rng, familyNames),
		CreatedDate: now.AddDate(0, 0, -procgen.Between(rng, 30, 180)).Format("2006-01-02"),
		Members:     members,
		Achievements: Achievements{
			TrailsCompleted:     trailsCompleted,
			TotalDistance:       totalDistance,
			TotalElevationGain:  int(totalDistance * procgen.FloatBetween(rng, 20, 40)),
			Badges:              procgen.Sample(rng, familyBadgePool, procgen.Between(rng, 2, 3)),
			SpecialAchievements: procgen.Sample(rng, specialFamilyAchievements, procgen.Between(rng, 1, 2)),
			ChallengeProgress:   map[string]string{procgen.Pick(rng, challengeNames): challenge},
		},
		SavedTrails: []SavedTrail{
			{
				ID:        fmt.Sprintf("route_%d", 10000+rng.IntN(90000)),
				Name:      "Woodland Wonder Trail",
				SavedDate: now.AddDate(0, 0, -procgen.Between(rng, 5, 90)).Format("2006-01-02"),
			},
			{
				ID:        fmt.Sprintf("route_%d", 10000+rng.IntN(90000)),
				Name:      "Mountain Explorer Path",
				SavedDate: now.AddDate(0, 0, -procgen.Between(rng, 5, 90)).Format("2006-01-02"),
			},
		},
		SafetySettings: SafetySettings{
			EmergencyContact: fmt.Sprintf("%s %s: 555-%d",
				procgen.Pick(rng, emergencyContactFirst), procgen.Pick(rng, emergencyContactLast),
				procgen.Between(rng, 1000, 9999)),
			ShareLocation: true,
			AutoCheckIn:   coin(rng),
			WeatherAlerts: true,
			SafeZonesOnly: coin(rng),
		},
	}
}

func synthesizeParent(rng *rand.Rand) Member {
	totalHikes := procgen.Between(rng, 5, 25)
	return Member{
		ID:   fmt.Sprintf("user_%d", procgen.Between(rng, 1000, 9999)),
		Name: procgen.Pick(rng, parentNames),
		Role: "parent",
		Preferences: Preferences{
			NarrativePreference:  procgen.Pick(rng, []string{"history", "fantasy", "science", "mixed"}),
			DifficultyPreference: procgen.Pick(rng, []string{"easy", "moderate", "hard"}),
			MaxDistance:          procgen.Round1(procgen.FloatBetween(rng, 3.0, 15.0)),
			Interests:            procgen.Sample(rng, parentInterests, procgen.Between(rng, 2, 3)),
			FavoriteFeatures:     procgen.Sample(rng, parentFeatures, procgen.Between(rng, 2, 3)),
		},
		ActivityStats: ActivityStats{
			TotalHikes:    totalHikes,
			TotalDistance: procgen.Round1(float64(totalHikes) * procgen.FloatBetween(rng, 2.0, 5.0)),
			BadgesEarned:  procgen.Sample(rng, parentBadges, procgen.Between(rng, 2, 3)),
		},
		Settings: &MemberSettings{
			Notifications:     coin(rng),
			ShareAchievements: coin(rng),
			Units:             procgen.Pick(rng, []string{"miles", "kilometers"}),
		},
	}
}

func synthesizeChild(rng *rand.Rand) Member {
	age := procgen.Between(rng, 5, 14)
	pref := procgen.Pick(rng, []string{"fantasy", "history", "science"})

	return Member{
		ID:   fmt.Sprintf("user_%d", procgen.Between(rng, 1000, 9999)),
		Name: procgen.Pick(rng, childNames),
		Role: "child",
		Age:  age,
		Preferences: Preferences{
			NarrativePreference: pref,
			FavoriteEncounters:  procgen.Sample(rng, encounterPreferences, procgen.Between(rng, 2, 3)),
			FavoriteCharacters:  procgen.Sample(rng, childCharacters[pref], procgen.Between(rng, 2, 3)),
			Interests:           procgen.Sample(rng, childInterests[pref], procgen.Between(rng, 2, 3)),
		},
		ActivityStats: ActivityStats{
			TotalHikes:       min(20, procgen.Between(rng, age-2, age+5)),
			BadgesEarned:     procgen.Sample(rng, childBadges, procgen.Between(rng, 2, 3)),
			CompletedPuzzles: min(15, procgen.Between(rng, age-3, age+2)),
		},
		LearningProgress: &LearningProgress{
			NatureFactsLearned: min(40, procgen.Between(rng, age, age*3)),
			WildlifeIdentified: procgen.Sample(rng, wildlifeSightings, procgen.Between(rng, 3, 5)),
		},
	}
}

func coin(rng *rand.Rand) bool {
	return rng.IntN(2) == 1
}

package encounters

import "trailtail/pkg/domain"

// buildDetail assembles the full encounter payload for an id. The encounter
// type is read back out of the id prefix; unknown prefixes fall through to
// the landmark payload.
func buildDetail(encounterID string) *Detail {
	switch domain.EncounterTypeFromID(encounterID) {
	case domain.EncounterAnimal:
		return animalDetail(encounterID)
	case domain.EncounterTreasure:
		return treasureDetail(encounterID)
	case domain.EncounterCharacter:
		return characterDetail(encounterID)
	case domain.EncounterPuzzle:
		return puzzleDetail(encounterID)
	default:
		return landmarkDetail(encounterID)
	}
}

func animalDetail(id string) *Detail {
	return &Detail{
		ID:                 id,
		Type:               domain.EncounterAnimal,
		Title:              "Forest Fox",
		Description:        "A curious fox appears on the trail! Watch quietly as it sniffs around and maybe even comes closer to investigate you.",
		ARModel:            "models/forest_fox.glb",
		InteractionType:    "observe_and_learn",
		Reward:             "Animal Friend Badge",
		CompletionCriteria: "User must stay still and observe the fox for at least 30 seconds",
		Animation:          "fox_curious.animation",
		SoundEffects:       []string{"fox_call.mp3", "forest_ambience.mp3"},
		EducationalContent: AnimalEducation{
			AnimalFacts: []string{
				"Foxes are members of the canine family",
				"They have excellent night vision",
				"Foxes use the Earth's magnetic field to hunt",
			},
			ConservationStatus: "Least Concern",
			HabitatInformation: "Foxes are adaptable and can live in forests, mountains, and even urban areas",
		},
		InteractionOptions: []InteractionOption{
			{Action: "Observe quietly", Result: "Fox comes closer"},
			{Action: "Make noise", Result: "Fox runs away"},
			{Action: "Take a photo", Result: "Capture a memory"},
		},
	}
}

func treasureDetail(id string) *Detail {
	return &Detail{
		ID:                 id,
		Type:               domain.EncounterTreasure,
		Title:              "Hidden Treasure Chest",
		Description:        "A mysterious treasure chest is hidden nearby! Follow the clues to find it.",
		ARModel:            "models/treasure_chest.glb",
		InteractionType:    "find_and_tap",
		Reward:             "Treasure Hunter Badge",
		CompletionCriteria: "User must find and tap on the treasure chest",
		Animation:          "chest_opening.animation",
		SoundEffects:       []string{"success.mp3", "magic_sparkle.mp3"},
		TreasureContents: []string{
			"Virtual gold coins",
			"A special map piece",
			"A mysterious key",
		},
		Clues: []string{
			"Look for something shiny near water",
			"It's hidden where trees make an X shape",
			"You'll find it where animals drink",
		},
		Difficulty:         "medium",
		CollectionProgress: "1/5 treasures found on this route",
	}
}

func characterDetail(id string) *Detail {
	return &Detail{
		ID:                 id,
		Type:               domain.EncounterCharacter,
		Title:              "Forest Ranger",
		Description:        "Meet Park Ranger Alex, who can tell you all about the forest and its creatures!",
		ARModel:            "models/forest_ranger.glb",
		InteractionType:    "talk_and_learn",
		Reward:             "Ranger Helper Badge",
		CompletionCriteria: "Complete the ranger's mini-quiz about forest conservation",
		Animation:          "ranger_greeting.animation",
		SoundEffects:       []string{"ranger_hello.mp3", "birds_chirping.mp3"},
		ConversationTopics: []ConversationTopic{
			{Topic: "Local wildlife", Information: "Learn about animals that live in this forest"},
			{Topic: "Trail history", Information: "Discover who created this trail and why"},
			{Topic: "Conservation efforts", Information: "Find out how the park is protected"},
		},
		QuizQuestions: []QuizQuestion{
			{
				Question:      "What should you do with your trash in the forest?",
				Options:       []string{"Leave it on the ground", "Pack it out with you", "Bury it"},
				CorrectAnswer: "Pack it out with you",
			},
			{
				Question:      "Why should you stay on marked trails?",
				Options:       []string{"To avoid getting lost", "To protect fragile plants", "Both of these reasons"},
				CorrectAnswer: "Both of these reasons",
			},
		},
		CharacterBackground: "Ranger Alex has worked in this forest for 15 years and knows every tree and animal here.",
	}
}

func puzzleDetail(id string) *Detail {
	return &Detail{
		ID:                 id,
		Type:               domain.EncounterPuzzle,
		Title:              "Forest Riddle",
		Description:        "Solve this riddle to unlock a special forest secret!",
		ARModel:            "models/riddle_stone.glb",
		InteractionType:    "solve_riddle",
		Difficulty:         "medium",
		Reward:             "Riddle Master Badge",
		CompletionCriteria: "User must select the correct answer to the riddle",
		Animation:          "stone_glowing.animation",
		SoundEffects:       []string{"magic_chime.mp3", "success.mp3"},
		PuzzleContent: &Puzzle{
			Riddle:        "I'm tall when I'm young, and short when I'm old. What am I?",
			Options:       []string{"A mountain", "A candle", "A tree", "A shadow"},
			CorrectAnswer: "A candle",
			Hint:          "Think about something that burns...",
		},
		LearningFocus:  "Critical thinking and problem-solving skills",
		AgeAppropriate: "8-12 years",
		FollowUpFacts: []string{
			"Riddles have been used for thousands of years",
			"Solving riddles helps develop logical thinking",
			"Many ancient cultures used riddles for teaching",
		},
	}
}

func landmarkDetail(id string) *Detail {
	return &Detail{
		ID:                 id,
		Type:               domain.EncounterLandmark,
		Title:              "Ancient Oak Tree",
		Description:        "This massive oak tree is over 500 years old! It's been standing here since before explorers first came to this land.",
		ARModel:            "models/ancient_oak.glb",
		InteractionType:    "explore_and_learn",
		Reward:             "Nature History Badge",
		CompletionCriteria: "User must find and identify three features of the ancient oak",
		Animation:          "leaves_rustling.animation",
		SoundEffects:       []string{"wind_in_leaves.mp3", "creaking_wood.mp3"},
		EducationalContent: LandmarkEducation{
			TreeAge:              "This tree germinated around 1520 CE",
			HistoricalEvents:     "This tree was already 100 years old when the first European settlers arrived",
			EcologicalImportance: "Ancient trees like this provide habitat for dozens of species",
		},
		InteractiveElements: []InteractiveElement{
			{Feature: "Gnarled roots", Fact: "These roots reach out over 100 feet from the trunk"},
			{Feature: "Hollow section", Fact: "The hollow was created by lightning about 200 years ago"},
			{Feature: "Wildlife homes", Fact: "Look for woodpecker holes and squirrel nests"},
		},
		AugmentedViewOptions: []string{"Normal view", "See inside the tree", "See the tree through seasons"},
	}
}

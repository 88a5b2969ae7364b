// Package encounters implements the AR encounter generator: deterministic
// placement of themed interactions along a route, scaled to the child's age.
package encounters

import "trailtail/pkg/domain"

// Encounter is one AR interaction placed on a route.
type Encounter struct {
	ID              string               `json:"id"`
	Type            domain.EncounterType `json:"type"`
	Title           string               `json:"title"`
	Description     string               `json:"description"`
	ARModel         string               `json:"ar_model"`
	InteractionType string               `json:"interaction_type"`
	Difficulty      string               `json:"difficulty"`
	Reward          string               `json:"reward"`
}

// InteractionOption is one available action during an encounter and its
// outcome.
type InteractionOption struct {
	Action string `json:"action"`
	Result string `json:"result"`
}

// ConversationTopic is one subject a character encounter can discuss.
type ConversationTopic struct {
	Topic       string `json:"topic"`
	Information string `json:"information"`
}

// QuizQuestion is a multiple-choice question inside a character encounter.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

// Puzzle is the riddle body of a puzzle encounter.
type Puzzle struct {
	Riddle        string   `json:"riddle"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
	Hint          string   `json:"hint"`
}

// InteractiveElement is one inspectable feature of a landmark encounter.
type InteractiveElement struct {
	Feature string `json:"feature"`
	Fact    string `json:"fact"`
}

// AnimalEducation holds the learning content of an animal encounter.
type AnimalEducation struct {
	AnimalFacts        []string `json:"animal_facts"`
	ConservationStatus string   `json:"conservation_status"`
	HabitatInformation string   `json:"habitat_information"`
}

// LandmarkEducation holds the learning content of a landmark encounter.
type LandmarkEducation struct {
	TreeAge              string `json:"tree_age"`
	HistoricalEvents     string `json:"historical_events"`
	EcologicalImportance string `json:"ecological_importance"`
}

// Detail is the full payload for a single encounter. Sections not relevant
// to the encounter type stay empty and are omitted from the response.
type Detail struct {
	ID                   string               `json:"id"`
	Type                 domain.EncounterType `json:"type"`
	Title                string               `json:"title"`
	Description          string               `json:"description"`
	ARModel              string               `json:"ar_model"`
	InteractionType      string               `json:"interaction_type"`
	Difficulty           string               `json:"difficulty,omitempty"`
	Reward               string               `json:"reward"`
	CompletionCriteria   string               `json:"completion_criteria"`
	Animation            string               `json:"animation"`
	SoundEffects         []string             `json:"sound_effects"`
	EducationalContent   any                  `json:"educational_content,omitempty"`
	InteractionOptions   []InteractionOption  `json:"interaction_options,omitempty"`
	TreasureContents     []string             `json:"treasure_contents,omitempty"`
	Clues                []string             `json:"clues,omitempty"`
	CollectionProgress   string               `json:"collection_progress,omitempty"`
	ConversationTopics   []ConversationTopic  `json:"conversation_topics,omitempty"`
	QuizQuestions        []QuizQuestion       `json:"quiz_questions,omitempty"`
	CharacterBackground  string               `json:"character_background,omitempty"`
	PuzzleContent        *Puzzle              `json:"puzzle_content,omitempty"`
	LearningFocus        string               `json:"learning_focus,omitempty"`
	AgeAppropriate       string               `json:"age_appropriate,omitempty"`
	FollowUpFacts        []string             `json:"follow_up_facts,omitempty"`
	InteractiveElements  []InteractiveElement `json:"interactive_elements,omitempty"`
	AugmentedViewOptions []string             `json:"augmented_view_options,omitempty"`
}

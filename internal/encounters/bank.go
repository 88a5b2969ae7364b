package encounters

import "trailtail/pkg/domain"

// archetype is an encounter template before id, difficulty, and reward
// assignment.
type archetype struct {
	typ             domain.EncounterType
	title           string
	description     string
	arModel         string
	interactionType string
	reward          string // empty: backfilled from mode and title
}

var historyBank = []archetype{
	{
		typ:             domain.EncounterLandmark,
		title:           "Old Bridge",
		description:     "This bridge has been standing for over 100 years! Look for the date carved in the stone.",
		arModel:         "models/old_bridge_overlay.glb",
		interactionType: "find_and_learn",
		reward:          "History Badge: Bridge Builder",
	},
	{
		typ:             domain.EncounterCharacter,
		title:           "Pioneer Guide",
		description:     "Meet Sarah, a pioneer who can tell you about life in the 1800s.",
		arModel:         "models/pioneer_woman.glb",
		interactionType: "talk_and_learn",
		reward:          "History Fact: Pioneer Life",
	},
	{
		typ:             domain.EncounterPuzzle,
		title:           "Mining Tools",
		description:     "Can you match these old mining tools to their names?",
		arModel:         "models/mining_tools.glb",
		interactionType: "match_items",
		reward:          "History Badge: Mining Expert",
	},
	{
		typ:             domain.EncounterLandmark,
		title:           "Native American Cairn",
		description:     "These stacked stones were used as trail markers by Native Americans.",
		arModel:         "models/stone_cairn.glb",
		interactionType: "learn_and_build",
		reward:          "History Badge: Trail Marker",
	},
	{
		typ:             domain.EncounterPuzzle,
		title:           "Old Map Challenge",
		description:     "Compare this old map from 1890 with today's landscape. Can you spot what has changed?",
		arModel:         "models/old_map_overlay.glb",
		interactionType: "spot_differences",
		reward:          "History Badge: Cartographer",
	},
	{
		typ:             domain.EncounterCharacter,
		title:           "Forest Ranger Historian",
		description:     "Ranger Bill knows all about the history of this forest. Ask him about the old logging camp!",
		arModel:         "models/ranger_character.glb",
		interactionType: "interview",
		reward:          "History Badge: Forest Historian",
	},
	{
		typ:             domain.EncounterAnimal,
		title:           "Historical Wildlife",
		description:     "See what animals lived here 200 years ago, including some that are no longer found in this area.",
		arModel:         "models/historical_animals.glb",
		interactionType: "observe_and_learn",
		reward:          "History Badge: Wildlife Historian",
	},
	{
		typ:             domain.EncounterLandmark,
		title:           "Old Mill Ruins",
		description:     "Discover the remains of an old water mill that powered the early settlement.",
		arModel:         "models/mill_ruins.glb",
		interactionType: "explore_ruins",
		reward:          "History Badge: Industrial Archaeologist",
	},
}

var fantasyBank = []archetype{
	{
		typ:             domain.EncounterTreasure,
		title:           "Dragon's Treasure",
		description:     "The dragon has hidden a treasure chest nearby! Can you find it?",
		arModel:         "models/treasure_chest.glb",
		interactionType: "find_and_tap",
		reward:          "Fantasy Badge: Treasure Hunter",
	},
	{
		typ:             domain.EncounterCharacter,
		title:           "Forest Fairy",
		description:     "A tiny forest fairy needs your help to find her lost wand!",
		arModel:         "models/forest_fairy.glb",
		interactionType: "help_character",
		reward:          "Magic Dust (virtual item)",
	},
	{
		typ:             domain.EncounterPuzzle,
		title:           "Wizard's Riddle",
		description:     "Solve the wizard's riddle to unlock a magical spell!",
		arModel:         "models/magic_book.glb",
		interactionType: "solve_riddle",
		reward:          "Fantasy Badge: Apprentice Wizard",
	},
	{
		typ:             domain.EncounterAnimal,
		title:           "Friendly Forest Dragon",
		description:     "Meet Ember, the friendly dragon who protects the forest!",
		arModel:         "models/small_dragon.glb",
		interactionType: "feed_and_pet",
		reward:          "Fantasy Badge: Dragon Friend",
	},
	{
		typ:             domain.EncounterLandmark,
		title:           "Magic Crystal Formation",
		description:     "These crystals glow with magical energy. Place your hand near them to change their color!",
		arModel:         "models/glowing_crystals.glb",
		interactionType: "touch_and_change",
		reward:          "Crystal Shard (virtual item)",
	},
	{
		typ:             domain.EncounterPuzzle,
		title:           "Enchanted Music Stones",
		description:     "Tap these stones in the correct order to play a magical melody!",
		arModel:         "models/music_stones.glb",
		interactionType: "sequence_puzzle",
		reward:          "Fantasy Badge: Music Mage",
	},
	{
		typ:             domain.EncounterCharacter,
		title:           "Talking Tree Guardian",
		description:     "This ancient tree has awakened! It has stories to tell about the magical forest.",
		arModel:         "models/talking_tree.glb",
		interactionType: "listen_and_respond",
		reward:          "Magical Seed (virtual item)",
	},
	{
		typ:             domain.EncounterTreasure,
		title:           "Fairy Ring",
		description:     "Find the circle of mushrooms where fairies dance at night. There might be a gift waiting for you!",
		arModel:         "models/fairy_ring.glb",
		interactionType: "discover_and_receive",
		reward:          "Fantasy Badge: Fairy Friend",
	},
}

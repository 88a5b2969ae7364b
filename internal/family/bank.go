package family

// Name and content banks for family synthesis. Sampled deterministically
// from the family seed.

var familyNames = []string{
	"Nature Explorers", "Trail Blazers", "Mountain Seekers", "Forest Friends",
	"Adventure Crew", "Hiking Heroes", "Wilderness Wanderers", "Outdoor Explorers",
}

var parentNames = []string{
	"John", "Michael", "David", "Robert", "James", "William", "Thomas", "Richard",
	"Mary", "Sarah", "Jennifer", "Elizabeth", "Susan", "Patricia", "Lisa", "Karen",
}

var childNames = []string{
	"Ethan", "Noah", "Liam", "Mason", "Jacob", "Benjamin", "Alexander",
	"Emma", "Olivia", "Sophia", "Ava", "Isabella", "Mia", "Charlotte", "Amelia", "Harper",
}

var parentInterests = []string{
	"local history", "geology", "wildlife", "photography", "botany", "navigation",
}

var parentFeatures = []string{
	"educational content", "viewpoints", "rest areas",
	"challenging terrain", "wildlife habitats", "scenic views",
}

var parentBadges = []string{
	"Trail Pioneer", "History Explorer", "Wildlife Spotter", "Peak Bagger", "Plant Identifier",
}

var childBadges = []string{
	"Junior Explorer", "Animal Friend", "Plant Spotter", "Trail Helper",
	"Junior Scientist", "History Detective",
}

var encounterPreferences = []string{
	"animals", "treasure", "puzzles", "characters", "landmark",
}

var childCharacters = map[string][]string{
	"fantasy": {"dragons", "fairies", "wizards", "friendly monsters", "talking animals"},
	"history": {"pioneers", "native guides", "explorers", "settlers"},
	"science": {"scientists", "explorers", "nature guides", "inventors"},
}

var childInterests = map[string][]string{
	"fantasy": {"magical creatures", "finding hidden things", "magical powers", "treasure hunting", "collecting badges"},
	"history": {"old tools", "how people lived", "old stories", "artifacts", "historical figures"},
	"science": {"rocks and minerals", "animal tracking", "plant identification", "weather patterns", "experiments"},
}

var wildlifeSightings = []string{
	"deer", "rabbit", "blue jay", "squirrel", "hawk", "frog", "butterfly", "salamander",
}

var familyBadgePool = []string{
	"Family Explorer", "Nature Lovers", "Adventure Team",
	"Trail Pioneers", "Wildlife Experts", "Summit Team",
}

var specialFamilyAchievements = []string{
	"Completed 5 trails in one month",
	"Identified 20 different plants",
	"Hiked in 3 different parks",
	"Completed a trail rated difficult",
	"Logged 50 total miles as a family",
}

var challengeNames = []string{"summer_explorer", "waterfall_seekers", "park_explorer", "summit_seekers"}

var challengeUnits = []string{"trails completed", "waterfalls visited", "parks visited", "summits reached"}

var emergencyContactFirst = []string{"Mary", "John", "Sarah", "David", "Elizabeth", "Michael"}

var emergencyContactLast = []string{"Smith", "Jones", "Williams", "Brown", "Taylor"}

var trailNames = []string{
	"Woodland Wonder Trail",
	"Mountain Explorer Path",
	"Riverside Stroll",
	"Eagle Summit Path",
	"Waterfall Explorer Trail",
	"Valley View Loop",
	"Historic Mining Trail",
	"Meadow Explorer Path",
	"Pine Ridge Loop",
	"Hidden Lake Circuit",
}

// Themed badge pools drawn from on completed trips.
var (
	natureBadges = []string{
		"Nature Explorer", "Trail Pioneer", "Wildlife Spotter", "Forest Friend",
		"Bird Watcher", "Plant Identifier", "Rock Collector", "Weather Watcher",
	}
	historyBadges = []string{
		"History Buff", "Time Traveler", "Heritage Seeker", "Cultural Explorer",
		"Pioneer Spirit", "Artifact Finder", "Legend Hunter", "Monument Visitor",
	}
	fantasyBadges = []string{
		"Treasure Hunter", "Dragon Friend", "Fairy Finder", "Wizard's Apprentice",
		"Monster Spotter", "Magic Collector", "Quest Completer", "Fantasy Hero",
	}
	adventureBadges = []string{
		"Summit Seeker", "Trail Master", "Distance Champion", "Early Bird Hiker",
		"All Weather Hiker", "Night Explorer", "Terrain Tackler", "Weekend Warrior",
	}
	tripBadgePools = [][]string{natureBadges, historyBadges, fantasyBadges, adventureBadges}
)

var progressFamilyBadges = []string{
	"Family Explorer", "Team Adventure", "Memory Makers", "Photo Champions",
	"Journal Keepers", "Trail Family", "Outdoor Crew", "Nature Clan",
}

var weatherOptions = []string{"Sunny", "Partly Cloudy", "Overcast", "Light Rain", "Perfect"}

var tripAchievements = []string{
	"Reached the summit",
	"Found a hidden waterfall",
	"Spotted rare wildlife",
	"Completed the entire trail in record time",
	"Discovered a scenic viewpoint",
	"Completed all AR encounters",
	"Solved all trail puzzles",
}

var journalTitles = []string{
	"Our adventure in the woods",
	"Family hike day",
	"Exploring new trails",
	"Magical forest journey",
	"Mountain views and memories",
	"Waterfall discovery",
	"Nature day with the kids",
	"Wildlife spotting hike",
	"Weekend trail adventure",
	"Sunny day exploration",
}

var journalMoods = []string{"Excited", "Happy", "Peaceful", "Adventurous", "Proud"}

var journalAuthors = []string{"Mom", "Dad", "The whole family"}

var trailFeatureMentions = []string{
	"the scenic viewpoints", "the hidden waterfall", "the ancient trees",
	"the wildlife spotting areas", "the creek crossings", "the rocky outcroppings",
	"the meadow of wildflowers", "the historical markers", "the moss-covered stones",
}

var wildlifeMentions = []string{
	"a family of deer", "several colorful birds", "a busy squirrel",
	"butterflies", "rabbits", "a hawk circling above", "frogs by the creek",
	"interesting insects", "animal tracks",
}

var packingMentions = []string{
	"more snacks", "binoculars", "a better camera", "a field guide",
	"walking sticks", "a picnic lunch", "our bird identification book",
}

var learningMentions = []string{
	"local geology", "native plants", "forest ecosystems", "bird migration patterns",
	"historical landmarks", "weather patterns", "animal habitats", "conservation efforts",
}

var unlockableAchievements = []string{
	"First September Hike",
	"Trail Expert Level 2",
	"Wildlife Observer",
	"3-Trail Weekend",
}

var recommendedTrailNames = []string{
	"Sunset Ridge Trail",
	"Crystal Lake Loop",
	"Ancient Forest Path",
	"River Rapids Trail",
}

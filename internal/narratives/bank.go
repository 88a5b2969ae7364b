package narratives

import (
	"trailtail/pkg/ageband"
	"trailtail/pkg/domain"
)

// template is a waypoint story before its band-specific prose is chosen.
type template struct {
	title      string
	waypointID string
	images     []string
	facts      []string
	stories    map[ageband.Band]string
}

var storyBanks = map[domain.Mode][]template{
	domain.ModeHistory: {
		{
			title:      "The Old Forest Bridge",
			waypointID: "wp1",
			images:     []string{"bridge_old_photo.jpg", "bridge_now.jpg"},
			facts: []string{
				"The bridge is over 130 years old",
				"It was renovated in 1950",
				"Local legend says that a time capsule is hidden in one of the pillars",
			},
			stories: map[ageband.Band]string{
				ageband.Younger: "This big bridge was built a long time ago. People used stones from the river to make it. Horses and wagons went across it to take things to sell at the market.",
				ageband.Middle:  "This bridge was built in 1887 by local settlers. They used stones from the nearby river and wood from the old oak trees. Many travelers used this bridge to transport goods to the market in the next town.",
				ageband.Older:   "Constructed in 1887 during the region's settlement period, this bridge represents an important piece of local infrastructure history. Built using native materials including river stone and oak timber, it served as a crucial link for commerce and transportation in the developing region, allowing farmers and merchants to efficiently transport their goods to market.",
			},
		},
		{
			title:      "The Miner's Cabin",
			waypointID: "wp2",
			images:     []string{"cabin.jpg"},
			facts: []string{
				"Gold was discovered here in 1865",
				"Over 500 miners lived in this area",
				"The last mining operation closed in 1920",
			},
			stories: map[ageband.Band]string{
				ageband.Younger: "People called miners lived in cabins like this. They looked for shiny gold in the ground. Some miners found gold and became rich!",
				ageband.Middle:  "A long time ago, miners came to these hills looking for gold. They built small cabins like this one. Life was hard for the miners, but some found enough gold to become rich!",
				ageband.Older:   "During the gold rush of 1865, prospectors flocked to this region seeking fortune. These modest cabins reflect the difficult living conditions these miners endured. While most struggled through harsh conditions with minimal success, historical records indicate that approximately 5% of miners in this area found substantial gold deposits that dramatically changed their fortunes.",
			},
		},
		{
			title:      "The Native American Trail",
			waypointID: "wp3",
			images:     []string{"trail_marker.jpg", "artifacts.jpg"},
			facts: []string{
				"This trail has been used for over 3,000 years",
				"Arrowheads and tools have been found nearby",
				"Several different tribes used this route for trading",
			},
			stories: map[ageband.Band]string{
				ageband.Younger: "Native American people made this path through the trees. They walked on it to visit friends and to find food. They knew all about the plants and animals here.",
				ageband.Middle:  "Long before roads were built, Native American tribes created this path through the forest. They used it to travel between their summer and winter homes, and to trade with neighboring tribes.",
				ageband.Older:   "This trail represents one of the region's oldest transportation routes, established by indigenous peoples over three millennia ago. Archaeological evidence indicates multiple tribes utilized this corridor for seasonal migration, trade, and cultural exchange. The path's strategic route demonstrates sophisticated knowledge of local topography, following natural contours to maximize efficiency and provide access to critical resources.",
			},
		},
		{
			title:      "The Old Schoolhouse",
			waypointID: "wp4",
			images:     []string{"schoolhouse.jpg", "classroom.jpg"},
			facts: []string{
				"This one-room school was built in 1910",
				"Children of all ages learned together in the same classroom",
				"The school closed in 1965 when a larger school was built in town",
			},
			stories: map[ageband.Band]string{
				ageband.Younger: "Children learned in this little school. One teacher taught all the kids. They learned reading, writing, and math. They played games outside at recess.",
				ageband.Middle:  "This small building was once a school where children from ages 5 to 14 all learned in the same room. One teacher taught reading, writing, arithmetic, and history to everyone. The students often walked several miles to get to school each day.",
				ageband.Older:   "This 1910 one-room schoolhouse exemplifies rural education in early 20th century America. A single teacher provided education across eight grade levels, focusing on fundamental subjects while instilling civic values. The building's simple design features large windows for natural lighting, essential before rural electrification reached the area in the 1930s. This educational approach created multi-age learning environments where older students often assisted in teaching younger peers.",
			},
		},
	},
	domain.ModeFantasy: {
		{
			title:      "The Dragon's Bridge",
			waypointID: "wp1",
			images:     []string{"dragon_bridge.jpg"},
			facts: []string{
				"Dragons love to eat berries",
				"This dragon can change colors with her mood",
				"She's been guarding the bridge for 300 years",
			},
			stories: map[ageband.Band]string{
				ageband.Younger: "A friendly dragon named Ember lives under this bridge! She has shiny red scales and a kind smile. She helps kids find their way if they get lost. Can you say hello to Ember?",
				ageband.Middle:  "Legend says that a friendly dragon named Ember lives under this bridge! She protects travelers and helps lost children find their way home. Can you spot her scales shimmering in the water below?",
				ageband.Older:   "According to local legend, this bridge is home to Ember, a guardian dragon who has protected travelers for centuries. Unlike the fearsome dragons of many tales, Ember represents wisdom and guidance. Some say the unusual mineral deposits that cause the stream to shimmer are actually dragon scales that grant protection to those who notice them. What signs of Ember's presence can you detect?",
			},
		},
		{
			title:      "The Wizard's Cabin",
			waypointID: "wp2",
			images:     []string{"wizard_cabin.jpg"},
			facts: []string{
				"The wizard can talk to animals",
				"His favorite spell makes flowers grow instantly",
				"He has a friendly owl named Hootie",
			},
			stories: map[ageband.Band]string{
				ageband.Younger: "Wizard Orion lives in this cabin! He has a pointy hat with stars on it. He makes magic potions that help plants grow big and strong. His owl friend Hootie helps him find special things in the forest.",
				ageband.Middle:  "This magical cabin belongs to Wizard Orion! He uses plants from the forest to make magical potions. Sometimes, at night, you can see colorful lights dancing around his windows as he practices spells.",
				ageband.Older:   "This secluded cabin is said to belong to Orion, a wizard who studies the ancient magic of the natural world. His experiments combine botanical knowledge with arcane arts, creating potions that heal, protect, and reveal hidden truths. The unusual light phenomena occasionally witnessed near the structure might be explained by science, but many prefer the more enchanting explanation of magical experimentation. What mysterious knowledge might be contained in his collection of rare plants and ancient tomes?",
			},
		},
		{
			title:      "The Fairy Meadow",
			waypointID: "wp3",
			images:     []string{"fairy_meadow.jpg"},
			facts: []string{
				"Fairies love the color blue",
				"They use dewdrops as tiny mirrors",
				"They make their houses inside flower buds",
			},
			stories: map[ageband.Band]string{
				ageband.Younger: "Tiny fairies live in this sunny meadow! They hide inside the pretty flowers. The fairies giggle when butterflies tickle their noses. If you're very quiet, you might hear their tiny songs!",
				ageband.Middle:  "This sunny meadow is home to a family of tiny fairies! They're very shy, but they love to hear children laugh. If you're quiet and patient, you might see the flowers twinkle as fairies fly from petal to petal.",
				ageband.Older:   "This vibrant meadow is rumored to be a fairy sanctuary, one of the few remaining places where the veil between our world and theirs grows thin. These enchanted beings are said to be caretakers of the ecosystem, encouraging biodiversity through their magic. The unusual resilience of this meadow's flowers, even during drought, and the abundance of rare butterfly species lend credence to these tales. What natural wonders might actually be evidence of fairy influence?",
			},
		},
		{
			title:      "The Talking Tree",
			waypointID: "wp4",
			images:     []string{"talking_tree.jpg"},
			facts: []string{
				"The tree knows stories from hundreds of years ago",
				"It grows magical acorns once a year",
				"The tree can move its branches to point to hidden treasures",
			},
			stories: map[ageband.Band]string{
				ageband.Younger: "This big tree is very special! It's so old that it learned how to talk! It tells funny stories about animals and whispers secrets when the wind blows. Can you give it a gentle hug?",
				ageband.Middle:  "This ancient oak tree is magical - it can actually talk! If you put your ear against its trunk and close your eyes, you might hear it telling stories about the forest from long ago. The tree knows where squirrels hide their acorns and where the best blackberries grow!",
				ageband.Older:   "This centuries-old oak represents what folklore calls a 'sentinel tree', a natural keeper of histories and witness to countless generations. The unique acoustics created by its hollow sections sometimes produce sounds resembling whispers when the wind passes through specific branches. Throughout history, many cultures believed such trees held wisdom and consciousness. What stories might this living monument tell about the changes it has witnessed in this ecosystem over hundreds of years?",
			},
		},
	},
}

// previewGuidance is the parent-facing summary attached to previews. The
// sensitive-content list is empty by construction; story banks are curated.
var previewGuidance = ParentalGuidance{
	AgeAppropriate:     true,
	EducationalContent: []string{"Local history", "Geography", "Nature"},
	SensitiveContent:   []string{},
	EstimatedDuration:  "30 minutes",
}

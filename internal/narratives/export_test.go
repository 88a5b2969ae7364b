package narratives

// StoryBanks exposes the unexported story bank to the external test package.
var StoryBanks = storyBanks

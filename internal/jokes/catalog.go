package jokes

// defaultJokes is the built-in catalog. It backs the administrative dump and
// serves as a fallback when the remote joke service is unreachable.
var defaultJokes = []string{
	"Why don't scientists trust atoms? Because they make up everything.",
	"I used to hate facial hair, but then it grew on me.",
	"What do you call a fish without eyes? A fsh.",
	"I'm reading a book about anti-gravity. It's impossible to put down.",
	"Why did the scarecrow win an award? Because he was outstanding in his field.",
	"I would tell you a joke about construction, but I'm still working on it.",
	"What do you call cheese that isn't yours? Nacho cheese.",
	"Did you hear about the claustrophobic astronaut? He just needed a little space.",
	"Why don't skeletons fight each other? They don't have the guts.",
	"I ordered a chicken and an egg online. I'll let you know which comes first.",
}

// Catalog returns a copy of the default joke list in its fixed order.
func Catalog() []string {
	catalog := make([]string, len(defaultJokes))
	copy(catalog, defaultJokes)
	return catalog
}

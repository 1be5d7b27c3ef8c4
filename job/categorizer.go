package job

import "strings"

// DefaultCategory is assigned when no category keywords match.
const DefaultCategory = "Miscellaneous"

// categoryOrder fixes the tie-breaking order when several categories match
// with the same keyword count.
var categoryOrder = []string{
	"Politics",
	"Technology",
	"Health",
	"Business",
	"Science",
	"Sports",
}

var categoryKeywords = map[string][]string{
	"Politics":   {"government", "election", "president", "minister", "parliament", "law", "policy", "political", "vote", "senator", "congress"},
	"Technology": {"tech", "technology", "software", "hardware", "internet", "digital", "app", "computer", "device", "robot", "ai"},
	"Health":     {"health", "medical", "medicine", "doctor", "disease", "virus", "hospital", "patient", "treatment", "vaccine", "pandemic"},
	"Business":   {"business", "economy", "market", "finance", "stock", "trade", "company", "investor", "economic", "bank", "money"},
	"Science":    {"science", "research", "scientist", "study", "discovery", "experiment", "space", "planet", "climate", "physics", "biology"},
	"Sports":     {"sport", "football", "soccer", "basketball", "tennis", "player", "team", "game", "match", "olympic", "championship"},
}

// Categorize assigns an article category by counting keyword occurrences in
// the title and description. The category with the most matches wins; ties
// break in categoryOrder; no match at all falls back to DefaultCategory.
func Categorize(title, description string) string {
	tokens := tokenize(title + " " + description)
	if len(tokens) == 0 {
		return DefaultCategory
	}

	counts := make(map[string]int, len(categoryKeywords))
	for _, token := range tokens {
		for category, keywords := range categoryKeywords {
			for _, keyword := range keywords {
				if token == keyword {
					counts[category]++
					break
				}
			}
		}
	}

	best := DefaultCategory
	bestCount := 0
	for _, category := range categoryOrder {
		if counts[category] > bestCount {
			best = category
			bestCount = counts[category]
		}
	}

	return best
}

// tokenize lowercases and splits on non-letter characters.
func tokenize(text string) []string {
	lowered := strings.ToLower(text)
	return strings.FieldsFunc(lowered, func(r rune) bool {
		return !('a' <= r && r <= 'z')
	})
}

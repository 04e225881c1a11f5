// Package content holds the static practice material: cohort word lists,
// memory aids, homophone sets, curated misspellings and the collectible
// reward mappings, plus the selection helpers the challenge flow uses.
package content

import "spellingmaster/internal/models"

// statutoryWords is the Year 5/6 statutory spelling list (100 words) from
// the UK National Curriculum.
var statutoryWords = []string{
	"accommodate", "accompany", "according", "achieve", "aggressive",
	"amateur", "ancient", "apparent", "appreciate", "attached",
	"available", "average", "awkward", "bargain", "bruise",
	"category", "cemetery", "committee", "communicate", "community",
	"competition", "conscience", "conscious", "controversy", "convenience",
	"correspond", "criticise", "curiosity", "definite", "desperate",
	"determined", "develop", "dictionary", "disastrous", "embarrass",
	"environment", "equip", "equipped", "equipment", "especially",
	"exaggerate", "excellent", "existence", "explanation", "familiar",
	"foreign", "forty", "frequently", "government", "guarantee",
	"harass", "hindrance", "identity", "immediate", "immediately",
	"individual", "interfere", "interrupt", "language", "leisure",
	"lightning", "marvellous", "mischievous", "muscle", "necessary",
	"neighbour", "nuisance", "occupy", "occur", "opportunity",
	"parliament", "persuade", "physical", "prejudice", "privilege",
	"profession", "programme", "pronunciation", "queue", "recognise",
	"recommend", "relevant", "restaurant", "rhyme", "rhythm",
	"sacrifice", "secretary", "shoulder", "signature", "sincere",
	"sincerely", "soldier", "stomach", "sufficient", "suggest",
	"symbol", "system", "temperature", "thorough", "twelfth",
	"variety", "vegetable", "vehicle", "yacht",
}

// year2Words is the younger cohort's common exception and pattern words.
var year2Words = []string{
	"afraid", "because", "beautiful", "before", "brother",
	"children", "chimney", "clothes", "could", "everybody",
	"friend", "great", "gnome", "knock", "knight",
	"mother", "morning", "people", "pretty", "should",
	"station", "television", "treasure", "village", "whisper",
	"would", "there", "their", "butterfly", "rainbow",
	"hospital", "animal", "national", "copying", "copied",
	"flies", "babies", "happier", "happiest", "running",
	"clapped", "wrap", "write", "knit", "climb",
}

// Words returns the full word list for a cohort, in curriculum order.
func Words(cohort models.Cohort) []string {
	switch cohort {
	case models.CohortYear2:
		return year2Words
	default:
		return statutoryWords
	}
}

// HasWord reports whether a word belongs to the cohort's list.
func HasWord(cohort models.Cohort, word string) bool {
	for _, w := range Words(cohort) {
		if w == word {
			return true
		}
	}
	return false
}

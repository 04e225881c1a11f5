package content

import "spellingmaster/internal/models"

// External artwork IDs are assigned per cohort from the list position, with
// the trickiest statutory words promoted to the legendary band (IDs 144-151).
const (
	statutoryBaseID = 1
	year2BaseID     = 152
	homophoneBaseID = 201
)

// legendaryWords are the statutory words learners struggle with most. Each
// maps to a fixed legendary artwork ID.
var legendaryWords = map[string]int{
	"accommodate":   144,
	"conscience":    145,
	"mischievous":   146,
	"twelfth":       147,
	"embarrass":     148,
	"yacht":         149,
	"pronunciation": 150,
	"rhythm":        151,
}

var rareWords = map[string]bool{
	"cemetery":   true,
	"definite":   true,
	"desperate":  true,
	"foreign":    true,
	"guarantee":  true,
	"hindrance":  true,
	"necessary":  true,
	"parliament": true,
	"privilege":  true,
	"queue":      true,
	"restaurant": true,
	"sacrifice":  true,
}

var legendarySets = map[string]bool{
	"affect_effect":     true,
	"practice_practise": true,
}

// RewardFor returns the collectible mapping for a mastered item, or false if
// the item is not part of any cohort list.
func RewardFor(identifier string, category models.Category, cohort models.Cohort) (models.RewardMapping, bool) {
	if category == models.CategoryHomophoneSet {
		return homophoneReward(identifier, cohort)
	}
	return wordReward(identifier, cohort)
}

func wordReward(word string, cohort models.Cohort) (models.RewardMapping, bool) {
	words := Words(cohort)
	idx := -1
	for i, w := range words {
		if w == word {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.RewardMapping{}, false
	}

	mapping := models.RewardMapping{
		Identifier: word,
		Category:   models.CategoryWord,
		Cohort:     cohort,
	}

	if cohort == models.CohortYear2 {
		mapping.ExternalID = year2BaseID + idx
		switch {
		case idx%4 == 3:
			mapping.Tier = models.TierRare
		case idx%2 == 1:
			mapping.Tier = models.TierUncommon
		default:
			mapping.Tier = models.TierCommon
		}
		return mapping, true
	}

	if id, ok := legendaryWords[word]; ok {
		mapping.ExternalID = id
		mapping.Tier = models.TierLegendary
		return mapping, true
	}

	mapping.ExternalID = statutoryBaseID + idx
	switch {
	case rareWords[word]:
		mapping.Tier = models.TierRare
	case idx%2 == 1:
		mapping.Tier = models.TierUncommon
	default:
		mapping.Tier = models.TierCommon
	}
	return mapping, true
}

func homophoneReward(setID string, cohort models.Cohort) (models.RewardMapping, bool) {
	idx := -1
	for i, s := range homophoneSets {
		if s.ID == setID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.RewardMapping{}, false
	}

	tier := models.TierRare
	if legendarySets[setID] {
		tier = models.TierLegendary
	}
	return models.RewardMapping{
		Identifier: setID,
		Category:   models.CategoryHomophoneSet,
		Cohort:     cohort,
		ExternalID: homophoneBaseID + idx,
		Tier:       tier,
	}, true
}

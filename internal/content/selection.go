package content

import (
	"math/rand"

	"github.com/samber/lo"

	"spellingmaster/internal/models"
)

// WeightFunc returns the selection weight for an identifier. Zero or
// negative weights exclude the item entirely.
type WeightFunc func(identifier string) int

// PickWords selects up to n distinct words from the cohort list, weighted by
// the caller's function. Items the learner struggles with get a higher
// weight upstream so they come around more often.
func PickWords(cohort models.Cohort, n int, weight WeightFunc) []string {
	type candidate struct {
		word   string
		weight int
	}

	pool := lo.FilterMap(Words(cohort), func(w string, _ int) (candidate, bool) {
		wt := weight(w)
		return candidate{word: w, weight: wt}, wt > 0
	})

	if n > len(pool) {
		n = len(pool)
	}

	picked := make([]string, 0, n)
	for len(picked) < n && len(pool) > 0 {
		total := 0
		for _, c := range pool {
			total += c.weight
		}
		roll := rand.Intn(total)
		for i, c := range pool {
			roll -= c.weight
			if roll < 0 {
				picked = append(picked, c.word)
				pool = append(pool[:i], pool[i+1:]...)
				break
			}
		}
	}
	return picked
}

// Question is one fill-the-gap homophone question with shuffled choices.
type Question struct {
	SetID   string   `json:"setId"`
	Text    string   `json:"text"`
	Answer  string   `json:"answer"`
	Hint    string   `json:"hint"`
	Choices []string `json:"choices"`
}

// PickQuestions selects up to n homophone questions, weighted per set.
// Sentences within a set are dealt in order and a set drops out of the pool
// once exhausted, so a round never repeats a sentence.
func PickQuestions(n int, weight WeightFunc) []Question {
	type candidate struct {
		set    HomophoneSet
		weight int
	}

	pool := lo.FilterMap(Sets(), func(s HomophoneSet, _ int) (candidate, bool) {
		wt := weight(s.ID)
		return candidate{set: s, weight: wt}, wt > 0 && len(s.Sentences) > 0
	})

	var questions []Question
	used := map[string]int{}
	for len(questions) < n && len(pool) > 0 {
		total := 0
		for _, c := range pool {
			total += c.weight
		}
		roll := rand.Intn(total)
		for i, c := range pool {
			roll -= c.weight
			if roll < 0 {
				s := c.set
				sentence := s.Sentences[used[s.ID]%len(s.Sentences)]
				used[s.ID]++
				questions = append(questions, Question{
					SetID:   s.ID,
					Text:    sentence.Text,
					Answer:  sentence.Answer,
					Hint:    sentence.Hint,
					Choices: shuffledMembers(s),
				})
				if used[s.ID] >= len(s.Sentences) {
					pool = append(pool[:i], pool[i+1:]...)
				}
				break
			}
		}
	}
	return questions
}

// Choices builds the multiple-choice options for a spelling word: the
// correct spelling plus distractors, shuffled.
func Choices(word string, distractorCount int) []string {
	choices := append([]string{word}, Distractors(word, distractorCount)...)
	rand.Shuffle(len(choices), func(i, j int) {
		choices[i], choices[j] = choices[j], choices[i]
	})
	return choices
}

func shuffledMembers(s HomophoneSet) []string {
	members := s.Members()
	rand.Shuffle(len(members), func(i, j int) {
		members[i], members[j] = members[j], members[i]
	})
	return members
}

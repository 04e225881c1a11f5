package service

import (
	"spellingmaster/internal/content"
	"spellingmaster/internal/models"
)

// ItemView is the client-facing shape of a question, without the answer.
type ItemView struct {
	Identifier string          `json:"identifier"`
	Category   models.Category `json:"category"`
	Prompt     string          `json:"prompt,omitempty"`
	Hint       string          `json:"hint,omitempty"`
	Choices    []string        `json:"choices,omitempty"`
}

// RunState is the full client-facing view of a challenge run.
type RunState struct {
	Token     string             `json:"token"`
	Phase     Phase              `json:"phase"`
	Type      models.SessionType `json:"type"`
	Cohort    models.Cohort      `json:"cohort"`
	Position  int                `json:"position"` // 1-based within the current phase
	Total     int                `json:"total"`
	Attempted int                `json:"attempted"`
	Correct   int                `json:"correct"`
	Remaining int                `json:"remaining"` // items still in play after the quiz

	Current  *ItemView            `json:"current,omitempty"`
	Missed   []string             `json:"missed,omitempty"`
	Released []string             `json:"released,omitempty"`
	Step     string               `json:"step,omitempty"` // learning sub-step
	Mnemonic *content.Mnemonic    `json:"mnemonic,omitempty"`
	Study    *content.HomophoneSet `json:"study,omitempty"`

	NewAchievements []models.AchievementDefinition `json:"newAchievements,omitempty"`
	NewRewards      []models.RewardGrant           `json:"newRewards,omitempty"`
}

// stateOf builds the client view of a run. Caller holds the lock except
// during Start, where the run is not yet shared.
func (s *ChallengeService) stateOf(r *run) *RunState {
	state := &RunState{
		Token:     r.token,
		Phase:     r.phase,
		Type:      r.kind,
		Cohort:    r.cohort,
		Attempted: r.attempted,
		Correct:   r.correct,
	}

	for _, e := range r.missed {
		if entryActive(e) {
			state.Remaining++
		}
		if e.released {
			state.Released = append(state.Released, e.item.Identifier)
		}
	}

	switch r.phase {
	case PhaseQuiz:
		state.Total = len(r.items)
		state.Position = r.index + 1
		if r.index < len(r.items) {
			state.Current = viewOf(r.items[r.index])
		}

	case PhaseResults:
		state.Total = len(r.items)
		state.Position = len(r.items)
		for _, e := range r.missed {
			state.Missed = append(state.Missed, e.item.Identifier)
		}

	case PhaseLearning:
		state.Total = len(r.missed)
		state.Position = r.learnPos + 1
		state.Step = r.learnStep
		entry := r.missed[r.learnPos]
		state.Current = viewOf(entry.item)
		if r.learnStep == StepStudy {
			if entry.item.Category == models.CategoryWord {
				m := content.MnemonicFor(r.cohort, entry.item.Identifier)
				state.Mnemonic = &m
			} else if set, ok := content.SetByID(entry.item.Identifier); ok {
				state.Study = &set
			}
		}

	case PhaseRetest:
		state.Total = len(r.missed)
		state.Position = r.retestPos + 1
		if r.retestItem != nil {
			state.Current = viewOf(*r.retestItem)
		}

	case PhaseComplete:
		state.Total = len(r.items)
		state.Position = len(r.items)
		state.NewAchievements = r.newAchievements
		state.NewRewards = r.newRewards
	}

	return state
}

func viewOf(item QuizItem) *ItemView {
	return &ItemView{
		Identifier: item.Identifier,
		Category:   item.Category,
		Prompt:     item.Prompt,
		Hint:       item.Hint,
		Choices:    item.Choices,
	}
}

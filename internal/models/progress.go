package models

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Category distinguishes the two kinds of practiced items. Single words are
// tracked individually; commonly-confused words (homophones) are tracked as
// a set and mastered as a unit.
type Category string

const (
	CategoryWord         Category = "word"
	CategoryHomophoneSet Category = "homophone_set"
)

// ParseCategory converts a string tag into a Category.
func ParseCategory(s string) (Category, error) {
	switch Category(strings.ToLower(strings.TrimSpace(s))) {
	case CategoryWord:
		return CategoryWord, nil
	case CategoryHomophoneSet:
		return CategoryHomophoneSet, nil
	default:
		return "", fmt.Errorf("unknown category: %q", s)
	}
}

// Cohort is a named age/difficulty tier of content. Each cohort has its own
// word list and its progress and rewards are tracked independently.
type Cohort string

const (
	CohortYear2 Cohort = "year2"
	CohortYear6 Cohort = "year6"
)

// ParseCohort converts a string tag into a Cohort. An empty string defaults
// to the Year 5/6 statutory list.
func ParseCohort(s string) (Cohort, error) {
	switch Cohort(strings.ToLower(strings.TrimSpace(s))) {
	case CohortYear2:
		return CohortYear2, nil
	case CohortYear6, "":
		return CohortYear6, nil
	default:
		return "", fmt.Errorf("unknown cohort: %q", s)
	}
}

// MasteryStatus is the derived classification of a progress record. It is
// always computed from the correct/incorrect counters by mastery.Classify
// and never accepted as external input.
type MasteryStatus string

const (
	StatusNotTried  MasteryStatus = "not_tried"
	StatusLearning  MasteryStatus = "learning"
	StatusNeedsWork MasteryStatus = "needs_work"
	StatusMastered  MasteryStatus = "mastered"
)

// ParseMasteryStatus converts a string tag into a MasteryStatus.
func ParseMasteryStatus(s string) (MasteryStatus, error) {
	switch MasteryStatus(strings.ToLower(strings.TrimSpace(s))) {
	case StatusNotTried:
		return StatusNotTried, nil
	case StatusLearning:
		return StatusLearning, nil
	case StatusNeedsWork:
		return StatusNeedsWork, nil
	case StatusMastered:
		return StatusMastered, nil
	default:
		return "", fmt.Errorf("unknown mastery status: %q", s)
	}
}

// ErrEmptyIdentifier is returned when an attempt is recorded with no item
// identifier.
var ErrEmptyIdentifier = errors.New("identifier must not be empty")

// Progress is one mutable record per practiced item, keyed by
// (identifier, category, cohort). The two counters are the source of truth;
// Status is recomputed from them on every write.
type Progress struct {
	ID             int64         `json:"id"`
	Identifier     string        `json:"identifier"`
	Category       Category      `json:"category"`
	Cohort         Cohort        `json:"cohort"`
	CorrectCount   int           `json:"correctCount"`
	IncorrectCount int           `json:"incorrectCount"`
	LastAttemptAt  *time.Time    `json:"lastAttemptAt,omitempty"`
	Status         MasteryStatus `json:"status"`
}

// TotalAttempts returns the number of recorded attempts for this item.
func (p *Progress) TotalAttempts() int {
	return p.CorrectCount + p.IncorrectCount
}

// Accuracy returns the fraction of correct attempts, or 0 if the item has
// never been tried.
func (p *Progress) Accuracy() float64 {
	total := p.TotalAttempts()
	if total == 0 {
		return 0
	}
	return float64(p.CorrectCount) / float64(total)
}

// Validate checks record invariants before persistence.
func (p *Progress) Validate() error {
	if strings.TrimSpace(p.Identifier) == "" {
		return ErrEmptyIdentifier
	}
	if p.CorrectCount < 0 || p.IncorrectCount < 0 {
		return fmt.Errorf("counts must be non-negative (correct=%d, incorrect=%d)", p.CorrectCount, p.IncorrectCount)
	}
	if _, err := ParseCategory(string(p.Category)); err != nil {
		return err
	}
	if _, err := ParseCohort(string(p.Cohort)); err != nil {
		return err
	}
	return nil
}

package service

import (
	"fmt"
	"time"

	"spellingmaster/internal/content"
	"spellingmaster/internal/mastery"
	"spellingmaster/internal/models"
	"spellingmaster/internal/repository"
)

// AttemptResult reports the state of an item before and after one recorded
// attempt. Previous is a synthesized not-tried record on the first attempt,
// so callers can always compare statuses to detect transitions.
type AttemptResult struct {
	Previous models.Progress
	Current  models.Progress
}

// NewlyMastered reports whether this attempt moved the item into mastered.
func (r AttemptResult) NewlyMastered() bool {
	return r.Current.Status == models.StatusMastered && r.Previous.Status != models.StatusMastered
}

// ProgressService owns per-item progress records: recording attempts,
// deriving mastery status and serving progress views.
type ProgressService struct {
	progress *repository.ProgressRepository
	sessions *repository.SessionRepository
	streaks  *StreakService
	resetter *repository.Resetter
}

// NewProgressService creates a progress service.
func NewProgressService(
	progress *repository.ProgressRepository,
	sessions *repository.SessionRepository,
	streaks *StreakService,
	resetter *repository.Resetter,
) *ProgressService {
	return &ProgressService{
		progress: progress,
		sessions: sessions,
		streaks:  streaks,
		resetter: resetter,
	}
}

// RecordAttempt applies one attempt outcome to an item's counters, recomputes
// its mastery status and touches the daily streak. The counters only ever
// grow; status is always derived, never set directly.
func (s *ProgressService) RecordAttempt(identifier string, category models.Category, cohort models.Cohort, correct bool) (*AttemptResult, error) {
	existing, err := s.progress.GetByKey(identifier, category, cohort)
	if err != nil {
		return nil, fmt.Errorf("failed to load progress for %q: %w", identifier, err)
	}

	var result AttemptResult
	now := time.Now()

	if existing == nil {
		result.Previous = notTriedRecord(identifier, category, cohort)
		record := result.Previous
		applyAttempt(&record, correct, now)
		inserted, err := s.progress.Insert(&record)
		if err != nil {
			return nil, err
		}
		result.Current = *inserted
	} else {
		result.Previous = *existing
		record := *existing
		applyAttempt(&record, correct, now)
		if err := s.progress.Update(&record); err != nil {
			return nil, err
		}
		result.Current = record
	}

	if _, err := s.streaks.Touch(); err != nil {
		return nil, err
	}
	return &result, nil
}

func applyAttempt(p *models.Progress, correct bool, now time.Time) {
	if correct {
		p.CorrectCount++
	} else {
		p.IncorrectCount++
	}
	p.LastAttemptAt = &now
	p.Status = mastery.Classify(p.CorrectCount, p.IncorrectCount)
}

// Get returns the progress record for an item, synthesizing a not-tried
// record when no attempts exist.
func (s *ProgressService) Get(identifier string, category models.Category, cohort models.Cohort) (*models.Progress, error) {
	p, err := s.progress.GetByKey(identifier, category, cohort)
	if err != nil {
		return nil, err
	}
	if p == nil {
		record := notTriedRecord(identifier, category, cohort)
		return &record, nil
	}
	return p, nil
}

// Overview returns one record per item in the cohort: persisted records for
// attempted items, synthesized not-tried records for the rest.
func (s *ProgressService) Overview(cohort models.Cohort) ([]models.Progress, error) {
	records, err := s.progress.All(cohort)
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(records))
	for _, p := range records {
		seen[string(p.Category)+":"+p.Identifier] = true
	}

	for _, w := range content.Words(cohort) {
		if !seen[string(models.CategoryWord)+":"+w] {
			records = append(records, notTriedRecord(w, models.CategoryWord, cohort))
		}
	}
	for _, set := range content.Sets() {
		if !seen[string(models.CategoryHomophoneSet)+":"+set.ID] {
			records = append(records, notTriedRecord(set.ID, models.CategoryHomophoneSet, cohort))
		}
	}
	return records, nil
}

// WithStatus returns the cohort's items currently in the given status.
// Not-tried items have no rows, so they are derived from the content lists.
func (s *ProgressService) WithStatus(status models.MasteryStatus, cohort models.Cohort) ([]models.Progress, error) {
	if status != models.StatusNotTried {
		return s.progress.ByStatus(status, cohort)
	}

	all, err := s.Overview(cohort)
	if err != nil {
		return nil, err
	}
	var untried []models.Progress
	for _, p := range all {
		if p.Status == models.StatusNotTried {
			untried = append(untried, p)
		}
	}
	return untried, nil
}

// SelectionWeight is the practice-selection weight for a mastery status.
// Struggling items come around three times as often as mastered ones.
func SelectionWeight(status models.MasteryStatus) int {
	switch status {
	case models.StatusNeedsWork:
		return 3
	case models.StatusNotTried, models.StatusLearning:
		return 2
	default:
		return 1
	}
}

// WeightsFor builds a content.WeightFunc over the cohort's current records.
func (s *ProgressService) WeightsFor(category models.Category, cohort models.Cohort) (content.WeightFunc, error) {
	records, err := s.progress.All(cohort)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.MasteryStatus, len(records))
	for _, p := range records {
		if p.Category == category {
			byID[p.Identifier] = p.Status
		}
	}
	return func(identifier string) int {
		status, ok := byID[identifier]
		if !ok {
			status = models.StatusNotTried
		}
		return SelectionWeight(status)
	}, nil
}

// Statistics aggregates the learner's overall numbers for the dashboard.
func (s *ProgressService) Statistics() (*models.Statistics, error) {
	stats := &models.Statistics{}

	totalItems := len(content.Words(models.CohortYear6)) +
		len(content.Words(models.CohortYear2)) +
		len(content.Sets())

	for _, cohort := range []models.Cohort{models.CohortYear6, models.CohortYear2} {
		records, err := s.progress.All(cohort)
		if err != nil {
			return nil, err
		}
		for _, p := range records {
			switch p.Status {
			case models.StatusMastered:
				stats.Mastered++
			case models.StatusLearning:
				stats.Learning++
			case models.StatusNeedsWork:
				stats.NeedsWork++
			}
			stats.TotalAttempts += p.TotalAttempts()
			stats.TotalCorrect += p.CorrectCount
		}
	}
	stats.NotTried = totalItems - stats.Mastered - stats.Learning - stats.NeedsWork
	if stats.NotTried < 0 {
		stats.NotTried = 0
	}
	if stats.TotalAttempts > 0 {
		stats.Accuracy = stats.TotalCorrect * 100 / stats.TotalAttempts
	}

	streak, err := s.streaks.Get()
	if err != nil {
		return nil, err
	}
	stats.CurrentStreak = streak.CurrentStreak
	stats.LongestStreak = streak.LongestStreak

	completed, err := s.sessions.CountCompleted()
	if err != nil {
		return nil, err
	}
	stats.TotalSessions = completed

	return stats, nil
}

// ResetAll wipes every piece of learner data: progress, sessions, streaks,
// achievements, rewards and settings. There is no undo.
func (s *ProgressService) ResetAll() error {
	return s.resetter.ResetAll()
}

func notTriedRecord(identifier string, category models.Category, cohort models.Cohort) models.Progress {
	return models.Progress{
		Identifier: identifier,
		Category:   category,
		Cohort:     cohort,
		Status:     models.StatusNotTried,
	}
}

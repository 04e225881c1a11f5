package service

import (
	"fmt"

	"spellingmaster/internal/models"
	"spellingmaster/internal/repository"
)

// Special achievement IDs, unlocked by events rather than thresholds.
const (
	AchievementPerfectRound  = "perfect_round"
	AchievementQuickLearner  = "quick_learner"
	AchievementDedicated     = "dedicated"
	AchievementHomophoneHero = "homophone_hero"
)

// definitions is the full static badge catalogue, in display order.
var definitions = []models.AchievementDefinition{
	{ID: "first_word", Name: "First Steps", Description: "Master your first word", Icon: "🌟", Category: models.AchievementWords, Requirement: 1},
	{ID: "ten_words", Name: "Word Collector", Description: "Master 10 words", Icon: "📚", Category: models.AchievementWords, Requirement: 10},
	{ID: "twenty_five_words", Name: "Word Wizard", Description: "Master 25 words", Icon: "🧙", Category: models.AchievementWords, Requirement: 25},
	{ID: "fifty_words", Name: "Spelling Star", Description: "Master 50 words", Icon: "⭐", Category: models.AchievementWords, Requirement: 50},
	{ID: "seventy_five_words", Name: "Word Master", Description: "Master 75 words", Icon: "🏆", Category: models.AchievementWords, Requirement: 75},
	{ID: "hundred_words", Name: "Spelling Champion", Description: "Master 100 words", Icon: "👑", Category: models.AchievementWords, Requirement: 100},
	{ID: "streak_3", Name: "On a Roll", Description: "Practice 3 days in a row", Icon: "🔥", Category: models.AchievementStreak, Requirement: 3},
	{ID: "streak_7", Name: "Week Warrior", Description: "Practice 7 days in a row", Icon: "💪", Category: models.AchievementStreak, Requirement: 7},
	{ID: "streak_14", Name: "Fortnight Fighter", Description: "Practice 14 days in a row", Icon: "🚀", Category: models.AchievementStreak, Requirement: 14},
	{ID: "streak_30", Name: "Monthly Marvel", Description: "Practice 30 days in a row", Icon: "🌙", Category: models.AchievementStreak, Requirement: 30},
	{ID: AchievementPerfectRound, Name: "Perfect Round", Description: "Get every word right in one round", Icon: "💯", Category: models.AchievementSpecial},
	{ID: AchievementQuickLearner, Name: "Quick Learner", Description: "Complete 5 practice rounds", Icon: "⚡", Category: models.AchievementSpecial, Requirement: 5},
	{ID: AchievementDedicated, Name: "Dedicated", Description: "Complete 20 practice rounds", Icon: "🎯", Category: models.AchievementSpecial, Requirement: 20},
	{ID: AchievementHomophoneHero, Name: "Homophone Hero", Description: "Get 20 homophone answers right", Icon: "🦸", Category: models.AchievementSpecial, Requirement: 20},
}

// AchievementService evaluates badge thresholds against learner aggregates
// and maintains the append-only unlock set.
type AchievementService struct {
	achievements *repository.AchievementRepository
	progress     *repository.ProgressRepository
	sessions     *repository.SessionRepository
	streaks      *StreakService
}

// NewAchievementService creates an achievement service.
func NewAchievementService(
	achievements *repository.AchievementRepository,
	progress *repository.ProgressRepository,
	sessions *repository.SessionRepository,
	streaks *StreakService,
) *AchievementService {
	return &AchievementService{
		achievements: achievements,
		progress:     progress,
		sessions:     sessions,
		streaks:      streaks,
	}
}

// Definitions returns the static badge catalogue.
func (s *AchievementService) Definitions() []models.AchievementDefinition {
	return definitions
}

// Evaluate scans all threshold achievements against the current aggregates
// and unlocks any newly met ones. Idempotent: already-unlocked badges are
// never returned again. Call after every attempt batch.
func (s *AchievementService) Evaluate() ([]models.AchievementDefinition, error) {
	masteredWords, err := s.progress.CountByStatus(models.StatusMastered)
	if err != nil {
		return nil, fmt.Errorf("failed to count mastered items: %w", err)
	}
	streak, err := s.streaks.Get()
	if err != nil {
		return nil, err
	}
	// streak badges are for the best run ever, even if the streak has lapsed
	bestStreak := streak.CurrentStreak
	if streak.LongestStreak > bestStreak {
		bestStreak = streak.LongestStreak
	}
	completedSessions, err := s.sessions.CountCompleted()
	if err != nil {
		return nil, err
	}
	homophoneCorrect, err := s.progress.TotalCorrectByCategory(models.CategoryHomophoneSet)
	if err != nil {
		return nil, err
	}

	var newly []models.AchievementDefinition
	for _, def := range definitions {
		met := false
		switch {
		case def.Category == models.AchievementWords:
			met = masteredWords >= def.Requirement
		case def.Category == models.AchievementStreak:
			met = bestStreak >= def.Requirement
		case def.ID == AchievementQuickLearner, def.ID == AchievementDedicated:
			met = completedSessions >= def.Requirement
		case def.ID == AchievementHomophoneHero:
			met = homophoneCorrect >= def.Requirement
		}
		if !met {
			continue
		}

		unlocked, err := s.achievements.Unlock(def.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to unlock %s: %w", def.ID, err)
		}
		if unlocked {
			newly = append(newly, def)
		}
	}
	return newly, nil
}

// UnlockSpecial unlocks an event-driven achievement by ID. Returns the
// definition only when the unlock is new.
func (s *AchievementService) UnlockSpecial(id string) (*models.AchievementDefinition, error) {
	def, ok := definitionByID(id)
	if !ok {
		return nil, fmt.Errorf("unknown achievement: %q", id)
	}
	unlocked, err := s.achievements.Unlock(id)
	if err != nil {
		return nil, err
	}
	if !unlocked {
		return nil, nil
	}
	return &def, nil
}

// WithStatus returns every definition paired with its unlock state, in
// catalogue order.
func (s *AchievementService) WithStatus() ([]models.AchievementStatus, error) {
	unlocks, err := s.achievements.All()
	if err != nil {
		return nil, err
	}
	byID := make(map[string]models.AchievementUnlock, len(unlocks))
	for _, u := range unlocks {
		byID[u.AchievementID] = u
	}

	statuses := make([]models.AchievementStatus, 0, len(definitions))
	for _, def := range definitions {
		status := models.AchievementStatus{AchievementDefinition: def}
		if u, ok := byID[def.ID]; ok {
			status.Unlocked = true
			unlockedAt := u.UnlockedAt
			status.UnlockedAt = &unlockedAt
		}
		statuses = append(statuses, status)
	}
	return statuses, nil
}

// TotalStars returns the number of unlocked achievements.
func (s *AchievementService) TotalStars() (int, error) {
	unlocks, err := s.achievements.All()
	if err != nil {
		return 0, err
	}
	return len(unlocks), nil
}

func definitionByID(id string) (models.AchievementDefinition, bool) {
	for _, def := range definitions {
		if def.ID == id {
			return def, true
		}
	}
	return models.AchievementDefinition{}, false
}

// Package mastery holds the single source of truth for whether an item is
// learned. Everything downstream that branches on mastery status derives it
// from Classify.
package mastery

import "spellingmaster/internal/models"

const (
	// MinAttempts is the minimum sample size before an item can be
	// certified mastered. Prevents a single lucky guess from counting.
	MinAttempts = 5

	// MasteryRatio is the minimum fraction of correct attempts for mastery.
	MasteryRatio = 0.90

	// NeedsWorkRatio is the ceiling below which an item needs work.
	NeedsWorkRatio = 0.50
)

// Classify maps cumulative (correct, incorrect) counts to a mastery status.
// The mastered check runs before the needs-work check so that a learner with
// few attempts and a temporarily low ratio lands in needs_work rather than
// being certified early.
func Classify(correct, incorrect int) models.MasteryStatus {
	total := correct + incorrect
	if total == 0 {
		return models.StatusNotTried
	}

	ratio := float64(correct) / float64(total)

	if total >= MinAttempts && ratio >= MasteryRatio {
		return models.StatusMastered
	}

	if ratio < NeedsWorkRatio {
		return models.StatusNeedsWork
	}

	return models.StatusLearning
}

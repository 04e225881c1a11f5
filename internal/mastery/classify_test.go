package mastery

import (
	"testing"

	"spellingmaster/internal/models"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		incorrect int
		want      models.MasteryStatus
	}{
		{name: "never tried", correct: 0, incorrect: 0, want: models.StatusNotTried},
		{name: "one correct", correct: 1, incorrect: 0, want: models.StatusLearning},
		{name: "one incorrect", correct: 0, incorrect: 1, want: models.StatusNeedsWork},
		{name: "three incorrect", correct: 0, incorrect: 3, want: models.StatusNeedsWork},
		{name: "below half", correct: 2, incorrect: 3, want: models.StatusNeedsWork},
		{name: "exactly half", correct: 2, incorrect: 2, want: models.StatusLearning},
		{name: "four of five correct", correct: 4, incorrect: 1, want: models.StatusLearning},
		{name: "perfect but small sample", correct: 4, incorrect: 0, want: models.StatusLearning},
		{name: "minimum mastery", correct: 5, incorrect: 0, want: models.StatusMastered},
		{name: "nine of ten", correct: 9, incorrect: 1, want: models.StatusMastered},
		{name: "just below mastery ratio", correct: 8, incorrect: 1, want: models.StatusLearning},
		{name: "large sample mastered", correct: 95, incorrect: 5, want: models.StatusMastered},
		{name: "large sample slipping", correct: 89, incorrect: 11, want: models.StatusLearning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.correct, tt.incorrect)
			if got != tt.want {
				t.Errorf("Classify(%d, %d) = %v, want %v", tt.correct, tt.incorrect, got, tt.want)
			}
		})
	}
}

// TestClassifyZeroTotalIffNotTried checks that not_tried is returned exactly
// when there are no attempts at all.
func TestClassifyZeroTotalIffNotTried(t *testing.T) {
	for correct := 0; correct <= 20; correct++ {
		for incorrect := 0; incorrect <= 20; incorrect++ {
			got := Classify(correct, incorrect)
			if (correct+incorrect == 0) != (got == models.StatusNotTried) {
				t.Errorf("Classify(%d, %d) = %v: not_tried must coincide with zero attempts", correct, incorrect, got)
			}
		}
	}
}

// TestClassifyMasteryRequiresBothConditions sweeps counts around the
// mastery boundary: sample size and ratio must both hold.
func TestClassifyMasteryRequiresBothConditions(t *testing.T) {
	for correct := 0; correct <= 30; correct++ {
		for incorrect := 0; incorrect <= 30; incorrect++ {
			total := correct + incorrect
			if total == 0 {
				continue
			}
			ratio := float64(correct) / float64(total)
			got := Classify(correct, incorrect)
			wantMastered := total >= MinAttempts && ratio >= MasteryRatio
			if wantMastered != (got == models.StatusMastered) {
				t.Errorf("Classify(%d, %d) = %v, mastered should be %v", correct, incorrect, got, wantMastered)
			}
		}
	}
}

func TestClassifyIsDeterministic(t *testing.T) {
	for i := 0; i < 100; i++ {
		if Classify(9, 1) != models.StatusMastered {
			t.Fatal("Classify must be deterministic")
		}
	}
}

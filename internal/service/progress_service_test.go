package service

import (
	"testing"

	"spellingmaster/internal/content"
	"spellingmaster/internal/models"
)

func TestRecordAttemptFirstTime(t *testing.T) {
	env := newTestEnv(t)

	result, err := env.progress.RecordAttempt("rhythm", models.CategoryWord, models.CohortYear6, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Previous.Status != models.StatusNotTried {
		t.Errorf("previous status = %s, want not_tried", result.Previous.Status)
	}
	if result.Current.Status != models.StatusLearning {
		t.Errorf("current status = %s, want learning", result.Current.Status)
	}
	if result.Current.CorrectCount != 1 || result.Current.IncorrectCount != 0 {
		t.Errorf("counts = %d/%d, want 1/0", result.Current.CorrectCount, result.Current.IncorrectCount)
	}
	if result.Current.LastAttemptAt == nil {
		t.Error("last attempt timestamp not set")
	}
}

func TestRecordAttemptCountersOnlyGrow(t *testing.T) {
	env := newTestEnv(t)

	outcomes := []bool{true, false, true, true}
	var last *AttemptResult
	for _, correct := range outcomes {
		var err error
		last, err = env.progress.RecordAttempt("queue", models.CategoryWord, models.CohortYear6, correct)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if last.Current.CorrectCount != 3 || last.Current.IncorrectCount != 1 {
		t.Errorf("counts = %d/%d, want 3/1", last.Current.CorrectCount, last.Current.IncorrectCount)
	}
}

func TestRecordAttemptMasteryTransition(t *testing.T) {
	env := newTestEnv(t)

	// 9 correct and 1 incorrect crosses both mastery thresholds
	env.progress.RecordAttempt("forty", models.CategoryWord, models.CohortYear6, false)
	var last *AttemptResult
	for i := 0; i < 9; i++ {
		var err error
		last, err = env.progress.RecordAttempt("forty", models.CategoryWord, models.CohortYear6, true)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	}
	if last.Current.Status != models.StatusMastered {
		t.Errorf("status = %s, want mastered", last.Current.Status)
	}
	if !last.NewlyMastered() {
		t.Error("expected the final attempt to report a fresh mastery transition")
	}

	// another correct attempt keeps mastered but is not a new transition
	again, err := env.progress.RecordAttempt("forty", models.CategoryWord, models.CohortYear6, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if again.NewlyMastered() {
		t.Error("repeat mastered attempt should not be a new transition")
	}
}

func TestRecordAttemptTouchesStreak(t *testing.T) {
	env := newTestEnv(t)
	env.streaks.now = fixedClock("2026-03-01")

	env.progress.RecordAttempt("queue", models.CategoryWord, models.CohortYear6, true)
	streak, err := env.streaks.Get()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if streak.CurrentStreak != 1 {
		t.Errorf("current streak = %d, want 1", streak.CurrentStreak)
	}
}

func TestRecordAttemptEmptyIdentifier(t *testing.T) {
	env := newTestEnv(t)

	if _, err := env.progress.RecordAttempt("  ", models.CategoryWord, models.CohortYear6, true); err == nil {
		t.Fatal("expected error for blank identifier")
	}
}

func TestGetSynthesizesNotTried(t *testing.T) {
	env := newTestEnv(t)

	p, err := env.progress.Get("yacht", models.CategoryWord, models.CohortYear6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Status != models.StatusNotTried || p.TotalAttempts() != 0 {
		t.Errorf("expected a fresh not_tried record, got %+v", p)
	}
}

func TestOverviewCoversWholeCohort(t *testing.T) {
	env := newTestEnv(t)

	env.progress.RecordAttempt("rhythm", models.CategoryWord, models.CohortYear6, true)

	records, err := env.progress.Overview(models.CohortYear6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := len(content.Words(models.CohortYear6)) + len(content.Sets())
	if len(records) != want {
		t.Errorf("overview has %d records, want %d", len(records), want)
	}

	tried := 0
	for _, p := range records {
		if p.Status != models.StatusNotTried {
			tried++
		}
	}
	if tried != 1 {
		t.Errorf("expected exactly 1 attempted record, got %d", tried)
	}
}

func TestWithStatusNotTried(t *testing.T) {
	env := newTestEnv(t)

	env.progress.RecordAttempt("rhythm", models.CategoryWord, models.CohortYear6, true)

	untried, err := env.progress.WithStatus(models.StatusNotTried, models.CohortYear6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := len(content.Words(models.CohortYear6)) + len(content.Sets()) - 1
	if len(untried) != want {
		t.Errorf("got %d not_tried records, want %d", len(untried), want)
	}
	for _, p := range untried {
		if p.Identifier == "rhythm" {
			t.Error("attempted word still listed as not_tried")
		}
	}
}

func TestSelectionWeight(t *testing.T) {
	tests := []struct {
		status models.MasteryStatus
		want   int
	}{
		{models.StatusNeedsWork, 3},
		{models.StatusNotTried, 2},
		{models.StatusLearning, 2},
		{models.StatusMastered, 1},
	}
	for _, tt := range tests {
		if got := SelectionWeight(tt.status); got != tt.want {
			t.Errorf("SelectionWeight(%s) = %d, want %d", tt.status, got, tt.want)
		}
	}
}

func TestStatistics(t *testing.T) {
	env := newTestEnv(t)

	env.progress.RecordAttempt("queue", models.CategoryWord, models.CohortYear6, true)
	env.progress.RecordAttempt("queue", models.CategoryWord, models.CohortYear6, false)
	env.progress.RecordAttempt("because", models.CategoryWord, models.CohortYear2, true)

	stats, err := env.progress.Statistics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.Learning != 2 {
		t.Errorf("learning = %d, want 2", stats.Learning)
	}
	if stats.TotalAttempts != 3 || stats.TotalCorrect != 2 {
		t.Errorf("attempts = %d/%d, want 3/2", stats.TotalCorrect, stats.TotalAttempts)
	}
	if stats.Accuracy != 66 {
		t.Errorf("accuracy = %d, want 66", stats.Accuracy)
	}
	wantUntried := len(content.Words(models.CohortYear6)) + len(content.Words(models.CohortYear2)) + len(content.Sets()) - 2
	if stats.NotTried != wantUntried {
		t.Errorf("not tried = %d, want %d", stats.NotTried, wantUntried)
	}
}

func TestResetAll(t *testing.T) {
	env := newTestEnv(t)

	env.progress.RecordAttempt("queue", models.CategoryWord, models.CohortYear6, true)
	env.sessionRepo.Create(models.SessionSpelling, models.CohortYear6)

	if err := env.progress.ResetAll(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	stats, err := env.progress.Statistics()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalAttempts != 0 || stats.CurrentStreak != 0 || stats.TotalSessions != 0 {
		t.Errorf("expected empty statistics after reset, got %+v", stats)
	}
}

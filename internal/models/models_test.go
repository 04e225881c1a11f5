package models

import (
	"testing"
	"time"
)

func TestProgressValidate(t *testing.T) {
	tests := []struct {
		name     string
		progress Progress
		wantErr  bool
	}{
		{
			name: "valid word record",
			progress: Progress{
				Identifier:   "accommodate",
				Category:     CategoryWord,
				Cohort:       CohortYear6,
				CorrectCount: 3,
			},
			wantErr: false,
		},
		{
			name: "valid homophone set record",
			progress: Progress{
				Identifier:     "their_there_theyre",
				Category:       CategoryHomophoneSet,
				Cohort:         CohortYear6,
				IncorrectCount: 1,
			},
			wantErr: false,
		},
		{
			name: "empty identifier",
			progress: Progress{
				Identifier: "   ",
				Category:   CategoryWord,
				Cohort:     CohortYear6,
			},
			wantErr: true,
		},
		{
			name: "negative count",
			progress: Progress{
				Identifier:   "queue",
				Category:     CategoryWord,
				Cohort:       CohortYear6,
				CorrectCount: -1,
			},
			wantErr: true,
		},
		{
			name: "unknown category",
			progress: Progress{
				Identifier: "queue",
				Category:   Category("statutory"),
				Cohort:     CohortYear6,
			},
			wantErr: true,
		},
		{
			name: "unknown cohort",
			progress: Progress{
				Identifier: "queue",
				Category:   CategoryWord,
				Cohort:     Cohort("year9"),
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.progress.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestProgressAccuracy(t *testing.T) {
	tests := []struct {
		name      string
		correct   int
		incorrect int
		want      float64
	}{
		{name: "never tried", correct: 0, incorrect: 0, want: 0},
		{name: "all correct", correct: 5, incorrect: 0, want: 1.0},
		{name: "half correct", correct: 2, incorrect: 2, want: 0.5},
		{name: "all wrong", correct: 0, incorrect: 3, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Progress{CorrectCount: tt.correct, IncorrectCount: tt.incorrect}
			if got := p.Accuracy(); got != tt.want {
				t.Errorf("Accuracy() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		input   string
		want    Category
		wantErr bool
	}{
		{input: "word", want: CategoryWord},
		{input: "  Homophone_Set ", want: CategoryHomophoneSet},
		{input: "paired", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCategory(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseCategory(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if err == nil && got != tt.want {
				t.Errorf("ParseCategory(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseCohortDefaultsToYear6(t *testing.T) {
	cohort, err := ParseCohort("")
	if err != nil {
		t.Fatalf("ParseCohort(\"\") returned error: %v", err)
	}
	if cohort != CohortYear6 {
		t.Errorf("ParseCohort(\"\") = %v, want %v", cohort, CohortYear6)
	}
}

func TestSessionIsCompleted(t *testing.T) {
	now := time.Now()
	open := PracticeSession{StartedAt: now}
	if open.IsCompleted() {
		t.Error("session without CompletedAt should not be completed")
	}

	closed := PracticeSession{StartedAt: now, CompletedAt: &now}
	if !closed.IsCompleted() {
		t.Error("session with CompletedAt should be completed")
	}
}

func TestSessionAccuracy(t *testing.T) {
	s := PracticeSession{WordsAttempted: 10, WordsCorrect: 7}
	if got := s.Accuracy(); got != 70 {
		t.Errorf("Accuracy() = %v, want 70", got)
	}

	empty := PracticeSession{}
	if got := empty.Accuracy(); got != 0 {
		t.Errorf("Accuracy() on empty session = %v, want 0", got)
	}
}

func TestStreakPracticedOn(t *testing.T) {
	s := Streak{LastPracticeDate: "2026-09-01"}
	if !s.PracticedOn("2026-09-01") {
		t.Error("expected PracticedOn to match last practice date")
	}
	if s.PracticedOn("2026-08-31") {
		t.Error("expected PracticedOn to reject other dates")
	}

	fresh := Streak{}
	if fresh.PracticedOn("") {
		t.Error("empty streak should never report a practiced date")
	}
}

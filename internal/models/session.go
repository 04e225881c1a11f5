package models

import (
	"fmt"
	"strings"
	"time"
)

// SessionType distinguishes the two practice round kinds.
type SessionType string

const (
	SessionSpelling  SessionType = "spelling"
	SessionHomophone SessionType = "homophone"
)

// ParseSessionType converts a string tag into a SessionType.
func ParseSessionType(s string) (SessionType, error) {
	switch SessionType(strings.ToLower(strings.TrimSpace(s))) {
	case SessionSpelling, "":
		return SessionSpelling, nil
	case SessionHomophone:
		return SessionHomophone, nil
	default:
		return "", fmt.Errorf("unknown session type: %q", s)
	}
}

// PracticeSession is one practice round. CompletedAt stays nil while the
// round is open; an abandoned round is retained but never counted toward
// completed-session aggregates.
type PracticeSession struct {
	ID             int64       `json:"id"`
	Type           SessionType `json:"type"`
	Cohort         Cohort      `json:"cohort"`
	StartedAt      time.Time   `json:"startedAt"`
	CompletedAt    *time.Time  `json:"completedAt,omitempty"`
	WordsAttempted int         `json:"wordsAttempted"`
	WordsCorrect   int         `json:"wordsCorrect"`
}

// IsCompleted reports whether the session was closed normally.
func (s *PracticeSession) IsCompleted() bool {
	return s.CompletedAt != nil
}

// Accuracy returns the percentage of correct answers in the round.
func (s *PracticeSession) Accuracy() float64 {
	if s.WordsAttempted == 0 {
		return 0
	}
	return float64(s.WordsCorrect) / float64(s.WordsAttempted) * 100
}

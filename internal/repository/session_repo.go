package repository

import (
	"database/sql"
	"time"

	"spellingmaster/internal/database"
	"spellingmaster/internal/models"
)

// SessionRepository handles practice session database operations
type SessionRepository struct {
	db *database.DB
}

// NewSessionRepository creates a new session repository
func NewSessionRepository(db *database.DB) *SessionRepository {
	return &SessionRepository{db: db}
}

// Create opens a new practice session
func (r *SessionRepository) Create(sessionType models.SessionType, cohort models.Cohort) (*models.PracticeSession, error) {
	query := `
		INSERT INTO practice_sessions (session_type, cohort, started_at)
		VALUES (?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query, string(sessionType), string(cohort), time.Now())
	if err != nil {
		return nil, err
	}

	return r.GetByID(id)
}

// GetByID retrieves a practice session by ID
func (r *SessionRepository) GetByID(sessionID int64) (*models.PracticeSession, error) {
	query := `
		SELECT id, session_type, cohort, started_at, completed_at, words_attempted, words_correct
		FROM practice_sessions
		WHERE id = ?
	`

	session := &models.PracticeSession{}
	var sessionType, cohort string
	var completedAt sql.NullTime

	err := r.db.QueryRow(query, sessionID).Scan(
		&session.ID,
		&sessionType,
		&cohort,
		&session.StartedAt,
		&completedAt,
		&session.WordsAttempted,
		&session.WordsCorrect,
	)
	if err != nil {
		return nil, err
	}

	session.Type = models.SessionType(sessionType)
	session.Cohort = models.Cohort(cohort)
	if completedAt.Valid {
		session.CompletedAt = &completedAt.Time
	}
	return session, nil
}

// UpdateCounts updates the running attempted/correct counters for an open
// session.
func (r *SessionRepository) UpdateCounts(sessionID int64, wordsAttempted, wordsCorrect int) error {
	query := `
		UPDATE practice_sessions
		SET words_attempted = ?, words_correct = ?
		WHERE id = ?
	`
	_, err := r.db.Exec(query, wordsAttempted, wordsCorrect, sessionID)
	return err
}

// Complete closes a session. An abandoned session is never completed and
// stays out of completed-session aggregates.
func (r *SessionRepository) Complete(sessionID int64) error {
	query := `
		UPDATE practice_sessions
		SET completed_at = ?
		WHERE id = ? AND completed_at IS NULL
	`
	_, err := r.db.Exec(query, time.Now(), sessionID)
	return err
}

// CountCompleted counts sessions that were closed normally.
func (r *SessionRepository) CountCompleted() (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM practice_sessions WHERE completed_at IS NOT NULL"
	err := r.db.QueryRow(query).Scan(&count)
	return count, err
}

// Recent retrieves the most recently started sessions.
func (r *SessionRepository) Recent(limit int) ([]models.PracticeSession, error) {
	query := `
		SELECT id, session_type, cohort, started_at, completed_at, words_attempted, words_correct
		FROM practice_sessions
		ORDER BY started_at DESC
		LIMIT ?
	`

	rows, err := r.db.Query(query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var sessions []models.PracticeSession
	for rows.Next() {
		var session models.PracticeSession
		var sessionType, cohort string
		var completedAt sql.NullTime

		err := rows.Scan(
			&session.ID,
			&sessionType,
			&cohort,
			&session.StartedAt,
			&completedAt,
			&session.WordsAttempted,
			&session.WordsCorrect,
		)
		if err != nil {
			return nil, err
		}

		session.Type = models.SessionType(sessionType)
		session.Cohort = models.Cohort(cohort)
		if completedAt.Valid {
			session.CompletedAt = &completedAt.Time
		}
		sessions = append(sessions, session)
	}

	return sessions, rows.Err()
}

package repository

import (
	"database/sql"
	"fmt"

	"spellingmaster/internal/database"
	"spellingmaster/internal/models"
)

// ProgressRepository handles progress record database operations
type ProgressRepository struct {
	db *database.DB
}

// NewProgressRepository creates a new progress repository
func NewProgressRepository(db *database.DB) *ProgressRepository {
	return &ProgressRepository{db: db}
}

const progressColumns = `id, identifier, category, cohort, correct_count, incorrect_count, last_attempt_at, mastery_status`

// GetByKey retrieves the progress record for an item, or nil if the item has
// never been attempted.
func (r *ProgressRepository) GetByKey(identifier string, category models.Category, cohort models.Cohort) (*models.Progress, error) {
	query := `
		SELECT ` + progressColumns + `
		FROM progress
		WHERE identifier = ? AND category = ? AND cohort = ?
	`

	p, err := scanProgress(r.db.QueryRow(query, identifier, string(category), string(cohort)))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

// Insert creates a new progress record
func (r *ProgressRepository) Insert(p *models.Progress) (*models.Progress, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	query := `
		INSERT INTO progress (identifier, category, cohort, correct_count, incorrect_count, last_attempt_at, mastery_status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`

	id, err := r.db.ExecReturningID(query,
		p.Identifier, string(p.Category), string(p.Cohort),
		p.CorrectCount, p.IncorrectCount, p.LastAttemptAt, string(p.Status))
	if err != nil {
		return nil, fmt.Errorf("failed to insert progress record: %w", err)
	}

	p.ID = id
	return p, nil
}

// Update persists the counters, timestamp and derived status of an existing
// record.
func (r *ProgressRepository) Update(p *models.Progress) error {
	if err := p.Validate(); err != nil {
		return err
	}

	query := `
		UPDATE progress
		SET correct_count = ?, incorrect_count = ?, last_attempt_at = ?, mastery_status = ?
		WHERE id = ?
	`

	_, err := r.db.Exec(query, p.CorrectCount, p.IncorrectCount, p.LastAttemptAt, string(p.Status), p.ID)
	if err != nil {
		return fmt.Errorf("failed to update progress record: %w", err)
	}
	return nil
}

// All retrieves every progress record for a cohort, most recently practiced
// first.
func (r *ProgressRepository) All(cohort models.Cohort) ([]models.Progress, error) {
	query := `
		SELECT ` + progressColumns + `
		FROM progress
		WHERE cohort = ?
		ORDER BY last_attempt_at DESC
	`

	rows, err := r.db.Query(query, string(cohort))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProgress(rows)
}

// ByStatus retrieves all records for a cohort in the given mastery status.
func (r *ProgressRepository) ByStatus(status models.MasteryStatus, cohort models.Cohort) ([]models.Progress, error) {
	query := `
		SELECT ` + progressColumns + `
		FROM progress
		WHERE mastery_status = ? AND cohort = ?
		ORDER BY identifier ASC
	`

	rows, err := r.db.Query(query, string(status), string(cohort))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return collectProgress(rows)
}

// CountByStatus counts records in a mastery status across all cohorts.
func (r *ProgressRepository) CountByStatus(status models.MasteryStatus) (int, error) {
	var count int
	query := "SELECT COUNT(*) FROM progress WHERE mastery_status = ?"
	err := r.db.QueryRow(query, string(status)).Scan(&count)
	return count, err
}

// TotalCorrectByCategory sums correct attempts across all records of a
// category. Used for cumulative achievements like the homophone badge.
func (r *ProgressRepository) TotalCorrectByCategory(category models.Category) (int, error) {
	var total int
	query := "SELECT COALESCE(SUM(correct_count), 0) FROM progress WHERE category = ?"
	err := r.db.QueryRow(query, string(category)).Scan(&total)
	return total, err
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanProgress(row rowScanner) (*models.Progress, error) {
	p := &models.Progress{}
	var category, cohort, status string
	var lastAttempt sql.NullTime

	err := row.Scan(&p.ID, &p.Identifier, &category, &cohort,
		&p.CorrectCount, &p.IncorrectCount, &lastAttempt, &status)
	if err != nil {
		return nil, err
	}

	p.Category = models.Category(category)
	p.Cohort = models.Cohort(cohort)
	p.Status = models.MasteryStatus(status)
	if lastAttempt.Valid {
		p.LastAttemptAt = &lastAttempt.Time
	}
	return p, nil
}

func collectProgress(rows *sql.Rows) ([]models.Progress, error) {
	var records []models.Progress
	for rows.Next() {
		p, err := scanProgress(rows)
		if err != nil {
			return nil, err
		}
		records = append(records, *p)
	}
	return records, rows.Err()
}

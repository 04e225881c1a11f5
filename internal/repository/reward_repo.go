package repository

import (
	"fmt"
	"strings"
	"time"

	"spellingmaster/internal/database"
	"spellingmaster/internal/models"
)

// RewardRepository handles collectible reward grants
type RewardRepository struct {
	db *database.DB
}

// NewRewardRepository creates a new reward repository
func NewRewardRepository(db *database.DB) *RewardRepository {
	return &RewardRepository{db: db}
}

// Exists reports whether a grant already exists for the item triple.
func (r *RewardRepository) Exists(identifier string, category models.Category, cohort models.Cohort) (bool, error) {
	var count int
	query := "SELECT COUNT(*) FROM reward_grants WHERE identifier = ? AND category = ? AND cohort = ?"
	err := r.db.QueryRow(query, identifier, string(category), string(cohort)).Scan(&count)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Insert persists a new grant. The unique index on the item triple backs up
// the caller's existence check.
func (r *RewardRepository) Insert(grant *models.RewardGrant) (*models.RewardGrant, error) {
	query := `
		INSERT INTO reward_grants (identifier, category, cohort, external_id, tier, display_name, image_ref, caught_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	grant.CaughtAt = time.Now()
	id, err := r.db.ExecReturningID(query,
		grant.Identifier, string(grant.Category), string(grant.Cohort),
		grant.ExternalID, string(grant.Tier), grant.DisplayName, grant.ImageRef, grant.CaughtAt)
	if err != nil {
		return nil, fmt.Errorf("failed to insert reward grant: %w", err)
	}

	grant.ID = id
	return grant, nil
}

// RewardFilter narrows All queries. Zero-value fields are ignored.
type RewardFilter struct {
	Category models.Category
	Cohort   models.Cohort
	Tier     models.RewardTier
}

// All retrieves granted rewards matching the filter, newest first.
func (r *RewardRepository) All(filter RewardFilter) ([]models.RewardGrant, error) {
	query := `
		SELECT id, identifier, category, cohort, external_id, tier, display_name, image_ref, caught_at
		FROM reward_grants
	`

	var conditions []string
	var args []interface{}
	if filter.Category != "" {
		conditions = append(conditions, "category = ?")
		args = append(args, string(filter.Category))
	}
	if filter.Cohort != "" {
		conditions = append(conditions, "cohort = ?")
		args = append(args, string(filter.Cohort))
	}
	if filter.Tier != "" {
		conditions = append(conditions, "tier = ?")
		args = append(args, string(filter.Tier))
	}
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}
	query += " ORDER BY caught_at DESC"

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var grants []models.RewardGrant
	for rows.Next() {
		var g models.RewardGrant
		var category, cohort, tier string
		err := rows.Scan(&g.ID, &g.Identifier, &category, &cohort,
			&g.ExternalID, &tier, &g.DisplayName, &g.ImageRef, &g.CaughtAt)
		if err != nil {
			return nil, err
		}
		g.Category = models.Category(category)
		g.Cohort = models.Cohort(cohort)
		g.Tier = models.RewardTier(tier)
		grants = append(grants, g)
	}

	return grants, rows.Err()
}

// Count returns the total number of granted rewards.
func (r *RewardRepository) Count() (int, error) {
	var count int
	err := r.db.QueryRow("SELECT COUNT(*) FROM reward_grants").Scan(&count)
	return count, err
}

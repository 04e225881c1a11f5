package service

import (
	"context"
	"fmt"
	"log"

	"spellingmaster/internal/artwork"
	"spellingmaster/internal/content"
	"spellingmaster/internal/models"
	"spellingmaster/internal/repository"
)

// ArtworkFetcher resolves display artwork for an external ID.
type ArtworkFetcher interface {
	Get(ctx context.Context, externalID int) (artwork.Artwork, error)
}

// RewardService grants collectible rewards when items reach mastered. At
// most one grant ever exists per item.
type RewardService struct {
	rewards *repository.RewardRepository
	fetcher ArtworkFetcher
}

// NewRewardService creates a reward service.
func NewRewardService(rewards *repository.RewardRepository, fetcher ArtworkFetcher) *RewardService {
	return &RewardService{rewards: rewards, fetcher: fetcher}
}

// TryGrant awards the collectible for a newly mastered item. Returns nil
// without error when the item has no reward mapping or was already granted,
// so callers can invoke it unconditionally on every mastery transition.
func (s *RewardService) TryGrant(ctx context.Context, identifier string, category models.Category, cohort models.Cohort) (*models.RewardGrant, error) {
	mapping, ok := content.RewardFor(identifier, category, cohort)
	if !ok {
		return nil, nil
	}

	exists, err := s.rewards.Exists(identifier, category, cohort)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing grant for %q: %w", identifier, err)
	}
	if exists {
		return nil, nil
	}

	art, err := s.fetcher.Get(ctx, mapping.ExternalID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch artwork for %q: %w", identifier, err)
	}

	grant := &models.RewardGrant{
		Identifier:  identifier,
		Category:    category,
		Cohort:      cohort,
		ExternalID:  mapping.ExternalID,
		Tier:        mapping.Tier,
		DisplayName: art.Name,
		ImageRef:    art.ImageURL,
	}
	return s.rewards.Insert(grant)
}

// All returns granted rewards matching the filter, newest first.
func (s *RewardService) All(filter repository.RewardFilter) ([]models.RewardGrant, error) {
	return s.rewards.All(filter)
}

// Count returns the total number of granted rewards.
func (s *RewardService) Count() (int, error) {
	return s.rewards.Count()
}

// Prefetch warms the artwork cache for every mappable item in a cohort so
// grants during play do not wait on the network. Failures are logged and
// skipped; the grant path fetches on demand anyway.
func (s *RewardService) Prefetch(ctx context.Context, cohort models.Cohort) {
	var mappings []models.RewardMapping
	for _, w := range content.Words(cohort) {
		if m, ok := content.RewardFor(w, models.CategoryWord, cohort); ok {
			mappings = append(mappings, m)
		}
	}
	for _, set := range content.Sets() {
		if m, ok := content.RewardFor(set.ID, models.CategoryHomophoneSet, cohort); ok {
			mappings = append(mappings, m)
		}
	}

	for _, m := range mappings {
		if ctx.Err() != nil {
			return
		}
		if _, err := s.fetcher.Get(ctx, m.ExternalID); err != nil {
			log.Printf("Artwork prefetch failed for %s (%d): %v", m.Identifier, m.ExternalID, err)
		}
	}
}

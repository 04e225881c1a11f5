package models

import (
	"fmt"
	"strings"
	"time"
)

// RewardTier is the rarity band of a collectible reward.
type RewardTier string

const (
	TierCommon    RewardTier = "common"
	TierUncommon  RewardTier = "uncommon"
	TierRare      RewardTier = "rare"
	TierLegendary RewardTier = "legendary"
)

// ParseRewardTier converts a string tag into a RewardTier.
func ParseRewardTier(s string) (RewardTier, error) {
	switch RewardTier(strings.ToLower(strings.TrimSpace(s))) {
	case TierCommon:
		return TierCommon, nil
	case TierUncommon:
		return TierUncommon, nil
	case TierRare:
		return TierRare, nil
	case TierLegendary:
		return TierLegendary, nil
	default:
		return "", fmt.Errorf("unknown reward tier: %q", s)
	}
}

// RewardMapping ties a practiced item to the collectible it awards on
// mastery. Not every item carries a mapping.
type RewardMapping struct {
	Identifier string     `json:"identifier"`
	Category   Category   `json:"category"`
	Cohort     Cohort     `json:"cohort"`
	ExternalID int        `json:"externalId"`
	Tier       RewardTier `json:"tier"`
}

// RewardGrant is a persisted collectible award. At most one grant exists
// per (identifier, category, cohort) triple.
type RewardGrant struct {
	ID          int64      `json:"id"`
	Identifier  string     `json:"identifier"`
	Category    Category   `json:"category"`
	Cohort      Cohort     `json:"cohort"`
	ExternalID  int        `json:"externalId"`
	Tier        RewardTier `json:"tier"`
	DisplayName string     `json:"displayName"`
	ImageRef    string     `json:"imageRef"`
	CaughtAt    time.Time  `json:"caughtAt"`
}

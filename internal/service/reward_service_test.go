package service

import (
	"context"
	"testing"

	"spellingmaster/internal/models"
	"spellingmaster/internal/repository"
)

func TestTryGrantAwardsOnce(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	grant, err := env.rewards.TryGrant(ctx, "rhythm", models.CategoryWord, models.CohortYear6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grant == nil {
		t.Fatal("expected a grant for a mapped word")
	}
	if grant.Tier != models.TierLegendary {
		t.Errorf("tier = %s, want legendary", grant.Tier)
	}
	if grant.DisplayName == "" || grant.ImageRef == "" {
		t.Errorf("grant missing artwork data: %+v", grant)
	}

	repeat, err := env.rewards.TryGrant(ctx, "rhythm", models.CategoryWord, models.CohortYear6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repeat != nil {
		t.Error("second grant for the same item should be nil")
	}

	count, err := env.rewards.Count()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 1 {
		t.Errorf("count = %d, want 1", count)
	}
}

func TestTryGrantUnmappedItem(t *testing.T) {
	env := newTestEnv(t)

	grant, err := env.rewards.TryGrant(context.Background(), "zebra", models.CategoryWord, models.CohortYear6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grant != nil {
		t.Errorf("expected nil grant for unmapped word, got %+v", grant)
	}
	if env.fetcher.calls != 0 {
		t.Errorf("artwork fetched %d times for an unmapped word", env.fetcher.calls)
	}
}

func TestTryGrantArtworkFailureLeavesNoGrant(t *testing.T) {
	env := newTestEnv(t)
	env.fetcher.fail = true

	if _, err := env.rewards.TryGrant(context.Background(), "rhythm", models.CategoryWord, models.CohortYear6); err == nil {
		t.Fatal("expected error when artwork fetch fails")
	}

	count, err := env.rewards.Count()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if count != 0 {
		t.Errorf("count = %d, want 0 after failed grant", count)
	}

	// once the artwork service recovers the grant goes through
	env.fetcher.fail = false
	grant, err := env.rewards.TryGrant(context.Background(), "rhythm", models.CategoryWord, models.CohortYear6)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if grant == nil {
		t.Fatal("expected grant after recovery")
	}
}

func TestRewardFilters(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.rewards.TryGrant(ctx, "rhythm", models.CategoryWord, models.CohortYear6)
	env.rewards.TryGrant(ctx, "queue", models.CategoryWord, models.CohortYear6)
	env.rewards.TryGrant(ctx, "because", models.CategoryWord, models.CohortYear2)

	all, err := env.rewards.All(repository.RewardFilter{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("got %d grants, want 3", len(all))
	}

	year2, err := env.rewards.All(repository.RewardFilter{Cohort: models.CohortYear2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(year2) != 1 || year2[0].Identifier != "because" {
		t.Errorf("cohort filter returned %+v", year2)
	}

	legendary, err := env.rewards.All(repository.RewardFilter{Tier: models.TierLegendary})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(legendary) != 1 || legendary[0].Identifier != "rhythm" {
		t.Errorf("tier filter returned %+v", legendary)
	}
}

func TestPrefetchWarmsEveryMapping(t *testing.T) {
	env := newTestEnv(t)

	env.rewards.Prefetch(context.Background(), models.CohortYear2)
	if env.fetcher.calls == 0 {
		t.Fatal("prefetch made no artwork requests")
	}

	// cancelled context stops the sweep early
	before := env.fetcher.calls
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	env.rewards.Prefetch(ctx, models.CohortYear6)
	if env.fetcher.calls != before {
		t.Errorf("prefetch continued after cancellation: %d extra calls", env.fetcher.calls-before)
	}
}

package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clubpulse/matchday/internal/platform/cache"
	"github.com/clubpulse/matchday/internal/platform/resilience"
	"github.com/clubpulse/matchday/internal/usecase"
)

func TestResyncService_RebuildsTamperedRollups(t *testing.T) {
	store := newTestStore()
	ingestFixtureMatch(t, store)
	service := usecase.NewResyncService(store, resilience.NewKeyedMutex(), nil)
	ctx := context.Background()

	rollup, ok, err := store.ClubSeasons().GetByClub(ctx, testClubID)
	if err != nil || !ok {
		t.Fatalf("get rollup: ok=%v err=%v", ok, err)
	}
	rollup.MatchesPlayed = 99
	rollup.Wins = 0
	if err := store.ClubSeasons().Upsert(ctx, rollup); err != nil {
		t.Fatalf("tamper rollup: %v", err)
	}

	result, err := service.Resync(ctx, usecase.ResyncInput{ClubID: testClubID, MaxWorkers: 8})
	if err != nil {
		t.Fatalf("resync: %v", err)
	}

	if result.ClubCount != 1 {
		t.Fatalf("club count = %d, want 1", result.ClubCount)
	}
	// One club task plus one task per rostered player.
	if result.TaskCount != 12 || len(result.Tasks) != 12 {
		t.Fatalf("task count = %d (%d rows), want 12", result.TaskCount, len(result.Tasks))
	}
	if result.SuccessCount != 12 || result.FailedCount != 0 {
		t.Fatalf("success=%d failed=%d, want 12/0", result.SuccessCount, result.FailedCount)
	}
	if result.WorkerCount != 4 {
		t.Fatalf("worker count = %d, want clamp to 4", result.WorkerCount)
	}
	if result.Tasks[0].EntityType != "club" {
		t.Fatalf("task rows not sorted by entity type: %+v", result.Tasks[0])
	}

	restored, ok, err := store.ClubSeasons().GetByClub(ctx, testClubID)
	if err != nil || !ok {
		t.Fatalf("get restored rollup: ok=%v err=%v", ok, err)
	}
	if restored.MatchesPlayed != 1 || restored.Wins != 1 {
		t.Fatalf("rollup not rebuilt from match truth: %+v", restored)
	}
}

func TestResyncService_DryRunWritesNothing(t *testing.T) {
	store := newTestStore()
	ingestFixtureMatch(t, store)
	service := usecase.NewResyncService(store, resilience.NewKeyedMutex(), nil)
	ctx := context.Background()

	rollup, _, err := store.ClubSeasons().GetByClub(ctx, testClubID)
	if err != nil {
		t.Fatalf("get rollup: %v", err)
	}
	rollup.MatchesPlayed = 99
	if err := store.ClubSeasons().Upsert(ctx, rollup); err != nil {
		t.Fatalf("tamper rollup: %v", err)
	}

	result, err := service.Resync(ctx, usecase.ResyncInput{ClubID: testClubID, DryRun: true})
	if err != nil {
		t.Fatalf("dry run: %v", err)
	}
	if result.FailedCount != 0 {
		t.Fatalf("dry run failed tasks: %+v", result.Tasks)
	}

	after, _, err := store.ClubSeasons().GetByClub(ctx, testClubID)
	if err != nil {
		t.Fatalf("get rollup after dry run: %v", err)
	}
	if after.MatchesPlayed != 99 {
		t.Fatalf("dry run wrote a rollup: %+v", after)
	}
}

func TestResyncService_AllClubsWhenUnscoped(t *testing.T) {
	store := newTestStore()
	ingestFixtureMatch(t, store)
	service := usecase.NewResyncService(store, resilience.NewKeyedMutex(), nil)

	result, err := service.Resync(context.Background(), usecase.ResyncInput{})
	if err != nil {
		t.Fatalf("resync: %v", err)
	}
	if result.ClubCount != 1 || result.TaskCount != 12 {
		t.Fatalf("unscoped run covered clubs=%d tasks=%d, want 1/12", result.ClubCount, result.TaskCount)
	}
}

func TestResyncService_InvalidatesSeasonCache(t *testing.T) {
	store := newTestStore()
	ingestFixtureMatch(t, store)
	ctx := context.Background()

	seasonCache := cache.NewStore(time.Minute)
	stats := usecase.NewStatsService(store, seasonCache)
	service := usecase.NewResyncService(store, resilience.NewKeyedMutex(), seasonCache)

	rollup, _, err := store.ClubSeasons().GetByClub(ctx, testClubID)
	if err != nil {
		t.Fatalf("get rollup: %v", err)
	}
	rollup.MatchesPlayed = 99
	if err := store.ClubSeasons().Upsert(ctx, rollup); err != nil {
		t.Fatalf("tamper rollup: %v", err)
	}

	// Warm the read cache with the tampered row.
	warmed, err := stats.ClubSeason(ctx, testClubID)
	if err != nil {
		t.Fatalf("warm club season: %v", err)
	}
	if warmed.MatchesPlayed != 99 {
		t.Fatalf("cache warmed with %d matches, want tampered 99", warmed.MatchesPlayed)
	}

	if _, err := service.Resync(ctx, usecase.ResyncInput{ClubID: testClubID}); err != nil {
		t.Fatalf("resync: %v", err)
	}

	after, err := stats.ClubSeason(ctx, testClubID)
	if err != nil {
		t.Fatalf("read club season after resync: %v", err)
	}
	if after.MatchesPlayed != 1 || after.Wins != 1 {
		t.Fatalf("read served stale rollup after resync: %+v", after)
	}
}

func TestResyncService_DryRunKeepsCache(t *testing.T) {
	store := newTestStore()
	ingestFixtureMatch(t, store)
	ctx := context.Background()

	seasonCache := cache.NewStore(time.Minute)
	stats := usecase.NewStatsService(store, seasonCache)
	service := usecase.NewResyncService(store, resilience.NewKeyedMutex(), seasonCache)

	rollup, _, err := store.ClubSeasons().GetByClub(ctx, testClubID)
	if err != nil {
		t.Fatalf("get rollup: %v", err)
	}
	rollup.MatchesPlayed = 99
	if err := store.ClubSeasons().Upsert(ctx, rollup); err != nil {
		t.Fatalf("tamper rollup: %v", err)
	}
	if _, err := stats.ClubSeason(ctx, testClubID); err != nil {
		t.Fatalf("warm club season: %v", err)
	}

	if _, err := service.Resync(ctx, usecase.ResyncInput{ClubID: testClubID, DryRun: true}); err != nil {
		t.Fatalf("dry run: %v", err)
	}

	after, err := stats.ClubSeason(ctx, testClubID)
	if err != nil {
		t.Fatalf("read club season after dry run: %v", err)
	}
	if after.MatchesPlayed != 99 {
		t.Fatalf("dry run changed what reads serve: %+v", after)
	}
}

func TestResyncService_UnknownClub(t *testing.T) {
	service := usecase.NewResyncService(newTestStore(), resilience.NewKeyedMutex(), nil)

	_, err := service.Resync(context.Background(), usecase.ResyncInput{ClubID: "club-missing"})
	if !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

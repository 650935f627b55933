package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/clubpulse/matchday/internal/domain/event"
	"github.com/clubpulse/matchday/internal/platform/cache"
	"github.com/clubpulse/matchday/internal/usecase"
)

func TestStatsService_MatchReads(t *testing.T) {
	store := newTestStore()
	summary := ingestFixtureMatch(t, store)
	service := usecase.NewStatsService(store, nil)
	ctx := context.Background()

	stats, err := service.MatchStatistics(ctx, summary.MatchID)
	if err != nil {
		t.Fatalf("match statistics: %v", err)
	}
	if len(stats) != 2 {
		t.Fatalf("statistics rows = %d, want 2", len(stats))
	}
	roles := map[event.TeamRole]bool{}
	for _, row := range stats {
		roles[row.Role] = true
	}
	if !roles[event.RoleOurTeam] || !roles[event.RoleOpponent] {
		t.Fatalf("missing a side: %v", roles)
	}

	goals, err := service.MatchGoals(ctx, summary.MatchID)
	if err != nil {
		t.Fatalf("match goals: %v", err)
	}
	if len(goals) != 1 || goals[0].ScorerName != "Home Player 1" {
		t.Fatalf("unexpected goals: %+v", goals)
	}
	if goals[0].AssistName == nil || *goals[0].AssistName != "Home Player 2" {
		t.Fatalf("assist not resolved from key pass: %+v", goals[0])
	}

	entries, err := service.MatchLineups(ctx, summary.MatchID)
	if err != nil {
		t.Fatalf("match lineups: %v", err)
	}
	if len(entries) != 22 {
		t.Fatalf("lineup entries = %d, want 22", len(entries))
	}
}

func TestStatsService_MatchDetails(t *testing.T) {
	store := newTestStore()
	summary := ingestFixtureMatch(t, store)
	service := usecase.NewStatsService(store, nil)

	details, err := service.MatchDetails(context.Background(), summary.MatchID)
	if err != nil {
		t.Fatalf("match details: %v", err)
	}
	if details.Match.ID != summary.MatchID {
		t.Fatalf("wrong match loaded: %+v", details.Match)
	}
	if len(details.Statistics) != 2 || len(details.Goals) != 1 ||
		len(details.Lineups) != 22 || len(details.PlayerRows) != 11 {
		t.Fatalf("incomplete details: stats=%d goals=%d lineups=%d players=%d",
			len(details.Statistics), len(details.Goals), len(details.Lineups), len(details.PlayerRows))
	}
}

func TestStatsService_UnknownMatch(t *testing.T) {
	store := newTestStore()
	service := usecase.NewStatsService(store, nil)
	ctx := context.Background()

	if _, err := service.MatchStatistics(ctx, "mtch-missing"); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, err := service.MatchDetails(ctx, " "); !errors.Is(err, usecase.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for blank id, got %v", err)
	}
}

func TestStatsService_SeasonReadsServeCachedValue(t *testing.T) {
	store := newTestStore()
	ingestFixtureMatch(t, store)
	seasonCache := cache.NewStore(time.Minute)
	service := usecase.NewStatsService(store, seasonCache)
	ctx := context.Background()

	first, err := service.ClubSeason(ctx, testClubID)
	if err != nil {
		t.Fatalf("club season: %v", err)
	}
	if first.MatchesPlayed != 1 || first.GoalsScored != 1 {
		t.Fatalf("unexpected rollup: %+v", first)
	}

	// A mutation that bypasses cache invalidation must not surface until
	// the cached entry is dropped.
	stale := first
	stale.MatchesPlayed = 99
	if err := store.ClubSeasons().Upsert(ctx, stale); err != nil {
		t.Fatalf("upsert: %v", err)
	}

	cached, err := service.ClubSeason(ctx, testClubID)
	if err != nil {
		t.Fatalf("cached read: %v", err)
	}
	if cached.MatchesPlayed != 1 {
		t.Fatalf("read bypassed the cache: %+v", cached)
	}

	seasonCache.DeletePrefix(ctx, "season:club:"+testClubID)
	fresh, err := service.ClubSeason(ctx, testClubID)
	if err != nil {
		t.Fatalf("fresh read: %v", err)
	}
	if fresh.MatchesPlayed != 99 {
		t.Fatalf("prefix delete did not evict the rollup: %+v", fresh)
	}
}

func TestStatsService_PlayerSeason(t *testing.T) {
	store := newTestStore()
	ingestFixtureMatch(t, store)
	service := usecase.NewStatsService(store, cache.NewStore(time.Minute))
	ctx := context.Background()

	roster, err := store.Players().ListByClub(ctx, testClubID)
	if err != nil {
		t.Fatalf("list roster: %v", err)
	}
	var scorerID string
	for _, p := range roster {
		if p.FeedPlayerID != nil && *p.FeedPlayerID == 1 {
			scorerID = p.ID
		}
	}

	rollup, err := service.PlayerSeason(ctx, scorerID)
	if err != nil {
		t.Fatalf("player season: %v", err)
	}
	if rollup.Goals != 1 || rollup.MatchesPlayed != 1 {
		t.Fatalf("unexpected rollup: %+v", rollup)
	}

	if _, err := service.PlayerSeason(ctx, "plyr-missing"); !errors.Is(err, usecase.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

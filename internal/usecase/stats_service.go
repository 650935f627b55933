package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/sourcegraph/conc"

	"github.com/clubpulse/matchday/internal/domain/clubseason"
	"github.com/clubpulse/matchday/internal/domain/lineup"
	"github.com/clubpulse/matchday/internal/domain/match"
	"github.com/clubpulse/matchday/internal/domain/matchstats"
	"github.com/clubpulse/matchday/internal/domain/playerseason"
	"github.com/clubpulse/matchday/internal/domain/playerstats"
	"github.com/clubpulse/matchday/internal/platform/cache"
)

// StatsService is the read side for downstream consumers: per-match rows
// and season rollups. Season reads go through a TTL cache that ingestion
// invalidates per club after each commit.
type StatsService struct {
	stores Stores
	cache  *cache.Store
}

func NewStatsService(stores Stores, store *cache.Store) *StatsService {
	return &StatsService{
		stores: stores,
		cache:  store,
	}
}

// MatchDetails bundles everything persisted for one match.
type MatchDetails struct {
	Match      match.Match                         `json:"match"`
	Statistics []matchstats.MatchStatistics        `json:"statistics"`
	Goals      []match.Goal                        `json:"goals"`
	Lineups    []lineup.Entry                      `json:"lineups"`
	PlayerRows []playerstats.PlayerMatchStatistics `json:"player_rows"`
}

func (s *StatsService) MatchStatistics(ctx context.Context, matchID string) ([]matchstats.MatchStatistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.MatchStatistics")
	defer span.End()

	if _, err := s.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}
	rows, err := s.stores.MatchStats().ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list match statistics: %w", err)
	}
	return rows, nil
}

func (s *StatsService) MatchGoals(ctx context.Context, matchID string) ([]match.Goal, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.MatchGoals")
	defer span.End()

	if _, err := s.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}
	goals, err := s.stores.Goals().ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

func (s *StatsService) MatchLineups(ctx context.Context, matchID string) ([]lineup.Entry, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.MatchLineups")
	defer span.End()

	if _, err := s.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}
	entries, err := s.stores.Lineups().ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list lineups: %w", err)
	}
	return entries, nil
}

// MatchDetails fetches the match's sub-resources concurrently.
func (s *StatsService) MatchDetails(ctx context.Context, matchID string) (MatchDetails, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.MatchDetails")
	defer span.End()

	m, err := s.requireMatch(ctx, matchID)
	if err != nil {
		return MatchDetails{}, err
	}

	out := MatchDetails{Match: m}
	var statsErr, goalsErr, lineupsErr, playersErr error

	var wg conc.WaitGroup
	wg.Go(func() {
		out.Statistics, statsErr = s.stores.MatchStats().ListByMatch(ctx, matchID)
	})
	wg.Go(func() {
		out.Goals, goalsErr = s.stores.Goals().ListByMatch(ctx, matchID)
	})
	wg.Go(func() {
		out.Lineups, lineupsErr = s.stores.Lineups().ListByMatch(ctx, matchID)
	})
	wg.Go(func() {
		out.PlayerRows, playersErr = s.stores.PlayerStats().ListByMatch(ctx, matchID)
	})
	wg.Wait()

	for _, err := range []error{statsErr, goalsErr, lineupsErr, playersErr} {
		if err != nil {
			return MatchDetails{}, fmt.Errorf("load match details: %w", err)
		}
	}
	return out, nil
}

func (s *StatsService) ClubSeason(ctx context.Context, clubID string) (clubseason.ClubSeasonStatistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.ClubSeason")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return clubseason.ClubSeasonStatistics{}, fmt.Errorf("%w: club_id is required", ErrInvalidInput)
	}

	value, err := s.cached(ctx, clubSeasonCacheKey(clubID), func(ctx context.Context) (any, error) {
		row, ok, err := s.stores.ClubSeasons().GetByClub(ctx, clubID)
		if err != nil {
			return nil, fmt.Errorf("get club season: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: no season statistics for club %s", ErrNotFound, clubID)
		}
		return row, nil
	})
	if err != nil {
		return clubseason.ClubSeasonStatistics{}, err
	}
	return value.(clubseason.ClubSeasonStatistics), nil
}

func (s *StatsService) PlayerSeason(ctx context.Context, playerID string) (playerseason.PlayerSeasonStatistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.StatsService.PlayerSeason")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return playerseason.PlayerSeasonStatistics{}, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}

	p, ok, err := s.stores.Players().GetByID(ctx, playerID)
	if err != nil {
		return playerseason.PlayerSeasonStatistics{}, fmt.Errorf("get player: %w", err)
	}
	if !ok {
		return playerseason.PlayerSeasonStatistics{}, fmt.Errorf("%w: player %s", ErrNotFound, playerID)
	}

	value, err := s.cached(ctx, playerSeasonCacheKey(p.ClubID, playerID), func(ctx context.Context) (any, error) {
		row, ok, err := s.stores.PlayerSeasons().GetByPlayer(ctx, playerID)
		if err != nil {
			return nil, fmt.Errorf("get player season: %w", err)
		}
		if !ok {
			return nil, fmt.Errorf("%w: no season statistics for player %s", ErrNotFound, playerID)
		}
		return row, nil
	})
	if err != nil {
		return playerseason.PlayerSeasonStatistics{}, err
	}
	return value.(playerseason.PlayerSeasonStatistics), nil
}

func (s *StatsService) requireMatch(ctx context.Context, matchID string) (match.Match, error) {
	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match_id is required", ErrInvalidInput)
	}

	m, ok, err := s.stores.Matches().GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match: %w", err)
	}
	if !ok {
		return match.Match{}, fmt.Errorf("%w: match %s", ErrNotFound, matchID)
	}
	return m, nil
}

func (s *StatsService) cached(ctx context.Context, key string, loader func(context.Context) (any, error)) (any, error) {
	if s.cache == nil {
		return loader(ctx)
	}
	return s.cache.GetOrLoad(ctx, key, loader)
}

// Season cache keys nest player rollups under the owning club so that one
// prefix delete after ingest clears both.
func seasonCachePrefix(clubID string) string {
	return "season:club:" + clubID
}

func clubSeasonCacheKey(clubID string) string {
	return seasonCachePrefix(clubID) + ":rollup"
}

func playerSeasonCacheKey(clubID, playerID string) string {
	return seasonCachePrefix(clubID) + ":player:" + playerID
}

package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/clubpulse/matchday/internal/domain/clubseason"
	"github.com/clubpulse/matchday/internal/domain/event"
	"github.com/clubpulse/matchday/internal/domain/playerseason"
	"github.com/clubpulse/matchday/internal/domain/statistics"
	"github.com/clubpulse/matchday/internal/platform/cache"
	"github.com/clubpulse/matchday/internal/platform/resilience"
)

// SeasonService recomputes season rollups from match-level truth. Every
// recompute fully overwrites the entity's single season row, so rollups can
// never drift from the persisted snapshots.
type SeasonService struct {
	stores Stores
	locks  *resilience.KeyedMutex
	cache  *cache.Store
	nowFn  func() time.Time
}

func NewSeasonService(stores Stores, locks *resilience.KeyedMutex, store *cache.Store) *SeasonService {
	return &SeasonService{
		stores: stores,
		locks:  locks,
		cache:  store,
		nowFn:  time.Now,
	}
}

func (s *SeasonService) RecomputeClub(ctx context.Context, clubID string) (clubseason.ClubSeasonStatistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.RecomputeClub")
	defer span.End()

	clubID = strings.TrimSpace(clubID)
	if clubID == "" {
		return clubseason.ClubSeasonStatistics{}, fmt.Errorf("%w: club_id is required", ErrInvalidInput)
	}

	var out clubseason.ClubSeasonStatistics
	err := s.locks.Do(clubLockKey(clubID), func() error {
		return s.stores.WithinTx(ctx, func(ctx context.Context, tx Stores) error {
			if _, ok, err := tx.Clubs().GetByID(ctx, clubID); err != nil {
				return fmt.Errorf("get club: %w", err)
			} else if !ok {
				return fmt.Errorf("%w: club %s", ErrNotFound, clubID)
			}

			rollup, err := recomputeClubSeason(ctx, tx, clubID, s.nowFn())
			if err != nil {
				return err
			}
			out = rollup
			return nil
		})
	})
	if err != nil {
		return clubseason.ClubSeasonStatistics{}, err
	}

	invalidateSeasonCache(ctx, s.cache, clubID)
	return out, nil
}

func (s *SeasonService) RecomputePlayer(ctx context.Context, playerID string) (playerseason.PlayerSeasonStatistics, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.RecomputePlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return playerseason.PlayerSeasonStatistics{}, fmt.Errorf("%w: player_id is required", ErrInvalidInput)
	}

	var out playerseason.PlayerSeasonStatistics
	var clubID string
	err := s.locks.Do(playerLockKey(playerID), func() error {
		return s.stores.WithinTx(ctx, func(ctx context.Context, tx Stores) error {
			p, ok, err := tx.Players().GetByID(ctx, playerID)
			if err != nil {
				return fmt.Errorf("get player: %w", err)
			}
			if !ok {
				return fmt.Errorf("%w: player %s", ErrNotFound, playerID)
			}
			clubID = p.ClubID

			rollup, err := recomputePlayerSeason(ctx, tx, playerID, s.nowFn())
			if err != nil {
				return err
			}
			out = rollup
			return nil
		})
	})
	if err != nil {
		return playerseason.PlayerSeasonStatistics{}, err
	}

	invalidateSeasonCache(ctx, s.cache, clubID)
	return out, nil
}

// recomputeClubSeason re-derives the club rollup from every persisted
// our-team match snapshot and match result, then overwrites the season row.
func recomputeClubSeason(ctx context.Context, s Stores, clubID string, now time.Time) (clubseason.ClubSeasonStatistics, error) {
	matches, err := s.Matches().ListByClub(ctx, clubID)
	if err != nil {
		return clubseason.ClubSeasonStatistics{}, fmt.Errorf("list club matches: %w", err)
	}
	snapshots, err := s.MatchStats().ListByClubAndRole(ctx, clubID, event.RoleOurTeam)
	if err != nil {
		return clubseason.ClubSeasonStatistics{}, fmt.Errorf("list club match statistics: %w", err)
	}

	rollup := statistics.ComputeClubSeason(clubID, matches, snapshots)
	rollup.UpdatedAt = now
	if err := s.ClubSeasons().Upsert(ctx, rollup); err != nil {
		return clubseason.ClubSeasonStatistics{}, fmt.Errorf("upsert club season: %w", err)
	}
	return rollup, nil
}

func recomputePlayerSeason(ctx context.Context, s Stores, playerID string, now time.Time) (playerseason.PlayerSeasonStatistics, error) {
	rows, err := s.PlayerStats().ListByPlayer(ctx, playerID)
	if err != nil {
		return playerseason.PlayerSeasonStatistics{}, fmt.Errorf("list player match statistics: %w", err)
	}

	rollup := statistics.ComputePlayerSeason(playerID, rows)
	rollup.UpdatedAt = now
	if err := s.PlayerSeasons().Upsert(ctx, rollup); err != nil {
		return playerseason.PlayerSeasonStatistics{}, fmt.Errorf("upsert player season: %w", err)
	}
	return rollup, nil
}

// invalidateSeasonCache drops every season read cached under the club,
// player rollups included. Called after any committed recompute so reads
// never serve a pre-recompute rollup for the rest of the TTL.
func invalidateSeasonCache(ctx context.Context, store *cache.Store, clubID string) {
	if store == nil || clubID == "" {
		return
	}
	store.DeletePrefix(ctx, seasonCachePrefix(clubID))
}

func clubLockKey(clubID string) string {
	return "club:" + clubID
}

func playerLockKey(playerID string) string {
	return "player:" + playerID
}

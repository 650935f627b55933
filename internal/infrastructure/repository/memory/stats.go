package memory

import (
	"context"
	"sort"

	"github.com/clubpulse/matchday/internal/domain/clubseason"
	"github.com/clubpulse/matchday/internal/domain/event"
	"github.com/clubpulse/matchday/internal/domain/matchstats"
	"github.com/clubpulse/matchday/internal/domain/playerseason"
	"github.com/clubpulse/matchday/internal/domain/playerstats"
)

type matchStatsRepository struct {
	store *Store
}

func (r *matchStatsRepository) ListByMatch(_ context.Context, matchID string) ([]matchstats.MatchStatistics, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]matchstats.MatchStatistics, 0, 2)
	for _, row := range r.store.data.matchStats {
		if row.MatchID == matchID {
			out = append(out, row)
		}
	}
	return out, nil
}

func (r *matchStatsRepository) ListByClubAndRole(_ context.Context, clubID string, role event.TeamRole) ([]matchstats.MatchStatistics, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	clubMatches := make(map[string]struct{})
	for id, m := range r.store.data.matches {
		if m.ClubID == clubID {
			clubMatches[id] = struct{}{}
		}
	}

	out := make([]matchstats.MatchStatistics, 0)
	for _, row := range r.store.data.matchStats {
		if row.Role != role {
			continue
		}
		if _, ok := clubMatches[row.MatchID]; ok {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchID < out[j].MatchID })
	return out, nil
}

func (r *matchStatsRepository) BulkCreate(_ context.Context, items []matchstats.MatchStatistics) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.data.matchStats = append(r.store.data.matchStats, items...)
	return nil
}

type playerStatsRepository struct {
	store *Store
}

func (r *playerStatsRepository) ListByMatch(_ context.Context, matchID string) ([]playerstats.PlayerMatchStatistics, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]playerstats.PlayerMatchStatistics, 0)
	for _, row := range r.store.data.playerStats {
		if row.MatchID == matchID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out, nil
}

func (r *playerStatsRepository) ListByPlayer(_ context.Context, playerID string) ([]playerstats.PlayerMatchStatistics, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]playerstats.PlayerMatchStatistics, 0)
	for _, row := range r.store.data.playerStats {
		if row.PlayerID == playerID {
			out = append(out, row)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].MatchID < out[j].MatchID })
	return out, nil
}

func (r *playerStatsRepository) BulkCreate(_ context.Context, items []playerstats.PlayerMatchStatistics) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.data.playerStats = append(r.store.data.playerStats, items...)
	return nil
}

type clubSeasonRepository struct {
	store *Store
}

func (r *clubSeasonRepository) GetByClub(_ context.Context, clubID string) (clubseason.ClubSeasonStatistics, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	row, ok := r.store.data.clubSeasons[clubID]
	return row, ok, nil
}

func (r *clubSeasonRepository) Upsert(_ context.Context, item clubseason.ClubSeasonStatistics) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.data.clubSeasons[item.ClubID] = item
	return nil
}

type playerSeasonRepository struct {
	store *Store
}

func (r *playerSeasonRepository) GetByPlayer(_ context.Context, playerID string) (playerseason.PlayerSeasonStatistics, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	row, ok := r.store.data.playerSeasons[playerID]
	return row, ok, nil
}

func (r *playerSeasonRepository) Upsert(_ context.Context, item playerseason.PlayerSeasonStatistics) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.data.playerSeasons[item.PlayerID] = item
	return nil
}

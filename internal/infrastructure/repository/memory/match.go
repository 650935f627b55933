package memory

import (
	"context"
	"fmt"
	"sort"
	"time"

	"github.com/clubpulse/matchday/internal/domain/event"
	"github.com/clubpulse/matchday/internal/domain/lineup"
	"github.com/clubpulse/matchday/internal/domain/match"
)

type matchRepository struct {
	store *Store
}

func (r *matchRepository) GetByID(_ context.Context, matchID string) (match.Match, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	m, ok := r.store.data.matches[matchID]
	return m, ok, nil
}

func (r *matchRepository) FindByClubAndKickoff(_ context.Context, clubID string, kickoffAt time.Time) (match.Match, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, m := range r.store.data.matches {
		if m.ClubID == clubID && m.KickoffAt.Equal(kickoffAt) {
			return m, true, nil
		}
	}
	return match.Match{}, false, nil
}

func (r *matchRepository) ListByClub(_ context.Context, clubID string) ([]match.Match, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]match.Match, 0)
	for _, m := range r.store.data.matches {
		if m.ClubID == clubID {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].KickoffAt.Before(out[j].KickoffAt) })
	return out, nil
}

func (r *matchRepository) Create(_ context.Context, item match.Match) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.data.matches[item.ID]; exists {
		return fmt.Errorf("match %s already exists", item.ID)
	}
	r.store.data.matches[item.ID] = item
	return nil
}

type goalRepository struct {
	store *Store
}

func (r *goalRepository) ListByMatch(_ context.Context, matchID string) ([]match.Goal, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]match.Goal, 0)
	for _, g := range r.store.data.goals {
		if g.MatchID == matchID {
			out = append(out, g)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Period != out[j].Period {
			return out[i].Period < out[j].Period
		}
		if out[i].Minute != out[j].Minute {
			return out[i].Minute < out[j].Minute
		}
		return out[i].Second < out[j].Second
	})
	return out, nil
}

func (r *goalRepository) BulkCreate(_ context.Context, items []match.Goal) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.data.goals = append(r.store.data.goals, items...)
	return nil
}

type lineupRepository struct {
	store *Store
}

func (r *lineupRepository) ListByMatch(_ context.Context, matchID string) ([]lineup.Entry, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]lineup.Entry, 0)
	for _, e := range r.store.data.lineups {
		if e.MatchID == matchID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (r *lineupRepository) BulkCreate(_ context.Context, items []lineup.Entry) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.data.lineups = append(r.store.data.lineups, items...)
	return nil
}

type eventRepository struct {
	store *Store
}

func (r *eventRepository) BulkCreate(_ context.Context, matchID string, events []event.RawEvent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	r.store.data.events[matchID] = append(r.store.data.events[matchID], events...)
	return nil
}

func (r *eventRepository) CountByMatch(_ context.Context, matchID string) (int, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	return len(r.store.data.events[matchID]), nil
}

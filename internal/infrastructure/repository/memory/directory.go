package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/clubpulse/matchday/internal/domain/club"
	"github.com/clubpulse/matchday/internal/domain/opponent"
	"github.com/clubpulse/matchday/internal/domain/player"
)

type clubRepository struct {
	store *Store
}

func (r *clubRepository) GetByID(_ context.Context, clubID string) (club.Club, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	c, ok := r.store.data.clubs[clubID]
	return c, ok, nil
}

func (r *clubRepository) List(_ context.Context) ([]club.Club, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]club.Club, 0, len(r.store.data.clubs))
	for _, c := range r.store.data.clubs {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *clubRepository) SetFeedTeamID(_ context.Context, clubID string, feedTeamID int) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	c, ok := r.store.data.clubs[clubID]
	if !ok {
		return fmt.Errorf("club %s not found", clubID)
	}
	c.FeedTeamID = &feedTeamID
	r.store.data.clubs[clubID] = c
	return nil
}

type opponentRepository struct {
	store *Store
}

func (r *opponentRepository) GetByName(_ context.Context, clubID, name string) (opponent.Opponent, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, o := range r.store.data.opponents {
		if o.ClubID == clubID && strings.EqualFold(o.Name, name) {
			return o, true, nil
		}
	}
	return opponent.Opponent{}, false, nil
}

func (r *opponentRepository) Create(_ context.Context, item opponent.Opponent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.data.opponents[item.ID]; exists {
		return fmt.Errorf("opponent %s already exists", item.ID)
	}
	r.store.data.opponents[item.ID] = item
	return nil
}

func (r *opponentRepository) ListPlayers(_ context.Context, opponentID string) ([]opponent.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]opponent.Player, 0)
	for _, p := range r.store.data.opponentPlayers {
		if p.OpponentID == opponentID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *opponentRepository) CreatePlayer(_ context.Context, item opponent.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.data.opponentPlayers[item.ID]; exists {
		return fmt.Errorf("opponent player %s already exists", item.ID)
	}
	r.store.data.opponentPlayers[item.ID] = item
	return nil
}

func (r *opponentRepository) UpdatePlayer(_ context.Context, item opponent.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.data.opponentPlayers[item.ID]; !exists {
		return fmt.Errorf("opponent player %s not found", item.ID)
	}
	r.store.data.opponentPlayers[item.ID] = item
	return nil
}

type playerRepository struct {
	store *Store
}

func (r *playerRepository) GetByID(_ context.Context, playerID string) (player.Player, bool, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	p, ok := r.store.data.players[playerID]
	return p, ok, nil
}

func (r *playerRepository) ListByClub(_ context.Context, clubID string) ([]player.Player, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	out := make([]player.Player, 0)
	for _, p := range r.store.data.players {
		if p.ClubID == clubID {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *playerRepository) Create(_ context.Context, item player.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.data.players[item.ID]; exists {
		return fmt.Errorf("player %s already exists", item.ID)
	}
	r.store.data.players[item.ID] = item
	return nil
}

func (r *playerRepository) Update(_ context.Context, item player.Player) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	if _, exists := r.store.data.players[item.ID]; !exists {
		return fmt.Errorf("player %s not found", item.ID)
	}
	r.store.data.players[item.ID] = item
	return nil
}

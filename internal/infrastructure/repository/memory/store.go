// Package memory implements the usecase store contract in process memory.
// It backs service tests and local development without a database.
package memory

import (
	"context"
	"sync"

	"github.com/clubpulse/matchday/internal/domain/club"
	"github.com/clubpulse/matchday/internal/domain/clubseason"
	"github.com/clubpulse/matchday/internal/domain/event"
	"github.com/clubpulse/matchday/internal/domain/lineup"
	"github.com/clubpulse/matchday/internal/domain/match"
	"github.com/clubpulse/matchday/internal/domain/matchstats"
	"github.com/clubpulse/matchday/internal/domain/opponent"
	"github.com/clubpulse/matchday/internal/domain/player"
	"github.com/clubpulse/matchday/internal/domain/playerseason"
	"github.com/clubpulse/matchday/internal/domain/playerstats"
	"github.com/clubpulse/matchday/internal/usecase"
)

type data struct {
	clubs           map[string]club.Club
	opponents       map[string]opponent.Opponent
	opponentPlayers map[string]opponent.Player
	players         map[string]player.Player
	matches         map[string]match.Match
	goals           []match.Goal
	lineups         []lineup.Entry
	events          map[string][]event.RawEvent
	matchStats      []matchstats.MatchStatistics
	playerStats     []playerstats.PlayerMatchStatistics
	clubSeasons     map[string]clubseason.ClubSeasonStatistics
	playerSeasons   map[string]playerseason.PlayerSeasonStatistics
}

func newData() *data {
	return &data{
		clubs:           make(map[string]club.Club),
		opponents:       make(map[string]opponent.Opponent),
		opponentPlayers: make(map[string]opponent.Player),
		players:         make(map[string]player.Player),
		matches:         make(map[string]match.Match),
		events:          make(map[string][]event.RawEvent),
		clubSeasons:     make(map[string]clubseason.ClubSeasonStatistics),
		playerSeasons:   make(map[string]playerseason.PlayerSeasonStatistics),
	}
}

func (d *data) clone() *data {
	out := newData()
	for k, v := range d.clubs {
		out.clubs[k] = v
	}
	for k, v := range d.opponents {
		out.opponents[k] = v
	}
	for k, v := range d.opponentPlayers {
		out.opponentPlayers[k] = v
	}
	for k, v := range d.players {
		out.players[k] = v
	}
	for k, v := range d.matches {
		out.matches[k] = v
	}
	out.goals = append([]match.Goal(nil), d.goals...)
	out.lineups = append([]lineup.Entry(nil), d.lineups...)
	for k, v := range d.events {
		out.events[k] = append([]event.RawEvent(nil), v...)
	}
	out.matchStats = append([]matchstats.MatchStatistics(nil), d.matchStats...)
	out.playerStats = append([]playerstats.PlayerMatchStatistics(nil), d.playerStats...)
	for k, v := range d.clubSeasons {
		out.clubSeasons[k] = v
	}
	for k, v := range d.playerSeasons {
		out.playerSeasons[k] = v
	}
	return out
}

// Store holds all entities behind one mutex. WithinTx clones the data set,
// runs the function against the clone and swaps it in only on success, which
// gives the same all-or-nothing visibility as a database transaction.
type Store struct {
	mu   sync.RWMutex
	data *data
}

func NewStore() *Store {
	return &Store{data: newData()}
}

func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx usecase.Stores) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	txData := s.data.clone()
	tx := &Store{data: txData}
	if err := fn(ctx, tx); err != nil {
		return err
	}
	s.data = txData
	return nil
}

func (s *Store) Clubs() club.Repository                 { return &clubRepository{store: s} }
func (s *Store) Opponents() opponent.Repository         { return &opponentRepository{store: s} }
func (s *Store) Players() player.Repository             { return &playerRepository{store: s} }
func (s *Store) Matches() match.Repository              { return &matchRepository{store: s} }
func (s *Store) Goals() match.GoalRepository            { return &goalRepository{store: s} }
func (s *Store) Lineups() lineup.Repository             { return &lineupRepository{store: s} }
func (s *Store) Events() event.Repository               { return &eventRepository{store: s} }
func (s *Store) MatchStats() matchstats.Repository      { return &matchStatsRepository{store: s} }
func (s *Store) PlayerStats() playerstats.Repository    { return &playerStatsRepository{store: s} }
func (s *Store) ClubSeasons() clubseason.Repository     { return &clubSeasonRepository{store: s} }
func (s *Store) PlayerSeasons() playerseason.Repository { return &playerSeasonRepository{store: s} }

var _ usecase.Stores = (*Store)(nil)

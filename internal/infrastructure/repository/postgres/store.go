package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

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

// Store bundles every repository over one shared sqlx handle. Outside a
// transaction the handle is the pool; inside WithinTx it is the open
// transaction, so every repository obtained from the tx-scoped store reads
// its own uncommitted writes.
type Store struct {
	db *sqlx.DB
	q  sqlx.ExtContext
}

var _ usecase.Stores = (*Store)(nil)

func NewStore(db *sqlx.DB) *Store {
	return &Store{db: db, q: db}
}

// WithinTx runs fn against a transaction-scoped view of the store and
// commits iff fn returns nil. Nested calls join the enclosing transaction.
func (s *Store) WithinTx(ctx context.Context, fn func(ctx context.Context, tx usecase.Stores) error) error {
	if _, ok := s.q.(*sqlx.Tx); ok {
		return fn(ctx, s)
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if err := fn(ctx, &Store{db: s.db, q: tx}); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func (s *Store) Clubs() club.Repository                 { return &ClubRepository{q: s.q} }
func (s *Store) Opponents() opponent.Repository         { return &OpponentRepository{q: s.q} }
func (s *Store) Players() player.Repository             { return &PlayerRepository{q: s.q} }
func (s *Store) Matches() match.Repository              { return &MatchRepository{q: s.q} }
func (s *Store) Goals() match.GoalRepository            { return &GoalRepository{q: s.q} }
func (s *Store) Lineups() lineup.Repository             { return &LineupRepository{q: s.q} }
func (s *Store) Events() event.Repository               { return &EventRepository{q: s.q} }
func (s *Store) MatchStats() matchstats.Repository      { return &MatchStatsRepository{q: s.q} }
func (s *Store) PlayerStats() playerstats.Repository    { return &PlayerStatsRepository{q: s.q} }
func (s *Store) ClubSeasons() clubseason.Repository     { return &ClubSeasonRepository{q: s.q} }
func (s *Store) PlayerSeasons() playerseason.Repository { return &PlayerSeasonRepository{q: s.q} }

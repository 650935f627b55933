package usecase

import (
	"context"

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
)

// Stores bundles every repository behind one transactional boundary. An
// ingestion run executes entirely inside a single WithinTx call, so partial
// writes are never observable and any step failure rolls back everything
// written so far in that run.
type Stores interface {
	Clubs() club.Repository
	Opponents() opponent.Repository
	Players() player.Repository
	Matches() match.Repository
	Goals() match.GoalRepository
	Lineups() lineup.Repository
	Events() event.Repository
	MatchStats() matchstats.Repository
	PlayerStats() playerstats.Repository
	ClubSeasons() clubseason.Repository
	PlayerSeasons() playerseason.Repository

	// WithinTx runs fn against a store view whose writes commit together or
	// not at all. fn's writes become visible to its own reads immediately.
	WithinTx(ctx context.Context, fn func(ctx context.Context, tx Stores) error) error
}

package matchstats

import (
	"context"

	"github.com/clubpulse/matchday/internal/domain/event"
)

type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]MatchStatistics, error)
	// ListByClubAndRole returns every persisted snapshot with the given role
	// across the club's matches; season rollups recompute from these.
	ListByClubAndRole(ctx context.Context, clubID string, role event.TeamRole) ([]MatchStatistics, error)
	BulkCreate(ctx context.Context, items []MatchStatistics) error
}

package playerstats

import "context"

type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]PlayerMatchStatistics, error)
	ListByPlayer(ctx context.Context, playerID string) ([]PlayerMatchStatistics, error)
	BulkCreate(ctx context.Context, items []PlayerMatchStatistics) error
}

package playerseason

import "context"

type Repository interface {
	GetByPlayer(ctx context.Context, playerID string) (PlayerSeasonStatistics, bool, error)
	Upsert(ctx context.Context, item PlayerSeasonStatistics) error
}

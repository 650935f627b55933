package clubseason

import "context"

type Repository interface {
	GetByClub(ctx context.Context, clubID string) (ClubSeasonStatistics, bool, error)
	Upsert(ctx context.Context, item ClubSeasonStatistics) error
}

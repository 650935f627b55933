package club

import "context"

type Repository interface {
	GetByID(ctx context.Context, clubID string) (Club, bool, error)
	List(ctx context.Context) ([]Club, error)
	SetFeedTeamID(ctx context.Context, clubID string, feedTeamID int) error
}

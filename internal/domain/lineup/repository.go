package lineup

import "context"

type Repository interface {
	ListByMatch(ctx context.Context, matchID string) ([]Entry, error)
	BulkCreate(ctx context.Context, items []Entry) error
}

package event

import "context"

// Repository persists the immutable raw batch for a match. Inserts happen in
// chunks to bound transaction and memory size.
type Repository interface {
	BulkCreate(ctx context.Context, matchID string, events []RawEvent) error
	CountByMatch(ctx context.Context, matchID string) (int, error)
}

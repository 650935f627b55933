package player

import "context"

type Repository interface {
	GetByID(ctx context.Context, playerID string) (Player, bool, error)
	ListByClub(ctx context.Context, clubID string) ([]Player, error)
	Create(ctx context.Context, item Player) error
	Update(ctx context.Context, item Player) error
}

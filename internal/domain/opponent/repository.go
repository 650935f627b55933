package opponent

import "context"

type Repository interface {
	GetByName(ctx context.Context, clubID, name string) (Opponent, bool, error)
	Create(ctx context.Context, item Opponent) error
	ListPlayers(ctx context.Context, opponentID string) ([]Player, error)
	CreatePlayer(ctx context.Context, item Player) error
	UpdatePlayer(ctx context.Context, item Player) error
}

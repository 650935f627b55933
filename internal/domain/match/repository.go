package match

import (
	"context"
	"time"
)

type Repository interface {
	GetByID(ctx context.Context, matchID string) (Match, bool, error)
	// FindByClubAndKickoff detects duplicate uploads.
	FindByClubAndKickoff(ctx context.Context, clubID string, kickoffAt time.Time) (Match, bool, error)
	ListByClub(ctx context.Context, clubID string) ([]Match, error)
	Create(ctx context.Context, item Match) error
}

type GoalRepository interface {
	ListByMatch(ctx context.Context, matchID string) ([]Goal, error)
	BulkCreate(ctx context.Context, items []Goal) error
}

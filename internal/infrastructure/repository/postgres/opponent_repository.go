package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clubpulse/matchday/internal/domain/opponent"
	qb "github.com/clubpulse/matchday/internal/platform/querybuilder"
)

type OpponentRepository struct {
	q sqlx.ExtContext
}

func NewOpponentRepository(db *sqlx.DB) *OpponentRepository {
	return &OpponentRepository{q: db}
}

func (r *OpponentRepository) GetByName(ctx context.Context, clubID, name string) (opponent.Opponent, bool, error) {
	query, args, err := qb.Select("*").From("opponents").
		Where(
			qb.Eq("club_id", clubID),
			qb.Expr("LOWER(name) = LOWER(?)", name),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return opponent.Opponent{}, false, fmt.Errorf("build select opponent query: %w", err)
	}

	var row opponentTableModel
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return opponent.Opponent{}, false, nil
		}
		return opponent.Opponent{}, false, fmt.Errorf("select opponent by name: %w", err)
	}
	return opponent.Opponent{
		ID:        row.ID,
		ClubID:    row.ClubID,
		Name:      row.Name,
		CreatedAt: row.CreatedAt,
	}, true, nil
}

func (r *OpponentRepository) Create(ctx context.Context, item opponent.Opponent) error {
	model := opponentTableModel{
		ID:        item.ID,
		ClubID:    item.ClubID,
		Name:      item.Name,
		CreatedAt: item.CreatedAt,
	}

	query, args, err := qb.InsertModel("opponents", model, "")
	if err != nil {
		return fmt.Errorf("build insert opponent query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert opponent: %w", err)
	}
	return nil
}

func (r *OpponentRepository) ListPlayers(ctx context.Context, opponentID string) ([]opponent.Player, error) {
	query, args, err := qb.Select("*").From("opponent_players").
		Where(qb.Eq("opponent_id", opponentID)).
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select opponent players query: %w", err)
	}

	var rows []opponentPlayerTableModel
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select opponent players: %w", err)
	}

	out := make([]opponent.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, opponent.Player{
			ID:           row.ID,
			OpponentID:   row.OpponentID,
			Name:         row.Name,
			JerseyNumber: row.JerseyNumber,
			Position:     row.Position,
			FeedPlayerID: row.FeedPlayerID,
		})
	}
	return out, nil
}

func (r *OpponentRepository) CreatePlayer(ctx context.Context, item opponent.Player) error {
	model := opponentPlayerTableModel{
		ID:           item.ID,
		OpponentID:   item.OpponentID,
		Name:         item.Name,
		JerseyNumber: item.JerseyNumber,
		Position:     item.Position,
		FeedPlayerID: item.FeedPlayerID,
	}

	query, args, err := qb.InsertModel("opponent_players", model, "")
	if err != nil {
		return fmt.Errorf("build insert opponent player query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert opponent player: %w", err)
	}
	return nil
}

func (r *OpponentRepository) UpdatePlayer(ctx context.Context, item opponent.Player) error {
	query, args, err := qb.Update("opponent_players").
		Set("name", item.Name).
		Set("jersey_number", item.JerseyNumber).
		Set("position", item.Position).
		Set("feed_player_id", item.FeedPlayerID).
		Where(qb.Eq("id", item.ID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update opponent player query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update opponent player: %w", err)
	}
	return nil
}

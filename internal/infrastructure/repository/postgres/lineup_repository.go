package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clubpulse/matchday/internal/domain/event"
	"github.com/clubpulse/matchday/internal/domain/lineup"
	qb "github.com/clubpulse/matchday/internal/platform/querybuilder"
)

type LineupRepository struct {
	q sqlx.ExtContext
}

func NewLineupRepository(db *sqlx.DB) *LineupRepository {
	return &LineupRepository{q: db}
}

func (r *LineupRepository) ListByMatch(ctx context.Context, matchID string) ([]lineup.Entry, error) {
	query, args, err := qb.Select("*").From("lineup_entries").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("role", "jersey_number").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select lineup entries query: %w", err)
	}

	var rows []lineupEntryTableModel
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select lineup entries: %w", err)
	}

	out := make([]lineup.Entry, 0, len(rows))
	for _, row := range rows {
		out = append(out, lineup.Entry{
			ID:               row.ID,
			MatchID:          row.MatchID,
			Role:             event.TeamRole(row.Role),
			PlayerID:         row.PlayerID,
			OpponentPlayerID: row.OpponentPlayerID,
			Name:             row.Name,
			JerseyNumber:     row.JerseyNumber,
			Position:         row.Position,
		})
	}
	return out, nil
}

func (r *LineupRepository) BulkCreate(ctx context.Context, items []lineup.Entry) error {
	if len(items) == 0 {
		return nil
	}

	models := make([]lineupEntryTableModel, 0, len(items))
	for _, item := range items {
		models = append(models, lineupEntryTableModel{
			ID:               item.ID,
			MatchID:          item.MatchID,
			Role:             string(item.Role),
			PlayerID:         item.PlayerID,
			OpponentPlayerID: item.OpponentPlayerID,
			Name:             item.Name,
			JerseyNumber:     item.JerseyNumber,
			Position:         item.Position,
		})
	}

	query, args, err := qb.InsertModels("lineup_entries", models, "")
	if err != nil {
		return fmt.Errorf("build insert lineup entries query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert lineup entries: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clubpulse/matchday/internal/domain/playerstats"
	qb "github.com/clubpulse/matchday/internal/platform/querybuilder"
)

// playerStatsInsertChunkSize bounds parameter count per statement; each row
// binds over twenty parameters.
const playerStatsInsertChunkSize = 200

type PlayerStatsRepository struct {
	q sqlx.ExtContext
}

func NewPlayerStatsRepository(db *sqlx.DB) *PlayerStatsRepository {
	return &PlayerStatsRepository{q: db}
}

func (r *PlayerStatsRepository) ListByMatch(ctx context.Context, matchID string) ([]playerstats.PlayerMatchStatistics, error) {
	query, args, err := qb.Select("*").From("player_match_statistics").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("player_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player match statistics query: %w", err)
	}
	return r.list(ctx, query, args)
}

func (r *PlayerStatsRepository) ListByPlayer(ctx context.Context, playerID string) ([]playerstats.PlayerMatchStatistics, error) {
	query, args, err := qb.Select("*").From("player_match_statistics").
		Where(qb.Eq("player_id", playerID)).
		OrderBy("match_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select player season rows query: %w", err)
	}
	return r.list(ctx, query, args)
}

func (r *PlayerStatsRepository) BulkCreate(ctx context.Context, items []playerstats.PlayerMatchStatistics) error {
	if len(items) == 0 {
		return nil
	}

	models := make([]playerStatsTableModel, 0, len(items))
	for _, item := range items {
		models = append(models, playerStatsToRow(item))
	}

	for start := 0; start < len(models); start += playerStatsInsertChunkSize {
		end := start + playerStatsInsertChunkSize
		if end > len(models) {
			end = len(models)
		}

		query, args, err := qb.InsertModels("player_match_statistics", models[start:end], "")
		if err != nil {
			return fmt.Errorf("build insert player match statistics query: %w", err)
		}
		if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert player match statistics: %w", err)
		}
	}
	return nil
}

func (r *PlayerStatsRepository) list(ctx context.Context, query string, args []any) ([]playerstats.PlayerMatchStatistics, error) {
	var rows []playerStatsTableModel
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select player match statistics: %w", err)
	}

	out := make([]playerstats.PlayerMatchStatistics, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerStatsFromRow(row))
	}
	return out, nil
}

func playerStatsToRow(item playerstats.PlayerMatchStatistics) playerStatsTableModel {
	return playerStatsTableModel{
		MatchID:           item.MatchID,
		PlayerID:          item.PlayerID,
		Goals:             item.Goals,
		Assists:           item.Assists,
		ExpectedGoals:     item.ExpectedGoals,
		TotalShots:        item.TotalShots,
		ShotsOnTarget:     item.ShotsOnTarget,
		ShotsOffTarget:    item.ShotsOffTarget,
		TotalPasses:       item.TotalPasses,
		CompletedPasses:   item.CompletedPasses,
		PassCompletionPct: item.PassCompletionPct,
		FinalThirdPasses:  item.FinalThirdPasses,
		ShortPasses:       item.ShortPasses,
		LongPasses:        item.LongPasses,
		Crosses:           item.Crosses,
		TotalDribbles:     item.TotalDribbles,
		CompletedDribbles: item.CompletedDribbles,
		DribbleSuccessPct: item.DribbleSuccessPct,
		Tackles:           item.Tackles,
		TacklesWon:        item.TacklesWon,
		TackleSuccessPct:  item.TackleSuccessPct,
		Interceptions:     item.Interceptions,
		BallRecoveries:    item.BallRecoveries,
	}
}

func playerStatsFromRow(row playerStatsTableModel) playerstats.PlayerMatchStatistics {
	return playerstats.PlayerMatchStatistics{
		MatchID:           row.MatchID,
		PlayerID:          row.PlayerID,
		Goals:             row.Goals,
		Assists:           row.Assists,
		ExpectedGoals:     row.ExpectedGoals,
		TotalShots:        row.TotalShots,
		ShotsOnTarget:     row.ShotsOnTarget,
		ShotsOffTarget:    row.ShotsOffTarget,
		TotalPasses:       row.TotalPasses,
		CompletedPasses:   row.CompletedPasses,
		PassCompletionPct: row.PassCompletionPct,
		FinalThirdPasses:  row.FinalThirdPasses,
		ShortPasses:       row.ShortPasses,
		LongPasses:        row.LongPasses,
		Crosses:           row.Crosses,
		TotalDribbles:     row.TotalDribbles,
		CompletedDribbles: row.CompletedDribbles,
		DribbleSuccessPct: row.DribbleSuccessPct,
		Tackles:           row.Tackles,
		TacklesWon:        row.TacklesWon,
		TackleSuccessPct:  row.TackleSuccessPct,
		Interceptions:     row.Interceptions,
		BallRecoveries:    row.BallRecoveries,
	}
}

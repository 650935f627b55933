package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clubpulse/matchday/internal/domain/event"
	"github.com/clubpulse/matchday/internal/domain/matchstats"
	qb "github.com/clubpulse/matchday/internal/platform/querybuilder"
)

type MatchStatsRepository struct {
	q sqlx.ExtContext
}

func NewMatchStatsRepository(db *sqlx.DB) *MatchStatsRepository {
	return &MatchStatsRepository{q: db}
}

func (r *MatchStatsRepository) ListByMatch(ctx context.Context, matchID string) ([]matchstats.MatchStatistics, error) {
	query, args, err := qb.Select("*").From("match_statistics").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("role").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select match statistics query: %w", err)
	}

	var rows []matchStatsTableModel
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select match statistics: %w", err)
	}

	out := make([]matchstats.MatchStatistics, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchStatsFromRow(row))
	}
	return out, nil
}

func (r *MatchStatsRepository) ListByClubAndRole(ctx context.Context, clubID string, role event.TeamRole) ([]matchstats.MatchStatistics, error) {
	query, args, err := qb.Select("ms.*").From("match_statistics ms").
		Where(
			qb.Expr("ms.match_id IN (SELECT id FROM matches WHERE club_id = ?)", clubID),
			qb.Eq("ms.role", string(role)),
		).
		OrderBy("ms.match_id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select club match statistics query: %w", err)
	}

	var rows []matchStatsTableModel
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select club match statistics: %w", err)
	}

	out := make([]matchstats.MatchStatistics, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchStatsFromRow(row))
	}
	return out, nil
}

func (r *MatchStatsRepository) BulkCreate(ctx context.Context, items []matchstats.MatchStatistics) error {
	if len(items) == 0 {
		return nil
	}

	models := make([]matchStatsTableModel, 0, len(items))
	for _, item := range items {
		models = append(models, matchStatsToRow(item))
	}

	query, args, err := qb.InsertModels("match_statistics", models, "")
	if err != nil {
		return fmt.Errorf("build insert match statistics query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match statistics: %w", err)
	}
	return nil
}

func matchStatsToRow(item matchstats.MatchStatistics) matchStatsTableModel {
	return matchStatsTableModel{
		MatchID:           item.MatchID,
		Role:              string(item.Role),
		PossessionPct:     item.PossessionPct,
		ExpectedGoals:     item.ExpectedGoals,
		TotalShots:        item.TotalShots,
		ShotsOnTarget:     item.ShotsOnTarget,
		ShotsOffTarget:    item.ShotsOffTarget,
		GoalkeeperSaves:   item.GoalkeeperSaves,
		TotalPasses:       item.TotalPasses,
		CompletedPasses:   item.CompletedPasses,
		PassCompletionPct: item.PassCompletionPct,
		FinalThirdPasses:  item.FinalThirdPasses,
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

func matchStatsFromRow(row matchStatsTableModel) matchstats.MatchStatistics {
	return matchstats.MatchStatistics{
		MatchID:           row.MatchID,
		Role:              event.TeamRole(row.Role),
		PossessionPct:     row.PossessionPct,
		ExpectedGoals:     row.ExpectedGoals,
		TotalShots:        row.TotalShots,
		ShotsOnTarget:     row.ShotsOnTarget,
		ShotsOffTarget:    row.ShotsOffTarget,
		GoalkeeperSaves:   row.GoalkeeperSaves,
		TotalPasses:       row.TotalPasses,
		CompletedPasses:   row.CompletedPasses,
		PassCompletionPct: row.PassCompletionPct,
		FinalThirdPasses:  row.FinalThirdPasses,
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

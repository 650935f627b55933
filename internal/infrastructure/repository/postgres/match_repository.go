package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/clubpulse/matchday/internal/domain/event"
	"github.com/clubpulse/matchday/internal/domain/match"
	qb "github.com/clubpulse/matchday/internal/platform/querybuilder"
)

type MatchRepository struct {
	q sqlx.ExtContext
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{q: db}
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match: %w", err)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) FindByClubAndKickoff(ctx context.Context, clubID string, kickoffAt time.Time) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(
			qb.Eq("club_id", clubID),
			qb.Eq("kickoff_at", kickoffAt),
		).
		Limit(1).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build select match by kickoff query: %w", err)
	}

	var row matchTableModel
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("select match by kickoff: %w", err)
	}
	return matchFromRow(row), true, nil
}

func (r *MatchRepository) ListByClub(ctx context.Context, clubID string) ([]match.Match, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("club_id", clubID)).
		OrderBy("kickoff_at", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select club matches query: %w", err)
	}

	var rows []matchTableModel
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select club matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}
	return out, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	model := matchTableModel{
		ID:                item.ID,
		ClubID:            item.ClubID,
		OpponentID:        item.OpponentID,
		KickoffAt:         item.KickoffAt,
		Home:              item.Home,
		DeclaredHomeScore: item.DeclaredHomeScore,
		DeclaredAwayScore: item.DeclaredAwayScore,
		ScoreText:         item.ScoreText,
		CreatedAt:         item.CreatedAt,
	}

	query, args, err := qb.InsertModel("matches", model, "")
	if err != nil {
		return fmt.Errorf("build insert match query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert match: %w", err)
	}
	return nil
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:                row.ID,
		ClubID:            row.ClubID,
		OpponentID:        row.OpponentID,
		KickoffAt:         row.KickoffAt,
		Home:              row.Home,
		DeclaredHomeScore: row.DeclaredHomeScore,
		DeclaredAwayScore: row.DeclaredAwayScore,
		ScoreText:         row.ScoreText,
		CreatedAt:         row.CreatedAt,
	}
}

type GoalRepository struct {
	q sqlx.ExtContext
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{q: db}
}

func (r *GoalRepository) ListByMatch(ctx context.Context, matchID string) ([]match.Goal, error) {
	query, args, err := qb.Select("*").From("goals").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("period", "minute", "second", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select goals query: %w", err)
	}

	var rows []goalTableModel
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select goals: %w", err)
	}

	out := make([]match.Goal, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Goal{
			ID:         row.ID,
			MatchID:    row.MatchID,
			Role:       event.TeamRole(row.Role),
			ScorerName: row.ScorerName,
			AssistName: row.AssistName,
			Period:     row.Period,
			Minute:     row.Minute,
			Second:     row.Second,
			TypeName:   row.TypeName,
			BodyPart:   row.BodyPart,
		})
	}
	return out, nil
}

func (r *GoalRepository) BulkCreate(ctx context.Context, items []match.Goal) error {
	if len(items) == 0 {
		return nil
	}

	models := make([]goalTableModel, 0, len(items))
	for _, item := range items {
		models = append(models, goalTableModel{
			ID:         item.ID,
			MatchID:    item.MatchID,
			Role:       string(item.Role),
			ScorerName: item.ScorerName,
			AssistName: item.AssistName,
			Period:     item.Period,
			Minute:     item.Minute,
			Second:     item.Second,
			TypeName:   item.TypeName,
			BodyPart:   item.BodyPart,
		})
	}

	query, args, err := qb.InsertModels("goals", models, "")
	if err != nil {
		return fmt.Errorf("build insert goals query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("insert goals: %w", err)
	}
	return nil
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clubpulse/matchday/internal/domain/club"
	qb "github.com/clubpulse/matchday/internal/platform/querybuilder"
)

type ClubRepository struct {
	q sqlx.ExtContext
}

func NewClubRepository(db *sqlx.DB) *ClubRepository {
	return &ClubRepository{q: db}
}

func (r *ClubRepository) GetByID(ctx context.Context, clubID string) (club.Club, bool, error) {
	query, args, err := qb.Select("*").From("clubs").
		Where(qb.Eq("id", clubID)).
		ToSQL()
	if err != nil {
		return club.Club{}, false, fmt.Errorf("build select club query: %w", err)
	}

	var row clubTableModel
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return club.Club{}, false, nil
		}
		return club.Club{}, false, fmt.Errorf("select club: %w", err)
	}
	return clubFromRow(row), true, nil
}

func (r *ClubRepository) List(ctx context.Context) ([]club.Club, error) {
	query, args, err := qb.Select("*").From("clubs").
		OrderBy("id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select clubs query: %w", err)
	}

	var rows []clubTableModel
	if err := sqlx.SelectContext(ctx, r.q, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select clubs: %w", err)
	}

	out := make([]club.Club, 0, len(rows))
	for _, row := range rows {
		out = append(out, clubFromRow(row))
	}
	return out, nil
}

func (r *ClubRepository) SetFeedTeamID(ctx context.Context, clubID string, feedTeamID int) error {
	query, args, err := qb.Update("clubs").
		Set("feed_team_id", feedTeamID).
		SetExpr("updated_at", "NOW()").
		Where(qb.Eq("id", clubID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build update club feed team id query: %w", err)
	}

	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("update club feed team id: %w", err)
	}
	return nil
}

func clubFromRow(row clubTableModel) club.Club {
	return club.Club{
		ID:         row.ID,
		Name:       row.Name,
		FeedTeamID: row.FeedTeamID,
		CreatedAt:  row.CreatedAt,
		UpdatedAt:  row.UpdatedAt,
	}
}

package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/clubpulse/matchday/internal/domain/clubseason"
	"github.com/clubpulse/matchday/internal/domain/playerseason"
	qb "github.com/clubpulse/matchday/internal/platform/querybuilder"
)

type ClubSeasonRepository struct {
	q sqlx.ExtContext
}

func NewClubSeasonRepository(db *sqlx.DB) *ClubSeasonRepository {
	return &ClubSeasonRepository{q: db}
}

func (r *ClubSeasonRepository) GetByClub(ctx context.Context, clubID string) (clubseason.ClubSeasonStatistics, bool, error) {
	query, args, err := qb.Select("*").From("club_season_statistics").
		Where(qb.Eq("club_id", clubID)).
		ToSQL()
	if err != nil {
		return clubseason.ClubSeasonStatistics{}, false, fmt.Errorf("build select club season query: %w", err)
	}

	var row clubSeasonTableModel
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return clubseason.ClubSeasonStatistics{}, false, nil
		}
		return clubseason.ClubSeasonStatistics{}, false, fmt.Errorf("select club season: %w", err)
	}
	return clubSeasonFromRow(row), true, nil
}

// Upsert fully overwrites the club's single season row.
func (r *ClubSeasonRepository) Upsert(ctx context.Context, item clubseason.ClubSeasonStatistics) error {
	model := clubSeasonToRow(item)

	query, args, err := qb.InsertModel("club_season_statistics", model, `ON CONFLICT (club_id)
DO UPDATE SET
    matches_played = EXCLUDED.matches_played,
    wins = EXCLUDED.wins,
    draws = EXCLUDED.draws,
    losses = EXCLUDED.losses,
    goals_scored = EXCLUDED.goals_scored,
    goals_conceded = EXCLUDED.goals_conceded,
    total_shots = EXCLUDED.total_shots,
    shots_per_game = EXCLUDED.shots_per_game,
    shots_on_target_per_game = EXCLUDED.shots_on_target_per_game,
    expected_goals = EXCLUDED.expected_goals,
    avg_possession_pct = EXCLUDED.avg_possession_pct,
    total_passes = EXCLUDED.total_passes,
    passes_per_game = EXCLUDED.passes_per_game,
    pass_completion_pct = EXCLUDED.pass_completion_pct,
    tackle_success_pct = EXCLUDED.tackle_success_pct,
    dribble_success_pct = EXCLUDED.dribble_success_pct,
    interceptions_per_game = EXCLUDED.interceptions_per_game,
    ball_recoveries_per_game = EXCLUDED.ball_recoveries_per_game,
    updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return fmt.Errorf("build upsert club season query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert club season: %w", err)
	}
	return nil
}

func clubSeasonToRow(item clubseason.ClubSeasonStatistics) clubSeasonTableModel {
	return clubSeasonTableModel{
		ClubID:                item.ClubID,
		MatchesPlayed:         item.MatchesPlayed,
		Wins:                  item.Wins,
		Draws:                 item.Draws,
		Losses:                item.Losses,
		GoalsScored:           item.GoalsScored,
		GoalsConceded:         item.GoalsConceded,
		TotalShots:            item.TotalShots,
		ShotsPerGame:          item.ShotsPerGame,
		ShotsOnTargetPerGame:  item.ShotsOnTargetPerGame,
		ExpectedGoals:         item.ExpectedGoals,
		AvgPossessionPct:      item.AvgPossessionPct,
		TotalPasses:           item.TotalPasses,
		PassesPerGame:         item.PassesPerGame,
		PassCompletionPct:     item.PassCompletionPct,
		TackleSuccessPct:      item.TackleSuccessPct,
		DribbleSuccessPct:     item.DribbleSuccessPct,
		InterceptionsPerGame:  item.InterceptionsPerGame,
		BallRecoveriesPerGame: item.BallRecoveriesPerGame,
		UpdatedAt:             item.UpdatedAt,
	}
}

func clubSeasonFromRow(row clubSeasonTableModel) clubseason.ClubSeasonStatistics {
	return clubseason.ClubSeasonStatistics{
		ClubID:                row.ClubID,
		MatchesPlayed:         row.MatchesPlayed,
		Wins:                  row.Wins,
		Draws:                 row.Draws,
		Losses:                row.Losses,
		GoalsScored:           row.GoalsScored,
		GoalsConceded:         row.GoalsConceded,
		TotalShots:            row.TotalShots,
		ShotsPerGame:          row.ShotsPerGame,
		ShotsOnTargetPerGame:  row.ShotsOnTargetPerGame,
		ExpectedGoals:         row.ExpectedGoals,
		AvgPossessionPct:      row.AvgPossessionPct,
		TotalPasses:           row.TotalPasses,
		PassesPerGame:         row.PassesPerGame,
		PassCompletionPct:     row.PassCompletionPct,
		TackleSuccessPct:      row.TackleSuccessPct,
		DribbleSuccessPct:     row.DribbleSuccessPct,
		InterceptionsPerGame:  row.InterceptionsPerGame,
		BallRecoveriesPerGame: row.BallRecoveriesPerGame,
		UpdatedAt:             row.UpdatedAt,
	}
}

type PlayerSeasonRepository struct {
	q sqlx.ExtContext
}

func NewPlayerSeasonRepository(db *sqlx.DB) *PlayerSeasonRepository {
	return &PlayerSeasonRepository{q: db}
}

func (r *PlayerSeasonRepository) GetByPlayer(ctx context.Context, playerID string) (playerseason.PlayerSeasonStatistics, bool, error) {
	query, args, err := qb.Select("*").From("player_season_statistics").
		Where(qb.Eq("player_id", playerID)).
		ToSQL()
	if err != nil {
		return playerseason.PlayerSeasonStatistics{}, false, fmt.Errorf("build select player season query: %w", err)
	}

	var row playerSeasonTableModel
	if err := sqlx.GetContext(ctx, r.q, &row, query, args...); err != nil {
		if isNotFound(err) {
			return playerseason.PlayerSeasonStatistics{}, false, nil
		}
		return playerseason.PlayerSeasonStatistics{}, false, fmt.Errorf("select player season: %w", err)
	}
	return playerSeasonFromRow(row), true, nil
}

// Upsert fully overwrites the player's single season row.
func (r *PlayerSeasonRepository) Upsert(ctx context.Context, item playerseason.PlayerSeasonStatistics) error {
	model := playerSeasonToRow(item)

	query, args, err := qb.InsertModel("player_season_statistics", model, `ON CONFLICT (player_id)
DO UPDATE SET
    matches_played = EXCLUDED.matches_played,
    goals = EXCLUDED.goals,
    assists = EXCLUDED.assists,
    total_shots = EXCLUDED.total_shots,
    shots_on_target = EXCLUDED.shots_on_target,
    shots_per_game = EXCLUDED.shots_per_game,
    expected_goals = EXCLUDED.expected_goals,
    total_passes = EXCLUDED.total_passes,
    pass_completion_pct = EXCLUDED.pass_completion_pct,
    final_third_passes = EXCLUDED.final_third_passes,
    short_passes = EXCLUDED.short_passes,
    long_passes = EXCLUDED.long_passes,
    crosses = EXCLUDED.crosses,
    total_dribbles = EXCLUDED.total_dribbles,
    dribble_success_pct = EXCLUDED.dribble_success_pct,
    tackles = EXCLUDED.tackles,
    tackle_success_pct = EXCLUDED.tackle_success_pct,
    interceptions = EXCLUDED.interceptions,
    ball_recoveries = EXCLUDED.ball_recoveries,
    rating_attacking = EXCLUDED.rating_attacking,
    rating_technique = EXCLUDED.rating_technique,
    rating_tactical = EXCLUDED.rating_tactical,
    rating_defending = EXCLUDED.rating_defending,
    rating_creativity = EXCLUDED.rating_creativity,
    updated_at = EXCLUDED.updated_at`)
	if err != nil {
		return fmt.Errorf("build upsert player season query: %w", err)
	}
	if _, err := r.q.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("upsert player season: %w", err)
	}
	return nil
}

func playerSeasonToRow(item playerseason.PlayerSeasonStatistics) playerSeasonTableModel {
	return playerSeasonTableModel{
		PlayerID:          item.PlayerID,
		MatchesPlayed:     item.MatchesPlayed,
		Goals:             item.Goals,
		Assists:           item.Assists,
		TotalShots:        item.TotalShots,
		ShotsOnTarget:     item.ShotsOnTarget,
		ShotsPerGame:      item.ShotsPerGame,
		ExpectedGoals:     item.ExpectedGoals,
		TotalPasses:       item.TotalPasses,
		PassCompletionPct: item.PassCompletionPct,
		FinalThirdPasses:  item.FinalThirdPasses,
		ShortPasses:       item.ShortPasses,
		LongPasses:        item.LongPasses,
		Crosses:           item.Crosses,
		TotalDribbles:     item.TotalDribbles,
		DribbleSuccessPct: item.DribbleSuccessPct,
		Tackles:           item.Tackles,
		TackleSuccessPct:  item.TackleSuccessPct,
		Interceptions:     item.Interceptions,
		BallRecoveries:    item.BallRecoveries,
		RatingAttacking:   item.Ratings.Attacking,
		RatingTechnique:   item.Ratings.Technique,
		RatingTactical:    item.Ratings.Tactical,
		RatingDefending:   item.Ratings.Defending,
		RatingCreativity:  item.Ratings.Creativity,
		UpdatedAt:         item.UpdatedAt,
	}
}

func playerSeasonFromRow(row playerSeasonTableModel) playerseason.PlayerSeasonStatistics {
	return playerseason.PlayerSeasonStatistics{
		PlayerID:          row.PlayerID,
		MatchesPlayed:     row.MatchesPlayed,
		Goals:             row.Goals,
		Assists:           row.Assists,
		TotalShots:        row.TotalShots,
		ShotsOnTarget:     row.ShotsOnTarget,
		ShotsPerGame:      row.ShotsPerGame,
		ExpectedGoals:     row.ExpectedGoals,
		TotalPasses:       row.TotalPasses,
		PassCompletionPct: row.PassCompletionPct,
		FinalThirdPasses:  row.FinalThirdPasses,
		ShortPasses:       row.ShortPasses,
		LongPasses:        row.LongPasses,
		Crosses:           row.Crosses,
		TotalDribbles:     row.TotalDribbles,
		DribbleSuccessPct: row.DribbleSuccessPct,
		Tackles:           row.Tackles,
		TackleSuccessPct:  row.TackleSuccessPct,
		Interceptions:     row.Interceptions,
		BallRecoveries:    row.BallRecoveries,
		Ratings: playerseason.AttributeRatings{
			Attacking:  row.RatingAttacking,
			Technique:  row.RatingTechnique,
			Tactical:   row.RatingTactical,
			Defending:  row.RatingDefending,
			Creativity: row.RatingCreativity,
		},
		UpdatedAt: row.UpdatedAt,
	}
}

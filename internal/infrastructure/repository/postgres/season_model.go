package postgres

import "time"

type clubSeasonTableModel struct {
	ClubID        string `db:"club_id"`
	MatchesPlayed int    `db:"matches_played"`
	Wins          int    `db:"wins"`
	Draws         int    `db:"draws"`
	Losses        int    `db:"losses"`
	GoalsScored   int    `db:"goals_scored"`
	GoalsConceded int    `db:"goals_conceded"`

	TotalShots           *int     `db:"total_shots"`
	ShotsPerGame         *float64 `db:"shots_per_game"`
	ShotsOnTargetPerGame *float64 `db:"shots_on_target_per_game"`
	ExpectedGoals        *float64 `db:"expected_goals"`
	AvgPossessionPct     *float64 `db:"avg_possession_pct"`

	TotalPasses       *int     `db:"total_passes"`
	PassesPerGame     *float64 `db:"passes_per_game"`
	PassCompletionPct *float64 `db:"pass_completion_pct"`

	TackleSuccessPct      *float64 `db:"tackle_success_pct"`
	DribbleSuccessPct     *float64 `db:"dribble_success_pct"`
	InterceptionsPerGame  *float64 `db:"interceptions_per_game"`
	BallRecoveriesPerGame *float64 `db:"ball_recoveries_per_game"`

	UpdatedAt time.Time `db:"updated_at"`
}

type playerSeasonTableModel struct {
	PlayerID      string `db:"player_id"`
	MatchesPlayed int    `db:"matches_played"`
	Goals         int    `db:"goals"`
	Assists       int    `db:"assists"`

	TotalShots    *int     `db:"total_shots"`
	ShotsOnTarget *int     `db:"shots_on_target"`
	ShotsPerGame  *float64 `db:"shots_per_game"`
	ExpectedGoals *float64 `db:"expected_goals"`

	TotalPasses       *int     `db:"total_passes"`
	PassCompletionPct *float64 `db:"pass_completion_pct"`
	FinalThirdPasses  *int     `db:"final_third_passes"`
	ShortPasses       *int     `db:"short_passes"`
	LongPasses        *int     `db:"long_passes"`
	Crosses           *int     `db:"crosses"`

	TotalDribbles     *int     `db:"total_dribbles"`
	DribbleSuccessPct *float64 `db:"dribble_success_pct"`

	Tackles          *int     `db:"tackles"`
	TackleSuccessPct *float64 `db:"tackle_success_pct"`
	Interceptions    *int     `db:"interceptions"`
	BallRecoveries   *int     `db:"ball_recoveries"`

	RatingAttacking  int `db:"rating_attacking"`
	RatingTechnique  int `db:"rating_technique"`
	RatingTactical   int `db:"rating_tactical"`
	RatingDefending  int `db:"rating_defending"`
	RatingCreativity int `db:"rating_creativity"`

	UpdatedAt time.Time `db:"updated_at"`
}

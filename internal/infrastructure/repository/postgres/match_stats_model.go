package postgres

type matchStatsTableModel struct {
	MatchID string `db:"match_id"`
	Role    string `db:"role"`

	PossessionPct *float64 `db:"possession_pct"`
	ExpectedGoals *float64 `db:"expected_goals"`

	TotalShots      *int `db:"total_shots"`
	ShotsOnTarget   *int `db:"shots_on_target"`
	ShotsOffTarget  *int `db:"shots_off_target"`
	GoalkeeperSaves *int `db:"goalkeeper_saves"`

	TotalPasses       *int     `db:"total_passes"`
	CompletedPasses   *int     `db:"completed_passes"`
	PassCompletionPct *float64 `db:"pass_completion_pct"`
	FinalThirdPasses  *int     `db:"final_third_passes"`
	LongPasses        *int     `db:"long_passes"`
	Crosses           *int     `db:"crosses"`

	TotalDribbles     *int     `db:"total_dribbles"`
	CompletedDribbles *int     `db:"completed_dribbles"`
	DribbleSuccessPct *float64 `db:"dribble_success_pct"`

	Tackles          *int     `db:"tackles"`
	TacklesWon       *int     `db:"tackles_won"`
	TackleSuccessPct *float64 `db:"tackle_success_pct"`

	Interceptions  *int `db:"interceptions"`
	BallRecoveries *int `db:"ball_recoveries"`
}

type playerStatsTableModel struct {
	MatchID  string `db:"match_id"`
	PlayerID string `db:"player_id"`

	Goals   int `db:"goals"`
	Assists int `db:"assists"`

	ExpectedGoals  *float64 `db:"expected_goals"`
	TotalShots     *int     `db:"total_shots"`
	ShotsOnTarget  *int     `db:"shots_on_target"`
	ShotsOffTarget *int     `db:"shots_off_target"`

	TotalPasses       *int     `db:"total_passes"`
	CompletedPasses   *int     `db:"completed_passes"`
	PassCompletionPct *float64 `db:"pass_completion_pct"`
	FinalThirdPasses  *int     `db:"final_third_passes"`
	ShortPasses       *int     `db:"short_passes"`
	LongPasses        *int     `db:"long_passes"`
	Crosses           *int     `db:"crosses"`

	TotalDribbles     *int     `db:"total_dribbles"`
	CompletedDribbles *int     `db:"completed_dribbles"`
	DribbleSuccessPct *float64 `db:"dribble_success_pct"`

	Tackles          *int     `db:"tackles"`
	TacklesWon       *int     `db:"tackles_won"`
	TackleSuccessPct *float64 `db:"tackle_success_pct"`

	Interceptions  *int `db:"interceptions"`
	BallRecoveries *int `db:"ball_recoveries"`
}

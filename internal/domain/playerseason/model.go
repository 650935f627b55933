package playerseason

import "time"

// AttributeRatings are five bounded skill scores derived from the season
// rollup; each is an integer in [0,100].
type AttributeRatings struct {
	Attacking  int
	Technique  int
	Tactical   int
	Defending  int
	Creativity int
}

// PlayerSeasonStatistics is the single season rollup row per player, fully
// overwritten on every recompute.
type PlayerSeasonStatistics struct {
	PlayerID      string
	MatchesPlayed int
	Goals         int
	Assists       int

	TotalShots    *int
	ShotsOnTarget *int
	ShotsPerGame  *float64
	ExpectedGoals *float64

	TotalPasses       *int
	PassCompletionPct *float64
	FinalThirdPasses  *int
	ShortPasses       *int
	LongPasses        *int
	Crosses           *int

	TotalDribbles     *int
	DribbleSuccessPct *float64

	Tackles          *int
	TackleSuccessPct *float64
	Interceptions    *int
	BallRecoveries   *int

	Ratings AttributeRatings

	UpdatedAt time.Time
}

package clubseason

import "time"

// ClubSeasonStatistics is the single season rollup row per club, fully
// overwritten on every recompute so it can never drift from match-level
// truth.
type ClubSeasonStatistics struct {
	ClubID        string
	MatchesPlayed int
	Wins          int
	Draws         int
	Losses        int
	GoalsScored   int
	GoalsConceded int

	TotalShots           *int
	ShotsPerGame         *float64
	ShotsOnTargetPerGame *float64
	ExpectedGoals        *float64
	AvgPossessionPct     *float64

	TotalPasses       *int
	PassesPerGame     *float64
	PassCompletionPct *float64

	TackleSuccessPct      *float64
	DribbleSuccessPct     *float64
	InterceptionsPerGame  *float64
	BallRecoveriesPerGame *float64

	UpdatedAt time.Time
}

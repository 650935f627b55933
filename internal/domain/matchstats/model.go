package matchstats

import "github.com/clubpulse/matchday/internal/domain/event"

// MatchStatistics is one statistics snapshot per (match, team-role). Exactly
// two rows exist per match. Counters are nil, not zero, when nothing of that
// kind occurred; every rate is nil exactly when its denominator is zero.
type MatchStatistics struct {
	MatchID string
	Role    event.TeamRole

	PossessionPct *float64
	ExpectedGoals *float64

	TotalShots      *int
	ShotsOnTarget   *int
	ShotsOffTarget  *int
	GoalkeeperSaves *int

	TotalPasses       *int
	CompletedPasses   *int
	PassCompletionPct *float64
	FinalThirdPasses  *int
	LongPasses        *int
	Crosses           *int

	TotalDribbles     *int
	CompletedDribbles *int
	DribbleSuccessPct *float64

	Tackles          *int
	TacklesWon       *int
	TackleSuccessPct *float64

	Interceptions  *int
	BallRecoveries *int
}

package playerstats

// PlayerMatchStatistics is one row per (match, player) for our club's
// participating players. Counters follow the same nil-when-absent convention
// as team statistics; goals and assists are always explicit.
type PlayerMatchStatistics struct {
	MatchID  string
	PlayerID string

	Goals   int
	Assists int

	ExpectedGoals  *float64
	TotalShots     *int
	ShotsOnTarget  *int
	ShotsOffTarget *int

	TotalPasses       *int
	CompletedPasses   *int
	PassCompletionPct *float64
	FinalThirdPasses  *int
	ShortPasses       *int
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

package statistics

import (
	"github.com/clubpulse/matchday/internal/domain/clubseason"
	"github.com/clubpulse/matchday/internal/domain/match"
	"github.com/clubpulse/matchday/internal/domain/matchstats"
	"github.com/clubpulse/matchday/internal/domain/playerseason"
	"github.com/clubpulse/matchday/internal/domain/playerstats"
)

// weightedRate reconstructs each match's numerator from its already-rounded
// percentage and its own denominator, sums numerators and denominators
// separately, then redivides. Averaging the pre-rounded percentages directly
// would weight a 5-attempt match the same as a 50-attempt one.
type weightedRate struct {
	numerator   float64
	denominator float64
}

func (w *weightedRate) add(pct *float64, denominator *int) {
	if pct == nil || denominator == nil || *denominator == 0 {
		return
	}
	w.numerator += *pct / 100 * float64(*denominator)
	w.denominator += float64(*denominator)
}

func (w *weightedRate) rate() *float64 {
	if w.denominator == 0 {
		return nil
	}
	v := roundHalfUp(w.numerator/w.denominator*100, 2)
	return &v
}

// simpleMean averages the non-nil per-match values of a field that has no
// recoverable denominator (possession).
type simpleMean struct {
	sum   float64
	count int
}

func (m *simpleMean) add(v *float64) {
	if v == nil {
		return
	}
	m.sum += *v
	m.count++
}

func (m *simpleMean) mean() *float64 {
	if m.count == 0 {
		return nil
	}
	v := roundHalfUp(m.sum/float64(m.count), 2)
	return &v
}

// ComputeClubSeason recomputes the club's season rollup purely from its
// persisted our-team match snapshots and match results. Running it twice
// without new matches yields identical output.
func ComputeClubSeason(clubID string, matches []match.Match, snapshots []matchstats.MatchStatistics) clubseason.ClubSeasonStatistics {
	out := clubseason.ClubSeasonStatistics{
		ClubID:        clubID,
		MatchesPlayed: len(matches),
	}

	for _, m := range matches {
		ours, theirs := m.OurDeclaredScore(), m.OpponentDeclaredScore()
		out.GoalsScored += ours
		out.GoalsConceded += theirs
		switch {
		case ours > theirs:
			out.Wins++
		case ours < theirs:
			out.Losses++
		default:
			out.Draws++
		}
	}

	var (
		shots, onTarget, passes       int
		interceptions, recoveries     int
		xg                            float64
		possession                    simpleMean
		passRate, tackleRate, dribble weightedRate
	)

	for _, s := range snapshots {
		shots += intOrZero(s.TotalShots)
		onTarget += intOrZero(s.ShotsOnTarget)
		passes += intOrZero(s.TotalPasses)
		interceptions += intOrZero(s.Interceptions)
		recoveries += intOrZero(s.BallRecoveries)
		xg += floatOrZero(s.ExpectedGoals)

		possession.add(s.PossessionPct)
		passRate.add(s.PassCompletionPct, s.TotalPasses)
		tackleRate.add(s.TackleSuccessPct, s.Tackles)
		dribble.add(s.DribbleSuccessPct, s.TotalDribbles)
	}

	out.TotalShots = countPtr(shots)
	out.ShotsPerGame = perGame(shots, out.MatchesPlayed)
	out.ShotsOnTargetPerGame = perGame(onTarget, out.MatchesPlayed)
	out.ExpectedGoals = floatPtr(roundHalfUp(xg, 6))
	out.AvgPossessionPct = possession.mean()

	out.TotalPasses = countPtr(passes)
	out.PassesPerGame = perGame(passes, out.MatchesPlayed)
	out.PassCompletionPct = passRate.rate()

	out.TackleSuccessPct = tackleRate.rate()
	out.DribbleSuccessPct = dribble.rate()
	out.InterceptionsPerGame = perGame(interceptions, out.MatchesPlayed)
	out.BallRecoveriesPerGame = perGame(recoveries, out.MatchesPlayed)

	return out
}

// ComputePlayerSeason recomputes one player's season rollup from their
// persisted per-match rows, including the five attribute ratings.
func ComputePlayerSeason(playerID string, rows []playerstats.PlayerMatchStatistics) playerseason.PlayerSeasonStatistics {
	out := playerseason.PlayerSeasonStatistics{
		PlayerID:      playerID,
		MatchesPlayed: len(rows),
	}

	var (
		shots, onTarget, passes, finalThird int
		short, long, crosses, dribbles      int
		tackles, interceptions, recoveries  int
		xg                                  float64
		passRate, tackleRate, dribbleRate   weightedRate
	)

	for _, r := range rows {
		out.Goals += r.Goals
		out.Assists += r.Assists

		shots += intOrZero(r.TotalShots)
		onTarget += intOrZero(r.ShotsOnTarget)
		passes += intOrZero(r.TotalPasses)
		finalThird += intOrZero(r.FinalThirdPasses)
		short += intOrZero(r.ShortPasses)
		long += intOrZero(r.LongPasses)
		crosses += intOrZero(r.Crosses)
		dribbles += intOrZero(r.TotalDribbles)
		tackles += intOrZero(r.Tackles)
		interceptions += intOrZero(r.Interceptions)
		recoveries += intOrZero(r.BallRecoveries)
		xg += floatOrZero(r.ExpectedGoals)

		passRate.add(r.PassCompletionPct, r.TotalPasses)
		tackleRate.add(r.TackleSuccessPct, r.Tackles)
		dribbleRate.add(r.DribbleSuccessPct, r.TotalDribbles)
	}

	out.TotalShots = countPtr(shots)
	out.ShotsOnTarget = countPtr(onTarget)
	out.ShotsPerGame = perGame(shots, out.MatchesPlayed)
	out.ExpectedGoals = floatPtr(roundHalfUp(xg, 6))

	out.TotalPasses = countPtr(passes)
	out.PassCompletionPct = passRate.rate()
	out.FinalThirdPasses = countPtr(finalThird)
	out.ShortPasses = countPtr(short)
	out.LongPasses = countPtr(long)
	out.Crosses = countPtr(crosses)

	out.TotalDribbles = countPtr(dribbles)
	out.DribbleSuccessPct = dribbleRate.rate()

	out.Tackles = countPtr(tackles)
	out.TackleSuccessPct = tackleRate.rate()
	out.Interceptions = countPtr(interceptions)
	out.BallRecoveries = countPtr(recoveries)

	out.Ratings = ComputeAttributeRatings(out)

	return out
}

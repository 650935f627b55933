package statistics

import "github.com/clubpulse/matchday/internal/domain/playerseason"

// Rating weights. The inputs are per-game counts and season percentages;
// each weighted sum is clamped to [0,100] before storage.
const (
	attackGoalsWeight   = 40.0
	attackAssistsWeight = 20.0
	attackShotsWeight   = 8.0

	techniquePassWeight    = 0.7
	techniqueDribbleWeight = 0.3

	tacticalPassWeight    = 0.65
	tacticalDribbleWeight = 8.0
	tacticalDribbleCap    = 35.0

	defendTacklesWeight       = 12.0
	defendTackleRateWeight    = 0.4
	defendInterceptionsWeight = 10.0

	creativityAssistsWeight = 35.0
	creativityPassWeight    = 0.5
)

// ComputeAttributeRatings derives the five bounded skill ratings from a
// season rollup. Pure function of its input.
func ComputeAttributeRatings(s playerseason.PlayerSeasonStatistics) playerseason.AttributeRatings {
	games := float64(s.MatchesPlayed)
	if games == 0 {
		return playerseason.AttributeRatings{}
	}

	goalsPerGame := float64(s.Goals) / games
	assistsPerGame := float64(s.Assists) / games
	shotsPerGame := float64(intOrZero(s.TotalShots)) / games
	tacklesPerGame := float64(intOrZero(s.Tackles)) / games
	interceptionsPerGame := float64(intOrZero(s.Interceptions)) / games
	dribblesPerGame := float64(intOrZero(s.TotalDribbles)) / games

	passAccuracy := floatOrZero(s.PassCompletionPct)
	dribbleSuccess := floatOrZero(s.DribbleSuccessPct)
	tackleSuccess := floatOrZero(s.TackleSuccessPct)

	dribbleInvolvement := dribblesPerGame * tacticalDribbleWeight
	if dribbleInvolvement > tacticalDribbleCap {
		dribbleInvolvement = tacticalDribbleCap
	}

	return playerseason.AttributeRatings{
		Attacking: clampRating(goalsPerGame*attackGoalsWeight +
			assistsPerGame*attackAssistsWeight +
			shotsPerGame*attackShotsWeight),
		Technique: clampRating(passAccuracy*techniquePassWeight +
			dribbleSuccess*techniqueDribbleWeight),
		Tactical: clampRating(passAccuracy*tacticalPassWeight +
			dribbleInvolvement),
		Defending: clampRating(tacklesPerGame*defendTacklesWeight +
			tackleSuccess*defendTackleRateWeight +
			interceptionsPerGame*defendInterceptionsWeight),
		Creativity: clampRating(assistsPerGame*creativityAssistsWeight +
			passAccuracy*creativityPassWeight),
	}
}

func clampRating(v float64) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return int(roundHalfUp(v, 0))
}

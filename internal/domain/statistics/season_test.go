package statistics

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/clubpulse/matchday/internal/domain/event"
	"github.com/clubpulse/matchday/internal/domain/match"
	"github.com/clubpulse/matchday/internal/domain/matchstats"
	"github.com/clubpulse/matchday/internal/domain/playerstats"
)

func intp(v int) *int { return &v }

func floatp(v float64) *float64 { return &v }

// Two matches with tackle figures (10 attempts, 70%) and (5 attempts, 40%)
// must aggregate to 60.00%, not the naive 55% average of averages.
func TestComputeClubSeason_WeightedBackCalculation(t *testing.T) {
	snapshots := []matchstats.MatchStatistics{
		{Tackles: intp(10), TackleSuccessPct: floatp(70)},
		{Tackles: intp(5), TackleSuccessPct: floatp(40)},
	}
	matches := []match.Match{
		{Home: true, DeclaredHomeScore: 1, DeclaredAwayScore: 0},
		{Home: false, DeclaredHomeScore: 2, DeclaredAwayScore: 2},
	}

	season := ComputeClubSeason("club-1", matches, snapshots)

	require.NotNil(t, season.TackleSuccessPct)
	require.Equal(t, 60.00, *season.TackleSuccessPct)
}

func TestComputeClubSeason_ResultsAndAverages(t *testing.T) {
	matches := []match.Match{
		{Home: true, DeclaredHomeScore: 3, DeclaredAwayScore: 1},  // win 3-1
		{Home: false, DeclaredHomeScore: 2, DeclaredAwayScore: 0}, // loss 0-2
		{Home: true, DeclaredHomeScore: 1, DeclaredAwayScore: 1},  // draw
	}
	snapshots := []matchstats.MatchStatistics{
		{TotalShots: intp(12), ShotsOnTarget: intp(5), TotalPasses: intp(400),
			PassCompletionPct: floatp(85), PossessionPct: floatp(60), ExpectedGoals: floatp(1.5)},
		{TotalShots: intp(6), ShotsOnTarget: intp(2), TotalPasses: intp(300),
			PassCompletionPct: floatp(80), PossessionPct: floatp(45), ExpectedGoals: floatp(0.8)},
		{TotalShots: intp(9), ShotsOnTarget: intp(4), TotalPasses: intp(350),
			PassCompletionPct: floatp(82), ExpectedGoals: floatp(1.2)},
	}

	season := ComputeClubSeason("club-1", matches, snapshots)

	require.Equal(t, 3, season.MatchesPlayed)
	require.Equal(t, 1, season.Wins)
	require.Equal(t, 1, season.Draws)
	require.Equal(t, 1, season.Losses)
	require.Equal(t, 4, season.GoalsScored)
	require.Equal(t, 4, season.GoalsConceded)

	require.Equal(t, 27, *season.TotalShots)
	require.Equal(t, 9.00, *season.ShotsPerGame)
	require.InDelta(t, 3.67, *season.ShotsOnTargetPerGame, 0.001)
	require.Equal(t, 3.5, *season.ExpectedGoals)

	// Possession averages the two matches that have a value.
	require.Equal(t, 52.5, *season.AvgPossessionPct)

	// Weighted: (0.85*400 + 0.80*300 + 0.82*350) / 1050.
	require.InDelta(t, 82.57, *season.PassCompletionPct, 0.001)
}

func TestComputeClubSeason_EmptySeason(t *testing.T) {
	season := ComputeClubSeason("club-1", nil, nil)

	require.Equal(t, 0, season.MatchesPlayed)
	require.Nil(t, season.TotalShots)
	require.Nil(t, season.ShotsPerGame)
	require.Nil(t, season.PassCompletionPct)
	require.Nil(t, season.AvgPossessionPct)
}

// Recomputing with the same inputs must produce identical output.
func TestComputeClubSeason_Idempotent(t *testing.T) {
	matches := []match.Match{{Home: true, DeclaredHomeScore: 2, DeclaredAwayScore: 1}}
	snapshots := []matchstats.MatchStatistics{
		{TotalShots: intp(7), TotalPasses: intp(280), PassCompletionPct: floatp(79.35),
			Tackles: intp(14), TackleSuccessPct: floatp(64.29)},
	}

	first := ComputeClubSeason("club-1", matches, snapshots)
	second := ComputeClubSeason("club-1", matches, snapshots)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("season recompute not idempotent:\nfirst  %+v\nsecond %+v", first, second)
	}
}

func TestComputePlayerSeason_RollupAndRatings(t *testing.T) {
	rows := []playerstats.PlayerMatchStatistics{
		{MatchID: "m1", PlayerID: "pl-1", Goals: 2, Assists: 1,
			TotalShots: intp(5), ShotsOnTarget: intp(3), TotalPasses: intp(30),
			PassCompletionPct: floatp(90), TotalDribbles: intp(4), DribbleSuccessPct: floatp(75),
			Tackles: intp(2), TackleSuccessPct: floatp(50), ExpectedGoals: floatp(0.9)},
		{MatchID: "m2", PlayerID: "pl-1", Goals: 0, Assists: 0,
			TotalShots: intp(1), TotalPasses: intp(10), PassCompletionPct: floatp(60),
			ExpectedGoals: floatp(0.1)},
	}

	season := ComputePlayerSeason("pl-1", rows)

	require.Equal(t, 2, season.MatchesPlayed)
	require.Equal(t, 2, season.Goals)
	require.Equal(t, 1, season.Assists)
	require.Equal(t, 6, *season.TotalShots)
	require.Equal(t, 3.00, *season.ShotsPerGame)
	require.Equal(t, 1.0, *season.ExpectedGoals)

	// Weighted: (0.90*30 + 0.60*10) / 40 = 82.50.
	require.Equal(t, 82.50, *season.PassCompletionPct)

	for _, rating := range []int{
		season.Ratings.Attacking,
		season.Ratings.Technique,
		season.Ratings.Tactical,
		season.Ratings.Defending,
		season.Ratings.Creativity,
	} {
		require.GreaterOrEqual(t, rating, 0)
		require.LessOrEqual(t, rating, 100)
	}
	require.Positive(t, season.Ratings.Attacking)
}

// Goal re-derivability across the tiers: season goals equal the sum of
// per-match our-side goal counts.
func TestSeasonGoalsRederivableFromMatches(t *testing.T) {
	c := classify(t, []event.RawEvent{
		{ID: "s1", Type: event.Ref{Name: event.TypeShot}, Team: event.Ref{ID: ourFeedID},
			Shot: &event.Shot{Outcome: &event.Ref{Name: event.ShotOutcomeGoal}}},
		{ID: "s2", Type: event.Ref{Name: event.TypeShot}, Team: event.Ref{ID: ourFeedID},
			Shot: &event.Shot{Outcome: &event.Ref{Name: event.ShotOutcomeGoal}}},
	})
	goals := ExtractGoals("m1", c)
	ourGoals, theirGoals := CountGoalsByRole(goals)

	matches := []match.Match{{
		Home:              true,
		DeclaredHomeScore: ourGoals,
		DeclaredAwayScore: theirGoals,
		KickoffAt:         time.Date(2026, 3, 7, 15, 0, 0, 0, time.UTC),
	}}

	season := ComputeClubSeason("club-1", matches, nil)
	require.Equal(t, ourGoals, season.GoalsScored)
}

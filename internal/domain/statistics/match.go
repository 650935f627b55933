package statistics

import (
	"github.com/clubpulse/matchday/internal/domain/event"
	"github.com/clubpulse/matchday/internal/domain/matchstats"
)

// teamTally is the immutable per-side accumulator for one match. Both sides
// are built in a single pass over the classified batch; shoot-out events are
// skipped everywhere.
type teamTally struct {
	possessionSeconds float64
	expectedGoals     float64

	shots      int
	onTarget   int
	offTarget  int
	savedShots int // own shots stopped by the opposing keeper

	passAttempts     int
	passCompleted    int
	finalThirdPasses int
	longPasses       int
	crosses          int

	dribbles         int
	dribblesComplete int

	tackles    int
	tacklesWon int

	interceptions  int
	ballRecoveries int
}

// ComputeMatchStatistics derives both team-role snapshots for a match.
// ourTeamID attributes possession durations, which are keyed by the feed's
// possession_team rather than the acting team.
func ComputeMatchStatistics(matchID string, c event.Classification, ourTeamID int) (matchstats.MatchStatistics, matchstats.MatchStatistics) {
	tallies := map[event.TeamRole]*teamTally{
		event.RoleOurTeam:  {},
		event.RoleOpponent: {},
	}

	for _, item := range c.All {
		if item.InShootOut() {
			continue
		}
		pt := item.Event.PossessionTeam
		if pt == nil || item.Event.Duration <= 0 {
			continue
		}
		role := event.RoleOpponent
		if pt.ID == ourTeamID {
			role = event.RoleOurTeam
		}
		tallies[role].possessionSeconds += item.Event.Duration
	}

	for _, item := range c.Shots {
		if item.InShootOut() || item.Event.Shot == nil {
			continue
		}
		t := tallies[item.Role]
		shot := item.Event.Shot
		t.shots++
		t.expectedGoals += shot.XG
		if shot.OnTarget() {
			t.onTarget++
		} else {
			t.offTarget++
		}
		if shot.Saved() {
			t.savedShots++
		}
	}

	for _, item := range c.Passes {
		if item.InShootOut() || item.Event.Pass == nil {
			continue
		}
		t := tallies[item.Role]
		pass := item.Event.Pass
		if pass.Cross {
			t.crosses++
		}
		if x, ok := item.Event.LocationX(); ok && x >= event.FinalThirdX {
			t.finalThirdPasses++
		}
		if pass.Length > event.LongPassMin {
			t.longPasses++
		}
		if pass.IsRestartPass() {
			continue
		}
		t.passAttempts++
		if pass.Completed() {
			t.passCompleted++
		}
	}

	for _, item := range c.Dribbles {
		if item.InShootOut() || item.Event.Dribble == nil {
			continue
		}
		t := tallies[item.Role]
		t.dribbles++
		if item.Event.Dribble.Completed() {
			t.dribblesComplete++
		}
	}

	for _, item := range c.Duels {
		if item.InShootOut() || !item.Event.Duel.IsTackle() {
			continue
		}
		t := tallies[item.Role]
		t.tackles++
		if item.Event.Duel.TackleWon() {
			t.tacklesWon++
		}
	}

	for _, item := range c.Interceptions {
		if item.InShootOut() {
			continue
		}
		tallies[item.Role].interceptions++
	}

	for _, item := range c.Recoveries {
		if item.InShootOut() {
			continue
		}
		if item.Event.BallRecovery.Succeeded() {
			tallies[item.Role].ballRecoveries++
		}
	}

	ours := tallies[event.RoleOurTeam]
	theirs := tallies[event.RoleOpponent]
	totalPossession := ours.possessionSeconds + theirs.possessionSeconds

	return snapshot(matchID, event.RoleOurTeam, ours, theirs, totalPossession),
		snapshot(matchID, event.RoleOpponent, theirs, ours, totalPossession)
}

// snapshot finalizes one side. Goalkeeper saves are cross-attributed: our
// keeper's saves are the opponent's saved shots.
func snapshot(matchID string, role event.TeamRole, own, other *teamTally, totalPossession float64) matchstats.MatchStatistics {
	out := matchstats.MatchStatistics{
		MatchID: matchID,
		Role:    role,

		ExpectedGoals: floatPtr(roundHalfUp(own.expectedGoals, 6)),

		TotalShots:      countPtr(own.shots),
		ShotsOnTarget:   countPtr(own.onTarget),
		ShotsOffTarget:  countPtr(own.offTarget),
		GoalkeeperSaves: countPtr(other.savedShots),

		TotalPasses:       countPtr(own.passAttempts),
		CompletedPasses:   countPtr(own.passCompleted),
		PassCompletionPct: ratePct(own.passCompleted, own.passAttempts),
		FinalThirdPasses:  countPtr(own.finalThirdPasses),
		LongPasses:        countPtr(own.longPasses),
		Crosses:           countPtr(own.crosses),

		TotalDribbles:     countPtr(own.dribbles),
		CompletedDribbles: countPtr(own.dribblesComplete),
		DribbleSuccessPct: ratePct(own.dribblesComplete, own.dribbles),

		Tackles:          countPtr(own.tackles),
		TacklesWon:       countPtr(own.tacklesWon),
		TackleSuccessPct: ratePct(own.tacklesWon, own.tackles),

		Interceptions:  countPtr(own.interceptions),
		BallRecoveries: countPtr(own.ballRecoveries),
	}

	if totalPossession > 0 {
		pct := roundHalfUp(own.possessionSeconds/totalPossession*100, 2)
		out.PossessionPct = &pct
	}

	return out
}

package statistics

import (
	"sort"

	"github.com/clubpulse/matchday/internal/domain/event"
	"github.com/clubpulse/matchday/internal/domain/playerstats"
)

type playerTally struct {
	goals   int
	assists int
	events  int

	expectedGoals float64
	shots         int
	onTarget      int
	offTarget     int

	passAttempts     int
	passCompleted    int
	finalThirdPasses int
	shortPasses      int
	longPasses       int
	crosses          int

	dribbles         int
	dribblesComplete int

	tackles    int
	tacklesWon int

	interceptions  int
	ballRecoveries int
}

// ComputePlayerStatistics derives one row per participating player on our
// side. roster maps feed player ids to internal player ids; every roster
// member receives a row even with zero events (a starter who never touched
// the ball still gets goals=0, assists=0). Events by players outside the
// roster map are skipped.
func ComputePlayerStatistics(matchID string, c event.Classification, roster map[int]string) []playerstats.PlayerMatchStatistics {
	tallies := make(map[string]*playerTally, len(roster))
	for _, internalID := range roster {
		tallies[internalID] = &playerTally{}
	}

	tally := func(item event.Classified) *playerTally {
		if item.Role != event.RoleOurTeam || item.InShootOut() || item.Event.Player == nil {
			return nil
		}
		internalID, ok := roster[item.Event.Player.ID]
		if !ok {
			return nil
		}
		t := tallies[internalID]
		t.events++
		return t
	}

	for _, item := range c.Shots {
		t := tally(item)
		if t == nil || item.Event.Shot == nil {
			continue
		}
		shot := item.Event.Shot
		t.shots++
		t.expectedGoals += shot.XG
		if shot.IsGoal() {
			t.goals++
		}
		if shot.OnTarget() {
			t.onTarget++
		} else {
			t.offTarget++
		}
	}

	for _, item := range c.Passes {
		t := tally(item)
		if t == nil || item.Event.Pass == nil {
			continue
		}
		pass := item.Event.Pass
		if pass.GoalAssist {
			t.assists++
		}
		if pass.Cross {
			t.crosses++
		}
		if x, ok := item.Event.LocationX(); ok && x >= event.FinalThirdX {
			t.finalThirdPasses++
		}
		if pass.Length > event.LongPassMin {
			t.longPasses++
		} else if pass.Length > 0 && pass.Length < event.ShortPassMax {
			t.shortPasses++
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
		t := tally(item)
		if t == nil || item.Event.Dribble == nil {
			continue
		}
		t.dribbles++
		if item.Event.Dribble.Completed() {
			t.dribblesComplete++
		}
	}

	for _, item := range c.Duels {
		t := tally(item)
		if t == nil || !item.Event.Duel.IsTackle() {
			continue
		}
		t.tackles++
		if item.Event.Duel.TackleWon() {
			t.tacklesWon++
		}
	}

	for _, item := range c.Interceptions {
		if t := tally(item); t != nil {
			t.interceptions++
		}
	}

	for _, item := range c.Recoveries {
		t := tally(item)
		if t == nil {
			continue
		}
		if item.Event.BallRecovery.Succeeded() {
			t.ballRecoveries++
		}
	}

	out := make([]playerstats.PlayerMatchStatistics, 0, len(tallies))
	for internalID, t := range tallies {
		out = append(out, playerstats.PlayerMatchStatistics{
			MatchID:  matchID,
			PlayerID: internalID,

			Goals:   t.goals,
			Assists: t.assists,

			ExpectedGoals:  floatPtr(roundHalfUp(t.expectedGoals, 6)),
			TotalShots:     countPtr(t.shots),
			ShotsOnTarget:  countPtr(t.onTarget),
			ShotsOffTarget: countPtr(t.offTarget),

			TotalPasses:       countPtr(t.passAttempts),
			CompletedPasses:   countPtr(t.passCompleted),
			PassCompletionPct: ratePct(t.passCompleted, t.passAttempts),
			FinalThirdPasses:  countPtr(t.finalThirdPasses),
			ShortPasses:       countPtr(t.shortPasses),
			LongPasses:        countPtr(t.longPasses),
			Crosses:           countPtr(t.crosses),

			TotalDribbles:     countPtr(t.dribbles),
			CompletedDribbles: countPtr(t.dribblesComplete),
			DribbleSuccessPct: ratePct(t.dribblesComplete, t.dribbles),

			Tackles:          countPtr(t.tackles),
			TacklesWon:       countPtr(t.tacklesWon),
			TackleSuccessPct: ratePct(t.tacklesWon, t.tackles),

			Interceptions:  countPtr(t.interceptions),
			BallRecoveries: countPtr(t.ballRecoveries),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].PlayerID < out[j].PlayerID })
	return out
}

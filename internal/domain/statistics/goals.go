package statistics

import (
	"sort"

	"github.com/clubpulse/matchday/internal/domain/event"
	"github.com/clubpulse/matchday/internal/domain/match"
)

// UnknownScorer is recorded when a goal event carries no player, keeping
// downstream display deterministic.
const UnknownScorer = "Unknown"

// ExtractGoals derives the chronological goal list from classified shots,
// excluding the penalty shoot-out window. Assists follow the shot's key-pass
// back-reference to the originating pass when that pass is flagged as a
// scoring assist.
func ExtractGoals(matchID string, c event.Classification) []match.Goal {
	out := make([]match.Goal, 0, 8)

	for _, item := range c.Shots {
		if item.InShootOut() || !item.Event.Shot.IsGoal() {
			continue
		}
		shot := item.Event.Shot

		scorer := item.Event.PlayerName()
		if scorer == "" {
			scorer = UnknownScorer
		}

		goal := match.Goal{
			MatchID:    matchID,
			Role:       item.Role,
			ScorerName: scorer,
			Period:     item.Event.Period,
			Minute:     item.Event.Minute,
			Second:     item.Event.Second,
		}

		if shot.Type != nil && shot.Type.Name != "" {
			name := shot.Type.Name
			goal.TypeName = &name
		}
		if shot.BodyPart != nil && shot.BodyPart.Name != "" {
			part := shot.BodyPart.Name
			goal.BodyPart = &part
		}

		if shot.KeyPassID != "" {
			if pass, ok := c.PassByID[shot.KeyPassID]; ok &&
				pass.Event.Pass != nil && pass.Event.Pass.GoalAssist {
				if assist := pass.Event.PlayerName(); assist != "" {
					goal.AssistName = &assist
				}
			}
		}

		out = append(out, goal)
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Period != out[j].Period {
			return out[i].Period < out[j].Period
		}
		if out[i].Minute != out[j].Minute {
			return out[i].Minute < out[j].Minute
		}
		return out[i].Second < out[j].Second
	})

	return out
}

// CountGoalsByRole splits a goal list into per-side counts.
func CountGoalsByRole(goals []match.Goal) (ours, theirs int) {
	for _, g := range goals {
		if g.Role == event.RoleOurTeam {
			ours++
		} else {
			theirs++
		}
	}
	return ours, theirs
}

// CountShootOutGoals counts goals scored inside the shoot-out window; they
// never enter statistics but explain score-text discrepancies.
func CountShootOutGoals(c event.Classification) int {
	n := 0
	for _, item := range c.Shots {
		if item.InShootOut() && item.Event.Shot.IsGoal() {
			n++
		}
	}
	return n
}

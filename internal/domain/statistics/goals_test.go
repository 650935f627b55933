package statistics

import (
	"testing"

	"github.com/clubpulse/matchday/internal/domain/event"
)

func TestExtractGoals_AssistViaKeyPass(t *testing.T) {
	c := classify(t, []event.RawEvent{
		{ID: "p1", Type: event.Ref{Name: event.TypePass}, Team: event.Ref{ID: ourFeedID},
			Player: &event.Ref{ID: 10, Name: "Rizki Putra"},
			Pass:   &event.Pass{GoalAssist: true}},
		{ID: "s1", Type: event.Ref{Name: event.TypeShot}, Team: event.Ref{ID: ourFeedID},
			Period: 1, Minute: 23, Second: 11,
			Player: &event.Ref{ID: 9, Name: "Andi Saputra"},
			Shot: &event.Shot{
				Outcome:   &event.Ref{Name: event.ShotOutcomeGoal},
				KeyPassID: "p1",
				BodyPart:  &event.Ref{Name: "Left Foot"},
			}},
	})

	goals := ExtractGoals("m1", c)

	if len(goals) != 1 {
		t.Fatalf("goal count: got %d want 1", len(goals))
	}
	g := goals[0]
	if g.ScorerName != "Andi Saputra" {
		t.Fatalf("scorer: got %q", g.ScorerName)
	}
	if g.AssistName == nil || *g.AssistName != "Rizki Putra" {
		t.Fatalf("assist: got %v", g.AssistName)
	}
	if g.BodyPart == nil || *g.BodyPart != "Left Foot" {
		t.Fatalf("body part: got %v", g.BodyPart)
	}
}

func TestExtractGoals_KeyPassWithoutAssistFlag(t *testing.T) {
	c := classify(t, []event.RawEvent{
		{ID: "p1", Type: event.Ref{Name: event.TypePass}, Team: event.Ref{ID: ourFeedID},
			Player: &event.Ref{ID: 10, Name: "Rizki Putra"},
			Pass:   &event.Pass{}},
		{ID: "s1", Type: event.Ref{Name: event.TypeShot}, Team: event.Ref{ID: ourFeedID},
			Player: &event.Ref{ID: 9, Name: "Andi Saputra"},
			Shot:   &event.Shot{Outcome: &event.Ref{Name: event.ShotOutcomeGoal}, KeyPassID: "p1"}},
	})

	goals := ExtractGoals("m1", c)
	if goals[0].AssistName != nil {
		t.Fatalf("pass not flagged as assist must not attribute one, got %v", *goals[0].AssistName)
	}
}

func TestExtractGoals_MissingScorerIsUnknown(t *testing.T) {
	c := classify(t, []event.RawEvent{
		{ID: "s1", Type: event.Ref{Name: event.TypeShot}, Team: event.Ref{ID: opponentFeedID},
			Shot: &event.Shot{Outcome: &event.Ref{Name: event.ShotOutcomeGoal}}},
	})

	goals := ExtractGoals("m1", c)
	if goals[0].ScorerName != UnknownScorer {
		t.Fatalf("scorer: got %q want %q", goals[0].ScorerName, UnknownScorer)
	}
	if goals[0].Role != event.RoleOpponent {
		t.Fatalf("role: got %s", goals[0].Role)
	}
}

func TestExtractGoals_ExcludesShootOutAndOrders(t *testing.T) {
	c := classify(t, []event.RawEvent{
		{ID: "s3", Type: event.Ref{Name: event.TypeShot}, Team: event.Ref{ID: ourFeedID},
			Period: 2, Minute: 78, Second: 2,
			Shot: &event.Shot{Outcome: &event.Ref{Name: event.ShotOutcomeGoal}}},
		{ID: "s1", Type: event.Ref{Name: event.TypeShot}, Team: event.Ref{ID: ourFeedID},
			Period: 1, Minute: 12, Second: 40,
			Shot: &event.Shot{Outcome: &event.Ref{Name: event.ShotOutcomeGoal}}},
		{ID: "s4", Type: event.Ref{Name: event.TypeShot}, Team: event.Ref{ID: ourFeedID},
			Period: event.PeriodPenaltyShootout, Minute: 121,
			Shot: &event.Shot{Outcome: &event.Ref{Name: event.ShotOutcomeGoal}}},
		{ID: "s2", Type: event.Ref{Name: event.TypeShot}, Team: event.Ref{ID: opponentFeedID},
			Period: 1, Minute: 12, Second: 55,
			Shot: &event.Shot{Outcome: &event.Ref{Name: event.ShotOutcomeGoal}}},
	})

	goals := ExtractGoals("m1", c)

	if len(goals) != 3 {
		t.Fatalf("goal count: got %d want 3 (shoot-out excluded)", len(goals))
	}
	if goals[0].Minute != 12 || goals[0].Second != 40 {
		t.Fatalf("order: first goal at %d:%d", goals[0].Minute, goals[0].Second)
	}
	if goals[2].Minute != 78 {
		t.Fatalf("order: last goal at minute %d", goals[2].Minute)
	}

	ours, theirs := CountGoalsByRole(goals)
	if ours != 2 || theirs != 1 {
		t.Fatalf("goal split: got %d-%d want 2-1", ours, theirs)
	}
	if n := CountShootOutGoals(c); n != 1 {
		t.Fatalf("shoot-out goals: got %d want 1", n)
	}
}

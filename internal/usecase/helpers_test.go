package usecase_test

import (
	"context"
	"fmt"
	"time"

	"github.com/clubpulse/matchday/internal/domain/club"
	"github.com/clubpulse/matchday/internal/domain/event"
	"github.com/clubpulse/matchday/internal/infrastructure/repository/memory"
	"github.com/clubpulse/matchday/internal/platform/cache"
	"github.com/clubpulse/matchday/internal/platform/id"
	"github.com/clubpulse/matchday/internal/platform/logging"
	"github.com/clubpulse/matchday/internal/platform/resilience"
	"github.com/clubpulse/matchday/internal/usecase"
)

const (
	testClubID     = "club-1"
	testClubName   = "Thunder United"
	ourFeedTeamID  = 217
	oppFeedTeamID  = 218
	oppDisplayName = "City Strikers"
)

var testKickoff = time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC)

func ourTeamRef() event.Ref {
	return event.Ref{ID: ourFeedTeamID, Name: testClubName}
}

func oppTeamRef() event.Ref {
	return event.Ref{ID: oppFeedTeamID, Name: oppDisplayName}
}

func newTestStore() *memory.Store {
	store := memory.NewStore()
	store.SeedClub(club.Club{
		ID:        testClubID,
		Name:      testClubName,
		CreatedAt: testKickoff.Add(-30 * 24 * time.Hour),
	})
	return store
}

type fakeNotifier struct {
	notices []usecase.MatchIngestedNotice
}

func (f *fakeNotifier) MatchIngested(_ context.Context, notice usecase.MatchIngestedNotice) {
	f.notices = append(f.notices, notice)
}

func newIngestionService(store *memory.Store, notifier usecase.Notifier) *usecase.IngestionService {
	return usecase.NewIngestionService(
		store,
		id.NewRandomGenerator(),
		resilience.NewKeyedMutex(),
		cache.NewStore(time.Minute),
		notifier,
		logging.NewNop(),
	)
}

func startingLineup(team event.Ref, firstFeedID int, namePrefix string) event.RawEvent {
	tactics := &event.Tactics{Formation: 442}
	for i := 0; i < 11; i++ {
		tactics.Lineup = append(tactics.Lineup, event.LineupSlot{
			Player:       event.Ref{ID: firstFeedID + i, Name: fmt.Sprintf("%s %d", namePrefix, i+1)},
			Position:     event.Ref{ID: i + 1, Name: positionName(i)},
			JerseyNumber: i + 1,
		})
	}
	return event.RawEvent{
		ID:      fmt.Sprintf("lineup-%d", team.ID),
		Type:    event.Ref{ID: 35, Name: event.TypeStartingLineup},
		Period:  1,
		Team:    team,
		Tactics: tactics,
	}
}

func positionName(slot int) string {
	switch {
	case slot == 0:
		return "Goalkeeper"
	case slot < 5:
		return "Defender"
	case slot < 9:
		return "Midfielder"
	default:
		return "Forward"
	}
}

// validBatch is one internally consistent upload: both lineups, one goal by
// our player 1 assisted by player 2, one saved opponent shot and a bit of
// possession on each side. The derived score is 1-0 to us.
func validBatch() []event.RawEvent {
	our := ourTeamRef()
	opp := oppTeamRef()
	ourPossession := ourTeamRef()
	oppPossession := oppTeamRef()

	return []event.RawEvent{
		startingLineup(our, 1, "Home Player"),
		startingLineup(opp, 101, "Away Player"),
		{
			ID:             "pass-1",
			Type:           event.Ref{ID: 30, Name: event.TypePass},
			Period:         1,
			Minute:         9,
			Second:         55,
			Team:           our,
			Player:         &event.Ref{ID: 2, Name: "Home Player 2"},
			PossessionTeam: &ourPossession,
			Duration:       2.5,
			Location:       []float64{85, 30},
			Pass:           &event.Pass{GoalAssist: true, Length: 12},
		},
		{
			ID:             "shot-1",
			Type:           event.Ref{ID: 16, Name: event.TypeShot},
			Period:         1,
			Minute:         10,
			Second:         3,
			Team:           our,
			Player:         &event.Ref{ID: 1, Name: "Home Player 1"},
			PossessionTeam: &ourPossession,
			Duration:       0.5,
			Shot: &event.Shot{
				Outcome:   &event.Ref{ID: 97, Name: event.ShotOutcomeGoal},
				XG:        0.31,
				KeyPassID: "pass-1",
				BodyPart:  &event.Ref{ID: 40, Name: "Right Foot"},
			},
		},
		{
			ID:             "shot-2",
			Type:           event.Ref{ID: 16, Name: event.TypeShot},
			Period:         2,
			Minute:         67,
			Second:         12,
			Team:           opp,
			Player:         &event.Ref{ID: 105, Name: "Away Player 5"},
			PossessionTeam: &oppPossession,
			Duration:       0.4,
			Shot: &event.Shot{
				Outcome: &event.Ref{ID: 100, Name: event.ShotOutcomeSaved},
				XG:      0.12,
			},
		},
		{
			ID:             "pass-2",
			Type:           event.Ref{ID: 30, Name: event.TypePass},
			Period:         2,
			Minute:         70,
			Second:         30,
			Team:           opp,
			Player:         &event.Ref{ID: 103, Name: "Away Player 3"},
			PossessionTeam: &oppPossession,
			Duration:       1.5,
			Pass:           &event.Pass{Length: 22},
		},
	}
}

func validRequest() usecase.IngestRequest {
	return usecase.IngestRequest{
		ClubID:       testClubID,
		OpponentName: oppDisplayName,
		KickoffAt:    testKickoff,
		Home:         true,
		HomeScore:    1,
		AwayScore:    0,
		ScoreText:    "1-0",
		Events:       validBatch(),
	}
}

package usecase

import (
	"errors"
	"strings"
	"testing"

	"github.com/clubpulse/matchday/internal/domain/club"
	"github.com/clubpulse/matchday/internal/domain/event"
)

func teamCandidates() []event.Ref {
	return []event.Ref{
		{ID: 217, Name: "Thunder United"},
		{ID: 218, Name: "City Strikers"},
	}
}

func TestTeamResolver_ExactMatch(t *testing.T) {
	resolver := NewTeamResolver()

	got, err := resolver.Resolve(club.Club{Name: "thunder united"}, teamCandidates())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.OurTeam.ID != 217 || got.Opponent.ID != 218 {
		t.Fatalf("unexpected resolution: %+v", got)
	}
	if !got.Learned {
		t.Fatalf("expected feed team id to be newly learned")
	}
}

func TestTeamResolver_SubstringMatch(t *testing.T) {
	resolver := NewTeamResolver()

	candidates := []event.Ref{
		{ID: 217, Name: "Thunder United FC"},
		{ID: 218, Name: "City Strikers"},
	}
	got, err := resolver.Resolve(club.Club{Name: "Thunder United"}, candidates)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.OurTeam.ID != 217 {
		t.Fatalf("unexpected resolution: %+v", got)
	}
}

func TestTeamResolver_FuzzyMatch(t *testing.T) {
	resolver := NewTeamResolver()

	candidates := []event.Ref{
		{ID: 217, Name: "Thunder Unitd"},
		{ID: 218, Name: "City Strikers"},
	}
	got, err := resolver.Resolve(club.Club{Name: "Thunder United"}, candidates)
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.OurTeam.ID != 217 {
		t.Fatalf("unexpected resolution: %+v", got)
	}
}

func TestTeamResolver_NoMatchNamesBothTeams(t *testing.T) {
	resolver := NewTeamResolver()

	candidates := []event.Ref{
		{ID: 300, Name: "Harbor Rovers"},
		{ID: 301, Name: "City Strikers"},
	}
	_, err := resolver.Resolve(club.Club{Name: "Thunder United"}, candidates)
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
	if !strings.Contains(err.Error(), "Harbor Rovers") || !strings.Contains(err.Error(), "City Strikers") {
		t.Fatalf("error must name both observed teams: %v", err)
	}
}

func TestTeamResolver_RecordedFeedTeamIDWins(t *testing.T) {
	resolver := NewTeamResolver()

	feedTeamID := 218
	got, err := resolver.Resolve(club.Club{Name: "Thunder United", FeedTeamID: &feedTeamID}, teamCandidates())
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	if got.OurTeam.ID != 218 {
		t.Fatalf("recorded id must win over name heuristics: %+v", got)
	}
	if got.Learned {
		t.Fatalf("already recorded id must not be re-learned")
	}
}

func TestTeamResolver_WrongCandidateCount(t *testing.T) {
	resolver := NewTeamResolver()

	_, err := resolver.Resolve(club.Club{Name: "Thunder United"}, teamCandidates()[:1])
	if !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

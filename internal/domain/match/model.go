package match

import (
	"time"

	"github.com/clubpulse/matchday/internal/domain/event"
)

// Match is one ingested match record for a club. Declared scores are the
// submitted final running score; they are validated against the derived goal
// list before anything is persisted.
type Match struct {
	ID                string
	ClubID            string
	OpponentID        string
	KickoffAt         time.Time
	Home              bool
	DeclaredHomeScore int
	DeclaredAwayScore int
	ScoreText         string
	CreatedAt         time.Time
}

// OurDeclaredScore returns our side of the declared score.
func (m Match) OurDeclaredScore() int {
	if m.Home {
		return m.DeclaredHomeScore
	}
	return m.DeclaredAwayScore
}

// OpponentDeclaredScore returns the opponent's side of the declared score.
func (m Match) OpponentDeclaredScore() int {
	if m.Home {
		return m.DeclaredAwayScore
	}
	return m.DeclaredHomeScore
}

// Goal is one scored goal, ordered by (period, minute, second). Penalty
// shoot-out goals never appear here.
type Goal struct {
	ID         string
	MatchID    string
	Role       event.TeamRole
	ScorerName string
	AssistName *string
	Period     int
	Minute     int
	Second     int
	TypeName   *string
	BodyPart   *string
}

package postgres

import "time"

type matchTableModel struct {
	ID                string    `db:"id"`
	ClubID            string    `db:"club_id"`
	OpponentID        string    `db:"opponent_id"`
	KickoffAt         time.Time `db:"kickoff_at"`
	Home              bool      `db:"home"`
	DeclaredHomeScore int       `db:"declared_home_score"`
	DeclaredAwayScore int       `db:"declared_away_score"`
	ScoreText         string    `db:"score_text"`
	CreatedAt         time.Time `db:"created_at"`
}

type goalTableModel struct {
	ID         string  `db:"id"`
	MatchID    string  `db:"match_id"`
	Role       string  `db:"role"`
	ScorerName string  `db:"scorer_name"`
	AssistName *string `db:"assist_name"`
	Period     int     `db:"period"`
	Minute     int     `db:"minute"`
	Second     int     `db:"second"`
	TypeName   *string `db:"type_name"`
	BodyPart   *string `db:"body_part"`
}

type lineupEntryTableModel struct {
	ID               string  `db:"id"`
	MatchID          string  `db:"match_id"`
	Role             string  `db:"role"`
	PlayerID         *string `db:"player_id"`
	OpponentPlayerID *string `db:"opponent_player_id"`
	Name             string  `db:"name"`
	JerseyNumber     int     `db:"jersey_number"`
	Position         string  `db:"position"`
}

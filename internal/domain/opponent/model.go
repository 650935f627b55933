package opponent

import "time"

// Opponent is an opposing club, created lazily the first time a match
// against it is ingested.
type Opponent struct {
	ID        string
	ClubID    string
	Name      string
	CreatedAt time.Time
}

// Player is a member of an opponent's roster as seen in lineups. There is
// no linked-account concept on this side.
type Player struct {
	ID           string
	OpponentID   string
	Name         string
	JerseyNumber *int
	Position     string
	FeedPlayerID *int
}

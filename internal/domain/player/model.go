package player

import "time"

// Player is an internal identity on our club's roster. Unlinked profiles are
// created from lineup data; once a profile is linked to a completed account
// its user-entered fields are never overwritten by feed data.
type Player struct {
	ID            string
	ClubID        string
	Name          string
	JerseyNumber  *int
	Position      string
	FeedPlayerID  *int
	AccountLinked bool
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

package lineup

import "github.com/clubpulse/matchday/internal/domain/event"

// Entry is one starting-lineup slot for a match, denormalizing name, jersey
// and position as they appeared in the feed at match time. Exactly one of
// PlayerID (our roster) and OpponentPlayerID is set.
type Entry struct {
	ID               string
	MatchID          string
	Role             event.TeamRole
	PlayerID         *string
	OpponentPlayerID *string
	Name             string
	JerseyNumber     int
	Position         string
}

package club

import "time"

// Club is our own club. FeedTeamID is the anonymous team identifier the
// event feed uses for this club; once learned it lets later uploads resolve
// the side by direct id match instead of fuzzy name matching.
type Club struct {
	ID          string
	Name        string
	FeedTeamID  *int
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

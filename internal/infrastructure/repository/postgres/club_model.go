package postgres

import "time"

type clubTableModel struct {
	ID         string    `db:"id"`
	Name       string    `db:"name"`
	FeedTeamID *int      `db:"feed_team_id"`
	CreatedAt  time.Time `db:"created_at"`
	UpdatedAt  time.Time `db:"updated_at"`
}

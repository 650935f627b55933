package postgres

import "time"

type playerTableModel struct {
	ID            string    `db:"id"`
	ClubID        string    `db:"club_id"`
	Name          string    `db:"name"`
	JerseyNumber  *int      `db:"jersey_number"`
	Position      string    `db:"position"`
	FeedPlayerID  *int      `db:"feed_player_id"`
	AccountLinked bool      `db:"account_linked"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

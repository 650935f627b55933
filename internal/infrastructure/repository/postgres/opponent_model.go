package postgres

import "time"

type opponentTableModel struct {
	ID        string    `db:"id"`
	ClubID    string    `db:"club_id"`
	Name      string    `db:"name"`
	CreatedAt time.Time `db:"created_at"`
}

type opponentPlayerTableModel struct {
	ID           string `db:"id"`
	OpponentID   string `db:"opponent_id"`
	Name         string `db:"name"`
	JerseyNumber *int   `db:"jersey_number"`
	Position     string `db:"position"`
	FeedPlayerID *int   `db:"feed_player_id"`
}

package memory

import (
	"github.com/clubpulse/matchday/internal/domain/club"
	"github.com/clubpulse/matchday/internal/domain/player"
)

// SeedClub inserts or replaces a club row directly, bypassing the
// repository contract. Test fixture helper.
func (s *Store) SeedClub(c club.Club) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.clubs[c.ID] = c
}

// SeedPlayer inserts or replaces a roster profile directly.
func (s *Store) SeedPlayer(p player.Player) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.players[p.ID] = p
}

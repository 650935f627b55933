package usecase

import (
	"context"
	"fmt"

	"github.com/clubpulse/matchday/internal/domain/event"
	"github.com/clubpulse/matchday/internal/domain/lineup"
	"github.com/clubpulse/matchday/internal/domain/match"
	"github.com/clubpulse/matchday/internal/domain/opponent"
	"github.com/clubpulse/matchday/internal/domain/player"
	"github.com/clubpulse/matchday/internal/platform/id"
	"github.com/clubpulse/matchday/internal/platform/textmatch"
)

// LineupSize is the declared number of starting players per side.
const LineupSize = 11

// SideLineup is one side's validated starting lineup slots.
type SideLineup struct {
	Role  event.TeamRole
	Slots []event.LineupSlot
}

// RosterResult is the outcome of resolving one side's lineup against the
// stored roster.
type RosterResult struct {
	Entries []lineup.Entry
	// Roster maps feed player ids to internal player ids; only populated
	// for our side, where per-player statistics are computed.
	Roster  map[int]string
	Created int
	Updated int
}

// LineupBuilder validates the batch's two starting lineups and resolves
// every listed player to an internal identity, creating unlinked profiles
// for players seen for the first time.
type LineupBuilder struct {
	ids id.Generator
}

func NewLineupBuilder(ids id.Generator) *LineupBuilder {
	return &LineupBuilder{ids: ids}
}

// ExtractSide pulls the starting lineup for one team-role out of the
// classified batch and validates its shape.
func (b *LineupBuilder) ExtractSide(c event.Classification, role event.TeamRole) (SideLineup, error) {
	if got := len(c.StartingLineups); got != 2 {
		return SideLineup{}, fmt.Errorf("%w: expected 2 starting lineup events, found %d", ErrInvalidInput, got)
	}

	for _, item := range c.StartingLineups {
		if item.Role != role {
			continue
		}
		if item.Event.Tactics == nil {
			return SideLineup{}, fmt.Errorf("%w: starting lineup for %s carries no players", ErrInvalidInput, role)
		}
		if got := len(item.Event.Tactics.Lineup); got != LineupSize {
			return SideLineup{}, fmt.Errorf("%w: starting lineup for %s lists %d players, expected %d", ErrInvalidInput, role, got, LineupSize)
		}
		return SideLineup{Role: role, Slots: item.Event.Tactics.Lineup}, nil
	}

	return SideLineup{}, fmt.Errorf("%w: no starting lineup found for %s", ErrInvalidInput, role)
}

// ResolveOurSide matches each slot against our club's roster: by recorded
// feed player reference first, then by name or jersey among unlinked
// profiles, else creates a new unlinked profile. Profiles linked to a
// completed account are referenced but never overwritten by feed data.
func (b *LineupBuilder) ResolveOurSide(ctx context.Context, players player.Repository, m match.Match, side SideLineup) (RosterResult, error) {
	existing, err := players.ListByClub(ctx, m.ClubID)
	if err != nil {
		return RosterResult{}, fmt.Errorf("list club roster: %w", err)
	}

	result := RosterResult{
		Entries: make([]lineup.Entry, 0, len(side.Slots)),
		Roster:  make(map[int]string, len(side.Slots)),
	}

	for _, slot := range side.Slots {
		matched := matchOurPlayer(existing, slot)
		switch {
		case matched == nil:
			created, err := b.createOurPlayer(ctx, players, m.ClubID, slot)
			if err != nil {
				return RosterResult{}, err
			}
			existing = append(existing, created)
			matched = &existing[len(existing)-1]
			result.Created++
		case !matched.AccountLinked:
			applySlotToPlayer(matched, slot)
			if err := players.Update(ctx, *matched); err != nil {
				return RosterResult{}, fmt.Errorf("update player %s: %w", matched.ID, err)
			}
			result.Updated++
		}

		result.Roster[slot.Player.ID] = matched.ID
		entry, err := b.newEntry(m.ID, event.RoleOurTeam, slot)
		if err != nil {
			return RosterResult{}, err
		}
		playerID := matched.ID
		entry.PlayerID = &playerID
		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

// ResolveOpponentSide applies the same matching and creation logic against
// the opponent's roster; there is no linked-account concept on this side.
func (b *LineupBuilder) ResolveOpponentSide(ctx context.Context, opponents opponent.Repository, m match.Match, side SideLineup) (RosterResult, error) {
	existing, err := opponents.ListPlayers(ctx, m.OpponentID)
	if err != nil {
		return RosterResult{}, fmt.Errorf("list opponent roster: %w", err)
	}

	result := RosterResult{Entries: make([]lineup.Entry, 0, len(side.Slots))}

	for _, slot := range side.Slots {
		matched := matchOpponentPlayer(existing, slot)
		if matched == nil {
			created, err := b.createOpponentPlayer(ctx, opponents, m.OpponentID, slot)
			if err != nil {
				return RosterResult{}, err
			}
			existing = append(existing, created)
			matched = &existing[len(existing)-1]
			result.Created++
		} else {
			applySlotToOpponentPlayer(matched, slot)
			if err := opponents.UpdatePlayer(ctx, *matched); err != nil {
				return RosterResult{}, fmt.Errorf("update opponent player %s: %w", matched.ID, err)
			}
			result.Updated++
		}

		entry, err := b.newEntry(m.ID, event.RoleOpponent, slot)
		if err != nil {
			return RosterResult{}, err
		}
		opponentPlayerID := matched.ID
		entry.OpponentPlayerID = &opponentPlayerID
		result.Entries = append(result.Entries, entry)
	}

	return result, nil
}

func (b *LineupBuilder) newEntry(matchID string, role event.TeamRole, slot event.LineupSlot) (lineup.Entry, error) {
	entryID, err := b.ids.NewID("lnp")
	if err != nil {
		return lineup.Entry{}, fmt.Errorf("generate lineup entry id: %w", err)
	}
	return lineup.Entry{
		ID:           entryID,
		MatchID:      matchID,
		Role:         role,
		Name:         slot.Player.Name,
		JerseyNumber: slot.JerseyNumber,
		Position:     slot.Position.Name,
	}, nil
}

func (b *LineupBuilder) createOurPlayer(ctx context.Context, players player.Repository, clubID string, slot event.LineupSlot) (player.Player, error) {
	playerID, err := b.ids.NewID("plyr")
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	jersey := slot.JerseyNumber
	feedID := slot.Player.ID
	created := player.Player{
		ID:           playerID,
		ClubID:       clubID,
		Name:         slot.Player.Name,
		JerseyNumber: &jersey,
		Position:     slot.Position.Name,
		FeedPlayerID: &feedID,
	}
	if err := players.Create(ctx, created); err != nil {
		return player.Player{}, fmt.Errorf("create player %q: %w", slot.Player.Name, err)
	}
	return created, nil
}

func (b *LineupBuilder) createOpponentPlayer(ctx context.Context, opponents opponent.Repository, opponentID string, slot event.LineupSlot) (opponent.Player, error) {
	playerID, err := b.ids.NewID("oplr")
	if err != nil {
		return opponent.Player{}, fmt.Errorf("generate opponent player id: %w", err)
	}

	jersey := slot.JerseyNumber
	feedID := slot.Player.ID
	created := opponent.Player{
		ID:           playerID,
		OpponentID:   opponentID,
		Name:         slot.Player.Name,
		JerseyNumber: &jersey,
		Position:     slot.Position.Name,
		FeedPlayerID: &feedID,
	}
	if err := opponents.CreatePlayer(ctx, created); err != nil {
		return opponent.Player{}, fmt.Errorf("create opponent player %q: %w", slot.Player.Name, err)
	}
	return created, nil
}

func matchOurPlayer(existing []player.Player, slot event.LineupSlot) *player.Player {
	for i := range existing {
		if existing[i].FeedPlayerID != nil && *existing[i].FeedPlayerID == slot.Player.ID {
			return &existing[i]
		}
	}
	for i := range existing {
		if existing[i].AccountLinked {
			continue
		}
		if textmatch.Equal(existing[i].Name, slot.Player.Name) {
			return &existing[i]
		}
		if existing[i].JerseyNumber != nil && *existing[i].JerseyNumber == slot.JerseyNumber {
			return &existing[i]
		}
	}
	return nil
}

func matchOpponentPlayer(existing []opponent.Player, slot event.LineupSlot) *opponent.Player {
	for i := range existing {
		if existing[i].FeedPlayerID != nil && *existing[i].FeedPlayerID == slot.Player.ID {
			return &existing[i]
		}
	}
	for i := range existing {
		if textmatch.Equal(existing[i].Name, slot.Player.Name) {
			return &existing[i]
		}
		if existing[i].JerseyNumber != nil && *existing[i].JerseyNumber == slot.JerseyNumber {
			return &existing[i]
		}
	}
	return nil
}

func applySlotToPlayer(p *player.Player, slot event.LineupSlot) {
	jersey := slot.JerseyNumber
	feedID := slot.Player.ID
	p.Name = slot.Player.Name
	p.JerseyNumber = &jersey
	p.Position = slot.Position.Name
	p.FeedPlayerID = &feedID
}

func applySlotToOpponentPlayer(p *opponent.Player, slot event.LineupSlot) {
	jersey := slot.JerseyNumber
	feedID := slot.Player.ID
	p.Name = slot.Player.Name
	p.JerseyNumber = &jersey
	p.Position = slot.Position.Name
	p.FeedPlayerID = &feedID
}

package usecase

import (
	"fmt"

	"github.com/clubpulse/matchday/internal/domain/club"
	"github.com/clubpulse/matchday/internal/domain/event"
	"github.com/clubpulse/matchday/internal/platform/textmatch"
)

// SimilarityThreshold is the minimum normalized name similarity for the
// fuzzy fallback of team resolution.
const SimilarityThreshold = 0.80

// ResolvedTeams names which of the batch's two anonymous team identifiers
// belongs to our club. Learned reports whether the feed team id was not yet
// recorded on the club and should be persisted for direct-id matching on
// future uploads.
type ResolvedTeams struct {
	OurTeam  event.Ref
	Opponent event.Ref
	Learned  bool
}

// TeamResolver maps a club's stored display name to one of the two team
// refs found on the batch's starting-lineup events.
type TeamResolver struct{}

func NewTeamResolver() *TeamResolver {
	return &TeamResolver{}
}

// Resolve picks our side among exactly two candidates. Priority: recorded
// feed team id, case-insensitive exact name, substring in either direction,
// then similarity ratio above the threshold taking the larger of the two.
func (r *TeamResolver) Resolve(c club.Club, candidates []event.Ref) (ResolvedTeams, error) {
	if len(candidates) != 2 {
		return ResolvedTeams{}, fmt.Errorf("%w: expected 2 lineup teams in batch, found %d", ErrInvalidInput, len(candidates))
	}

	if c.FeedTeamID != nil {
		for i, candidate := range candidates {
			if candidate.ID == *c.FeedTeamID {
				return resolved(candidates, i, false), nil
			}
		}
	}

	for i, candidate := range candidates {
		if textmatch.Equal(c.Name, candidate.Name) {
			return resolved(candidates, i, c.FeedTeamID == nil), nil
		}
	}

	for i, candidate := range candidates {
		if textmatch.Contains(c.Name, candidate.Name) {
			return resolved(candidates, i, c.FeedTeamID == nil), nil
		}
	}

	first := textmatch.Ratio(c.Name, candidates[0].Name)
	second := textmatch.Ratio(c.Name, candidates[1].Name)
	if first > SimilarityThreshold && first >= second {
		return resolved(candidates, 0, c.FeedTeamID == nil), nil
	}
	if second > SimilarityThreshold && second > first {
		return resolved(candidates, 1, c.FeedTeamID == nil), nil
	}

	return ResolvedTeams{}, fmt.Errorf(
		"%w: no resolvable team for club %q among %q and %q",
		ErrInvalidInput, c.Name, candidates[0].Name, candidates[1].Name,
	)
}

func resolved(candidates []event.Ref, ours int, learned bool) ResolvedTeams {
	return ResolvedTeams{
		OurTeam:  candidates[ours],
		Opponent: candidates[1-ours],
		Learned:  learned,
	}
}

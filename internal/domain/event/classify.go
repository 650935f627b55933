package event

import "strings"

// TeamRole is the normalized side designation for a match, resolved once per
// ingestion from the feed's anonymous team identifiers.
type TeamRole string

const (
	RoleOurTeam  TeamRole = "our_team"
	RoleOpponent TeamRole = "opponent_team"
)

func (r TeamRole) Opposite() TeamRole {
	if r == RoleOurTeam {
		return RoleOpponent
	}
	return RoleOurTeam
}

// Classified is a RawEvent annotated with the acting side. It is a derived
// view produced once per ingestion and never persisted on its own.
type Classified struct {
	Event RawEvent
	Role  TeamRole
}

func (c Classified) InShootOut() bool {
	return c.Event.InShootOut()
}

// Classification buckets one batch by declared type. Shoot-out events stay
// in their buckets; aggregators skip them via InShootOut. Types with no
// statistical meaning land in Other untouched.
type Classification struct {
	// All holds every event of the batch, classified, in feed order.
	// Possession sums walk this list.
	All []Classified

	Shots           []Classified
	Passes          []Classified
	Dribbles        []Classified
	Duels           []Classified
	Interceptions   []Classified
	Recoveries      []Classified
	StartingLineups []Classified
	Other           []Classified

	// PassByID indexes pass events by event id for key-pass back-references.
	PassByID map[string]Classified
}

// Classify performs the single O(n) pass over the batch. Side attribution
// compares each event's team id against the resolved id of our team;
// everything else is the opponent's.
func Classify(events []RawEvent, ourTeamID int) Classification {
	out := Classification{
		PassByID: make(map[string]Classified),
	}

	for _, ev := range events {
		role := RoleOpponent
		if ev.Team.ID == ourTeamID {
			role = RoleOurTeam
		}
		item := Classified{Event: ev, Role: role}
		out.All = append(out.All, item)

		switch ev.Type.Name {
		case TypeShot:
			out.Shots = append(out.Shots, item)
		case TypePass:
			out.Passes = append(out.Passes, item)
			if ev.ID != "" {
				out.PassByID[ev.ID] = item
			}
		case TypeDribble:
			out.Dribbles = append(out.Dribbles, item)
		case TypeDuel:
			out.Duels = append(out.Duels, item)
		case TypeInterception:
			out.Interceptions = append(out.Interceptions, item)
		case TypeBallRecovery:
			out.Recoveries = append(out.Recoveries, item)
		case TypeStartingLineup:
			out.StartingLineups = append(out.StartingLineups, item)
		default:
			out.Other = append(out.Other, item)
		}
	}

	return out
}

// TeamNames returns the distinct team refs present on the batch's
// starting-lineup events, in feed order.
func TeamNames(events []RawEvent) []Ref {
	seen := make(map[int]struct{}, 2)
	out := make([]Ref, 0, 2)
	for _, ev := range events {
		if ev.Type.Name != TypeStartingLineup {
			continue
		}
		if _, ok := seen[ev.Team.ID]; ok {
			continue
		}
		seen[ev.Team.ID] = struct{}{}
		out = append(out, ev.Team)
	}
	return out
}

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

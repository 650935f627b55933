package event

// Feed event type names as they appear in the upload batch.
const (
	TypeStartingLineup = "Starting XI"
	TypeShot           = "Shot"
	TypePass           = "Pass"
	TypeDribble        = "Dribble"
	TypeDuel           = "Duel"
	TypeInterception   = "Interception"
	TypeBallRecovery   = "Ball Recovery"
)

// PeriodPenaltyShootout is the dedicated period value for the post-match
// penalty shoot-out. Events inside it are retained but excluded from every
// statistic and from goal derivation.
const PeriodPenaltyShootout = 5

// FinalThirdX is the pitch-length coordinate (0-120 scale) at which a pass
// counts as played into the final third.
const FinalThirdX = 80.0

// Pass length thresholds.
const (
	ShortPassMax = 15.0
	LongPassMin  = 30.0
)

// Shot outcome names. Goal, saves and shots against the post count as on
// target; wide, wayward and blocked shots do not.
const (
	ShotOutcomeGoal        = "Goal"
	ShotOutcomeSaved       = "Saved"
	ShotOutcomeSavedToPost = "Saved To Post"
	ShotOutcomePost        = "Post"
	ShotOutcomeOffTarget   = "Off T"
	ShotOutcomeWayward     = "Wayward"
	ShotOutcomeBlocked     = "Blocked"
)

const DribbleOutcomeComplete = "Complete"

// Pass types that restart play and are excluded from the pass-completion
// denominator entirely.
var restartPassTypes = map[string]struct{}{
	"Throw-in":  {},
	"Goal Kick": {},
	"Corner":    {},
}

// Duel outcomes accepted as a successful tackle.
var tackleWonOutcomes = map[string]struct{}{
	"Won":             {},
	"Success":         {},
	"Success In Play": {},
	"Success Out":     {},
}

// Ref is an {id,name} pair used throughout the feed for types, teams,
// players, positions and outcomes.
type Ref struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// RawEvent is one record of the upload batch. Exactly one of the payload
// pointers is set for statistically meaningful types; events of other types
// carry no payload and are passed through untouched.
type RawEvent struct {
	ID             string  `json:"id"`
	Index          int     `json:"index"`
	Type           Ref     `json:"type"`
	Period         int     `json:"period"`
	Minute         int     `json:"minute"`
	Second         int     `json:"second"`
	Team           Ref     `json:"team"`
	Player         *Ref    `json:"player,omitempty"`
	PossessionTeam *Ref    `json:"possession_team,omitempty"`
	Location       []float64 `json:"location,omitempty"`
	Duration       float64 `json:"duration,omitempty"`

	Shot         *Shot         `json:"shot,omitempty"`
	Pass         *Pass         `json:"pass,omitempty"`
	Dribble      *Dribble      `json:"dribble,omitempty"`
	Duel         *Duel         `json:"duel,omitempty"`
	Interception *Interception `json:"interception,omitempty"`
	BallRecovery *BallRecovery `json:"ball_recovery,omitempty"`
	Tactics      *Tactics      `json:"tactics,omitempty"`
}

// Shot is the shot payload. XG carries the feed's per-shot quality score.
type Shot struct {
	Outcome   *Ref    `json:"outcome,omitempty"`
	XG        float64 `json:"statsbomb_xg,omitempty"`
	KeyPassID string  `json:"key_pass_id,omitempty"`
	Type      *Ref    `json:"type,omitempty"`
	BodyPart  *Ref    `json:"body_part,omitempty"`
}

// Pass is the pass payload. A nil Outcome means the pass was completed.
type Pass struct {
	Outcome    *Ref    `json:"outcome,omitempty"`
	Type       *Ref    `json:"type,omitempty"`
	Length     float64 `json:"length,omitempty"`
	Cross      bool    `json:"cross,omitempty"`
	GoalAssist bool    `json:"goal_assist,omitempty"`
	Recipient  *Ref    `json:"recipient,omitempty"`
}

type Dribble struct {
	Outcome *Ref `json:"outcome,omitempty"`
}

type Duel struct {
	Type    *Ref `json:"type,omitempty"`
	Outcome *Ref `json:"outcome,omitempty"`
}

type Interception struct {
	Outcome *Ref `json:"outcome,omitempty"`
}

type BallRecovery struct {
	RecoveryFailure bool `json:"recovery_failure,omitempty"`
}

// Tactics is the starting-lineup payload.
type Tactics struct {
	Formation int          `json:"formation,omitempty"`
	Lineup    []LineupSlot `json:"lineup"`
}

type LineupSlot struct {
	Player       Ref `json:"player"`
	Position     Ref `json:"position"`
	JerseyNumber int `json:"jersey_number"`
}

// PlayerName returns the acting player's name, or "" when the feed omitted
// the player.
func (e RawEvent) PlayerName() string {
	if e.Player == nil {
		return ""
	}
	return e.Player.Name
}

// InShootOut reports whether the event belongs to the penalty shoot-out
// window.
func (e RawEvent) InShootOut() bool {
	return e.Period == PeriodPenaltyShootout
}

// LocationX returns the pitch-length coordinate and whether one was present.
func (e RawEvent) LocationX() (float64, bool) {
	if len(e.Location) == 0 {
		return 0, false
	}
	return e.Location[0], true
}

// IsRestartPass reports whether the pass restarts play (throw-in, goal kick,
// corner); such passes never enter the completion denominator.
func (p *Pass) IsRestartPass() bool {
	if p == nil || p.Type == nil {
		return false
	}
	_, ok := restartPassTypes[p.Type.Name]
	return ok
}

// Completed reports whether the pass reached a teammate. The feed only
// annotates failures, so an absent outcome means completion.
func (p *Pass) Completed() bool {
	return p != nil && p.Outcome == nil
}

func (s *Shot) OutcomeName() string {
	if s == nil || s.Outcome == nil {
		return ""
	}
	return s.Outcome.Name
}

func (s *Shot) IsGoal() bool {
	return s.OutcomeName() == ShotOutcomeGoal
}

// OnTarget classifies the shot outcome. Goals, saved shots and shots against
// the post are on target.
func (s *Shot) OnTarget() bool {
	switch s.OutcomeName() {
	case ShotOutcomeGoal, ShotOutcomeSaved, ShotOutcomeSavedToPost, ShotOutcomePost:
		return true
	default:
		return false
	}
}

// Saved reports whether the shot was stopped by the goalkeeper; used for
// cross-team save attribution.
func (s *Shot) Saved() bool {
	switch s.OutcomeName() {
	case ShotOutcomeSaved, ShotOutcomeSavedToPost:
		return true
	default:
		return false
	}
}

func (d *Dribble) Completed() bool {
	return d != nil && d.Outcome != nil && d.Outcome.Name == DribbleOutcomeComplete
}

// IsTackle restricts duels to the tackle sub-types.
func (d *Duel) IsTackle() bool {
	if d == nil || d.Type == nil {
		return false
	}
	return containsFold(d.Type.Name, "Tackle")
}

func (d *Duel) TackleWon() bool {
	if d == nil || d.Outcome == nil {
		return false
	}
	_, ok := tackleWonOutcomes[d.Outcome.Name]
	return ok
}

func (b *BallRecovery) Succeeded() bool {
	return b != nil && !b.RecoveryFailure
}

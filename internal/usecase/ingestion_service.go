package usecase

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/clubpulse/matchday/internal/domain/club"
	"github.com/clubpulse/matchday/internal/domain/event"
	"github.com/clubpulse/matchday/internal/domain/match"
	"github.com/clubpulse/matchday/internal/domain/matchstats"
	"github.com/clubpulse/matchday/internal/domain/opponent"
	"github.com/clubpulse/matchday/internal/domain/statistics"
	"github.com/clubpulse/matchday/internal/platform/cache"
	"github.com/clubpulse/matchday/internal/platform/id"
	"github.com/clubpulse/matchday/internal/platform/logging"
	"github.com/clubpulse/matchday/internal/platform/resilience"
)

// Pipeline step names surfaced on step-tagged errors.
const (
	StepResolveTeams   = "resolve-teams"
	StepOpponent       = "get-or-create-opponent"
	StepCreateMatch    = "create-match-record"
	StepOurLineup      = "extract-our-lineup"
	StepOpponentLineup = "extract-opponent-lineup"
	StepLineupRows     = "build-lineup-rows"
	StepInsertEvents   = "bulk-insert-events"
	StepExtractGoals   = "extract-goals"
	StepMatchStats     = "compute-match-statistics"
	StepPlayerStats    = "compute-player-statistics"
	StepClubSeason     = "recompute-club-season"
	StepPlayerSeason   = "recompute-player-season"
)

// StepError tags a pipeline failure with the step it occurred in. The
// wrapped error keeps its sentinel classification.
type StepError struct {
	Step string
	Err  error
}

func (e *StepError) Error() string {
	return e.Step + ": " + e.Err.Error()
}

func (e *StepError) Unwrap() error {
	return e.Err
}

func stepErr(step string, err error) error {
	if err == nil {
		return nil
	}
	return &StepError{Step: step, Err: err}
}

// IngestRequest is one uploaded match: metadata plus the ordered raw batch.
type IngestRequest struct {
	ClubID       string
	OpponentName string
	KickoffAt    time.Time
	Home         bool
	HomeScore    int
	AwayScore    int
	ScoreText    string
	Events       []event.RawEvent
}

// IngestSummary reports what one committed ingestion produced. Warnings are
// non-fatal observations; a request that yields a summary was fully applied.
type IngestSummary struct {
	MatchID        string   `json:"match_id"`
	EventsStored   int      `json:"events_stored"`
	GoalsRecorded  int      `json:"goals_recorded"`
	LineupEntries  int      `json:"lineup_entries"`
	PlayersCreated int      `json:"players_created"`
	PlayersUpdated int      `json:"players_updated"`
	Warnings       []string `json:"warnings,omitempty"`
}

// MatchIngestedNotice is the payload handed to the notifier after commit.
type MatchIngestedNotice struct {
	MatchID      string    `json:"match_id"`
	ClubID       string    `json:"club_id"`
	OpponentName string    `json:"opponent_name"`
	KickoffAt    time.Time `json:"kickoff_at"`
	Goals        int       `json:"goals"`
	Events       int       `json:"events"`
}

// Notifier publishes post-commit notices. Implementations must not block
// the ingest path.
type Notifier interface {
	MatchIngested(ctx context.Context, notice MatchIngestedNotice)
}

// IngestionService runs the full ingestion pipeline for one uploaded match
// as a single atomic unit. All writes happen inside one store transaction;
// any step failure rolls the whole run back.
type IngestionService struct {
	stores   Stores
	resolver *TeamResolver
	lineups  *LineupBuilder
	ids      id.Generator
	locks    *resilience.KeyedMutex
	cache    *cache.Store
	notifier Notifier
	logger   *logging.Logger
	nowFn    func() time.Time
}

func NewIngestionService(
	stores Stores,
	ids id.Generator,
	locks *resilience.KeyedMutex,
	store *cache.Store,
	notifier Notifier,
	logger *logging.Logger,
) *IngestionService {
	if logger == nil {
		logger = logging.Default()
	}
	return &IngestionService{
		stores:   stores,
		resolver: NewTeamResolver(),
		lineups:  NewLineupBuilder(ids),
		ids:      ids,
		locks:    locks,
		cache:    store,
		notifier: notifier,
		logger:   logger,
		nowFn:    time.Now,
	}
}

// Ingest processes one uploaded match end to end and returns a structured
// summary. The caller receives either a complete, committed result or a
// single typed failure with every write rolled back.
func (s *IngestionService) Ingest(ctx context.Context, req IngestRequest) (IngestSummary, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.IngestionService.Ingest")
	defer span.End()

	if err := validateIngestRequest(&req); err != nil {
		return IngestSummary{}, err
	}

	var summary IngestSummary
	err := s.locks.Do(clubLockKey(req.ClubID), func() error {
		return s.stores.WithinTx(ctx, func(ctx context.Context, tx Stores) error {
			out, err := s.run(ctx, tx, req)
			if err != nil {
				return err
			}
			summary = out
			return nil
		})
	})
	if err != nil {
		return IngestSummary{}, err
	}

	s.afterCommit(ctx, req, summary)
	return summary, nil
}

func (s *IngestionService) run(ctx context.Context, tx Stores, req IngestRequest) (IngestSummary, error) {
	now := s.nowFn()

	ourClub, ok, err := tx.Clubs().GetByID(ctx, req.ClubID)
	if err != nil {
		return IngestSummary{}, fmt.Errorf("get club: %w", err)
	}
	if !ok {
		return IngestSummary{}, fmt.Errorf("%w: club %s", ErrNotFound, req.ClubID)
	}

	if _, exists, err := tx.Matches().FindByClubAndKickoff(ctx, req.ClubID, req.KickoffAt); err != nil {
		return IngestSummary{}, fmt.Errorf("check duplicate match: %w", err)
	} else if exists {
		return IngestSummary{}, fmt.Errorf("%w: match for club %s at %s already ingested", ErrConflict, req.ClubID, req.KickoffAt.Format(time.RFC3339))
	}

	// resolve-teams
	resolvedTeams, err := s.resolveTeams(ctx, tx, ourClub, req.Events)
	if err != nil {
		return IngestSummary{}, err
	}

	classified := event.Classify(req.Events, resolvedTeams.OurTeam.ID)

	// get-or-create-opponent
	opp, err := s.getOrCreateOpponent(ctx, tx, req.ClubID, req.OpponentName, now)
	if err != nil {
		return IngestSummary{}, err
	}

	matchID, err := s.ids.NewID("mtch")
	if err != nil {
		return IngestSummary{}, fmt.Errorf("generate match id: %w", err)
	}

	m := match.Match{
		ID:                matchID,
		ClubID:            req.ClubID,
		OpponentID:        opp.ID,
		KickoffAt:         req.KickoffAt,
		Home:              req.Home,
		DeclaredHomeScore: req.HomeScore,
		DeclaredAwayScore: req.AwayScore,
		ScoreText:         strings.TrimSpace(req.ScoreText),
		CreatedAt:         now,
	}

	// extract-goals (needed before the match record for score validation)
	goals := statistics.ExtractGoals(matchID, classified)
	oursScored, theirsScored := statistics.CountGoalsByRole(goals)

	// create-match-record
	summary := IngestSummary{MatchID: matchID}
	if err := s.createMatchRecord(ctx, tx, m, oursScored, theirsScored, classified, &summary); err != nil {
		return IngestSummary{}, err
	}

	// extract-our-lineup
	ourSide, err := s.lineups.ExtractSide(classified, event.RoleOurTeam)
	if err != nil {
		return IngestSummary{}, stepErr(StepOurLineup, err)
	}
	ourRoster, err := s.lineups.ResolveOurSide(ctx, tx.Players(), m, ourSide)
	if err != nil {
		return IngestSummary{}, stepErr(StepOurLineup, err)
	}

	// extract-opponent-lineup
	oppSide, err := s.lineups.ExtractSide(classified, event.RoleOpponent)
	if err != nil {
		return IngestSummary{}, stepErr(StepOpponentLineup, err)
	}
	oppRoster, err := s.lineups.ResolveOpponentSide(ctx, tx.Opponents(), m, oppSide)
	if err != nil {
		return IngestSummary{}, stepErr(StepOpponentLineup, err)
	}

	summary.PlayersCreated = ourRoster.Created + oppRoster.Created
	summary.PlayersUpdated = ourRoster.Updated + oppRoster.Updated

	// build-lineup-rows
	entries := append(ourRoster.Entries, oppRoster.Entries...)
	if err := tx.Lineups().BulkCreate(ctx, entries); err != nil {
		return IngestSummary{}, stepErr(StepLineupRows, fmt.Errorf("insert lineup entries: %w", err))
	}
	summary.LineupEntries = len(entries)

	// bulk-insert-events
	if err := tx.Events().BulkCreate(ctx, matchID, req.Events); err != nil {
		return IngestSummary{}, stepErr(StepInsertEvents, fmt.Errorf("insert events: %w", err))
	}
	// Report the count the store holds, not the request length, so a
	// partial chunked insert can never go unnoticed in the summary.
	stored, err := tx.Events().CountByMatch(ctx, matchID)
	if err != nil {
		return IngestSummary{}, stepErr(StepInsertEvents, fmt.Errorf("count stored events: %w", err))
	}
	summary.EventsStored = stored

	// extract-goals (persist)
	if len(goals) > 0 {
		for i := range goals {
			goalID, err := s.ids.NewID("goal")
			if err != nil {
				return IngestSummary{}, stepErr(StepExtractGoals, fmt.Errorf("generate goal id: %w", err))
			}
			goals[i].ID = goalID
		}
		if err := tx.Goals().BulkCreate(ctx, goals); err != nil {
			return IngestSummary{}, stepErr(StepExtractGoals, fmt.Errorf("insert goals: %w", err))
		}
	}
	summary.GoalsRecorded = len(goals)

	// compute-match-statistics
	ourStats, oppStats := statistics.ComputeMatchStatistics(matchID, classified, resolvedTeams.OurTeam.ID)
	if err := tx.MatchStats().BulkCreate(ctx, []matchstats.MatchStatistics{ourStats, oppStats}); err != nil {
		return IngestSummary{}, stepErr(StepMatchStats, fmt.Errorf("insert match statistics: %w", err))
	}

	// compute-player-statistics
	playerRows := statistics.ComputePlayerStatistics(matchID, classified, ourRoster.Roster)
	if len(playerRows) > 0 {
		if err := tx.PlayerStats().BulkCreate(ctx, playerRows); err != nil {
			return IngestSummary{}, stepErr(StepPlayerStats, fmt.Errorf("insert player statistics: %w", err))
		}
	}

	// recompute-club-season
	if _, err := recomputeClubSeason(ctx, tx, req.ClubID, now); err != nil {
		return IngestSummary{}, stepErr(StepClubSeason, err)
	}

	// recompute-player-season
	for _, playerID := range sortedRosterIDs(ourRoster.Roster) {
		err := s.locks.Do(playerLockKey(playerID), func() error {
			_, err := recomputePlayerSeason(ctx, tx, playerID, now)
			return err
		})
		if err != nil {
			return IngestSummary{}, stepErr(StepPlayerSeason, err)
		}
	}

	return summary, nil
}

func (s *IngestionService) resolveTeams(ctx context.Context, tx Stores, ourClub club.Club, events []event.RawEvent) (ResolvedTeams, error) {
	candidates := event.TeamNames(events)
	resolvedTeams, err := s.resolver.Resolve(ourClub, candidates)
	if err != nil {
		return ResolvedTeams{}, stepErr(StepResolveTeams, err)
	}

	if resolvedTeams.Learned {
		if err := tx.Clubs().SetFeedTeamID(ctx, ourClub.ID, resolvedTeams.OurTeam.ID); err != nil {
			return ResolvedTeams{}, stepErr(StepResolveTeams, fmt.Errorf("record feed team id: %w", err))
		}
	}
	return resolvedTeams, nil
}

func (s *IngestionService) getOrCreateOpponent(ctx context.Context, tx Stores, clubID, name string, now time.Time) (opponent.Opponent, error) {
	existing, ok, err := tx.Opponents().GetByName(ctx, clubID, name)
	if err != nil {
		return opponent.Opponent{}, stepErr(StepOpponent, fmt.Errorf("get opponent: %w", err))
	}
	if ok {
		return existing, nil
	}

	opponentID, err := s.ids.NewID("oppo")
	if err != nil {
		return opponent.Opponent{}, stepErr(StepOpponent, fmt.Errorf("generate opponent id: %w", err))
	}
	created := opponent.Opponent{
		ID:        opponentID,
		ClubID:    clubID,
		Name:      name,
		CreatedAt: now,
	}
	if err := tx.Opponents().Create(ctx, created); err != nil {
		return opponent.Opponent{}, stepErr(StepOpponent, fmt.Errorf("create opponent: %w", err))
	}
	return created, nil
}

// createMatchRecord validates the declared score against the derived goal
// counts, persists the match row and collects non-fatal warnings.
func (s *IngestionService) createMatchRecord(ctx context.Context, tx Stores, m match.Match, oursScored, theirsScored int, classified event.Classification, summary *IngestSummary) error {
	if m.OurDeclaredScore() != oursScored || m.OpponentDeclaredScore() != theirsScored {
		return stepErr(StepCreateMatch, fmt.Errorf(
			"%w: declared score %d-%d does not match derived goals %d-%d",
			ErrInvalidInput,
			m.OurDeclaredScore(), m.OpponentDeclaredScore(),
			oursScored, theirsScored,
		))
	}

	if shootOutGoals := statistics.CountShootOutGoals(classified); shootOutGoals > 0 {
		summary.Warnings = append(summary.Warnings, fmt.Sprintf(
			"%d penalty shoot-out goal(s) excluded from statistics and goal records", shootOutGoals))
	}
	if home, away, ok := parseScoreText(m.ScoreText); ok {
		if home != m.DeclaredHomeScore || away != m.DeclaredAwayScore {
			summary.Warnings = append(summary.Warnings, fmt.Sprintf(
				"submitted score text %q differs from declared score %d-%d",
				m.ScoreText, m.DeclaredHomeScore, m.DeclaredAwayScore))
		}
	}

	if err := tx.Matches().Create(ctx, m); err != nil {
		return stepErr(StepCreateMatch, fmt.Errorf("create match: %w", err))
	}
	return nil
}

func (s *IngestionService) afterCommit(ctx context.Context, req IngestRequest, summary IngestSummary) {
	invalidateSeasonCache(ctx, s.cache, req.ClubID)

	if s.notifier != nil {
		s.notifier.MatchIngested(ctx, MatchIngestedNotice{
			MatchID:      summary.MatchID,
			ClubID:       req.ClubID,
			OpponentName: req.OpponentName,
			KickoffAt:    req.KickoffAt,
			Goals:        summary.GoalsRecorded,
			Events:       summary.EventsStored,
		})
	}

	s.logger.InfoContext(ctx, "match ingested",
		"match_id", summary.MatchID,
		"club_id", req.ClubID,
		"events", summary.EventsStored,
		"goals", summary.GoalsRecorded,
		"warnings", len(summary.Warnings),
	)
}

func validateIngestRequest(req *IngestRequest) error {
	req.ClubID = strings.TrimSpace(req.ClubID)
	req.OpponentName = strings.TrimSpace(req.OpponentName)

	if req.ClubID == "" {
		return fmt.Errorf("%w: club_id is required", ErrInvalidInput)
	}
	if req.OpponentName == "" {
		return fmt.Errorf("%w: opponent_name is required", ErrInvalidInput)
	}
	if req.KickoffAt.IsZero() {
		return fmt.Errorf("%w: kickoff_at is required", ErrInvalidInput)
	}
	if req.HomeScore < 0 || req.AwayScore < 0 {
		return fmt.Errorf("%w: declared scores cannot be negative", ErrInvalidInput)
	}
	if len(req.Events) == 0 {
		return fmt.Errorf("%w: events are required", ErrInvalidInput)
	}
	for i := range req.Events {
		if req.Events[i].Type.Name == "" {
			return fmt.Errorf("%w: event %d carries no type", ErrInvalidInput, i)
		}
		if req.Events[i].Team.Name == "" {
			return fmt.Errorf("%w: event %d carries no team", ErrInvalidInput, i)
		}
	}
	return nil
}

// parseScoreText reads free-form score notation such as "2-1" or "2 : 1".
func parseScoreText(text string) (home, away int, ok bool) {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0, 0, false
	}

	for _, sep := range []string{"-", ":"} {
		parts := strings.SplitN(text, sep, 2)
		if len(parts) != 2 {
			continue
		}
		h, errH := strconv.Atoi(strings.TrimSpace(parts[0]))
		a, errA := strconv.Atoi(strings.TrimSpace(parts[1]))
		if errH != nil || errA != nil {
			continue
		}
		return h, a, true
	}
	return 0, 0, false
}

func sortedRosterIDs(roster map[int]string) []string {
	seen := make(map[string]struct{}, len(roster))
	out := make([]string, 0, len(roster))
	for _, playerID := range roster {
		if _, ok := seen[playerID]; ok {
			continue
		}
		seen[playerID] = struct{}{}
		out = append(out, playerID)
	}
	sort.Strings(out)
	return out
}

package httpapi

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"

	"github.com/clubpulse/matchday/internal/domain/club"
	"github.com/clubpulse/matchday/internal/domain/event"
	"github.com/clubpulse/matchday/internal/infrastructure/repository/memory"
	"github.com/clubpulse/matchday/internal/platform/cache"
	"github.com/clubpulse/matchday/internal/platform/id"
	"github.com/clubpulse/matchday/internal/platform/logging"
	"github.com/clubpulse/matchday/internal/platform/resilience"
	"github.com/clubpulse/matchday/internal/usecase"
)

const handlerTestInternalToken = "internal-secret"

type noopNotifier struct{}

func (noopNotifier) MatchIngested(context.Context, usecase.MatchIngestedNotice) {}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	store := memory.NewStore()
	store.SeedClub(club.Club{
		ID:        "club-1",
		Name:      "Thunder United",
		CreatedAt: time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
	})

	locks := resilience.NewKeyedMutex()
	cacheStore := cache.NewStore(time.Minute)

	ingestion := usecase.NewIngestionService(store, id.NewRandomGenerator(), locks, cacheStore, noopNotifier{}, logging.NewNop())
	stats := usecase.NewStatsService(store, cacheStore)
	resync := usecase.NewResyncService(store, locks, cacheStore)
	season := usecase.NewSeasonService(store, locks, cacheStore)

	handler := NewHandler(ingestion, stats, resync, season, logging.NewNop())
	return NewRouter(handler, logging.NewNop(), []string{"*"}, handlerTestInternalToken)
}

func handlerTestLineup(team event.Ref, firstFeedID int, namePrefix string) event.RawEvent {
	tactics := &event.Tactics{Formation: 442}
	for i := 0; i < 11; i++ {
		tactics.Lineup = append(tactics.Lineup, event.LineupSlot{
			Player:       event.Ref{ID: firstFeedID + i, Name: fmt.Sprintf("%s %d", namePrefix, i+1)},
			Position:     event.Ref{ID: i + 1, Name: "Midfielder"},
			JerseyNumber: i + 1,
		})
	}
	return event.RawEvent{
		ID:      fmt.Sprintf("lineup-%d", team.ID),
		Type:    event.Ref{ID: 35, Name: event.TypeStartingLineup},
		Period:  1,
		Team:    team,
		Tactics: tactics,
	}
}

func handlerTestIngestBody() ingestMatchRequestDTO {
	our := event.Ref{ID: 217, Name: "Thunder United"}
	opp := event.Ref{ID: 218, Name: "City Strikers"}

	return ingestMatchRequestDTO{
		ClubID:       "club-1",
		OpponentName: "City Strikers",
		KickoffAt:    time.Date(2026, 3, 14, 15, 0, 0, 0, time.UTC),
		Home:         true,
		HomeScore:    1,
		AwayScore:    0,
		ScoreText:    "1-0",
		Events: []event.RawEvent{
			handlerTestLineup(our, 1, "Home Player"),
			handlerTestLineup(opp, 101, "Away Player"),
			{
				ID:     "shot-1",
				Type:   event.Ref{ID: 16, Name: event.TypeShot},
				Period: 1,
				Minute: 10,
				Team:   our,
				Player: &event.Ref{ID: 1, Name: "Home Player 1"},
				Shot: &event.Shot{
					Outcome: &event.Ref{ID: 97, Name: event.ShotOutcomeGoal},
					XG:      0.31,
				},
			},
		},
	}
}

func postJSON(t *testing.T, router http.Handler, path string, payload any, headers map[string]string) *httptest.ResponseRecorder {
	t.Helper()

	body, err := sonic.Marshal(payload)
	if err != nil {
		t.Fatalf("marshal request payload: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestHandler_IngestMatchAndReadBack(t *testing.T) {
	router := newTestRouter(t)

	rec := postJSON(t, router, "/v1/matches", handlerTestIngestBody(), nil)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var ingestResp struct {
		Data usecase.IngestSummary `json:"data"`
	}
	if err := sonic.Unmarshal(rec.Body.Bytes(), &ingestResp); err != nil {
		t.Fatalf("unmarshal ingest response: %v", err)
	}
	if ingestResp.Data.MatchID == "" {
		t.Fatalf("expected match_id in ingest summary")
	}
	if ingestResp.Data.GoalsRecorded != 1 {
		t.Fatalf("expected 1 goal recorded, got %d", ingestResp.Data.GoalsRecorded)
	}
	if ingestResp.Data.LineupEntries != 22 {
		t.Fatalf("expected 22 lineup entries, got %d", ingestResp.Data.LineupEntries)
	}

	goalsReq := httptest.NewRequest(http.MethodGet, "/v1/matches/"+ingestResp.Data.MatchID+"/goals", nil)
	goalsRec := httptest.NewRecorder()
	router.ServeHTTP(goalsRec, goalsReq)
	if goalsRec.Code != http.StatusOK {
		t.Fatalf("expected status 200 reading goals, got %d: %s", goalsRec.Code, goalsRec.Body.String())
	}

	var goalsResp struct {
		Data []goalDTO `json:"data"`
	}
	if err := sonic.Unmarshal(goalsRec.Body.Bytes(), &goalsResp); err != nil {
		t.Fatalf("unmarshal goals response: %v", err)
	}
	if len(goalsResp.Data) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(goalsResp.Data))
	}
	if goalsResp.Data[0].ScorerName != "Home Player 1" {
		t.Fatalf("unexpected scorer: %q", goalsResp.Data[0].ScorerName)
	}

	detailsReq := httptest.NewRequest(http.MethodGet, "/v1/matches/"+ingestResp.Data.MatchID, nil)
	detailsRec := httptest.NewRecorder()
	router.ServeHTTP(detailsRec, detailsReq)
	if detailsRec.Code != http.StatusOK {
		t.Fatalf("expected status 200 reading details, got %d", detailsRec.Code)
	}

	var detailsResp struct {
		Data matchDetailsDTO `json:"data"`
	}
	if err := sonic.Unmarshal(detailsRec.Body.Bytes(), &detailsResp); err != nil {
		t.Fatalf("unmarshal details response: %v", err)
	}
	if detailsResp.Data.Match.DeclaredHomeScore != 1 || detailsResp.Data.Match.DeclaredAwayScore != 0 {
		t.Fatalf("unexpected declared score %d-%d", detailsResp.Data.Match.DeclaredHomeScore, detailsResp.Data.Match.DeclaredAwayScore)
	}
	if len(detailsResp.Data.Statistics) != 2 {
		t.Fatalf("expected 2 statistics rows, got %d", len(detailsResp.Data.Statistics))
	}
	if len(detailsResp.Data.Lineups) != 22 {
		t.Fatalf("expected 22 lineup entries, got %d", len(detailsResp.Data.Lineups))
	}

	seasonReq := httptest.NewRequest(http.MethodGet, "/v1/clubs/club-1/season", nil)
	seasonRec := httptest.NewRecorder()
	router.ServeHTTP(seasonRec, seasonReq)
	if seasonRec.Code != http.StatusOK {
		t.Fatalf("expected status 200 reading club season, got %d", seasonRec.Code)
	}

	var seasonResp struct {
		Data clubSeasonDTO `json:"data"`
	}
	if err := sonic.Unmarshal(seasonRec.Body.Bytes(), &seasonResp); err != nil {
		t.Fatalf("unmarshal season response: %v", err)
	}
	if seasonResp.Data.MatchesPlayed != 1 || seasonResp.Data.Wins != 1 {
		t.Fatalf("unexpected season rollup: played=%d wins=%d", seasonResp.Data.MatchesPlayed, seasonResp.Data.Wins)
	}
}

func TestHandler_IngestMatch_InvalidJSON(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodPost, "/v1/matches", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", rec.Code)
	}
}

func TestHandler_IngestMatch_MissingClubID(t *testing.T) {
	router := newTestRouter(t)

	body := handlerTestIngestBody()
	body.ClubID = ""
	rec := postJSON(t, router, "/v1/matches", body, nil)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestHandler_IngestMatch_DuplicateConflicts(t *testing.T) {
	router := newTestRouter(t)

	first := postJSON(t, router, "/v1/matches", handlerTestIngestBody(), nil)
	if first.Code != http.StatusCreated {
		t.Fatalf("expected status 201 on first upload, got %d", first.Code)
	}

	second := postJSON(t, router, "/v1/matches", handlerTestIngestBody(), nil)
	if second.Code != http.StatusConflict {
		t.Fatalf("expected status 409 on duplicate upload, got %d: %s", second.Code, second.Body.String())
	}
}

func TestHandler_GetMatchDetails_NotFound(t *testing.T) {
	router := newTestRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/v1/matches/mtch-missing", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected status 404, got %d", rec.Code)
	}
}

func TestHandler_RunResync_RequiresInternalToken(t *testing.T) {
	router := newTestRouter(t)

	if rec := postJSON(t, router, "/v1/matches", handlerTestIngestBody(), nil); rec.Code != http.StatusCreated {
		t.Fatalf("seed ingest failed with status %d", rec.Code)
	}

	payload := map[string]any{"club_id": "club-1"}

	unauthorized := postJSON(t, router, "/v1/internal/resync", payload, nil)
	if unauthorized.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", unauthorized.Code)
	}

	authorized := postJSON(t, router, "/v1/internal/resync", payload, map[string]string{"X-Internal-Token": handlerTestInternalToken})
	if authorized.Code != http.StatusOK {
		t.Fatalf("expected status 200 with token, got %d: %s", authorized.Code, authorized.Body.String())
	}

	var resyncResp struct {
		Data usecase.ResyncResult `json:"data"`
	}
	if err := sonic.Unmarshal(authorized.Body.Bytes(), &resyncResp); err != nil {
		t.Fatalf("unmarshal resync response: %v", err)
	}
	if resyncResp.Data.TaskCount != 12 {
		t.Fatalf("expected 12 resync tasks (1 club + 11 players), got %d", resyncResp.Data.TaskCount)
	}
	if resyncResp.Data.FailedCount != 0 {
		t.Fatalf("expected no failed tasks, got %d", resyncResp.Data.FailedCount)
	}
}

func TestHandler_RecomputeClubSeason_RequiresInternalToken(t *testing.T) {
	router := newTestRouter(t)

	if rec := postJSON(t, router, "/v1/matches", handlerTestIngestBody(), nil); rec.Code != http.StatusCreated {
		t.Fatalf("seed ingest failed with status %d", rec.Code)
	}

	unauthorized := postJSON(t, router, "/v1/internal/clubs/club-1/season/recompute", nil, nil)
	if unauthorized.Code != http.StatusUnauthorized {
		t.Fatalf("expected status 401 without token, got %d", unauthorized.Code)
	}

	authorized := postJSON(t, router, "/v1/internal/clubs/club-1/season/recompute", nil, map[string]string{"X-Internal-Token": handlerTestInternalToken})
	if authorized.Code != http.StatusOK {
		t.Fatalf("expected status 200 with token, got %d: %s", authorized.Code, authorized.Body.String())
	}

	var resp struct {
		Data clubSeasonDTO `json:"data"`
	}
	if err := sonic.Unmarshal(authorized.Body.Bytes(), &resp); err != nil {
		t.Fatalf("unmarshal recompute response: %v", err)
	}
	if resp.Data.MatchesPlayed != 1 || resp.Data.Wins != 1 {
		t.Fatalf("unexpected recomputed rollup: played=%d wins=%d", resp.Data.MatchesPlayed, resp.Data.Wins)
	}

	missing := postJSON(t, router, "/v1/internal/clubs/club-missing/season/recompute", nil, map[string]string{"X-Internal-Token": handlerTestInternalToken})
	if missing.Code != http.StatusNotFound {
		t.Fatalf("expected status 404 for unknown club, got %d", missing.Code)
	}
}

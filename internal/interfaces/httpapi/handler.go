package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"

	"github.com/clubpulse/matchday/internal/platform/logging"
	"github.com/clubpulse/matchday/internal/usecase"
)

// Handler exposes ingestion, statistics read and operational
// resync/recompute endpoints over HTTP.
type Handler struct {
	ingestionService *usecase.IngestionService
	statsService     *usecase.StatsService
	resyncService    *usecase.ResyncService
	seasonService    *usecase.SeasonService
	logger           *logging.Logger
	validator        *validator.Validate
}

func NewHandler(
	ingestionService *usecase.IngestionService,
	statsService *usecase.StatsService,
	resyncService *usecase.ResyncService,
	seasonService *usecase.SeasonService,
	logger *logging.Logger,
) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		ingestionService: ingestionService,
		statsService:     statsService,
		resyncService:    resyncService,
		seasonService:    seasonService,
		logger:           logger,
		validator:        validator.New(),
	}
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(r.Context(), w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) IngestMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.IngestMatch")
	defer span.End()

	var req ingestMatchRequestDTO
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	summary, err := h.ingestionService.Ingest(ctx, req.toRequest())
	if err != nil {
		h.logger.WarnContext(ctx, "match ingestion failed", "club_id", req.ClubID, "opponent", req.OpponentName, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, summary)
}

func (h *Handler) GetMatchDetails(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchDetails")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	details, err := h.statsService.MatchDetails(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match details failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchDetailsToDTO(details))
}

func (h *Handler) GetMatchStatistics(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchStatistics")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	rows, err := h.statsService.MatchStatistics(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match statistics failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchStatisticsToDTOs(rows))
}

func (h *Handler) GetMatchGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchGoals")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	goals, err := h.statsService.MatchGoals(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match goals failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, goalsToDTOs(goals))
}

func (h *Handler) GetMatchLineups(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchLineups")
	defer span.End()

	matchID := strings.TrimSpace(r.PathValue("matchID"))
	entries, err := h.statsService.MatchLineups(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match lineups failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, lineupEntriesToDTOs(entries))
}

func (h *Handler) GetClubSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetClubSeason")
	defer span.End()

	clubID := strings.TrimSpace(r.PathValue("clubID"))
	rollup, err := h.statsService.ClubSeason(ctx, clubID)
	if err != nil {
		h.logger.WarnContext(ctx, "get club season failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubSeasonToDTO(rollup))
}

func (h *Handler) GetPlayerSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerSeason")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	rollup, err := h.statsService.PlayerSeason(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player season failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerSeasonToDTO(rollup))
}

func (h *Handler) RunResync(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RunResync")
	defer span.End()

	var req resyncRequestDTO
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	result, err := h.resyncService.Resync(ctx, usecase.ResyncInput{
		ClubID:     strings.TrimSpace(req.ClubID),
		MaxWorkers: req.MaxWorkers,
		DryRun:     req.DryRun,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "resync failed", "club_id", req.ClubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

func (h *Handler) RecomputeClubSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecomputeClubSeason")
	defer span.End()

	clubID := strings.TrimSpace(r.PathValue("clubID"))
	rollup, err := h.seasonService.RecomputeClub(ctx, clubID)
	if err != nil {
		h.logger.WarnContext(ctx, "club season recompute failed", "club_id", clubID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, clubSeasonToDTO(rollup))
}

func (h *Handler) RecomputePlayerSeason(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RecomputePlayerSeason")
	defer span.End()

	playerID := strings.TrimSpace(r.PathValue("playerID"))
	rollup, err := h.seasonService.RecomputePlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "player season recompute failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerSeasonToDTO(rollup))
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}

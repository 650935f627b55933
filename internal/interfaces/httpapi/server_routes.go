package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/matches", handler.IngestMatch)
	mux.HandleFunc("GET /v1/matches/{matchID}", handler.GetMatchDetails)
	mux.HandleFunc("GET /v1/matches/{matchID}/statistics", handler.GetMatchStatistics)
	mux.HandleFunc("GET /v1/matches/{matchID}/goals", handler.GetMatchGoals)
	mux.HandleFunc("GET /v1/matches/{matchID}/lineups", handler.GetMatchLineups)
}

func registerSeasonRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/clubs/{clubID}/season", handler.GetClubSeason)
	mux.HandleFunc("GET /v1/players/{playerID}/season", handler.GetPlayerSeason)
}

func registerInternalRoutes(mux *http.ServeMux, handler *Handler, internalToken string) {
	mux.Handle("POST /v1/internal/resync", RequireInternalToken(internalToken, http.HandlerFunc(handler.RunResync)))
	mux.Handle("POST /v1/internal/clubs/{clubID}/season/recompute", RequireInternalToken(internalToken, http.HandlerFunc(handler.RecomputeClubSeason)))
	mux.Handle("POST /v1/internal/players/{playerID}/season/recompute", RequireInternalToken(internalToken, http.HandlerFunc(handler.RecomputePlayerSeason)))
}

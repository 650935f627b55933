package httpapi

import (
	"time"

	"github.com/clubpulse/matchday/internal/domain/clubseason"
	"github.com/clubpulse/matchday/internal/domain/event"
	"github.com/clubpulse/matchday/internal/domain/lineup"
	"github.com/clubpulse/matchday/internal/domain/match"
	"github.com/clubpulse/matchday/internal/domain/matchstats"
	"github.com/clubpulse/matchday/internal/domain/playerseason"
	"github.com/clubpulse/matchday/internal/domain/playerstats"
	"github.com/clubpulse/matchday/internal/usecase"
)

type ingestMatchRequestDTO struct {
	ClubID       string           `json:"club_id" validate:"required"`
	OpponentName string           `json:"opponent_name" validate:"required"`
	KickoffAt    time.Time        `json:"kickoff_at" validate:"required"`
	Home         bool             `json:"home"`
	HomeScore    int              `json:"home_score" validate:"min=0"`
	AwayScore    int              `json:"away_score" validate:"min=0"`
	ScoreText    string           `json:"score_text"`
	Events       []event.RawEvent `json:"events" validate:"required,min=1"`
}

func (dto ingestMatchRequestDTO) toRequest() usecase.IngestRequest {
	return usecase.IngestRequest{
		ClubID:       dto.ClubID,
		OpponentName: dto.OpponentName,
		KickoffAt:    dto.KickoffAt,
		Home:         dto.Home,
		HomeScore:    dto.HomeScore,
		AwayScore:    dto.AwayScore,
		ScoreText:    dto.ScoreText,
		Events:       dto.Events,
	}
}

type resyncRequestDTO struct {
	ClubID     string `json:"club_id"`
	MaxWorkers int    `json:"max_workers" validate:"min=0,max=64"`
	DryRun     bool   `json:"dry_run"`
}

type matchDTO struct {
	ID                string    `json:"id"`
	ClubID            string    `json:"club_id"`
	OpponentID        string    `json:"opponent_id"`
	KickoffAt         time.Time `json:"kickoff_at"`
	Home              bool      `json:"home"`
	DeclaredHomeScore int       `json:"declared_home_score"`
	DeclaredAwayScore int       `json:"declared_away_score"`
	ScoreText         string    `json:"score_text,omitempty"`
}

func matchToDTO(m match.Match) matchDTO {
	return matchDTO{
		ID:                m.ID,
		ClubID:            m.ClubID,
		OpponentID:        m.OpponentID,
		KickoffAt:         m.KickoffAt,
		Home:              m.Home,
		DeclaredHomeScore: m.DeclaredHomeScore,
		DeclaredAwayScore: m.DeclaredAwayScore,
		ScoreText:         m.ScoreText,
	}
}

type goalDTO struct {
	ID         string  `json:"id"`
	Role       string  `json:"role"`
	ScorerName string  `json:"scorer_name"`
	AssistName *string `json:"assist_name,omitempty"`
	Period     int     `json:"period"`
	Minute     int     `json:"minute"`
	Second     int     `json:"second"`
	TypeName   *string `json:"type_name,omitempty"`
	BodyPart   *string `json:"body_part,omitempty"`
}

func goalToDTO(g match.Goal) goalDTO {
	return goalDTO{
		ID:         g.ID,
		Role:       string(g.Role),
		ScorerName: g.ScorerName,
		AssistName: g.AssistName,
		Period:     g.Period,
		Minute:     g.Minute,
		Second:     g.Second,
		TypeName:   g.TypeName,
		BodyPart:   g.BodyPart,
	}
}

func goalsToDTOs(goals []match.Goal) []goalDTO {
	out := make([]goalDTO, 0, len(goals))
	for _, g := range goals {
		out = append(out, goalToDTO(g))
	}
	return out
}

type lineupEntryDTO struct {
	ID               string  `json:"id"`
	Role             string  `json:"role"`
	PlayerID         *string `json:"player_id,omitempty"`
	OpponentPlayerID *string `json:"opponent_player_id,omitempty"`
	Name             string  `json:"name"`
	JerseyNumber     int     `json:"jersey_number"`
	Position         string  `json:"position"`
}

func lineupEntryToDTO(e lineup.Entry) lineupEntryDTO {
	return lineupEntryDTO{
		ID:               e.ID,
		Role:             string(e.Role),
		PlayerID:         e.PlayerID,
		OpponentPlayerID: e.OpponentPlayerID,
		Name:             e.Name,
		JerseyNumber:     e.JerseyNumber,
		Position:         e.Position,
	}
}

func lineupEntriesToDTOs(entries []lineup.Entry) []lineupEntryDTO {
	out := make([]lineupEntryDTO, 0, len(entries))
	for _, e := range entries {
		out = append(out, lineupEntryToDTO(e))
	}
	return out
}

type matchStatisticsDTO struct {
	Role string `json:"role"`

	PossessionPct *float64 `json:"possession_pct,omitempty"`
	ExpectedGoals *float64 `json:"expected_goals,omitempty"`

	TotalShots      *int `json:"total_shots,omitempty"`
	ShotsOnTarget   *int `json:"shots_on_target,omitempty"`
	ShotsOffTarget  *int `json:"shots_off_target,omitempty"`
	GoalkeeperSaves *int `json:"goalkeeper_saves,omitempty"`

	TotalPasses       *int     `json:"total_passes,omitempty"`
	CompletedPasses   *int     `json:"completed_passes,omitempty"`
	PassCompletionPct *float64 `json:"pass_completion_pct,omitempty"`
	FinalThirdPasses  *int     `json:"final_third_passes,omitempty"`
	LongPasses        *int     `json:"long_passes,omitempty"`
	Crosses           *int     `json:"crosses,omitempty"`

	TotalDribbles     *int     `json:"total_dribbles,omitempty"`
	CompletedDribbles *int     `json:"completed_dribbles,omitempty"`
	DribbleSuccessPct *float64 `json:"dribble_success_pct,omitempty"`

	Tackles          *int     `json:"tackles,omitempty"`
	TacklesWon       *int     `json:"tackles_won,omitempty"`
	TackleSuccessPct *float64 `json:"tackle_success_pct,omitempty"`

	Interceptions  *int `json:"interceptions,omitempty"`
	BallRecoveries *int `json:"ball_recoveries,omitempty"`
}

func matchStatisticsToDTO(s matchstats.MatchStatistics) matchStatisticsDTO {
	return matchStatisticsDTO{
		Role:              string(s.Role),
		PossessionPct:     s.PossessionPct,
		ExpectedGoals:     s.ExpectedGoals,
		TotalShots:        s.TotalShots,
		ShotsOnTarget:     s.ShotsOnTarget,
		ShotsOffTarget:    s.ShotsOffTarget,
		GoalkeeperSaves:   s.GoalkeeperSaves,
		TotalPasses:       s.TotalPasses,
		CompletedPasses:   s.CompletedPasses,
		PassCompletionPct: s.PassCompletionPct,
		FinalThirdPasses:  s.FinalThirdPasses,
		LongPasses:        s.LongPasses,
		Crosses:           s.Crosses,
		TotalDribbles:     s.TotalDribbles,
		CompletedDribbles: s.CompletedDribbles,
		DribbleSuccessPct: s.DribbleSuccessPct,
		Tackles:           s.Tackles,
		TacklesWon:        s.TacklesWon,
		TackleSuccessPct:  s.TackleSuccessPct,
		Interceptions:     s.Interceptions,
		BallRecoveries:    s.BallRecoveries,
	}
}

func matchStatisticsToDTOs(rows []matchstats.MatchStatistics) []matchStatisticsDTO {
	out := make([]matchStatisticsDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchStatisticsToDTO(row))
	}
	return out
}

type playerMatchStatisticsDTO struct {
	PlayerID string `json:"player_id"`
	Goals    int    `json:"goals"`
	Assists  int    `json:"assists"`

	ExpectedGoals  *float64 `json:"expected_goals,omitempty"`
	TotalShots     *int     `json:"total_shots,omitempty"`
	ShotsOnTarget  *int     `json:"shots_on_target,omitempty"`
	ShotsOffTarget *int     `json:"shots_off_target,omitempty"`

	TotalPasses       *int     `json:"total_passes,omitempty"`
	CompletedPasses   *int     `json:"completed_passes,omitempty"`
	PassCompletionPct *float64 `json:"pass_completion_pct,omitempty"`
	FinalThirdPasses  *int     `json:"final_third_passes,omitempty"`
	ShortPasses       *int     `json:"short_passes,omitempty"`
	LongPasses        *int     `json:"long_passes,omitempty"`
	Crosses           *int     `json:"crosses,omitempty"`

	TotalDribbles     *int     `json:"total_dribbles,omitempty"`
	CompletedDribbles *int     `json:"completed_dribbles,omitempty"`
	DribbleSuccessPct *float64 `json:"dribble_success_pct,omitempty"`

	Tackles          *int     `json:"tackles,omitempty"`
	TacklesWon       *int     `json:"tackles_won,omitempty"`
	TackleSuccessPct *float64 `json:"tackle_success_pct,omitempty"`

	Interceptions  *int `json:"interceptions,omitempty"`
	BallRecoveries *int `json:"ball_recoveries,omitempty"`
}

func playerStatisticsToDTO(s playerstats.PlayerMatchStatistics) playerMatchStatisticsDTO {
	return playerMatchStatisticsDTO{
		PlayerID:          s.PlayerID,
		Goals:             s.Goals,
		Assists:           s.Assists,
		ExpectedGoals:     s.ExpectedGoals,
		TotalShots:        s.TotalShots,
		ShotsOnTarget:     s.ShotsOnTarget,
		ShotsOffTarget:    s.ShotsOffTarget,
		TotalPasses:       s.TotalPasses,
		CompletedPasses:   s.CompletedPasses,
		PassCompletionPct: s.PassCompletionPct,
		FinalThirdPasses:  s.FinalThirdPasses,
		ShortPasses:       s.ShortPasses,
		LongPasses:        s.LongPasses,
		Crosses:           s.Crosses,
		TotalDribbles:     s.TotalDribbles,
		CompletedDribbles: s.CompletedDribbles,
		DribbleSuccessPct: s.DribbleSuccessPct,
		Tackles:           s.Tackles,
		TacklesWon:        s.TacklesWon,
		TackleSuccessPct:  s.TackleSuccessPct,
		Interceptions:     s.Interceptions,
		BallRecoveries:    s.BallRecoveries,
	}
}

func playerStatisticsToDTOs(rows []playerstats.PlayerMatchStatistics) []playerMatchStatisticsDTO {
	out := make([]playerMatchStatisticsDTO, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerStatisticsToDTO(row))
	}
	return out
}

type matchDetailsDTO struct {
	Match      matchDTO                   `json:"match"`
	Statistics []matchStatisticsDTO       `json:"statistics"`
	Goals      []goalDTO                  `json:"goals"`
	Lineups    []lineupEntryDTO           `json:"lineups"`
	PlayerRows []playerMatchStatisticsDTO `json:"player_rows"`
}

func matchDetailsToDTO(d usecase.MatchDetails) matchDetailsDTO {
	return matchDetailsDTO{
		Match:      matchToDTO(d.Match),
		Statistics: matchStatisticsToDTOs(d.Statistics),
		Goals:      goalsToDTOs(d.Goals),
		Lineups:    lineupEntriesToDTOs(d.Lineups),
		PlayerRows: playerStatisticsToDTOs(d.PlayerRows),
	}
}

type clubSeasonDTO struct {
	ClubID        string `json:"club_id"`
	MatchesPlayed int    `json:"matches_played"`
	Wins          int    `json:"wins"`
	Draws         int    `json:"draws"`
	Losses        int    `json:"losses"`
	GoalsScored   int    `json:"goals_scored"`
	GoalsConceded int    `json:"goals_conceded"`

	TotalShots           *int     `json:"total_shots,omitempty"`
	ShotsPerGame         *float64 `json:"shots_per_game,omitempty"`
	ShotsOnTargetPerGame *float64 `json:"shots_on_target_per_game,omitempty"`
	ExpectedGoals        *float64 `json:"expected_goals,omitempty"`
	AvgPossessionPct     *float64 `json:"avg_possession_pct,omitempty"`

	TotalPasses       *int     `json:"total_passes,omitempty"`
	PassesPerGame     *float64 `json:"passes_per_game,omitempty"`
	PassCompletionPct *float64 `json:"pass_completion_pct,omitempty"`

	TackleSuccessPct      *float64 `json:"tackle_success_pct,omitempty"`
	DribbleSuccessPct     *float64 `json:"dribble_success_pct,omitempty"`
	InterceptionsPerGame  *float64 `json:"interceptions_per_game,omitempty"`
	BallRecoveriesPerGame *float64 `json:"ball_recoveries_per_game,omitempty"`

	UpdatedAt time.Time `json:"updated_at"`
}

func clubSeasonToDTO(s clubseason.ClubSeasonStatistics) clubSeasonDTO {
	return clubSeasonDTO{
		ClubID:                s.ClubID,
		MatchesPlayed:         s.MatchesPlayed,
		Wins:                  s.Wins,
		Draws:                 s.Draws,
		Losses:                s.Losses,
		GoalsScored:           s.GoalsScored,
		GoalsConceded:         s.GoalsConceded,
		TotalShots:            s.TotalShots,
		ShotsPerGame:          s.ShotsPerGame,
		ShotsOnTargetPerGame:  s.ShotsOnTargetPerGame,
		ExpectedGoals:         s.ExpectedGoals,
		AvgPossessionPct:      s.AvgPossessionPct,
		TotalPasses:           s.TotalPasses,
		PassesPerGame:         s.PassesPerGame,
		PassCompletionPct:     s.PassCompletionPct,
		TackleSuccessPct:      s.TackleSuccessPct,
		DribbleSuccessPct:     s.DribbleSuccessPct,
		InterceptionsPerGame:  s.InterceptionsPerGame,
		BallRecoveriesPerGame: s.BallRecoveriesPerGame,
		UpdatedAt:             s.UpdatedAt,
	}
}

type attributeRatingsDTO struct {
	Attacking  int `json:"attacking"`
	Technique  int `json:"technique"`
	Tactical   int `json:"tactical"`
	Defending  int `json:"defending"`
	Creativity int `json:"creativity"`
}

type playerSeasonDTO struct {
	PlayerID      string `json:"player_id"`
	MatchesPlayed int    `json:"matches_played"`
	Goals         int    `json:"goals"`
	Assists       int    `json:"assists"`

	TotalShots    *int     `json:"total_shots,omitempty"`
	ShotsOnTarget *int     `json:"shots_on_target,omitempty"`
	ShotsPerGame  *float64 `json:"shots_per_game,omitempty"`
	ExpectedGoals *float64 `json:"expected_goals,omitempty"`

	TotalPasses       *int     `json:"total_passes,omitempty"`
	PassCompletionPct *float64 `json:"pass_completion_pct,omitempty"`
	FinalThirdPasses  *int     `json:"final_third_passes,omitempty"`
	ShortPasses       *int     `json:"short_passes,omitempty"`
	LongPasses        *int     `json:"long_passes,omitempty"`
	Crosses           *int     `json:"crosses,omitempty"`

	TotalDribbles     *int     `json:"total_dribbles,omitempty"`
	DribbleSuccessPct *float64 `json:"dribble_success_pct,omitempty"`

	Tackles          *int     `json:"tackles,omitempty"`
	TackleSuccessPct *float64 `json:"tackle_success_pct,omitempty"`
	Interceptions    *int     `json:"interceptions,omitempty"`
	BallRecoveries   *int     `json:"ball_recoveries,omitempty"`

	Ratings attributeRatingsDTO `json:"ratings"`

	UpdatedAt time.Time `json:"updated_at"`
}

func playerSeasonToDTO(s playerseason.PlayerSeasonStatistics) playerSeasonDTO {
	return playerSeasonDTO{
		PlayerID:          s.PlayerID,
		MatchesPlayed:     s.MatchesPlayed,
		Goals:             s.Goals,
		Assists:           s.Assists,
		TotalShots:        s.TotalShots,
		ShotsOnTarget:     s.ShotsOnTarget,
		ShotsPerGame:      s.ShotsPerGame,
		ExpectedGoals:     s.ExpectedGoals,
		TotalPasses:       s.TotalPasses,
		PassCompletionPct: s.PassCompletionPct,
		FinalThirdPasses:  s.FinalThirdPasses,
		ShortPasses:       s.ShortPasses,
		LongPasses:        s.LongPasses,
		Crosses:           s.Crosses,
		TotalDribbles:     s.TotalDribbles,
		DribbleSuccessPct: s.DribbleSuccessPct,
		Tackles:           s.Tackles,
		TackleSuccessPct:  s.TackleSuccessPct,
		Interceptions:     s.Interceptions,
		BallRecoveries:    s.BallRecoveries,
		Ratings: attributeRatingsDTO{
			Attacking:  s.Ratings.Attacking,
			Technique:  s.Ratings.Technique,
			Tactical:   s.Ratings.Tactical,
			Defending:  s.Ratings.Defending,
			Creativity: s.Ratings.Creativity,
		},
		UpdatedAt: s.UpdatedAt,
	}
}

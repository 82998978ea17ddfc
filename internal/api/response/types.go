package response

import (
	"github.com/javiertc/adivina-go/internal/model"
)

// Wire field names are Spanish; existing clients depend on them.

// MessageResponse is the generic {message} success payload
type MessageResponse struct {
	Message string `json:"message"`
}

// LoginResponse carries the signed token alongside the message
type LoginResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
}

// StatusResponse reports the state of the active game
type StatusResponse struct {
	Intentos   int  `json:"intentos"`
	Completado bool `json:"completado"`
}

// StatusFromModel converts a model.Game to a StatusResponse
func StatusFromModel(g *model.Game) StatusResponse {
	return StatusResponse{
		Intentos:   g.Attempts,
		Completado: g.Completed,
	}
}

// StatsResponse reports a user's cumulative stats
type StatsResponse struct {
	PartidasJugadas int `json:"partidas_jugadas"`
	Puntos          int `json:"puntos"`
}

// StatsFromModel converts a model.Account to a StatsResponse
func StatsFromModel(a *model.Account) StatsResponse {
	return StatsResponse{
		PartidasJugadas: a.GamesPlayed,
		Puntos:          a.Points,
	}
}

// LeaderboardEntry is one row of the leaderboard response
type LeaderboardEntry struct {
	Usuario         string `json:"usuario"`
	Puntos          int    `json:"puntos"`
	PartidasJugadas int    `json:"partidas_jugadas"`
}

// LeaderboardFromModel converts the cached projection to response entries.
// The leaderboard payload is a bare JSON array.
func LeaderboardFromModel(entries []model.LeaderboardEntry) []LeaderboardEntry {
	out := make([]LeaderboardEntry, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntry{
			Usuario:         e.Username,
			Puntos:          e.Points,
			PartidasJugadas: e.GamesPlayed,
		}
	}
	return out
}

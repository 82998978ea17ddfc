package handler

import (
	"net/http"

	"github.com/javiertc/adivina-go/internal/api/apierr"
	"github.com/javiertc/adivina-go/internal/api/middleware"
	"github.com/javiertc/adivina-go/internal/api/response"
	"github.com/javiertc/adivina-go/internal/services/auth"
	"github.com/javiertc/adivina-go/internal/services/leaderboard"
)

// StatsHandler handles leaderboard and statistics endpoints
type StatsHandler struct {
	authService        *auth.Service
	leaderboardService *leaderboard.Service
}

// NewStatsHandler creates a new stats handler
func NewStatsHandler(authService *auth.Service, leaderboardService *leaderboard.Service) *StatsHandler {
	return &StatsHandler{
		authService:        authService,
		leaderboardService: leaderboardService,
	}
}

// Leaderboard handles GET /leaderboard
func (h *StatsHandler) Leaderboard(w http.ResponseWriter, r *http.Request) {
	entries := h.leaderboardService.Current()
	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(entries))
}

// Statistics handles GET /statistics
func (h *StatsHandler) Statistics(w http.ResponseWriter, r *http.Request) {
	username := middleware.MustGetUsername(r.Context())

	account, err := h.authService.Stats(r.Context(), username)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StatsFromModel(account))
}

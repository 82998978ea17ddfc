package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/javiertc/adivina-go/internal/api/handler"
	"github.com/javiertc/adivina-go/internal/api/middleware"
	"github.com/javiertc/adivina-go/internal/services/auth"
	"github.com/javiertc/adivina-go/internal/services/game"
	"github.com/javiertc/adivina-go/internal/services/leaderboard"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger             *slog.Logger
	AuthService        *auth.Service
	GameService        *game.Service
	LeaderboardService *leaderboard.Service
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	authHandler := handler.NewAuthHandler(cfg.AuthService)
	gameHandler := handler.NewGameHandler(cfg.GameService)
	statsHandler := handler.NewStatsHandler(cfg.AuthService, cfg.LeaderboardService)

	// Common middleware
	r.Use(middleware.Recovery(cfg.Logger))
	r.Use(middleware.Logging(cfg.Logger))

	// Public routes
	r.HandleFunc("/register", authHandler.Register).Methods(http.MethodPost)
	r.HandleFunc("/login", authHandler.Login).Methods(http.MethodPost)
	r.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	// Protected routes (bearer token required)
	protected := r.PathPrefix("/").Subrouter()
	protected.Use(middleware.Auth(cfg.AuthService))
	protected.HandleFunc("/start", gameHandler.Start).Methods(http.MethodPost)
	protected.HandleFunc("/guess", gameHandler.Guess).Methods(http.MethodPost)
	protected.HandleFunc("/restart", gameHandler.Restart).Methods(http.MethodPost)
	protected.HandleFunc("/status", gameHandler.Status).Methods(http.MethodGet)
	protected.HandleFunc("/leaderboard", statsHandler.Leaderboard).Methods(http.MethodGet)
	protected.HandleFunc("/statistics", statsHandler.Statistics).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

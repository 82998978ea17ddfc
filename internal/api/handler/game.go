package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/javiertc/adivina-go/internal/api/apierr"
	"github.com/javiertc/adivina-go/internal/api/middleware"
	"github.com/javiertc/adivina-go/internal/api/request"
	"github.com/javiertc/adivina-go/internal/api/response"
	"github.com/javiertc/adivina-go/internal/model"
	"github.com/javiertc/adivina-go/internal/services/game"
)

// GameHandler handles game session endpoints
type GameHandler struct {
	gameService *game.Service
}

// NewGameHandler creates a new game handler
func NewGameHandler(gameService *game.Service) *GameHandler {
	return &GameHandler{
		gameService: gameService,
	}
}

// Start handles POST /start
func (h *GameHandler) Start(w http.ResponseWriter, r *http.Request) {
	username := middleware.MustGetUsername(r.Context())

	if err := h.gameService.Start(r.Context(), username); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Juego iniciado"})
}

// Restart handles POST /restart
func (h *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	username := middleware.MustGetUsername(r.Context())

	if err := h.gameService.Restart(r.Context(), username); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Juego reiniciado"})
}

// Guess handles POST /guess
func (h *GameHandler) Guess(w http.ResponseWriter, r *http.Request) {
	username := middleware.MustGetUsername(r.Context())

	var req request.GuessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Solicitud inválida"))
		return
	}
	if req.Numero == nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("numero es requerido"))
		return
	}

	result, err := h.gameService.Guess(r.Context(), username, *req.Numero)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	var message string
	switch {
	case result.Won:
		message = "¡Felicitaciones! Has adivinado el número"
	case result.Hint == model.HintGreater:
		message = "El número es mayor"
	default:
		message = "El número es menor"
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: message})
}

// Status handles GET /status
func (h *GameHandler) Status(w http.ResponseWriter, r *http.Request) {
	username := middleware.MustGetUsername(r.Context())

	g, err := h.gameService.Status(r.Context(), username)
	if err != nil {
		// The status endpoint uses its own wording for a missing session
		if errors.Is(err, model.ErrNoActiveGame) {
			apierr.WriteError(w, apierr.NewInvalidRequestError("No hay juego activo"))
			return
		}
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.StatusFromModel(g))
}

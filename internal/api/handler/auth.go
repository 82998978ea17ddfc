package handler

import (
	"encoding/json"
	"net/http"

	"github.com/javiertc/adivina-go/internal/api/apierr"
	"github.com/javiertc/adivina-go/internal/api/request"
	"github.com/javiertc/adivina-go/internal/api/response"
	"github.com/javiertc/adivina-go/internal/services/auth"
)

// AuthHandler handles registration and login endpoints
type AuthHandler struct {
	authService *auth.Service
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *auth.Service) *AuthHandler {
	return &AuthHandler{
		authService: authService,
	}
}

// Register handles POST /register
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req request.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Solicitud inválida"))
		return
	}

	if req.Usuario == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("usuario es requerido"))
		return
	}
	if req.Correo == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("correo es requerido"))
		return
	}
	if req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("password es requerido"))
		return
	}

	if err := h.authService.Register(r.Context(), req.Usuario, req.Correo, req.Password); err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.MessageResponse{Message: "Usuario registrado exitosamente"})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req request.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		apierr.WriteError(w, apierr.NewInvalidRequestError("Solicitud inválida"))
		return
	}

	if req.Usuario == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("usuario es requerido"))
		return
	}
	if req.Password == "" {
		apierr.WriteError(w, apierr.NewInvalidRequestError("password es requerido"))
		return
	}

	token, err := h.authService.Login(r.Context(), req.Usuario, req.Password)
	if err != nil {
		apierr.WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.LoginResponse{Message: "Login exitoso", Token: token})
}

package apierr

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/javiertc/adivina-go/internal/model"
	"github.com/javiertc/adivina-go/internal/services/auth"
)

// ErrorResponse is the JSON body for every error response
type ErrorResponse struct {
	Message string `json:"message"`
}

// httpError combines an HTTP status code with a response message
type httpError struct {
	status  int
	message string
}

// Error implements the error interface
func (e *httpError) Error() string {
	return e.message
}

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	he := toHTTPError(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(he.status)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Message: he.message})
}

// toHTTPError converts an error to an httpError
func toHTTPError(err error) *httpError {
	// Check for pre-built HTTP errors
	var he *httpError
	if errors.As(err, &he) {
		return he
	}

	// Map domain errors
	switch {
	case errors.Is(err, model.ErrUserExists):
		return &httpError{http.StatusBadRequest, "Usuario ya existe"}
	case errors.Is(err, model.ErrUserNotFound):
		return &httpError{http.StatusNotFound, "Usuario no encontrado"}
	case errors.Is(err, model.ErrNoActiveGame):
		return &httpError{http.StatusBadRequest, "Debes iniciar un juego primero"}
	case errors.Is(err, model.ErrGameCompleted):
		return &httpError{http.StatusBadRequest, "El juego ya fue completado"}

	// Map auth errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		return &httpError{http.StatusUnauthorized, "Credenciales inválidas"}
	case errors.Is(err, auth.ErrInvalidToken):
		return &httpError{http.StatusForbidden, "Token inválido"}

	default:
		// Internal failures echo the error message; this service is not an
		// information-disclosure boundary.
		return &httpError{http.StatusInternalServerError, err.Error()}
	}
}

// NewInvalidRequestError creates a 400 error with the given message
func NewInvalidRequestError(message string) error {
	return &httpError{http.StatusBadRequest, message}
}

// NewUnauthenticatedError creates a 403 error for a missing or malformed
// bearer credential
func NewUnauthenticatedError() error {
	return &httpError{http.StatusForbidden, "Token no proporcionado"}
}

// NewInternalError creates a generic 500 error
func NewInternalError() error {
	return &httpError{http.StatusInternalServerError, "Error interno del servidor"}
}

package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/javiertc/adivina-go/internal/api/apierr"
	"github.com/javiertc/adivina-go/internal/services/auth"
)

type contextKey string

const usernameContextKey contextKey = "username"

// Auth creates authentication middleware that validates the bearer token
// and places the acting username in the request context
func Auth(authService *auth.Service) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if header == "" {
				apierr.WriteError(w, apierr.NewUnauthenticatedError())
				return
			}

			scheme, token, ok := strings.Cut(header, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || token == "" {
				apierr.WriteError(w, apierr.NewUnauthenticatedError())
				return
			}

			username, err := authService.VerifyToken(token)
			if err != nil {
				apierr.WriteError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), usernameContextKey, username)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetUsername returns the authenticated username from the request context
func GetUsername(ctx context.Context) string {
	username, _ := ctx.Value(usernameContextKey).(string)
	return username
}

// MustGetUsername returns the authenticated username or panics
func MustGetUsername(ctx context.Context) string {
	username := GetUsername(ctx)
	if username == "" {
		panic("no username in context - auth middleware not applied?")
	}
	return username
}

package handler

import (
	"context"
	"net/http"
	"strings"

	"github.com/Ahsanulk27/collab-flow/internal/auth"
	"github.com/Ahsanulk27/collab-flow/internal/domain"
)

type contextKey string

const principalKey contextKey = "principal"

// AuthMiddleware authenticates HTTP requests with a bearer token and attaches
// the resulting principal to the request context.
type AuthMiddleware struct {
	verifier *auth.Verifier
}

// NewAuthMiddleware creates a new AuthMiddleware.
func NewAuthMiddleware(verifier *auth.Verifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Handler wraps next with bearer-token authentication.
func (m *AuthMiddleware) Handler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		principal, err := m.verifier.Verify(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// PrincipalFrom extracts the authenticated principal from a request context.
func PrincipalFrom(ctx context.Context) *domain.Principal {
	principal, _ := ctx.Value(principalKey).(*domain.Principal)
	return principal
}

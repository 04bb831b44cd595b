package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tasknest/tasknest-api/internal/api/shared"
	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/redact"
	"github.com/tasknest/tasknest-api/internal/service/auth"
)

// AuthMiddleware authenticates requests by resolving bearer tokens to users.
type AuthMiddleware struct {
	guard *auth.SessionGuard
}

// NewAuthMiddleware creates an AuthMiddleware backed by the given guard.
func NewAuthMiddleware(guard *auth.SessionGuard) *AuthMiddleware {
	return &AuthMiddleware{guard: guard}
}

// Authenticate extracts the bearer token from the Authorization header,
// resolves it to a user, and stores the user in the request context.
// Requests with missing, malformed, invalid, or expired tokens, and tokens
// whose subject no longer exists, are rejected with 401.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := bearerToken(r)
		if !ok {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authorization header required")
			return
		}

		user, err := m.guard.Resolve(r.Context(), token)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrUnknownSubject):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Unknown user")
			case errors.Is(err, auth.ErrUnauthenticated):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid or expired token")
			default:
				slog.Error("failed to resolve session", "error", redact.Error(err))
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		next.ServeHTTP(w, r.WithContext(shared.WithUser(r.Context(), user)))
	})
}

// bearerToken returns the token from an "Authorization: Bearer <token>"
// header, or false when the header is missing or malformed.
func bearerToken(r *http.Request) (string, bool) {
	authHeader := r.Header.Get("Authorization")
	if authHeader == "" {
		return "", false
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}

// GetUser extracts the authenticated user from the request context.
func GetUser(r *http.Request) (*domain.User, bool) {
	return shared.UserFromContext(r.Context())
}

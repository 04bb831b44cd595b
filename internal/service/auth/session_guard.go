package auth

import (
	"context"
	"errors"
	"log/slog"

	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/platform/logger"
	"github.com/tasknest/tasknest-api/internal/store"
)

// SessionGuard resolves a bearer token to an authenticated user. It is
// the sole entry point HTTP handlers use to turn a token into an
// identity; all task operations downstream are scoped to the resolved
// user's ID.
type SessionGuard struct {
	jwtService JWTService
	userStore  store.UserStore
	logger     *slog.Logger
}

// NewSessionGuard creates a SessionGuard composing the token service and
// the user store. If log is nil, the process default is used.
func NewSessionGuard(jwtService JWTService, userStore store.UserStore, log *slog.Logger) *SessionGuard {
	if log == nil {
		log = slog.Default()
	}
	return &SessionGuard{
		jwtService: jwtService,
		userStore:  userStore,
		logger:     log.With(slog.String("component", "session_guard")),
	}
}

// Resolve validates the token and looks up the user named by its subject
// claim. Returns ErrUnauthenticated for a missing, malformed, badly
// signed, or expired token, and ErrUnknownSubject when the subject no
// longer exists in the store.
func (g *SessionGuard) Resolve(ctx context.Context, token string) (*domain.User, error) {
	log := logger.FromContextOrDefault(ctx, g.logger)

	if token == "" {
		return nil, ErrUnauthenticated
	}

	claims, err := g.jwtService.ValidateToken(ctx, token)
	if err != nil {
		log.Debug("token rejected", slog.String("error", err.Error()))
		return nil, ErrUnauthenticated
	}

	user, err := g.userStore.GetByUsername(ctx, claims.Subject)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			log.Warn("valid token for unknown subject",
				slog.String("subject", claims.Subject),
				slog.String("token_id", claims.ID))
			return nil, ErrUnknownSubject
		}
		return nil, err
	}

	return user, nil
}

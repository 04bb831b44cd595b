package middleware

import (
	"context"
	"database/sql"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasknest/tasknest-api/internal/domain"
	"github.com/tasknest/tasknest-api/internal/service/auth"
	"github.com/tasknest/tasknest-api/internal/store"
)

const testSecret = "test-secret-key-thats-at-least-32-chars"

// fakeUserStore maps usernames to users.
type fakeUserStore struct {
	users map[string]*domain.User
}

func (s *fakeUserStore) Create(ctx context.Context, user *domain.User) error {
	s.users[user.Username] = user
	return nil
}

func (s *fakeUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	for _, user := range s.users {
		if user.ID == id {
			return user, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *fakeUserStore) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	user, ok := s.users[username]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	return user, nil
}

func (s *fakeUserStore) WithTx(tx *sql.Tx) store.UserStore { return s }

func newTestMiddleware(t *testing.T, users ...*domain.User) (*AuthMiddleware, auth.JWTService) {
	t.Helper()

	userStore := &fakeUserStore{users: make(map[string]*domain.User)}
	for _, user := range users {
		userStore.users[user.Username] = user
	}

	jwtService := auth.NewTestJWTService(testSecret, 15*time.Minute, nil)
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	guard := auth.NewSessionGuard(jwtService, userStore, log)

	return NewAuthMiddleware(guard), jwtService
}

// echoUserHandler writes 200 when an authenticated user is in context.
func echoUserHandler(t *testing.T, wantUsername string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := GetUser(r)
		require.True(t, ok, "authenticated user missing from context")
		assert.Equal(t, wantUsername, user.Username)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticateValidToken(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("alice", "correct-horse-battery")
	require.NoError(t, err)

	m, jwtService := newTestMiddleware(t, user)

	token, err := jwtService.GenerateToken(context.Background(), "alice")
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	recorder := httptest.NewRecorder()

	m.Authenticate(echoUserHandler(t, "alice")).ServeHTTP(recorder, req)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

func TestAuthenticateRejections(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("alice", "correct-horse-battery")
	require.NoError(t, err)

	tests := []struct {
		name   string
		header func(t *testing.T, jwtService auth.JWTService) string
	}{
		{
			name:   "missing header",
			header: func(t *testing.T, _ auth.JWTService) string { return "" },
		},
		{
			name:   "wrong scheme",
			header: func(t *testing.T, _ auth.JWTService) string { return "Basic abc123" },
		},
		{
			name:   "garbage token",
			header: func(t *testing.T, _ auth.JWTService) string { return "Bearer not-a-jwt" },
		},
		{
			name: "token signed with different key",
			header: func(t *testing.T, _ auth.JWTService) string {
				other := auth.NewTestJWTService(
					"another-secret-key-also-32-chars-min",
					15*time.Minute,
					nil,
				)
				token, err := other.GenerateToken(context.Background(), "alice")
				require.NoError(t, err)
				return "Bearer " + token
			},
		},
		{
			name: "expired token",
			header: func(t *testing.T, _ auth.JWTService) string {
				past := func() time.Time { return time.Now().Add(-time.Hour) }
				stale := auth.NewTestJWTService(testSecret, time.Minute, past)
				token, err := stale.GenerateToken(context.Background(), "alice")
				require.NoError(t, err)
				return "Bearer " + token
			},
		},
		{
			name: "token for deleted user",
			header: func(t *testing.T, jwtService auth.JWTService) string {
				token, err := jwtService.GenerateToken(context.Background(), "ghost")
				require.NoError(t, err)
				return "Bearer " + token
			},
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, jwtService := newTestMiddleware(t, user)

			req := httptest.NewRequest(http.MethodGet, "/tasks", nil)
			if header := tt.header(t, jwtService); header != "" {
				req.Header.Set("Authorization", header)
			}
			recorder := httptest.NewRecorder()

			next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				t.Error("handler reached with unauthenticated request")
			})
			m.Authenticate(next).ServeHTTP(recorder, req)

			assert.Equal(t, http.StatusUnauthorized, recorder.Code)
		})
	}
}

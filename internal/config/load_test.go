package config_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasknest/tasknest-api/internal/config"
)

// Env-driven tests set variables with t.Setenv, so none of these run in
// parallel.

const testSecret = "test-jwt-secret-that-is-at-least-32-chars"

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TASKNEST_DATABASE_URL", "postgres://localhost:5432/tasknest")
	t.Setenv("TASKNEST_AUTH_JWT_SECRET", testSecret)
}

func TestLoadFromEnvironment(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "postgres://localhost:5432/tasknest", cfg.Database.URL)
	assert.Equal(t, testSecret, cfg.Auth.JWTSecret)

	// Defaults fill in everything not explicitly configured.
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "localhost:6379", cfg.Cache.Addr)
	assert.Equal(t, 300, cfg.Cache.DefaultTTLSeconds)
	assert.Equal(t, 15, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("TASKNEST_SERVER_PORT", "9000")
	t.Setenv("TASKNEST_SERVER_LOG_LEVEL", "debug")
	t.Setenv("TASKNEST_CACHE_ADDR", "redis.internal:6380")
	t.Setenv("TASKNEST_CACHE_DEFAULT_TTL_SECONDS", "60")
	t.Setenv("TASKNEST_AUTH_TOKEN_LIFETIME_MINUTES", "30")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 9000, cfg.Server.Port)
	assert.Equal(t, "debug", cfg.Server.LogLevel)
	assert.Equal(t, "redis.internal:6380", cfg.Cache.Addr)
	assert.Equal(t, 60, cfg.Cache.DefaultTTLSeconds)
	assert.Equal(t, 30, cfg.Auth.TokenLifetimeMinutes)
}

func TestLoadValidation(t *testing.T) {
	tests := []struct {
		name  string
		setup func(t *testing.T)
	}{
		{
			name:  "missing database URL",
			setup: func(t *testing.T) { t.Setenv("TASKNEST_AUTH_JWT_SECRET", testSecret) },
		},
		{
			name: "short JWT secret",
			setup: func(t *testing.T) {
				t.Setenv("TASKNEST_DATABASE_URL", "postgres://localhost:5432/tasknest")
				t.Setenv("TASKNEST_AUTH_JWT_SECRET", "too-short")
			},
		},
		{
			name: "invalid log level",
			setup: func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv("TASKNEST_SERVER_LOG_LEVEL", "verbose")
			},
		},
		{
			name: "port out of range",
			setup: func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv("TASKNEST_SERVER_PORT", "70000")
			},
		},
		{
			name: "zero TTL",
			setup: func(t *testing.T) {
				setRequiredEnv(t)
				t.Setenv("TASKNEST_CACHE_DEFAULT_TTL_SECONDS", "0")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tc.setup(t)
			_, err := config.Load()
			require.Error(t, err)
			assert.True(t, strings.Contains(err.Error(), "invalid configuration"))
		})
	}
}

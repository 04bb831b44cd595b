package logger_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasknest/tasknest-api/internal/platform/logger"
)

func TestFromContext(t *testing.T) {
	t.Run("returns stored logger", func(t *testing.T) {
		var buf bytes.Buffer
		stored := slog.New(slog.NewJSONHandler(&buf, nil))

		ctx := logger.WithContext(context.Background(), stored)
		got := logger.FromContext(ctx)
		require.Same(t, stored, got)

		got.Info("hello")
		assert.Contains(t, buf.String(), `"msg":"hello"`)
	})

	t.Run("falls back to default when absent", func(t *testing.T) {
		got := logger.FromContext(context.Background())
		assert.NotNil(t, got)
	})
}

func TestFromContextOrDefault(t *testing.T) {
	fallback := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))

	t.Run("prefers context logger", func(t *testing.T) {
		stored := slog.New(slog.NewJSONHandler(&bytes.Buffer{}, nil))
		ctx := logger.WithContext(context.Background(), stored)
		assert.Same(t, stored, logger.FromContextOrDefault(ctx, fallback))
	})

	t.Run("uses fallback when context is bare", func(t *testing.T) {
		assert.Same(t, fallback, logger.FromContextOrDefault(context.Background(), fallback))
	})

	t.Run("nil fallback yields default", func(t *testing.T) {
		assert.NotNil(t, logger.FromContextOrDefault(context.Background(), nil))
	})
}

func TestSetup(t *testing.T) {
	tests := []struct {
		level string
	}{
		{"debug"}, {"info"}, {"warn"}, {"error"}, {"bogus"},
	}

	for _, tc := range tests {
		t.Run(tc.level, func(t *testing.T) {
			log := logger.Setup(tc.level)
			require.NotNil(t, log)
		})
	}
}

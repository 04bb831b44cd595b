package shared

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tasknest/tasknest-api/internal/domain"
)

func TestTraceID(t *testing.T) {
	t.Parallel()

	ctx := SetTraceID(context.Background())
	traceID := GetTraceID(ctx)
	assert.Len(t, traceID, TraceIDLength*2)

	// A second context gets a different ID.
	other := GetTraceID(SetTraceID(context.Background()))
	assert.NotEqual(t, traceID, other)
}

func TestGetTraceIDAbsent(t *testing.T) {
	t.Parallel()
	assert.Empty(t, GetTraceID(context.Background()))
}

func TestUserContext(t *testing.T) {
	t.Parallel()

	user, err := domain.NewUser("alice", "correct-horse-battery")
	require.NoError(t, err)

	ctx := WithUser(context.Background(), user)
	got, ok := UserFromContext(ctx)
	require.True(t, ok)
	assert.Same(t, user, got)
}

func TestUserFromContextAbsent(t *testing.T) {
	t.Parallel()

	_, ok := UserFromContext(context.Background())
	assert.False(t, ok)
}

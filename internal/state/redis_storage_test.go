package state

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	miniredis "github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestRedis(t *testing.T) (*redis.Client, func()) {
	t.Helper()

	server, err := miniredis.Run()
	require.NoError(t, err)

	client := redis.NewClient(&redis.Options{Addr: server.Addr()})

	return client, func() {
		_ = client.Close()
		server.Close()
	}
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestRedisStorage_SetAndGet(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	t.Cleanup(cleanup)

	storage := NewRedisStorage(client, time.Hour, testLogger())

	ctx := context.Background()
	userCtx := &UserContext{
		PSID:    "psid-123",
		Current: ContextGetStartedDecision,
	}

	err := storage.SetContext(ctx, userCtx.PSID, userCtx)
	assert.NoError(t, err)

	result, err := storage.GetContext(ctx, userCtx.PSID)
	assert.NoError(t, err)
	if assert.NotNil(t, result) {
		assert.Equal(t, userCtx.PSID, result.PSID)
		assert.Equal(t, ContextGetStartedDecision, result.Current)
		assert.False(t, result.UpdatedAt.IsZero())
	}
}

func TestRedisStorage_GetNotFound(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	t.Cleanup(cleanup)

	storage := NewRedisStorage(client, time.Hour, testLogger())

	result, err := storage.GetContext(context.Background(), "never-seen")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrContextNotFound)
}

func TestRedisStorage_OverwriteKeepsSingleEntry(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	t.Cleanup(cleanup)

	storage := NewRedisStorage(client, time.Hour, testLogger())
	ctx := context.Background()

	require.NoError(t, storage.SetContext(ctx, "psid-1", &UserContext{PSID: "psid-1", Current: ContextToldJoke}))
	require.NoError(t, storage.SetContext(ctx, "psid-1", &UserContext{PSID: "psid-1", Current: ContextCancelled}))

	result, err := storage.GetContext(ctx, "psid-1")
	require.NoError(t, err)
	assert.Equal(t, ContextCancelled, result.Current)
}

func TestRedisStorage_ClearContext(t *testing.T) {
	client, cleanup := setupTestRedis(t)
	t.Cleanup(cleanup)

	storage := NewRedisStorage(client, time.Hour, testLogger())
	ctx := context.Background()

	require.NoError(t, storage.SetContext(ctx, "psid-9", &UserContext{PSID: "psid-9", Current: ContextSOS}))
	require.NoError(t, storage.ClearContext(ctx, "psid-9"))

	result, err := storage.GetContext(ctx, "psid-9")
	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrContextNotFound)
}

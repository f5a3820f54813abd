package dedupe

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testStore(t *testing.T) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewRedisStore(client), mr
}

func TestRedisStore_MarkProcessed(t *testing.T) {
	store, mr := testStore(t)
	ctx := context.Background()

	isNew, err := store.MarkProcessed(ctx, "msg-1", time.Hour)
	require.NoError(t, err)
	assert.True(t, isNew)

	isNew, err = store.MarkProcessed(ctx, "msg-1", time.Hour)
	require.NoError(t, err)
	assert.False(t, isNew, "second mark within the TTL window is a duplicate")

	assert.True(t, mr.Exists(DefaultKeyPrefix+"msg-1"))
	assert.Greater(t, mr.TTL(DefaultKeyPrefix+"msg-1"), time.Duration(0))
}

func TestRedisStore_MarkProcessed_AfterExpiry(t *testing.T) {
	store, mr := testStore(t)
	ctx := context.Background()

	_, err := store.MarkProcessed(ctx, "msg-1", time.Minute)
	require.NoError(t, err)

	mr.FastForward(2 * time.Minute)

	isNew, err := store.MarkProcessed(ctx, "msg-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, isNew, "expired ids are processed again")
}

func TestGuard_Seen(t *testing.T) {
	store, _ := testStore(t)
	guard := NewGuard(store, time.Hour, zap.NewNop())
	ctx := context.Background()

	assert.False(t, guard.Seen(ctx, "msg-1"))
	assert.True(t, guard.Seen(ctx, "msg-1"))
	assert.False(t, guard.Seen(ctx, "msg-2"))
}

func TestGuard_EmptyMessageID(t *testing.T) {
	store, _ := testStore(t)
	guard := NewGuard(store, time.Hour, zap.NewNop())

	assert.False(t, guard.Seen(context.Background(), ""))
	assert.False(t, guard.Seen(context.Background(), ""), "ids without identity are never deduplicated")
}

func TestGuard_StoreFailureProcessesAnyway(t *testing.T) {
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	guard := NewGuard(NewRedisStore(client), time.Hour, zap.NewNop())

	mr.Close()

	assert.False(t, guard.Seen(context.Background(), "msg-1"),
		"an unreachable store must not drop messages")
}

func TestNewGuard_DefaultTTL(t *testing.T) {
	store, mr := testStore(t)
	guard := NewGuard(store, 0, zap.NewNop())

	require.False(t, guard.Seen(context.Background(), "msg-1"))
	assert.InDelta(t, DefaultTTL, mr.TTL(DefaultKeyPrefix+"msg-1"), float64(time.Minute))
}

package disease

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSeenStore(t *testing.T) (*RedisSeenStore, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	return NewRedisSeenStore(client), mr
}

func TestSeenStoreRoundtrip(t *testing.T) {
	store, _ := newTestSeenStore(t)
	ctx := context.Background()

	seen, err := store.Seen(ctx, "device-1")
	require.NoError(t, err)
	assert.Empty(t, seen)

	require.NoError(t, store.MarkSeen(ctx, "device-1", "Asthma"))
	require.NoError(t, store.MarkSeen(ctx, "device-1", "Malaria"))

	seen, err = store.Seen(ctx, "device-1")
	require.NoError(t, err)
	assert.True(t, seen["Asthma"])
	assert.True(t, seen["Malaria"])
	assert.False(t, seen["Measles"])

	// Another device has its own set.
	other, err := store.Seen(ctx, "device-2")
	require.NoError(t, err)
	assert.Empty(t, other)
}

func TestSeenStoreEntriesExpire(t *testing.T) {
	store, mr := newTestSeenStore(t)
	ctx := context.Background()

	require.NoError(t, store.MarkSeen(ctx, "device-1", "Asthma"))
	assert.Greater(t, mr.TTL(seenKey("device-1")), time.Duration(0))

	mr.FastForward(seenTTL + 1)
	seen, err := store.Seen(ctx, "device-1")
	require.NoError(t, err)
	assert.Empty(t, seen)
}

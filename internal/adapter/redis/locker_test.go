package redis

import (
	"context"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClient(t *testing.T) *goredis.Client {
	t.Helper()
	addr := os.Getenv("REDIS_TEST_ADDRESS")
	if addr == "" {
		t.Skip("REDIS_TEST_ADDRESS not set")
	}
	client := goredis.NewClient(&goredis.Options{Addr: addr})
	t.Cleanup(func() { _ = client.Close() })
	require.NoError(t, client.Ping(context.Background()).Err())
	return client
}

func TestLockerExclusive(t *testing.T) {
	client := testClient(t)
	locker := NewLocker(client)
	ctx := context.Background()
	key := "newsdesk-test:" + uuid.NewString()

	release, ok, err := locker.TryLock(ctx, key, time.Minute)
	require.NoError(t, err)
	require.True(t, ok)

	_, ok, err = locker.TryLock(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "second holder must be refused")

	require.NoError(t, release(ctx))

	release, ok, err = locker.TryLock(ctx, key, time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
	require.NoError(t, release(ctx))
}

func TestLockerReleaseKeepsForeignLease(t *testing.T) {
	client := testClient(t)
	locker := NewLocker(client)
	ctx := context.Background()
	key := "newsdesk-test:" + uuid.NewString()

	release, ok, err := locker.TryLock(ctx, key, 50*time.Millisecond)
	require.NoError(t, err)
	require.True(t, ok)

	time.Sleep(100 * time.Millisecond)
	_, ok, err = locker.TryLock(ctx, key, time.Minute)
	require.NoError(t, err)
	require.True(t, ok, "expired lease can be taken over")

	require.NoError(t, release(ctx))
	exists, err := client.Exists(ctx, key).Result()
	require.NoError(t, err)
	assert.EqualValues(t, 1, exists, "stale release must not delete the new lease")
	client.Del(ctx, key)
}

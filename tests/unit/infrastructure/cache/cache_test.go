// Package cache_test provides unit tests for the cache package.
package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vishal11u/Ai-CustomerSupport-Sass/internal/core/cache"
	rediscache "github.com/vishal11u/Ai-CustomerSupport-Sass/internal/infrastructure/cache/redis"
)

func setupMiniredis(t *testing.T) (*miniredis.Miniredis, cache.Cache) {
	t.Helper()

	mr, err := miniredis.Run()
	require.NoError(t, err)

	client, err := rediscache.NewCache(rediscache.Config{
		Host:       mr.Host(),
		Port:       mr.Port(),
		Password:   "",
		DB:         0,
		DefaultTTL: 3 * time.Minute,
	})
	require.NoError(t, err)

	t.Cleanup(func() {
		client.Close()
		mr.Close()
	})

	return mr, client
}

func TestNewCache_Success(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	defer mr.Close()

	client, err := rediscache.NewCache(rediscache.Config{
		Host: mr.Host(),
		Port: mr.Port(),
	})

	assert.NoError(t, err)
	assert.NotNil(t, client)

	client.Close()
}

func TestCache_SetAndGet(t *testing.T) {
	_, client := setupMiniredis(t)
	ctx := context.Background()

	key := "analytics:user-1"
	value := []byte(`{"dailyData":[]}`)

	// Set
	err := client.Set(ctx, key, value, 1*time.Minute)
	assert.NoError(t, err)

	// Get
	result, err := client.Get(ctx, key)
	assert.NoError(t, err)
	assert.Equal(t, value, result)
}

func TestCache_GetNotFound(t *testing.T) {
	_, client := setupMiniredis(t)
	ctx := context.Background()

	result, err := client.Get(ctx, "non-existent-key")

	// According to interface: Get returns nil if key does not exist
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestCache_SetUsesDefaultTTL(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	err := client.Set(ctx, "key-with-default-ttl", []byte("value"), 0)
	require.NoError(t, err)

	ttl := mr.TTL("key-with-default-ttl")
	assert.Equal(t, 3*time.Minute, ttl)
}

func TestCache_Delete(t *testing.T) {
	_, client := setupMiniredis(t)
	ctx := context.Background()

	key := "analytics:user-1"
	value := []byte("value")

	// Set
	err := client.Set(ctx, key, value, 1*time.Minute)
	require.NoError(t, err)

	// Delete
	deleted, err := client.Delete(ctx, key)
	assert.NoError(t, err)
	assert.True(t, deleted)

	// Verify deleted - Get returns nil when key doesn't exist
	result, err := client.Get(ctx, key)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

func TestCache_DeletePattern(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	// Set multiple keys
	client.Set(ctx, "analytics:user-1", []byte("value1"), 1*time.Minute)
	client.Set(ctx, "analytics:user-2", []byte("value2"), 1*time.Minute)
	client.Set(ctx, "other:key", []byte("value3"), 1*time.Minute)

	// Delete pattern
	deleted, err := client.DeletePattern(ctx, "analytics:user-1")
	assert.NoError(t, err)
	assert.Equal(t, int64(1), deleted)

	// Verify only matching keys deleted
	keys := mr.Keys()
	assert.Contains(t, keys, "analytics:user-2")
	assert.Contains(t, keys, "other:key")
	assert.NotContains(t, keys, "analytics:user-1")
}

func TestCache_Ping(t *testing.T) {
	_, client := setupMiniredis(t)
	ctx := context.Background()

	err := client.Ping(ctx)
	assert.NoError(t, err)
}

func TestCache_TTLExpiration(t *testing.T) {
	mr, client := setupMiniredis(t)
	ctx := context.Background()

	key := "expiring-key"
	value := []byte("expiring-value")

	// Set with short TTL
	err := client.Set(ctx, key, value, 1*time.Second)
	require.NoError(t, err)

	// Verify exists
	result, err := client.Get(ctx, key)
	require.NoError(t, err)
	require.Equal(t, value, result)

	// Fast-forward time in miniredis
	mr.FastForward(2 * time.Second)

	// Verify expired
	result, err = client.Get(ctx, key)
	assert.NoError(t, err)
	assert.Nil(t, result)
}

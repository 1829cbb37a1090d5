package cache_test

import (
	"context"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nclexfront/internal/frontend/adapters/cache"
	"nclexfront/internal/frontend/config"
	cachePorts "nclexfront/internal/frontend/ports/cache"
)

func mockRedisServer(t *testing.T) (*miniredis.Miniredis, *config.RedisConfig) {
	t.Helper()

	s, err := miniredis.Run()
	require.NoError(t, err)

	t.Cleanup(func() {
		s.Close()
	})

	host, portStr, _ := strings.Cut(s.Addr(), ":")
	port, err := strconv.Atoi(portStr)
	require.NoError(t, err)

	cfg := &config.RedisConfig{
		Host:            host,
		Port:            port,
		ConnectTimeout:  2 * time.Second,
		ReadTimeout:     1 * time.Second,
		WriteTimeout:    1 * time.Second,
		PoolSize:        5,
		MinIdle:         2,
		IdleTimeout:     30 * time.Second,
		MaxConnLifetime: 5 * time.Minute,
		DefaultTTL:      24 * time.Hour,
	}

	return s, cfg
}

func TestNewRedisCache_Success(t *testing.T) {
	_, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)

	require.NoError(t, err)
	require.NotNil(t, redisCache)

	_, ok := redisCache.(cachePorts.Cache)
	assert.True(t, ok, "should implement Cache interface")

	assert.NoError(t, redisCache.Close(), "should close without errors")
}

func TestNewRedisCache_ConnectionFailure(t *testing.T) {
	ctx := context.Background()

	cfg := &config.RedisConfig{
		Host:           "nonexistent.host",
		Port:           12345,
		ConnectTimeout: 100 * time.Millisecond,
		ReadTimeout:    100 * time.Millisecond,
		WriteTimeout:   100 * time.Millisecond,
	}

	redisCache, err := cache.NewRedisCache(ctx, cfg)

	assert.Error(t, err, "Expected error when Redis connection fails")
	assert.Nil(t, redisCache, "Cache should be nil when connection fails")
	assert.Contains(t, err.Error(), "failed to connect to redis")
}

func TestRedisCache_SetGetDelete(t *testing.T) {
	_, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = redisCache.Close() }()

	require.NoError(t, redisCache.Set(ctx, "k1", "v1", time.Minute))

	value, err := redisCache.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "v1", value)

	require.NoError(t, redisCache.Delete(ctx, "k1"))

	value, err = redisCache.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Empty(t, value, "missing key should read as empty value, not error")
}

func TestRedisCache_ZeroTTLUsesDefault(t *testing.T) {
	s, cfg := mockRedisServer(t)
	cfg.DefaultTTL = 10 * time.Minute
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = redisCache.Close() }()

	require.NoError(t, redisCache.Set(ctx, "k1", "v1", 0))

	ttl := s.TTL("k1")
	assert.Greater(t, ttl.Seconds(), 0.0, "Key should have TTL set")
	assert.InDelta(t, cfg.DefaultTTL.Seconds(), ttl.Seconds(), 5.0)
}

func TestRedisCache_ExpiredKeyReadsAsMissing(t *testing.T) {
	s, cfg := mockRedisServer(t)
	ctx := context.Background()

	redisCache, err := cache.NewRedisCache(ctx, cfg)
	require.NoError(t, err)
	defer func() { _ = redisCache.Close() }()

	require.NoError(t, redisCache.Set(ctx, "k1", "v1", time.Second))
	s.FastForward(2 * time.Second)

	value, err := redisCache.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestMemoryCache_SetGetDelete(t *testing.T) {
	ctx := context.Background()
	memory := cache.NewMemoryCache()

	require.NoError(t, memory.Set(ctx, "k1", "v1", time.Minute))

	value, err := memory.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Equal(t, "v1", value)

	require.NoError(t, memory.Delete(ctx, "k1"))

	value, err = memory.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Empty(t, value)
}

func TestMemoryCache_Expiry(t *testing.T) {
	ctx := context.Background()
	memory := cache.NewMemoryCache()

	require.NoError(t, memory.Set(ctx, "k1", "v1", 10*time.Millisecond))
	time.Sleep(20 * time.Millisecond)

	value, err := memory.Get(ctx, "k1")
	require.NoError(t, err)
	assert.Empty(t, value)
}

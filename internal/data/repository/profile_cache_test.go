package repository

import (
	"context"
	"testing"
	"time"

	"club-booking/internal/data/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestCache(t *testing.T) (*miniredis.Miniredis, ProfileCache) {
	t.Helper()
	srv := miniredis.RunT(t)
	return srv, cacheOn(t, srv, "secret")
}

func cacheOn(t *testing.T, srv *miniredis.Miniredis, secret string) ProfileCache {
	t.Helper()
	rdb := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return NewRedisProfileCache(rdb, time.Minute, secret, zap.NewNop())
}

func TestRedisProfileCache_SetGet(t *testing.T) {
	srv, cache := newTestCache(t)
	ctx := context.Background()

	miss, err := cache.Get(ctx, "42")
	require.NoError(t, err)
	assert.Nil(t, miss)

	profile := &entity.Profile{ID: 42, Login: "neo", Wallet: 15.5, BonusCoins: 2500}
	require.NoError(t, cache.Set(ctx, "42", profile))

	got, err := cache.Get(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, profile, got)

	srv.FastForward(2 * time.Minute)
	expired, err := cache.Get(ctx, "42")
	require.NoError(t, err)
	assert.Nil(t, expired)
}

func TestRedisProfileCache_CorruptEntry(t *testing.T) {
	srv, cache := newTestCache(t)
	require.NoError(t, srv.Set(profileKey("42"), "{not json"))

	got, err := cache.Get(context.Background(), "42")

	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, srv.Exists(profileKey("42")))
}

func TestRedisProfileCache_EntriesAreSealed(t *testing.T) {
	srv, cache := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Set(ctx, "42", &entity.Profile{ID: 42, Login: "neo", Email: "neo@example.com"}))

	raw, err := srv.Get(profileKey("42"))
	require.NoError(t, err)
	assert.NotContains(t, raw, "neo@example.com")

	// secret lain tidak bisa membuka entry; entry dibuang
	other := cacheOn(t, srv, "rotated")
	got, err := other.Get(ctx, "42")
	require.NoError(t, err)
	assert.Nil(t, got)
	assert.False(t, srv.Exists(profileKey("42")))
}

func TestNoopProfileCache(t *testing.T) {
	cache := NewNoopProfileCache()
	require.NoError(t, cache.Set(context.Background(), "1", &entity.Profile{Login: "x"}))
	got, err := cache.Get(context.Background(), "1")
	assert.NoError(t, err)
	assert.Nil(t, got)
}

package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/require"
)

func newTestCache(t *testing.T) (*Redis, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	c, err := NewRedis(context.Background(), mr.Addr(), "", 0, time.Minute)
	require.NoError(t, err)
	t.Cleanup(func() { _ = c.Close() })
	return c, mr
}

func TestRedisRoundTrip(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	_, err := c.Get(ctx, "nfc", "á")
	require.ErrorIs(t, err, ErrCacheMiss)

	require.NoError(t, c.Set(ctx, "nfc", "á", "á"))

	got, err := c.Get(ctx, "nfc", "á")
	require.NoError(t, err)
	require.Equal(t, "á", got)

	// Same text under a different form is a distinct entry.
	_, err = c.Get(ctx, "nfd", "á")
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisEmptyResultIsNotAMiss(t *testing.T) {
	c, _ := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "nfc", "", ""))
	got, err := c.Get(ctx, "nfc", "")
	require.NoError(t, err)
	require.Equal(t, "", got)
}

func TestRedisTTL(t *testing.T) {
	c, mr := newTestCache(t)
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "nfkc", "ﬃ", "ffi"))
	mr.FastForward(2 * time.Minute)

	_, err := c.Get(ctx, "nfkc", "ﬃ")
	require.ErrorIs(t, err, ErrCacheMiss)
}

func TestRedisHealth(t *testing.T) {
	c, mr := newTestCache(t)
	require.True(t, c.IsHealthy(context.Background()))
	mr.Close()
	require.False(t, c.IsHealthy(context.Background()))
}

func TestNewRedisUnreachable(t *testing.T) {
	_, err := NewRedis(context.Background(), "127.0.0.1:1", "", 0, time.Minute)
	require.Error(t, err)
	require.True(t, errors.Is(err, ErrCacheUnavailable))
}

func TestNoop(t *testing.T) {
	var c Noop
	ctx := context.Background()

	require.NoError(t, c.Set(ctx, "nfc", "text", "text"))
	_, err := c.Get(ctx, "nfc", "text")
	require.ErrorIs(t, err, ErrCacheMiss)
	require.True(t, c.IsHealthy(ctx))
}

package utils

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCache_NilClient(t *testing.T) {
	ctx := context.Background()
	var dest []string

	found, err := GetCache(ctx, nil, "k", &dest)
	assert.NoError(t, err)
	assert.False(t, found)
	assert.NoError(t, SetCache(ctx, nil, "k", []string{"a"}, time.Minute))
	assert.NoError(t, DeleteCache(ctx, nil, "k"))
}

func TestCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	mr := miniredis.RunT(t)
	rdb, err := NewRedisClient(ctx, mr.Addr(), "", 0)
	require.NoError(t, err)
	t.Cleanup(func() { _ = rdb.Close() })

	var dest []string
	found, err := GetCache(ctx, rdb, "k", &dest)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetCache(ctx, rdb, "k", []string{"mercury", "venus"}, time.Minute))
	found, err = GetCache(ctx, rdb, "k", &dest)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, []string{"mercury", "venus"}, dest)

	mr.FastForward(2 * time.Minute)
	found, err = GetCache(ctx, rdb, "k", &dest)
	require.NoError(t, err)
	assert.False(t, found)

	require.NoError(t, SetCache(ctx, rdb, "k", 1, time.Minute))
	require.NoError(t, DeleteCache(ctx, rdb, "k"))
	assert.False(t, mr.Exists("k"))
}

func TestNewRedisClient(t *testing.T) {
	rdb, err := NewRedisClient(context.Background(), "", "", 0)
	assert.NoError(t, err)
	assert.Nil(t, rdb)

	mr := miniredis.RunT(t)
	addr := mr.Addr()
	mr.Close()
	_, err = NewRedisClient(context.Background(), addr, "", 0)
	assert.Error(t, err)
}

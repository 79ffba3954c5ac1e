package cachemanager

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func countingCache(t *testing.T, err error) (*ReadThroughCache[dims, string], *int) {
	t.Helper()
	calls := 0
	r := NewReadThroughCache[dims, string](
		NewInMemoryCacheManager[dims]("test", DefaultExpiration, DefaultCleanupInterval),
		func(_ context.Context, path string) (dims, error) {
			calls++
			if err != nil {
				return dims{}, err
			}
			return dims{Width: len(path), Height: 1}, nil
		},
	)
	return r, &calls
}

func TestReadThroughCache_MissThenHit(t *testing.T) {
	r, calls := countingCache(t, nil)
	ctx := context.Background()

	got, err := r.Get(ctx, "k", "abc", time.Minute)
	require.NoError(t, err)
	require.Equal(t, dims{3, 1}, got)

	got, err = r.Get(ctx, "k", "ignored on a hit", time.Minute)
	require.NoError(t, err)
	require.Equal(t, dims{3, 1}, got)
	require.Equal(t, 1, *calls)
}

func TestReadThroughCache_ErrorsAreNotCached(t *testing.T) {
	boom := errors.New("boom")
	r, calls := countingCache(t, boom)
	ctx := context.Background()

	_, err := r.Get(ctx, "k", "abc", time.Minute)
	require.ErrorIs(t, err, boom)
	_, err = r.Get(ctx, "k", "abc", time.Minute)
	require.ErrorIs(t, err, boom)
	require.Equal(t, 2, *calls)
}

func TestReadThroughCache_Invalidate(t *testing.T) {
	r, calls := countingCache(t, nil)
	ctx := context.Background()

	_, _ = r.Get(ctx, "k", "abc", time.Minute)
	require.NoError(t, r.Invalidate(ctx, "k"))
	got, err := r.Get(ctx, "k", "abcd", time.Minute)
	require.NoError(t, err)
	require.Equal(t, dims{4, 1}, got)
	require.Equal(t, 2, *calls)
}

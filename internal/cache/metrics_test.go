package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

var errCacheDown = errors.New("cache down")

type failingCache struct{}

func (failingCache) Put(context.Context, *entity.Game) error { return errCacheDown }

func (failingCache) Get(context.Context, string) (*entity.Game, bool, error) {
	return nil, false, errCacheDown
}

func (failingCache) Clear(context.Context) error { return errCacheDown }

func TestWithMetrics(t *testing.T) {
	ctx := context.Background()

	t.Run("Hits, misses and puts are counted", func(t *testing.T) {
		// Given: an instrumented memory cache
		gameCache := WithMetrics(NewMemory(10, time.Minute), "test-memory")
		hits := testutil.ToFloat64(Operations.WithLabelValues("test-memory", ResultHit))
		misses := testutil.ToFloat64(Operations.WithLabelValues("test-memory", ResultMiss))
		puts := testutil.ToFloat64(Operations.WithLabelValues("test-memory", ResultPut))

		// When: one put, one hit and one miss happen
		require.NoError(t, gameCache.Put(ctx, newGame("1")))
		_, ok, err := gameCache.Get(ctx, "1")
		require.NoError(t, err)
		require.True(t, ok)
		_, ok, err = gameCache.Get(ctx, "2")
		require.NoError(t, err)
		require.False(t, ok)

		// Then: each counter moved by one
		assert.InDelta(t, hits+1, testutil.ToFloat64(Operations.WithLabelValues("test-memory", ResultHit)), 0)
		assert.InDelta(t, misses+1, testutil.ToFloat64(Operations.WithLabelValues("test-memory", ResultMiss)), 0)
		assert.InDelta(t, puts+1, testutil.ToFloat64(Operations.WithLabelValues("test-memory", ResultPut)), 0)
	})

	t.Run("Errors are counted and returned", func(t *testing.T) {
		gameCache := WithMetrics(failingCache{}, "test-failing")
		before := testutil.ToFloat64(Operations.WithLabelValues("test-failing", ResultError))

		err := gameCache.Put(ctx, newGame("1"))
		require.ErrorIs(t, err, errCacheDown)

		_, _, err = gameCache.Get(ctx, "1")
		require.ErrorIs(t, err, errCacheDown)

		assert.InDelta(t, before+2, testutil.ToFloat64(Operations.WithLabelValues("test-failing", ResultError)), 0)
	})
}

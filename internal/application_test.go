package application

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-api/internal/config"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

func TestMigrate(t *testing.T) {
	// Given: a file backed sqlite database
	conf := &config.Config{DatabaseURL: "sqlite://" + filepath.Join(t.TempDir(), "tictactoe.db")}
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))

	// When: migrations run twice
	// Then: both runs succeed
	require.NoError(t, Migrate(logger, conf))
	require.NoError(t, Migrate(logger, conf))
}

func TestNewGameCache(t *testing.T) {
	ctx := context.Background()

	t.Run("Disabled cache never hits", func(t *testing.T) {
		gameCache, closeCache, err := newGameCache(ctx, &config.Config{})
		require.NoError(t, err)
		defer closeCache()

		game := entity.NewGame("123", entity.TwoPlayer, time.Now())
		require.NoError(t, gameCache.Put(ctx, game))

		_, ok, err := gameCache.Get(ctx, "123")
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("Memory cache", func(t *testing.T) {
		conf := &config.Config{Cache: config.Cache{
			Enabled: true,
			Backend: config.CacheBackendMemory,
			Size:    10,
			TTL:     time.Minute,
		}}

		gameCache, closeCache, err := newGameCache(ctx, conf)
		require.NoError(t, err)
		defer closeCache()

		game := entity.NewGame("123", entity.TwoPlayer, time.Now())
		require.NoError(t, gameCache.Put(ctx, game))

		_, ok, err := gameCache.Get(ctx, "123")
		require.NoError(t, err)
		assert.True(t, ok)
	})
}

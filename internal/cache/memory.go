package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

type memoryCache struct {
	games *expirable.LRU[string, *entity.Game]
}

// NewMemory - in-process LRU cache, entries expire ttl after they were put.
func NewMemory(size int, ttl time.Duration) Cache {
	if size <= 0 {
		size = DefaultSize
	}

	return &memoryCache{
		games: expirable.NewLRU[string, *entity.Game](size, nil, ttl),
	}
}

func (that *memoryCache) Put(_ context.Context, game *entity.Game) error {
	that.games.Add(gameKey(game.ID), game.Clone())
	return nil
}

func (that *memoryCache) Get(_ context.Context, id string) (*entity.Game, bool, error) {
	game, ok := that.games.Get(gameKey(id))
	if !ok {
		return nil, false, nil
	}

	return game.Clone(), true, nil
}

func (that *memoryCache) Clear(_ context.Context) error {
	that.games.Purge()
	return nil
}

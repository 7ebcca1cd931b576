package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

const scanCount = 100

type redisCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedis - cache shared between instances. Capacity is left to the server's maxmemory policy.
func NewRedis(client *redis.Client, ttl time.Duration) Cache {
	return &redisCache{
		client: client,
		ttl:    ttl,
	}
}

func (that *redisCache) Put(ctx context.Context, game *entity.Game) error {
	gameJSON, err := json.Marshal(game)
	if err != nil {
		return fmt.Errorf("could not marshal game: %w", err)
	}

	if err = that.client.Set(ctx, gameKey(game.ID), gameJSON, that.ttl).Err(); err != nil {
		return fmt.Errorf("failed to set game: %w", err)
	}

	return nil
}

func (that *redisCache) Get(ctx context.Context, id string) (*entity.Game, bool, error) {
	response, err := that.client.Get(ctx, gameKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}

	if err != nil {
		return nil, false, fmt.Errorf("failed to get game by id: %w", err)
	}

	var game entity.Game
	if err = json.Unmarshal(response, &game); err != nil {
		return nil, false, fmt.Errorf("failed to unmarshal game: %w", err)
	}

	return &game, true, nil
}

// Clear - removes every cached game, other keys of the database are left alone.
func (that *redisCache) Clear(ctx context.Context) error {
	iter := that.client.Scan(ctx, 0, keyPrefix+"*", scanCount).Iterator()

	var keys []string
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}

	if err := iter.Err(); err != nil {
		return fmt.Errorf("failed to scan games: %w", err)
	}

	if len(keys) == 0 {
		return nil
	}

	if err := that.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete games: %w", err)
	}

	return nil
}

package cache

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

const (
	DefaultSize = 100

	keyPrefix = "game:"
)

// Cache - recently accessed games. It is never the system of record,
// a miss only means the game has to be read from the repository.
type Cache interface {
	Put(ctx context.Context, game *entity.Game) error
	Get(ctx context.Context, id string) (*entity.Game, bool, error)
	Clear(ctx context.Context) error
}

func gameKey(id string) string {
	return keyPrefix + id
}

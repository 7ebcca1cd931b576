package cache

import (
	"context"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

type noopCache struct{}

// NewNoop - used when caching is disabled, every Get is a miss.
func NewNoop() Cache {
	return noopCache{}
}

func (noopCache) Put(context.Context, *entity.Game) error { return nil }

func (noopCache) Get(context.Context, string) (*entity.Game, bool, error) { return nil, false, nil }

func (noopCache) Clear(context.Context) error { return nil }

package cache

import (
	"context"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

// Result labels of the cache operations counter.
const (
	ResultHit   = "hit"
	ResultMiss  = "miss"
	ResultPut   = "put"
	ResultError = "error"
)

// Operations counts cache calls by backend and result.
// Use RegisterMetrics to register it with a Prometheus registry.
var Operations = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "tictactoe_cache_operations_total",
		Help: "Total number of game cache operations",
	},
	[]string{"backend", "result"},
)

func RegisterMetrics(reg prometheus.Registerer) {
	reg.MustRegister(Operations)
}

type metricsCache struct {
	next    Cache
	backend string
}

// WithMetrics - counts hits, misses, puts and errors of next.
func WithMetrics(next Cache, backend string) Cache {
	return &metricsCache{
		next:    next,
		backend: backend,
	}
}

func (that *metricsCache) Put(ctx context.Context, game *entity.Game) error {
	if err := that.next.Put(ctx, game); err != nil {
		that.record(ResultError)
		return err
	}

	that.record(ResultPut)
	return nil
}

func (that *metricsCache) Get(ctx context.Context, id string) (*entity.Game, bool, error) {
	game, ok, err := that.next.Get(ctx, id)

	switch {
	case err != nil:
		that.record(ResultError)
	case ok:
		that.record(ResultHit)
	default:
		that.record(ResultMiss)
	}

	return game, ok, err
}

func (that *metricsCache) Clear(ctx context.Context) error {
	return that.next.Clear(ctx)
}

func (that *metricsCache) record(result string) {
	Operations.WithLabelValues(that.backend, result).Inc()
}

package rest

import (
	"log/slog"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-api/internal/observability"
)

const unmatchedRoute = "unmatched"

// requestMetrics - counts requests and observes their duration by route template.
func requestMetrics(metrics *observability.Metrics) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = unmatchedRoute
		}

		method := ctx.Request.Method
		metrics.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		metrics.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
	}
}

func requestLogger(logger *slog.Logger) gin.HandlerFunc {
	log := logger.With("component", "http")

	return func(ctx *gin.Context) {
		start := time.Now()

		ctx.Next()

		log.Debug("request handled",
			"method", ctx.Request.Method,
			"path", ctx.Request.URL.Path,
			"status", ctx.Writer.Status(),
			"duration", time.Since(start),
		)
	}
}

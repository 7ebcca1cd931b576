package rest

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-api/internal/observability"
)

const shutdownTimeout = 5 * time.Second

type Server struct {
	logger     *slog.Logger
	httpServer *http.Server
}

func NewServer(logger *slog.Logger, port string, games gameUseCase, metrics *observability.Metrics) *Server {
	return &Server{
		logger: logger.With("component", "rest_server"),
		httpServer: &http.Server{
			Addr:         ":" + port,
			Handler:      NewRouter(logger, games, metrics),
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  30 * time.Second,
		},
	}
}

// NewRouter - the gin engine with every route of the API.
func NewRouter(logger *slog.Logger, games gameUseCase, metrics *observability.Metrics) *gin.Engine {
	gameHandler := NewGameHandler(logger, games)

	router := gin.New()
	router.Use(gin.Recovery(), requestLogger(logger), requestMetrics(metrics))

	router.GET("/ping", pingHandler)
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	tictactoe := router.Group("/tictactoe")
	{
		tictactoe.POST("/", gameHandler.CreateGame)
		tictactoe.POST("/move", gameHandler.MakeMove)
		tictactoe.GET("/:id", gameHandler.GetGame)
	}

	return router
}

// Start - serves until ctx is canceled, then shuts the server down gracefully.
func (that *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := that.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil

	case <-ctx.Done():
		that.logger.Info("Shutting down HTTP server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := that.httpServer.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("failed to shutdown server: %w", err)
		}

		return <-errCh
	}
}

package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/mnk"
)

const tracerName = "github.com/rocketscienceinc/tictactoe-api/internal/usecase"

type GameUseCase interface {
	CreateGame(ctx context.Context, config entity.GameConfig) (*entity.Game, error)
	MakeMove(ctx context.Context, gameID, pawn string, row, col int) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
}

type gameRepository interface {
	CreateGameRecord(ctx context.Context, game *entity.Game) error
	GetGameRecord(ctx context.Context, id string) (*entity.Game, error)
	ListMoves(ctx context.Context, gameID string) ([]entity.Move, error)
	SaveTurn(ctx context.Context, gameID string, moves []entity.Move, turn string, status entity.Status) error
}

type gameCache interface {
	Put(ctx context.Context, game *entity.Game) error
	Get(ctx context.Context, id string) (*entity.Game, bool, error)
}

type gameUseCase struct {
	logger *slog.Logger
	tracer trace.Tracer

	rules mnk.Game
	repo  gameRepository
	cache gameCache
}

func NewGameUseCase(logger *slog.Logger, rules mnk.Game, repo gameRepository, cache gameCache) GameUseCase {
	return &gameUseCase{
		logger: logger.With("component", "game_use_case"),
		tracer: otel.Tracer(tracerName),
		rules:  rules,
		repo:   repo,
		cache:  cache,
	}
}

func (that *gameUseCase) CreateGame(ctx context.Context, config entity.GameConfig) (*entity.Game, error) {
	log := that.logger.With("method", "CreateGame")

	ctx, span := that.tracer.Start(ctx, "GameUseCase.CreateGame",
		trace.WithAttributes(attribute.String("game.mode", string(config.Mode))))
	defer span.End()

	game, err := that.rules.CreateGame(config)
	if err != nil {
		return nil, failSpan(span, fmt.Errorf("failed to create game: %w", err))
	}

	span.SetAttributes(attribute.String("game.id", game.ID))

	// the computer may already have opened the game, its move is stored with the record
	if err = that.repo.CreateGameRecord(ctx, game); err != nil {
		log.Error("failed to save game", "game_id", game.ID, "error", err)
		return nil, failSpan(span, apperror.Persistence(err))
	}

	that.putToCache(ctx, log, game)

	log.Info("game created", "game_id", game.ID, "mode", game.Mode, "player_turn", game.PlayerTurn)

	return game, nil
}

func (that *gameUseCase) MakeMove(ctx context.Context, gameID, pawn string, row, col int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeMove", "game_id", gameID)

	ctx, span := that.tracer.Start(ctx, "GameUseCase.MakeMove", trace.WithAttributes(
		attribute.String("game.id", gameID),
		attribute.String("move.pawn", pawn),
		attribute.Int("move.row", row),
		attribute.Int("move.column", col),
	))
	defer span.End()

	game, err := that.loadGame(ctx, log, gameID)
	if err != nil {
		return nil, failSpan(span, err)
	}

	movesBefore := len(game.Moves)

	if err = that.rules.MakeMove(pawn, row, col, game); err != nil {
		log.Debug("move rejected", "pawn", pawn, "row", row, "column", col, "error", err)
		return nil, failSpan(span, fmt.Errorf("failed to make move: %w", err))
	}

	if game.Mode == entity.SinglePlayer {
		that.rules.MakeAutoMove(game)
	}

	err = that.repo.SaveTurn(ctx, game.ID, game.Moves[movesBefore:], game.PlayerTurn, game.Status)
	if err != nil {
		log.Error("failed to save turn", "error", err)
		return nil, failSpan(span, apperror.Persistence(err))
	}

	that.putToCache(ctx, log, game)

	span.SetAttributes(attribute.String("game.status", string(game.Status)))
	log.Info("move made", "pawn", pawn, "row", row, "column", col, "status", game.Status)

	return game, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, gameID string) (*entity.Game, error) {
	log := that.logger.With("method", "GetGame", "game_id", gameID)

	ctx, span := that.tracer.Start(ctx, "GameUseCase.GetGame",
		trace.WithAttributes(attribute.String("game.id", gameID)))
	defer span.End()

	game, err := that.loadGame(ctx, log, gameID)
	if err != nil {
		return nil, failSpan(span, err)
	}

	return game, nil
}

// loadGame - reads through the cache; on a miss the game is rebuilt from its moves and cached.
func (that *gameUseCase) loadGame(ctx context.Context, log *slog.Logger, gameID string) (*entity.Game, error) {
	game, ok, err := that.cache.Get(ctx, gameID)
	if err != nil {
		log.Warn("failed to get game from cache", "error", err)
	}

	if err == nil && ok {
		return game, nil
	}

	game, err = that.repo.GetGameRecord(ctx, gameID)
	if err != nil {
		if errors.Is(err, apperror.ErrGameNotFound) {
			return nil, err
		}

		log.Error("failed to get game", "error", err)
		return nil, apperror.Persistence(err)
	}

	moves, err := that.repo.ListMoves(ctx, gameID)
	if err != nil {
		log.Error("failed to list moves", "error", err)
		return nil, apperror.Persistence(err)
	}

	if err = game.Restore(moves); err != nil {
		log.Error("failed to restore game", "error", err)
		return nil, apperror.Persistence(err)
	}

	that.putToCache(ctx, log, game)

	return game, nil
}

func (that *gameUseCase) putToCache(ctx context.Context, log *slog.Logger, game *entity.Game) {
	if err := that.cache.Put(ctx, game); err != nil {
		log.Warn("failed to put game to cache", "game_id", game.ID, "error", err)
	}
}

func failSpan(span trace.Span, err error) error {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())

	return err
}

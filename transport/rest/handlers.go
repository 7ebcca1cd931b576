package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

const msgInternalError = "Error occured."

type gameUseCase interface {
	CreateGame(ctx context.Context, config entity.GameConfig) (*entity.Game, error)
	MakeMove(ctx context.Context, gameID, pawn string, row, col int) (*entity.Game, error)
	GetGame(ctx context.Context, gameID string) (*entity.Game, error)
}

type GameHandler interface {
	CreateGame(ctx *gin.Context)
	MakeMove(ctx *gin.Context)
	GetGame(ctx *gin.Context)
}

type gameHandler struct {
	logger *slog.Logger
	games  gameUseCase
}

func NewGameHandler(logger *slog.Logger, games gameUseCase) GameHandler {
	return &gameHandler{
		logger: logger.With("component", "game_handler"),
		games:  games,
	}
}

func (that *gameHandler) CreateGame(ctx *gin.Context) {
	var request createGameRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
		return
	}

	game, err := that.games.CreateGame(ctx.Request.Context(), request.toConfig())
	if err != nil {
		that.writeError(ctx, "CreateGame", err)
		return
	}

	ctx.JSON(http.StatusOK, newGameResponse(game))
}

func (that *gameHandler) MakeMove(ctx *gin.Context) {
	var request makeMoveRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, errorResponse{Detail: err.Error()})
		return
	}

	game, err := that.games.MakeMove(ctx.Request.Context(), request.GameID, request.Pawn, *request.Row, *request.Column)
	if err != nil {
		that.writeError(ctx, "MakeMove", err)
		return
	}

	ctx.JSON(http.StatusOK, newGameWithMovesResponse(game))
}

func (that *gameHandler) GetGame(ctx *gin.Context) {
	game, err := that.games.GetGame(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		that.writeError(ctx, "GetGame", err)
		return
	}

	ctx.JSON(http.StatusOK, newGameWithMovesResponse(game))
}

// writeError - rule violations and unknown games are the client's fault (400),
// storage failures are reported as a bad gateway (502).
func (that *gameHandler) writeError(ctx *gin.Context, method string, err error) {
	log := that.logger.With("method", method)

	var appErr *apperror.AppError
	if !errors.As(err, &appErr) {
		log.Error("unexpected error", "error", err)
		ctx.JSON(http.StatusInternalServerError, errorResponse{Detail: msgInternalError})
		return
	}

	switch {
	case errors.Is(appErr, apperror.ErrPersistence):
		log.Error("persistence failure", "error", err, "cause", appErr.Cause())
		ctx.JSON(http.StatusBadGateway, errorResponse{Detail: appErr.Error()})

	case errors.Is(appErr, apperror.ErrInvalidGameConfig),
		errors.Is(appErr, apperror.ErrInvalidGameState),
		errors.Is(appErr, apperror.ErrInvalidMove),
		errors.Is(appErr, apperror.ErrIllegalPlayerTurn),
		errors.Is(appErr, apperror.ErrGameNotFound):
		log.Debug("request rejected", "error", err)
		ctx.JSON(http.StatusBadRequest, errorResponse{Detail: appErr.Error()})

	default:
		log.Error("unexpected error", "error", err)
		ctx.JSON(http.StatusInternalServerError, errorResponse{Detail: msgInternalError})
	}
}

package repository

import (
	"context"
	"errors"

	"github.com/samber/oops"
	"gorm.io/gorm"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

// GameRepository - durable store of games and their moves.
//
// CreateGameRecord stores the game together with the moves it already has.
// SaveTurn appends a turn's moves and updates turn and status atomically.
type GameRepository interface {
	CreateGameRecord(ctx context.Context, game *entity.Game) error
	AppendMove(ctx context.Context, gameID string, move entity.Move) error
	GetGameRecord(ctx context.Context, id string) (*entity.Game, error)
	ListMoves(ctx context.Context, gameID string) ([]entity.Move, error)
	UpdateGameTurnAndStatus(ctx context.Context, id, turn string, status entity.Status) error
	SaveTurn(ctx context.Context, gameID string, moves []entity.Move, turn string, status entity.Status) error
}

type dbGame struct {
	db *gorm.DB
}

func NewGameRepository(db *gorm.DB) GameRepository {
	return &dbGame{
		db: db,
	}
}

// AutoMigrate - creates or updates the games and moves tables.
func AutoMigrate(db *gorm.DB) error {
	if err := db.AutoMigrate(&gameRecord{}, &moveRecord{}); err != nil {
		return oops.Code("MIGRATION_FAILED").With("operation", "auto migrate").Wrap(err)
	}

	return nil
}

func (that *dbGame) CreateGameRecord(ctx context.Context, game *entity.Game) error {
	return that.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit("Moves").Create(newGameRecord(game)).Error; err != nil {
			return oops.Code("GAME_CREATE_FAILED").With("game_id", game.ID).Wrapf(err, "failed to create game")
		}

		return appendMoves(tx, game.ID, game.Moves)
	})
}

func (that *dbGame) AppendMove(ctx context.Context, gameID string, move entity.Move) error {
	return appendMoves(that.db.WithContext(ctx), gameID, []entity.Move{move})
}

func (that *dbGame) SaveTurn(
	ctx context.Context,
	gameID string,
	moves []entity.Move,
	turn string,
	status entity.Status,
) error {
	return that.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := appendMoves(tx, gameID, moves); err != nil {
			return err
		}

		return updateTurnAndStatus(tx, gameID, turn, status)
	})
}

func appendMoves(db *gorm.DB, gameID string, moves []entity.Move) error {
	for _, move := range moves {
		if err := db.Create(newMoveRecord(gameID, move)).Error; err != nil {
			return oops.Code("MOVE_CREATE_FAILED").
				With("game_id", gameID).
				With("row", move.Row, "column", move.Column).
				Wrapf(err, "failed to append move")
		}
	}

	return nil
}

func (that *dbGame) GetGameRecord(ctx context.Context, id string) (*entity.Game, error) {
	var record gameRecord

	err := that.db.WithContext(ctx).Where("id = ?", id).Take(&record).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, apperror.GameNotFound
	}

	if err != nil {
		return nil, oops.Code("GAME_GET_FAILED").With("game_id", id).Wrapf(err, "failed to get game by id")
	}

	return record.toEntity(), nil
}

func (that *dbGame) ListMoves(ctx context.Context, gameID string) ([]entity.Move, error) {
	var records []moveRecord

	err := that.db.WithContext(ctx).Where("game_id = ?", gameID).Order("id ASC").Find(&records).Error
	if err != nil {
		return nil, oops.Code("MOVES_LIST_FAILED").With("game_id", gameID).Wrapf(err, "failed to list moves")
	}

	moves := make([]entity.Move, 0, len(records))
	for i := range records {
		moves = append(moves, records[i].toEntity())
	}

	return moves, nil
}

func (that *dbGame) UpdateGameTurnAndStatus(ctx context.Context, id, turn string, status entity.Status) error {
	return updateTurnAndStatus(that.db.WithContext(ctx), id, turn, status)
}

func updateTurnAndStatus(db *gorm.DB, id, turn string, status entity.Status) error {
	err := db.
		Model(&gameRecord{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"player_turn": turn,
			"status":      string(status),
		}).Error
	if err != nil {
		return oops.Code("GAME_UPDATE_FAILED").With("game_id", id).Wrapf(err, "failed to update game")
	}

	return nil
}

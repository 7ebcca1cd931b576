package repository

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
)

type gameRecord struct {
	ID          string       `gorm:"primaryKey;size:128"`
	Mode        string       `gorm:"size:32;not null"`
	Player1Pawn string       `gorm:"column:player_1_pawn;size:64;not null"`
	Player2Pawn string       `gorm:"column:player_2_pawn;size:64;not null"`
	PlayerTurn  string       `gorm:"size:64;not null"`
	Status      string       `gorm:"size:32;not null"`
	Created     time.Time    `gorm:"not null"`
	Moves       []moveRecord `gorm:"foreignKey:GameID;constraint:OnDelete:CASCADE"`
}

func (gameRecord) TableName() string { return "games" }

type moveRecord struct {
	ID      uint      `gorm:"primaryKey;autoIncrement"`
	GameID  string    `gorm:"size:128;not null;index;uniqueIndex:idx_moves_game_cell"`
	Pawn    string    `gorm:"size:64;not null"`
	Row     int       `gorm:"not null;uniqueIndex:idx_moves_game_cell"`
	Column  int       `gorm:"not null;uniqueIndex:idx_moves_game_cell"`
	Created time.Time `gorm:"not null"`
}

func (moveRecord) TableName() string { return "moves" }

func newGameRecord(game *entity.Game) *gameRecord {
	return &gameRecord{
		ID:          game.ID,
		Mode:        string(game.Mode),
		Player1Pawn: game.Player1,
		Player2Pawn: game.Player2,
		PlayerTurn:  game.PlayerTurn,
		Status:      string(game.Status),
		Created:     game.Created,
	}
}

// toEntity - the game header, board and moves are left for the caller to restore.
func (that *gameRecord) toEntity() *entity.Game {
	return &entity.Game{
		ID:          that.ID,
		Mode:        entity.Mode(that.Mode),
		Player1:     that.Player1Pawn,
		Player2:     that.Player2Pawn,
		PlayerTurn:  that.PlayerTurn,
		Status:      entity.Status(that.Status),
		Created:     that.Created,
		Board:       entity.NewBoard(),
		Moves:       []entity.Move{},
		VacantCells: entity.CellsCount,
	}
}

func newMoveRecord(gameID string, move entity.Move) *moveRecord {
	return &moveRecord{
		GameID:  gameID,
		Pawn:    move.Pawn,
		Row:     move.Row,
		Column:  move.Column,
		Created: move.Created,
	}
}

func (that *moveRecord) toEntity() entity.Move {
	return entity.Move{
		Pawn:    that.Pawn,
		Row:     that.Row,
		Column:  that.Column,
		Created: that.Created,
	}
}

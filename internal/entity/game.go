package entity

import (
	"errors"
	"fmt"
	"time"
)

const (
	BoardSize  = 3
	CellsCount = BoardSize * BoardSize

	VacantCell = "-"

	DefaultStartingPawn  = "x"
	DefaultSecondaryPawn = "o"
)

var ErrInvalidMoveRecord = errors.New("invalid move record")

type Mode string

const (
	SinglePlayer Mode = "SINGLE_PLAYER"
	TwoPlayer    Mode = "TWO_PLAYER"
)

func (that Mode) IsValid() bool {
	return that == SinglePlayer || that == TwoPlayer
}

type Status string

const (
	StatusCreated     Status = "CREATED"
	StatusInProgress  Status = "IN_PROGRESS"
	StatusTied        Status = "TIED"
	StatusPlayer1Wins Status = "PLAYER_1_WINS"
	StatusPlayer2Wins Status = "PLAYER_2_WINS"
)

// IsTerminal reports whether no more moves can be made.
func (that Status) IsTerminal() bool {
	return that == StatusTied || that == StatusPlayer1Wins || that == StatusPlayer2Wins
}

// Board is indexed as Board[row][column].
type Board [BoardSize][BoardSize]string

func NewBoard() Board {
	var board Board
	for row := range board {
		for col := range board[row] {
			board[row][col] = VacantCell
		}
	}

	return board
}

type Move struct {
	Pawn    string    `json:"pawn"`
	Row     int       `json:"row"`
	Column  int       `json:"column"`
	Created time.Time `json:"created"`
}

type Game struct {
	ID          string    `json:"id"`
	Mode        Mode      `json:"mode"`
	Player1     string    `json:"player_1"`
	Player2     string    `json:"player_2"`
	PlayerTurn  string    `json:"player_turn"`
	Status      Status    `json:"status"`
	Created     time.Time `json:"created"`
	Board       Board     `json:"board"`
	Moves       []Move    `json:"moves"`
	VacantCells int       `json:"vacant_cells"`
}

// GameConfig - parameters of a create game request. Empty strings mean "not provided".
type GameConfig struct {
	Mode         Mode
	Player1      string
	Player2      string
	StartingPawn string
}

// NewGame - returns a game with an empty board, ready for the first move.
func NewGame(id string, mode Mode, created time.Time) *Game {
	return &Game{
		ID:          id,
		Mode:        mode,
		Status:      StatusInProgress,
		Created:     created,
		Board:       NewBoard(),
		Moves:       []Move{},
		VacantCells: CellsCount,
	}
}

// Restore - rebuilds board and vacant cells count from the recorded moves.
// A move outside the board or on a taken cell leaves the game unchanged.
func (that *Game) Restore(moves []Move) error {
	board := NewBoard()

	for i, move := range moves {
		if move.Row < 0 || move.Row >= BoardSize || move.Column < 0 || move.Column >= BoardSize {
			return fmt.Errorf("%w: move %d at (%d, %d) is off the board", ErrInvalidMoveRecord, i, move.Row, move.Column)
		}

		if board[move.Row][move.Column] != VacantCell {
			return fmt.Errorf("%w: move %d at (%d, %d) is on a taken cell", ErrInvalidMoveRecord, i, move.Row, move.Column)
		}

		board[move.Row][move.Column] = move.Pawn
	}

	that.Board = board
	that.Moves = make([]Move, len(moves))
	copy(that.Moves, moves)
	that.VacantCells = CellsCount - len(moves)

	return nil
}

// Clone returns a deep copy of the game.
func (that *Game) Clone() *Game {
	clone := *that
	clone.Moves = make([]Move, len(that.Moves))
	copy(clone.Moves, that.Moves)

	return &clone
}

func (that *Game) IsInProgress() bool {
	return that.Status == StatusInProgress
}

func (that *Game) IsFinished() bool {
	return that.Status.IsTerminal()
}

// OtherPlayer returns the opponent of the given pawn.
func (that *Game) OtherPlayer(pawn string) string {
	if pawn == that.Player2 {
		return that.Player1
	}
	return that.Player2
}

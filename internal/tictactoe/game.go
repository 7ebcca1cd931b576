package tictactoe

import (
	"time"

	"github.com/rocketscienceinc/tictactoe-api/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-api/internal/entity"
	"github.com/rocketscienceinc/tictactoe-api/internal/mnk"
	"github.com/rocketscienceinc/tictactoe-api/internal/pkg"
)

const (
	msgPawnsMustDiffer     = "Player_1 and Player_2 pawn value must be different."
	msgStartingPawnUnknown = "Starting pawn does not match any provided player pawns."
	msgInvalidMode         = "Game mode must be SINGLE_PLAYER or TWO_PLAYER."
	msgPlayer1Missing      = "Player_1 pawn must be provided."
)

var _ mnk.Game = (*Game)(nil)

// Game - tic-tac-toe, the 3x3 board m,n,k-game with k = 3.
type Game struct {
	now   func() time.Time
	newID func() string
}

type Option func(*Game)

func WithClock(now func() time.Time) Option {
	return func(that *Game) {
		that.now = now
	}
}

func WithIDGenerator(newID func() string) Option {
	return func(that *Game) {
		that.newID = newID
	}
}

func New(opts ...Option) *Game {
	game := &Game{
		now:   time.Now,
		newID: pkg.GenerateGameID,
	}

	for _, opt := range opts {
		opt(game)
	}

	return game
}

// CreateGame - creates a new game based on the provided config.
// In single player mode player 2 is the computer and moves at once if it starts.
func (that *Game) CreateGame(config entity.GameConfig) (*entity.Game, error) {
	if config.Player1 == "" {
		return nil, apperror.InvalidGameConfig(msgPlayer1Missing)
	}

	switch config.Mode {
	case entity.SinglePlayer:
		game := that.newGame(config.Mode)
		game.Player1, game.Player2, game.PlayerTurn = singlePlayerPawns(config)

		if game.PlayerTurn == game.Player2 {
			that.MakeAutoMove(game)
		}

		return game, nil

	case entity.TwoPlayer:
		player2, turn, err := twoPlayerPawns(config)
		if err != nil {
			return nil, err
		}

		game := that.newGame(config.Mode)
		game.Player1, game.Player2, game.PlayerTurn = config.Player1, player2, turn

		return game, nil

	default:
		return nil, apperror.InvalidGameConfig(msgInvalidMode)
	}
}

// MakeMove - puts pawn on (row, col) if the move is legal and passes the turn.
func (that *Game) MakeMove(pawn string, row, col int, game *entity.Game) error {
	if !game.IsInProgress() {
		return apperror.InvalidGameState
	}

	if pawn != game.PlayerTurn {
		return apperror.IllegalPlayerTurn
	}

	if game.VacantCells <= 0 || !IsValidSpot(row, col, game.Board) {
		return apperror.InvalidMove
	}

	that.place(pawn, row, col, game)

	// the next turn is kept even when the game is over
	game.PlayerTurn = game.OtherPlayer(pawn)

	return nil
}

// MakeAutoMove - plays the computer's move as player 2 and hands the turn back to player 1.
// The caller decides whether it is the computer's turn.
func (that *Game) MakeAutoMove(game *entity.Game) {
	if game.VacantCells <= 0 || !game.IsInProgress() {
		return
	}

	row, col, ok := selectAutoSpot(game.Board)
	if !ok {
		return
	}

	that.place(game.Player2, row, col, game)
	game.PlayerTurn = game.Player1
}

// place is the only code path that fills a cell and decrements the vacant cells count.
func (that *Game) place(pawn string, row, col int, game *entity.Game) {
	game.Board[row][col] = pawn
	game.VacantCells--
	game.Moves = append(game.Moves, entity.Move{
		Pawn:    pawn,
		Row:     row,
		Column:  col,
		Created: that.now(),
	})

	UpdateStatus(row, col, pawn, game)
}

func (that *Game) newGame(mode entity.Mode) *entity.Game {
	return entity.NewGame(that.newID(), mode, that.now())
}

// selectAutoSpot - scans row-major positions inward from both ends
// (0, 8, 1, 7, ...) and returns the first vacant one.
func selectAutoSpot(board entity.Board) (int, int, bool) {
	for start, end := 0, entity.CellsCount-1; start <= end; start, end = start+1, end-1 {
		if row, col := toCell(start); board[row][col] == entity.VacantCell {
			return row, col, true
		}

		if row, col := toCell(end); board[row][col] == entity.VacantCell {
			return row, col, true
		}
	}

	return 0, 0, false
}

func toCell(position int) (int, int) {
	return position / entity.BoardSize, position % entity.BoardSize
}

// defaultOpponent - the default starting pawn, or the secondary one when pawn already took it.
func defaultOpponent(pawn string) string {
	if pawn != entity.DefaultStartingPawn {
		return entity.DefaultStartingPawn
	}
	return entity.DefaultSecondaryPawn
}

// singlePlayerPawns - returns player 1, player 2 (computer) and the starting pawn.
// A player 2 pawn given in the config is ignored.
func singlePlayerPawns(config entity.GameConfig) (string, string, string) {
	player1 := config.Player1

	switch {
	// the override names the computer's pawn
	case config.StartingPawn != "" && config.StartingPawn != player1:
		return player1, config.StartingPawn, config.StartingPawn

	// the override names the human's pawn
	case config.StartingPawn != "":
		return player1, defaultOpponent(config.StartingPawn), player1

	default:
		player2 := defaultOpponent(player1)
		if player1 == entity.DefaultStartingPawn {
			return player1, player2, player1
		}
		return player1, player2, player2
	}
}

// twoPlayerPawns - resolves player 2 and the starting pawn, or fails with a config error.
func twoPlayerPawns(config entity.GameConfig) (string, string, error) {
	player1, player2, starting := config.Player1, config.Player2, config.StartingPawn

	if player2 == "" {
		switch {
		case starting == "":
			player2 = defaultOpponent(player1)
		case starting == player1:
			player2 = defaultOpponent(starting)
		default:
			player2 = starting
		}
	}

	if player1 == player2 {
		return "", "", apperror.InvalidGameConfig(msgPawnsMustDiffer)
	}

	if starting == "" {
		starting = entity.DefaultStartingPawn
	}

	switch starting {
	case player1:
		return player2, player1, nil
	case player2:
		return player2, player2, nil
	default:
		return "", "", apperror.InvalidGameConfig(msgStartingPawnUnknown)
	}
}

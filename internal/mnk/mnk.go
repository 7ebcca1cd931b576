// Package mnk describes the capability shared by m,n,k-games: two players
// alternately place pawns on an m-by-n board, aiming for k in a row.
package mnk

import "github.com/rocketscienceinc/tictactoe-api/internal/entity"

// Game is implemented by each board variant.
type Game interface {
	// CreateGame builds a new game from the request config. For single player
	// games the computer may already have moved.
	CreateGame(config entity.GameConfig) (*entity.Game, error)

	// MakeMove validates and applies a player move. The game is untouched on error.
	MakeMove(pawn string, row, col int, game *entity.Game) error

	// MakeAutoMove plays the computer (player 2) move, if any move is left.
	MakeAutoMove(game *entity.Game)
}

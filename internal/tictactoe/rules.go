package tictactoe

import "github.com/rocketscienceinc/tictactoe-api/internal/entity"

const lastIndex = entity.BoardSize - 1

// IsValidSpot - checks that the cell is on the board and vacant.
func IsValidSpot(row, col int, board entity.Board) bool {
	if row < 0 || row > lastIndex || col < 0 || col > lastIndex {
		return false
	}

	return board[row][col] == entity.VacantCell
}

func isRowComplete(row int, board entity.Board, pawn string) bool {
	for col := range entity.BoardSize {
		if board[row][col] != pawn {
			return false
		}
	}
	return true
}

func isColumnComplete(col int, board entity.Board, pawn string) bool {
	for row := range entity.BoardSize {
		if board[row][col] != pawn {
			return false
		}
	}
	return true
}

// top-left to bottom-right
func isMainDiagonalComplete(board entity.Board, pawn string) bool {
	for i := range entity.BoardSize {
		if board[i][i] != pawn {
			return false
		}
	}
	return true
}

// top-right to bottom-left
func isAntiDiagonalComplete(board entity.Board, pawn string) bool {
	for i := range entity.BoardSize {
		if board[i][lastIndex-i] != pawn {
			return false
		}
	}
	return true
}

// UpdateStatus - derives the game status after pawn was placed at (row, col).
// Only the lines crossing that cell are checked. Status is the only field it touches.
func UpdateStatus(row, col int, pawn string, game *entity.Game) {
	won := isRowComplete(row, game.Board, pawn) ||
		isColumnComplete(col, game.Board, pawn) ||
		(row == col && isMainDiagonalComplete(game.Board, pawn)) ||
		(row == lastIndex-col && isAntiDiagonalComplete(game.Board, pawn))

	switch {
	case won && pawn == game.Player1:
		game.Status = entity.StatusPlayer1Wins
	case won:
		game.Status = entity.StatusPlayer2Wins
	case game.VacantCells == 0:
		game.Status = entity.StatusTied
	}
}

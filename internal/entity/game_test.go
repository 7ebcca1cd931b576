package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_IsTerminal(t *testing.T) {
	t.Run("Finished statuses are terminal", func(t *testing.T) {
		for _, status := range []Status{StatusTied, StatusPlayer1Wins, StatusPlayer2Wins} {
			assert.True(t, status.IsTerminal(), status)
		}
	})

	t.Run("Created and in progress are not terminal", func(t *testing.T) {
		assert.False(t, StatusCreated.IsTerminal())
		assert.False(t, StatusInProgress.IsTerminal())
	})
}

func TestNewGame(t *testing.T) {
	// Given: a creation time
	created := time.Date(2021, 5, 20, 10, 0, 0, 0, time.UTC)

	// When: a new game is created
	game := NewGame("123", TwoPlayer, created)

	// Then: the board is vacant and the game is in progress
	assert.Equal(t, "123", game.ID)
	assert.Equal(t, TwoPlayer, game.Mode)
	assert.Equal(t, StatusInProgress, game.Status)
	assert.Equal(t, created, game.Created)
	assert.Equal(t, CellsCount, game.VacantCells)
	assert.Empty(t, game.Moves)

	for row := range game.Board {
		for col := range game.Board[row] {
			assert.Equal(t, VacantCell, game.Board[row][col])
		}
	}
}

func TestGame_Restore(t *testing.T) {
	// Given: a game header loaded without board and two recorded moves
	game := &Game{ID: "123", Player1: "x", Player2: "o"}
	moves := []Move{
		{Pawn: "x", Row: 0, Column: 0},
		{Pawn: "o", Row: 2, Column: 1},
	}

	// When: the game is restored from the moves
	err := game.Restore(moves)

	// Then: the board and vacant cells count reflect the moves
	require.NoError(t, err)
	assert.Equal(t, "x", game.Board[0][0])
	assert.Equal(t, "o", game.Board[2][1])
	assert.Equal(t, VacantCell, game.Board[1][1])
	assert.Equal(t, CellsCount-2, game.VacantCells)
	assert.Equal(t, moves, game.Moves)
}

func TestGame_Restore_CorruptMoves(t *testing.T) {
	for name, moves := range map[string][]Move{
		"Row past the board":    {{Pawn: "x", Row: BoardSize, Column: 0}},
		"Negative column":       {{Pawn: "x", Row: 0, Column: -1}},
		"Two moves on one cell": {{Pawn: "x", Row: 1, Column: 1}, {Pawn: "o", Row: 1, Column: 1}},
	} {
		t.Run(name, func(t *testing.T) {
			// Given: a fresh game
			game := NewGame("123", TwoPlayer, time.Now())

			// When: corrupt moves are restored
			err := game.Restore(moves)

			// Then: an error is returned instead of a panic and the game is untouched
			require.ErrorIs(t, err, ErrInvalidMoveRecord)
			assert.Equal(t, NewBoard(), game.Board)
			assert.Empty(t, game.Moves)
			assert.Equal(t, CellsCount, game.VacantCells)
		})
	}
}

func TestGame_Clone(t *testing.T) {
	// Given: a game with one move
	game := NewGame("123", SinglePlayer, time.Now())
	game.Board[0][0] = "x"
	game.Moves = append(game.Moves, Move{Pawn: "x"})

	// When: the clone is mutated
	clone := game.Clone()
	clone.Board[1][1] = "o"
	clone.Moves = append(clone.Moves, Move{Pawn: "o"})
	clone.Moves[0].Pawn = "z"

	// Then: the original is untouched
	require.Len(t, game.Moves, 1)
	assert.Equal(t, "x", game.Moves[0].Pawn)
	assert.Equal(t, VacantCell, game.Board[1][1])
}

func TestGame_OtherPlayer(t *testing.T) {
	game := &Game{Player1: "x", Player2: "o"}

	assert.Equal(t, "o", game.OtherPlayer("x"))
	assert.Equal(t, "x", game.OtherPlayer("o"))
}

func TestTimeFormat(t *testing.T) {
	t.Run("FormatTime pads microseconds", func(t *testing.T) {
		// Given: a midnight time
		value := time.Date(2021, 5, 20, 0, 0, 0, 0, time.Local)

		// Then: it is rendered with six fractional digits
		assert.Equal(t, "20/05/2021, 00:00:00:000000", FormatTime(value))
	})

	t.Run("ParseTime reads FormatTime output", func(t *testing.T) {
		// When: parsing a formatted time with microseconds
		parsed, err := ParseTime("20/05/2021, 13:04:05:000123")

		// Then: every component is restored
		require.NoError(t, err)
		expected := time.Date(2021, 5, 20, 13, 4, 5, 123000, time.Local)
		assert.True(t, expected.Equal(parsed), parsed)
	})

	t.Run("FormatTime and ParseTime agree", func(t *testing.T) {
		// Given: a time with microsecond precision
		value := time.Date(2024, 12, 31, 23, 59, 58, 987654000, time.Local)

		// When
		parsed, err := ParseTime(FormatTime(value))

		// Then
		require.NoError(t, err)
		assert.True(t, value.Equal(parsed), parsed)
	})

	t.Run("ParseTime rejects malformed values", func(t *testing.T) {
		for _, value := range []string{"", "20/05/2021", "20/05/2021 00:00:00:000000", "xx/05/2021, 00:00:00:000000"} {
			_, err := ParseTime(value)
			assert.ErrorIs(t, err, ErrInvalidTimeFormat, value)
		}
	})
}

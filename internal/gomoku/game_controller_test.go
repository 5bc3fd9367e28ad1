package gomoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

func newGame(t *testing.T) *entity.Game {
	t.Helper()

	game, err := entity.NewGame(entity.DefaultBoardSize)
	require.NoError(t, err)

	return game
}

// placeStones puts stones directly on the board, bypassing turn order.
func placeStones(t *testing.T, board *entity.Board, player entity.Player, coords ...[2]int) {
	t.Helper()

	for _, c := range coords {
		placed, err := board.Place(c[0], c[1], player)
		require.NoError(t, err)
		require.True(t, placed)
	}
}

func TestGame_MakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new game
		game := newGame(t)

		// When: black plays the center
		outcome, err := MakeTurn(game, 7, 7)

		// Then: the stone is placed and the turn passes to white
		require.NoError(t, err)
		assert.Equal(t, OutcomePlaced, outcome)
		assert.Equal(t, entity.PlayerWhite, game.Turn)
		assert.True(t, game.IsOngoing())

		cell, err := game.Board.Get(7, 7)
		require.NoError(t, err)
		assert.Equal(t, entity.BlackCell, cell)
	})

	t.Run("Turns alternate strictly", func(t *testing.T) {
		// Given: a new game
		game := newGame(t)
		expected := []entity.Player{entity.PlayerWhite, entity.PlayerBlack, entity.PlayerWhite, entity.PlayerBlack}

		for i, want := range expected {
			// When: the player to move plays a free cell
			outcome, err := MakeTurn(game, 0, i*2)
			require.NoError(t, err)
			require.Equal(t, OutcomePlaced, outcome)

			// Then: the turn flips
			assert.Equal(t, want, game.Turn)
		}
	})

	t.Run("Cell already occupied is ignored", func(t *testing.T) {
		// Given: black has played (3, 3)
		game := newGame(t)
		_, err := MakeTurn(game, 3, 3)
		require.NoError(t, err)
		before := game.Snapshot()

		// When: white clicks the same cell
		outcome, err := MakeTurn(game, 3, 3)

		// Then: nothing changes, white is still to move
		require.NoError(t, err)
		assert.Equal(t, OutcomeIgnored, outcome)
		assert.Equal(t, before, game.Snapshot())
		assert.Equal(t, entity.PlayerWhite, game.Turn)
	})

	t.Run("Out of bounds is rejected", func(t *testing.T) {
		for _, coords := range [][2]int{{-1, 0}, {0, -1}, {15, 7}, {7, 15}} {
			// Given: a new game
			game := newGame(t)
			before := game.Snapshot()

			// When: a move outside the board is attempted
			outcome, err := MakeTurn(game, coords[0], coords[1])

			// Then: ErrOutOfBounds is returned and the game is unchanged
			require.ErrorIs(t, err, apperror.ErrOutOfBounds)
			assert.Equal(t, OutcomeIgnored, outcome)
			assert.Equal(t, before, game.Snapshot())
		}
	})

	t.Run("Move after game finished is ignored", func(t *testing.T) {
		// Given: a game black has already won
		game := newGame(t)
		game.Finish(entity.PlayerBlack)
		before := game.Snapshot()

		// When: a move is attempted
		outcome, err := MakeTurn(game, 0, 0)

		// Then: it is ignored silently
		require.NoError(t, err)
		assert.Equal(t, OutcomeIgnored, outcome)
		assert.Equal(t, before, game.Snapshot())
	})
}

func TestGame_Scenario(t *testing.T) {
	// Given: an empty 15x15 board
	game := newGame(t)

	blackMoves := [][2]int{{7, 3}, {7, 4}, {7, 5}, {7, 6}}
	whiteMoves := [][2]int{{0, 0}, {0, 2}, {0, 4}, {0, 6}}

	for i := range blackMoves {
		// When: black builds a row of four and white answers far away
		outcome, err := MakeTurn(game, blackMoves[i][0], blackMoves[i][1])
		require.NoError(t, err)
		require.Equal(t, OutcomePlaced, outcome)
		assert.False(t, CheckWin(game.Board, blackMoves[i][0], blackMoves[i][1]))
		assert.Equal(t, entity.PlayerWhite, game.Turn)

		outcome, err = MakeTurn(game, whiteMoves[i][0], whiteMoves[i][1])
		require.NoError(t, err)
		require.Equal(t, OutcomePlaced, outcome)
	}

	// When: black completes the five at (7, 7)
	outcome, err := MakeTurn(game, 7, 7)
	require.NoError(t, err)

	// Then: black wins and the turn does not advance
	assert.Equal(t, OutcomeWon, outcome)
	assert.True(t, CheckWin(game.Board, 7, 7))
	assert.True(t, game.IsFinished())
	require.NotNil(t, game.Winner)
	assert.Equal(t, entity.PlayerBlack, *game.Winner)
	assert.Equal(t, entity.PlayerBlack, game.Turn)

	// When: white tries to keep playing
	outcome, err = MakeTurn(game, 1, 1)

	// Then: the finished game ignores it
	require.NoError(t, err)
	assert.Equal(t, OutcomeIgnored, outcome)
}

func TestCheckWin_Directions(t *testing.T) {
	tests := []struct {
		name   string
		stones [][2]int
	}{
		{name: "horizontal", stones: [][2]int{{4, 2}, {4, 3}, {4, 4}, {4, 5}, {4, 6}}},
		{name: "vertical", stones: [][2]int{{2, 9}, {3, 9}, {4, 9}, {5, 9}, {6, 9}}},
		{name: "diagonal", stones: [][2]int{{5, 5}, {6, 6}, {7, 7}, {8, 8}, {9, 9}}},
		{name: "anti-diagonal", stones: [][2]int{{10, 0}, {9, 1}, {8, 2}, {7, 3}, {6, 4}}},
		{name: "bottom-right corner", stones: [][2]int{{14, 10}, {14, 11}, {14, 12}, {14, 13}, {14, 14}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Given: an empty board
			board, err := entity.NewBoard(entity.DefaultBoardSize)
			require.NoError(t, err)

			for i, stone := range tt.stones {
				// When: the stones are placed one by one
				placeStones(t, board, entity.PlayerWhite, stone)

				// Then: only the fifth stone wins
				assert.Equal(t, i == len(tt.stones)-1, CheckWin(board, stone[0], stone[1]), "stone %d", i+1)
			}
		})
	}
}

func TestCheckWin_FillingTheGap(t *testing.T) {
	// Given: two stones, a gap, then two more stones on one row
	board, err := entity.NewBoard(entity.DefaultBoardSize)
	require.NoError(t, err)
	placeStones(t, board, entity.PlayerBlack, [2]int{3, 1}, [2]int{3, 2}, [2]int{3, 4}, [2]int{3, 5})
	assert.False(t, CheckWin(board, 3, 5))

	// When: the gap is filled
	placeStones(t, board, entity.PlayerBlack, [2]int{3, 3})

	// Then: both walks count toward the same line
	assert.True(t, CheckWin(board, 3, 3))
}

func TestCheckWin_Overline(t *testing.T) {
	// Given: five black stones split three and two around a gap
	board, err := entity.NewBoard(entity.DefaultBoardSize)
	require.NoError(t, err)
	placeStones(t, board, entity.PlayerBlack, [2]int{0, 0}, [2]int{0, 1}, [2]int{0, 2}, [2]int{0, 4}, [2]int{0, 5})

	// When: the gap is filled making six in a row
	placeStones(t, board, entity.PlayerBlack, [2]int{0, 3})

	// Then: the overline still wins
	assert.True(t, CheckWin(board, 0, 3))
}

func TestCheckWin_StopsAtOtherColor(t *testing.T) {
	// Given: four black stones interrupted by a white stone
	board, err := entity.NewBoard(entity.DefaultBoardSize)
	require.NoError(t, err)
	placeStones(t, board, entity.PlayerBlack, [2]int{5, 0}, [2]int{5, 1}, [2]int{5, 3}, [2]int{5, 4})
	placeStones(t, board, entity.PlayerWhite, [2]int{5, 2})

	// Then: neither side of the white stone reaches five
	assert.False(t, CheckWin(board, 5, 4))
	assert.False(t, CheckWin(board, 5, 2))
}

func TestCheckWin_EmptyOrOutside(t *testing.T) {
	board, err := entity.NewBoard(entity.DefaultBoardSize)
	require.NoError(t, err)

	assert.False(t, CheckWin(board, 7, 7))
	assert.False(t, CheckWin(board, -1, 3))
	assert.False(t, CheckWin(board, 3, 15))
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "ignored", OutcomeIgnored.String())
	assert.Equal(t, "placed", OutcomePlaced.String())
	assert.Equal(t, "won", OutcomeWon.String())
}

package presenter

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/rocketscienceinc/gomoku/internal/entity"
)

func TestStatus(t *testing.T) {
	t.Run("Game in progress names the player to move", func(t *testing.T) {
		snapshot := entity.Snapshot{Turn: entity.PlayerWhite}

		assert.Equal(t, "Current player: White", Status(snapshot))
	})

	t.Run("Finished game names the winner", func(t *testing.T) {
		winner := entity.PlayerBlack
		snapshot := entity.Snapshot{Turn: entity.PlayerBlack, GameOver: true, Winner: &winner}

		assert.Equal(t, "Game over! Black wins!", Status(snapshot))
	})
}

func TestSurface_Cell(t *testing.T) {
	// Given: a 600px canvas showing a 15x15 board, 40px per cell
	surface := SquareSurface(600, entity.DefaultBoardSize)

	tests := []struct {
		name     string
		x, y     float64
		row, col int
	}{
		{name: "origin", x: 0, y: 0, row: 0, col: 0},
		{name: "inside first cell", x: 39.9, y: 12, row: 0, col: 0},
		{name: "cell boundary", x: 40, y: 80, row: 2, col: 1},
		{name: "last cell", x: 599, y: 599, row: 14, col: 14},
		{name: "past the right edge", x: 600, y: 10, row: 0, col: 15},
		{name: "left of the surface", x: -0.5, y: 10, row: 0, col: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// When: mapping the pointer position
			row, col := surface.Cell(tt.x, tt.y)

			// Then: the floor-divided cell is returned
			assert.Equal(t, tt.row, row)
			assert.Equal(t, tt.col, col)
		})
	}
}

func TestSurface_CellRectangularPitch(t *testing.T) {
	// Given: a terminal surface two columns wide and one row high per cell
	surface := Surface{Width: 30, Height: 15, Size: 15}

	// When: pointing at column 7, line 4
	row, col := surface.Cell(7, 4)

	// Then: the column is halved, the line is kept
	assert.Equal(t, 4, row)
	assert.Equal(t, 3, col)
}

func TestIsStarPoint(t *testing.T) {
	assert.True(t, IsStarPoint(15, 7, 7))
	assert.True(t, IsStarPoint(15, 3, 11))
	assert.False(t, IsStarPoint(15, 3, 4))
	assert.False(t, IsStarPoint(19, 3, 3))
}

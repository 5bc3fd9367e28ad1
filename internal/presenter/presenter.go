// Package presenter holds the rendering-independent parts of a Gomoku view:
// status text, pointer to cell mapping and board decorations.
package presenter

import (
	"fmt"
	"math"

	"github.com/rocketscienceinc/gomoku/internal/entity"
)

// Status returns the line shown under the board.
func Status(snapshot entity.Snapshot) string {
	if snapshot.GameOver && snapshot.Winner != nil {
		return fmt.Sprintf("Game over! %s wins!", snapshot.Winner.Title())
	}

	return fmt.Sprintf("Current player: %s", snapshot.Turn.Title())
}

// Surface describes a rendering area of Width x Height units showing a board
// of Size cells per side.
type Surface struct {
	Width  float64
	Height float64
	Size   int
}

// SquareSurface is a surface of side x side units.
func SquareSurface(side float64, size int) Surface {
	return Surface{Width: side, Height: side, Size: size}
}

// Cell maps a pointer position, relative to the surface origin, to board
// coordinates by floor division with the cell pitch. The result is not
// clamped: positions outside the surface give coordinates the board rejects.
func (that Surface) Cell(x, y float64) (int, int) {
	pitchX := that.Width / float64(that.Size)
	pitchY := that.Height / float64(that.Size)

	row := int(math.Floor(y / pitchY))
	col := int(math.Floor(x / pitchX))

	return row, col
}

// IsStarPoint reports whether (row, col) is one of the nine marked points of
// a standard 15x15 board.
func IsStarPoint(size, row, col int) bool {
	if size != entity.DefaultBoardSize {
		return false
	}

	return isStarLine(row) && isStarLine(col)
}

func isStarLine(i int) bool {
	return i == 3 || i == 7 || i == 11
}

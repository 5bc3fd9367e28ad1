package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
)

// DefaultBoardSize is the side of the standard Gomoku board.
const DefaultBoardSize = 15

// Cell is the state of one intersection.
type Cell uint8

const (
	EmptyCell Cell = iota
	BlackCell
	WhiteCell
)

func (that Cell) String() string {
	switch that {
	case EmptyCell:
		return ""
	case BlackCell:
		return "black"
	case WhiteCell:
		return "white"
	default:
		return fmt.Sprintf("cell(%d)", uint8(that))
	}
}

func (that Cell) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case "":
		*that = EmptyCell
	case "black":
		*that = BlackCell
	case "white":
		*that = WhiteCell
	default:
		return fmt.Errorf("%w: %q", apperror.ErrUnknownCell, text)
	}

	return nil
}

// Board is a square grid of cells. Its size never changes after creation.
type Board struct {
	size  int
	cells []Cell
}

// NewBoard creates an empty size x size board.
func NewBoard(size int) (*Board, error) {
	if size <= 0 {
		return nil, fmt.Errorf("%w: %d", apperror.ErrInvalidBoardSize, size)
	}

	return &Board{
		size:  size,
		cells: make([]Cell, size*size),
	}, nil
}

func (that *Board) Size() int {
	return that.size
}

// InBounds reports whether (row, col) addresses a cell of the board.
func (that *Board) InBounds(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

// Get returns the cell at (row, col).
func (that *Board) Get(row, col int) (Cell, error) {
	if !that.InBounds(row, col) {
		return EmptyCell, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	return that.cells[that.index(row, col)], nil
}

// Place puts the player's stone at (row, col). It returns false and leaves the
// board untouched when the cell is already occupied.
func (that *Board) Place(row, col int, player Player) (bool, error) {
	if !that.InBounds(row, col) {
		return false, fmt.Errorf("%w: (%d, %d)", apperror.ErrOutOfBounds, row, col)
	}

	idx := that.index(row, col)
	if that.cells[idx] != EmptyCell {
		return false, nil
	}

	that.cells[idx] = player.Cell()

	return true, nil
}

// Rows returns a copy of the grid, row by row.
func (that *Board) Rows() [][]Cell {
	rows := make([][]Cell, that.size)
	for row := range rows {
		rows[row] = make([]Cell, that.size)
		copy(rows[row], that.cells[row*that.size:(row+1)*that.size])
	}

	return rows
}

func (that *Board) index(row, col int) int {
	return row*that.size + col
}

package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrCellOccupied     = errors.New("cell is already occupied")
	ErrOutOfBounds      = errors.New("cell is out of bounds")
	ErrInvalidBoardSize = errors.New("board size must be positive")
	ErrGameNotFound     = errors.New("game not found")
	ErrUnknownCell      = errors.New("unknown cell")
)

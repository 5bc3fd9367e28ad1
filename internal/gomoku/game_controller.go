package gomoku

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
)

// WinLength is the number of same colored stones in a row that wins the game.
const WinLength = 5

// directions holds one (dx, dy) vector per line family: horizontal, vertical,
// diagonal and anti-diagonal. Each is walked both ways.
var directions = [4][2]int{
	{1, 0},
	{0, 1},
	{1, 1},
	{1, -1},
}

// Outcome tells the caller what a turn attempt did to the game.
type Outcome int

const (
	// OutcomeIgnored means the game was left untouched.
	OutcomeIgnored Outcome = iota
	OutcomePlaced
	OutcomeWon
)

func (that Outcome) String() string {
	switch that {
	case OutcomePlaced:
		return "placed"
	case OutcomeWon:
		return "won"
	default:
		return "ignored"
	}
}

// MakeTurn places a stone for the player to move at (row, col).
//
// Moves on an occupied cell or after the game is over are ignored without
// error. Coordinates outside the board return apperror.ErrOutOfBounds.
func MakeTurn(gameInstance *entity.Game, row, col int) (Outcome, error) {
	err := validateMove(gameInstance, row, col)
	switch {
	case errors.Is(err, apperror.ErrGameFinished), errors.Is(err, apperror.ErrCellOccupied):
		return OutcomeIgnored, nil
	case err != nil:
		return OutcomeIgnored, fmt.Errorf("invalid turn: %w", err)
	}

	mover := gameInstance.Turn
	if _, err = gameInstance.Board.Place(row, col, mover); err != nil {
		return OutcomeIgnored, fmt.Errorf("failed to place stone: %w", err)
	}

	return updateGameStatus(gameInstance, mover, row, col), nil
}

// validateMove - checks if the move is valid.
func validateMove(gameInstance *entity.Game, row, col int) error {
	if gameInstance.IsFinished() {
		return apperror.ErrGameFinished
	}

	cell, err := gameInstance.Board.Get(row, col)
	if err != nil {
		return err
	}

	if cell != entity.EmptyCell {
		return apperror.ErrCellOccupied
	}

	return nil
}

// updateGameStatus - checks the game status after a move.
func updateGameStatus(gameInstance *entity.Game, mover entity.Player, row, col int) Outcome {
	if CheckWin(gameInstance.Board, row, col) {
		gameInstance.Finish(mover)
		return OutcomeWon
	}

	gameInstance.Turn = mover.Opponent()

	return OutcomePlaced
}

// CheckWin reports whether the stone at (row, col) is part of a run of at
// least WinLength stones of its color. Only lines through (row, col) are
// looked at, and each side is walked at most WinLength-1 steps.
func CheckWin(board *entity.Board, row, col int) bool {
	color, err := board.Get(row, col)
	if err != nil || color == entity.EmptyCell {
		return false
	}

	for _, dir := range directions {
		dx, dy := dir[0], dir[1]
		count := 1

		for i := 1; i < WinLength; i++ {
			if !sameColor(board, row+dy*i, col+dx*i, color) {
				break
			}
			count++
		}

		for i := 1; i < WinLength; i++ {
			if !sameColor(board, row-dy*i, col-dx*i, color) {
				break
			}
			count++
		}

		if count >= WinLength {
			return true
		}
	}

	return false
}

func sameColor(board *entity.Board, row, col int, color entity.Cell) bool {
	cell, err := board.Get(row, col)
	return err == nil && cell == color
}

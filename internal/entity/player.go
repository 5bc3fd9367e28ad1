package entity

import (
	"fmt"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
)

// Player is the side that owns the current turn.
type Player uint8

const (
	PlayerBlack Player = Player(BlackCell)
	PlayerWhite Player = Player(WhiteCell)
)

// Cell returns the stone color the player puts on the board.
func (that Player) Cell() Cell {
	return Cell(that)
}

// Opponent returns the other side.
func (that Player) Opponent() Player {
	if that == PlayerBlack {
		return PlayerWhite
	}
	return PlayerBlack
}

// Title returns the human readable player name used in status lines.
func (that Player) Title() string {
	switch that {
	case PlayerBlack:
		return "Black"
	case PlayerWhite:
		return "White"
	default:
		return fmt.Sprintf("Player(%d)", uint8(that))
	}
}

func (that Player) String() string {
	return that.Cell().String()
}

func (that Player) MarshalText() ([]byte, error) {
	return []byte(that.String()), nil
}

func (that *Player) UnmarshalText(text []byte) error {
	var cell Cell
	if err := cell.UnmarshalText(text); err != nil {
		return err
	}

	if cell == EmptyCell {
		return fmt.Errorf("%w: empty player", apperror.ErrUnknownCell)
	}

	*that = Player(cell)

	return nil
}

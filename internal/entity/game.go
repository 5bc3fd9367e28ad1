package entity

import "fmt"

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
)

// Game is one Gomoku session: the board, whose turn it is and how it ended.
// A Game is not safe for concurrent use.
type Game struct {
	Board  *Board
	Turn   Player
	Status string
	Winner *Player
}

func NewGame(size int) (*Game, error) {
	board, err := NewBoard(size)
	if err != nil {
		return nil, fmt.Errorf("failed to create board: %w", err)
	}

	return &Game{
		Board:  board,
		Turn:   PlayerBlack,
		Status: StatusOngoing,
	}, nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

// Finish records the mover as winner. The turn stays with the winner.
func (that *Game) Finish(winner Player) {
	that.Status = StatusFinished
	that.Winner = &winner
}

// Restart resets the game in place to its initial state, keeping the board size.
func (that *Game) Restart() {
	// the size was validated when the board was first created
	board, _ := NewBoard(that.Board.Size())

	that.Board = board
	that.Turn = PlayerBlack
	that.Status = StatusOngoing
	that.Winner = nil
}

// Snapshot is a read-only copy of the game state handed to presentation adapters.
type Snapshot struct {
	Size     int      `json:"size"`
	Board    [][]Cell `json:"board"`
	Turn     Player   `json:"player_turn"`
	GameOver bool     `json:"game_over"`
	Winner   *Player  `json:"winner"`
}

func (that *Game) Snapshot() Snapshot {
	var winner *Player
	if that.Winner != nil {
		w := *that.Winner
		winner = &w
	}

	return Snapshot{
		Size:     that.Board.Size(),
		Board:    that.Board.Rows(),
		Turn:     that.Turn,
		GameOver: that.IsFinished(),
		Winner:   winner,
	}
}

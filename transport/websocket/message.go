package websocket

import (
	"encoding/json"

	"github.com/rocketscienceinc/gomoku/internal/entity"
)

const (
	actionConnect     = "connect"
	actionGameState   = "game:state"
	actionGameClick   = "game:click"
	actionGameRestart = "game:restart"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// ClickPayload addresses a cell by coordinates or by pointer position.
type ClickPayload struct {
	Row *int     `json:"row,omitempty"`
	Col *int     `json:"col,omitempty"`
	X   *float64 `json:"x,omitempty"`
	Y   *float64 `json:"y,omitempty"`
}

type ResponsePayload struct {
	ID      string           `json:"id,omitempty"`
	Status  string           `json:"status,omitempty"`
	Outcome string           `json:"outcome,omitempty"`
	Game    *entity.Snapshot `json:"game,omitempty"`
	Error   string           `json:"error,omitempty"`
}

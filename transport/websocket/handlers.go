package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/gomoku"
	"github.com/rocketscienceinc/gomoku/internal/presenter"
)

func (that *Server) handleConnect(ctx context.Context, sess *session, msg *Message) error {
	return that.handleState(ctx, sess, msg)
}

func (that *Server) handleState(ctx context.Context, sess *session, msg *Message) error {
	snapshot, err := that.games.State(ctx, sess.id)
	if err != nil {
		return fmt.Errorf("failed to get game state: %w", err)
	}

	return that.sendGame(sess, msg.Action, snapshot, "")
}

func (that *Server) handleClick(ctx context.Context, sess *session, msg *Message) error {
	log := that.logger.With("method", "handleClick", "id", sess.id)

	var payload ClickPayload
	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		log.Error("failed to unmarshal payload", "error", err)
		return that.sendErrorResponse(sess.conn, msg.Action, "invalid payload")
	}

	var (
		snapshot entity.Snapshot
		outcome  gomoku.Outcome
		err      error
	)

	switch {
	case payload.Row != nil && payload.Col != nil:
		snapshot, outcome, err = that.games.Click(ctx, sess.id, *payload.Row, *payload.Col)
	case payload.X != nil && payload.Y != nil:
		snapshot, outcome, err = that.games.ClickAt(ctx, sess.id, *payload.X, *payload.Y)
	default:
		return that.sendErrorResponse(sess.conn, msg.Action, "row and col or x and y are required")
	}

	if errors.Is(err, apperror.ErrOutOfBounds) {
		return that.sendMessage(sess.conn, msg.Action, ResponsePayload{
			ID:      sess.id,
			Status:  presenter.Status(snapshot),
			Outcome: outcome.String(),
			Game:    &snapshot,
			Error:   apperror.ErrOutOfBounds.Error(),
		})
	}

	if err != nil {
		return fmt.Errorf("failed make turn: %w", err)
	}

	return that.sendGame(sess, msg.Action, snapshot, outcome.String())
}

func (that *Server) handleRestart(ctx context.Context, sess *session, msg *Message) error {
	snapshot, err := that.games.Restart(ctx, sess.id)
	if err != nil {
		return fmt.Errorf("failed to restart game: %w", err)
	}

	return that.sendGame(sess, msg.Action, snapshot, "")
}

func (that *Server) sendGame(sess *session, action string, snapshot entity.Snapshot, outcome string) error {
	return that.sendMessage(sess.conn, action, ResponsePayload{
		ID:      sess.id,
		Status:  presenter.Status(snapshot),
		Outcome: outcome,
		Game:    &snapshot,
	})
}

func (that *Server) sendMessage(conn *websocket.Conn, action string, payload ResponsePayload) error {
	raw, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	if err = conn.WriteJSON(Message{Action: action, Payload: raw}); err != nil {
		return fmt.Errorf("failed to write message: %w", err)
	}

	return nil
}

func (that *Server) sendErrorResponse(conn *websocket.Conn, action, errorMsg string) error {
	if err := that.sendMessage(conn, action, ResponsePayload{Error: errorMsg}); err != nil {
		return fmt.Errorf("failed to send error response: %w", err)
	}

	return nil
}

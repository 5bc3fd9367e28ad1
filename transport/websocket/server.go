package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/gomoku"
)

const shutdownTimeout = 5 * time.Second

type gameUseCase interface {
	NewSession(ctx context.Context) (string, entity.Snapshot, error)
	Click(ctx context.Context, id string, row, col int) (entity.Snapshot, gomoku.Outcome, error)
	ClickAt(ctx context.Context, id string, x, y float64) (entity.Snapshot, gomoku.Outcome, error)
	Restart(ctx context.Context, id string) (entity.Snapshot, error)
	State(ctx context.Context, id string) (entity.Snapshot, error)
	EndSession(ctx context.Context, id string) error
}

type handlerFunc func(ctx context.Context, sess *session, message *Message) error

// session is one connection and the game it plays. Only the read loop writes to conn.
type session struct {
	id   string
	conn *websocket.Conn
}

type Server struct {
	logger *slog.Logger
	games  gameUseCase

	upgrader websocket.Upgrader
	handlers map[string]handlerFunc

	connsMu sync.Mutex
	conns   map[*websocket.Conn]struct{}
}

func New(logger *slog.Logger, games gameUseCase) *Server {
	server := &Server{
		logger: logger.With("component", "websocket"),
		games:  games,

		upgrader: websocket.Upgrader{
			CheckOrigin: func(*http.Request) bool { return true },
		},
		handlers: make(map[string]handlerFunc),
		conns:    make(map[*websocket.Conn]struct{}),
	}

	server.handlers[actionConnect] = server.handleConnect
	server.handlers[actionGameState] = server.handleState
	server.handlers[actionGameClick] = server.handleClick
	server.handlers[actionGameRestart] = server.handleRestart

	return server
}

// Handler returns the http handler serving the /ws endpoint.
func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", that.serveWS)

	return mux
}

// Start - starts WebSocket server and stops it when ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           that.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
		that.closeConnections()
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// serveWS - upgrades the connection and plays one game over it until the peer leaves.
func (that *Server) serveWS(writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "serveWS")

	conn, err := that.upgrader.Upgrade(writer, req, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	that.track(conn)
	defer that.untrack(conn)

	// The session outlives the upgrade request, so it is not bound to its context.
	ctx := context.WithoutCancel(req.Context())

	id, _, err := that.games.NewSession(ctx)
	if err != nil {
		log.Error("failed to create session", "error", err)
		_ = that.sendErrorResponse(conn, actionConnect, "failed to create game")

		return
	}

	defer func() {
		if err = that.games.EndSession(ctx, id); err != nil {
			log.Error("failed to end session", "id", id, "error", err)
		}
	}()

	log.Info("WebSocket connection established", "id", id)

	if err = that.handleMessages(ctx, &session{id: id, conn: conn}); err != nil {
		log.Debug("connection closed", "id", id, "error", err)
	}
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, sess *session) error {
	log := that.logger.With("method", "handleMessages", "id", sess.id)

	for {
		_, data, err := sess.conn.ReadMessage()
		if err != nil {
			return fmt.Errorf("failed to read message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(data, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)

			if err = that.sendErrorResponse(sess.conn, "", "invalid message"); err != nil {
				return err
			}

			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)

			if err = that.sendErrorResponse(sess.conn, message.Action, "unknown action"); err != nil {
				return err
			}

			continue
		}

		if err = handler(ctx, sess, &message); err != nil {
			return fmt.Errorf("failed to handle %s: %w", message.Action, err)
		}
	}
}

func (that *Server) track(conn *websocket.Conn) {
	that.connsMu.Lock()
	defer that.connsMu.Unlock()

	that.conns[conn] = struct{}{}
}

func (that *Server) untrack(conn *websocket.Conn) {
	that.connsMu.Lock()
	defer that.connsMu.Unlock()

	delete(that.conns, conn)
	_ = conn.Close()
}

func (that *Server) closeConnections() {
	that.connsMu.Lock()
	defer that.connsMu.Unlock()

	for conn := range that.conns {
		_ = conn.Close()
	}
}

package rest

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/gomoku"
	"github.com/rocketscienceinc/gomoku/internal/presenter"
)

type gameUseCase interface {
	NewSession(ctx context.Context) (string, entity.Snapshot, error)
	Click(ctx context.Context, id string, row, col int) (entity.Snapshot, gomoku.Outcome, error)
	ClickAt(ctx context.Context, id string, x, y float64) (entity.Snapshot, gomoku.Outcome, error)
	Restart(ctx context.Context, id string) (entity.Snapshot, error)
	State(ctx context.Context, id string) (entity.Snapshot, error)
	EndSession(ctx context.Context, id string) error
}

// ClickRequest addresses a cell either directly or by pointer position on
// the configured surface. Row and Col take precedence when both are set.
type ClickRequest struct {
	Row *int     `json:"row,omitempty"`
	Col *int     `json:"col,omitempty"`
	X   *float64 `json:"x,omitempty"`
	Y   *float64 `json:"y,omitempty"`
}

type GameResponse struct {
	ID      string           `json:"id"`
	Status  string           `json:"status,omitempty"`
	Outcome string           `json:"outcome,omitempty"`
	Game    *entity.Snapshot `json:"game,omitempty"`
	Error   string           `json:"error,omitempty"`
}

type GameHandler struct {
	logger *slog.Logger
	games  gameUseCase
}

func NewGameHandler(logger *slog.Logger, games gameUseCase) *GameHandler {
	return &GameHandler{
		logger: logger.With("component", "rest"),
		games:  games,
	}
}

func (that *GameHandler) Create(w http.ResponseWriter, r *http.Request) {
	log := that.logger.With("method", "Create")

	id, snapshot, err := that.games.NewSession(r.Context())
	if err != nil {
		log.Error("failed to create session", "error", err)
		writeError(w, http.StatusInternalServerError, id, "failed to create game")

		return
	}

	writeGame(w, http.StatusCreated, id, snapshot, "")
}

func (that *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	snapshot, err := that.games.State(r.Context(), id)
	if err != nil {
		that.writeUseCaseError(w, "Get", id, err)

		return
	}

	writeGame(w, http.StatusOK, id, snapshot, "")
}

func (that *GameHandler) Click(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req ClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, id, "invalid request body")

		return
	}

	var (
		snapshot entity.Snapshot
		outcome  gomoku.Outcome
		err      error
	)

	switch {
	case req.Row != nil && req.Col != nil:
		snapshot, outcome, err = that.games.Click(r.Context(), id, *req.Row, *req.Col)
	case req.X != nil && req.Y != nil:
		snapshot, outcome, err = that.games.ClickAt(r.Context(), id, *req.X, *req.Y)
	default:
		writeError(w, http.StatusBadRequest, id, "row and col or x and y are required")

		return
	}

	if errors.Is(err, apperror.ErrOutOfBounds) {
		resp := GameResponse{
			ID:      id,
			Status:  presenter.Status(snapshot),
			Outcome: outcome.String(),
			Game:    &snapshot,
			Error:   apperror.ErrOutOfBounds.Error(),
		}
		writeJSON(w, http.StatusUnprocessableEntity, resp)

		return
	}

	if err != nil {
		that.writeUseCaseError(w, "Click", id, err)

		return
	}

	writeGame(w, http.StatusOK, id, snapshot, outcome.String())
}

func (that *GameHandler) Restart(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	snapshot, err := that.games.Restart(r.Context(), id)
	if err != nil {
		that.writeUseCaseError(w, "Restart", id, err)

		return
	}

	writeGame(w, http.StatusOK, id, snapshot, "")
}

func (that *GameHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	if err := that.games.EndSession(r.Context(), id); err != nil {
		that.writeUseCaseError(w, "Delete", id, err)

		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *GameHandler) writeUseCaseError(w http.ResponseWriter, method, id string, err error) {
	if errors.Is(err, apperror.ErrGameNotFound) {
		writeError(w, http.StatusNotFound, id, apperror.ErrGameNotFound.Error())

		return
	}

	that.logger.Error("request failed", "method", method, "id", id, "error", err)
	writeError(w, http.StatusInternalServerError, id, "Internal Server Error")
}

func writeGame(w http.ResponseWriter, code int, id string, snapshot entity.Snapshot, outcome string) {
	writeJSON(w, code, GameResponse{
		ID:      id,
		Status:  presenter.Status(snapshot),
		Outcome: outcome,
		Game:    &snapshot,
	})
}

func writeError(w http.ResponseWriter, code int, id, msg string) {
	writeJSON(w, code, GameResponse{ID: id, Error: msg})
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	_ = json.NewEncoder(w).Encode(v)
}

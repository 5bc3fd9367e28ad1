package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/google/uuid"

	"github.com/rocketscienceinc/gomoku/internal/apperror"
	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/gomoku"
	"github.com/rocketscienceinc/gomoku/internal/presenter"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, id string, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

// GameManager owns every live session. All events are applied under one lock,
// so each click or restart runs to completion before the next one starts.
type GameManager struct {
	logger   *slog.Logger
	gameRepo gameRepo

	boardSize int
	surface   presenter.Surface

	mu sync.Mutex
}

func NewGameManager(logger *slog.Logger, gameRepo gameRepo, boardSize int, surfaceSize float64) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager"),
		gameRepo:  gameRepo,
		boardSize: boardSize,
		surface:   presenter.SquareSurface(surfaceSize, boardSize),
	}
}

// NewSession starts a fresh game and returns its id.
func (that *GameManager) NewSession(ctx context.Context) (string, entity.Snapshot, error) {
	log := that.logger.With("method", "NewSession")

	game, err := entity.NewGame(that.boardSize)
	if err != nil {
		return "", entity.Snapshot{}, fmt.Errorf("failed to create game: %w", err)
	}

	id := uuid.New().String()

	that.mu.Lock()
	defer that.mu.Unlock()

	if err = that.gameRepo.CreateOrUpdate(ctx, id, game); err != nil {
		return "", entity.Snapshot{}, fmt.Errorf("failed to save game: %w", err)
	}

	log.Info("session created", "id", id, "size", that.boardSize)

	return id, game.Snapshot(), nil
}

// Click applies a move for the player to move at (row, col).
// An out-of-bounds move returns apperror.ErrOutOfBounds with the unchanged snapshot.
func (that *GameManager) Click(ctx context.Context, id string, row, col int) (entity.Snapshot, gomoku.Outcome, error) {
	log := that.logger.With("method", "Click", "id", id)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return entity.Snapshot{}, gomoku.OutcomeIgnored, err
	}

	outcome, err := gomoku.MakeTurn(game, row, col)
	if err != nil {
		if errors.Is(err, apperror.ErrOutOfBounds) {
			log.Debug("click outside the board", "row", row, "col", col)

			return game.Snapshot(), outcome, err
		}

		return entity.Snapshot{}, outcome, fmt.Errorf("failed make turn: %w", err)
	}

	switch outcome {
	case gomoku.OutcomeIgnored:
		log.Debug("click ignored", "row", row, "col", col)
	case gomoku.OutcomePlaced:
		log.Debug("stone placed", "row", row, "col", col)
	case gomoku.OutcomeWon:
		log.Info("game won", "row", row, "col", col, "winner", game.Winner.Title())
	}

	return game.Snapshot(), outcome, nil
}

// ClickAt maps a pointer position on the configured surface to a cell and
// applies it like Click.
func (that *GameManager) ClickAt(ctx context.Context, id string, x, y float64) (entity.Snapshot, gomoku.Outcome, error) {
	row, col := that.surface.Cell(x, y)

	return that.Click(ctx, id, row, col)
}

// Restart discards the current game of a session and starts a new one of the same size.
func (that *GameManager) Restart(ctx context.Context, id string) (entity.Snapshot, error) {
	log := that.logger.With("method", "Restart", "id", id)

	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return entity.Snapshot{}, err
	}

	game.Restart()

	log.Info("game restarted")

	return game.Snapshot(), nil
}

func (that *GameManager) State(ctx context.Context, id string) (entity.Snapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	game, err := that.getGameByID(ctx, id)
	if err != nil {
		return entity.Snapshot{}, err
	}

	return game.Snapshot(), nil
}

func (that *GameManager) EndSession(ctx context.Context, id string) error {
	log := that.logger.With("method", "EndSession", "id", id)

	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.gameRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	log.Info("session ended")

	return nil
}

func (that *GameManager) getGameByID(ctx context.Context, id string) (*entity.Game, error) {
	game, err := that.gameRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get game: %w", err)
	}

	return game, nil
}

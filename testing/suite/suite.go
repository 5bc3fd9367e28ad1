package suite

import (
	"context"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/rocketscienceinc/gomoku/internal/entity"
	"github.com/rocketscienceinc/gomoku/internal/repository"
	"github.com/rocketscienceinc/gomoku/internal/usecase"
)

const (
	maxWaitDuration = 30 * time.Second
	surfaceSize     = 600
)

// Suite is the shared fixture of adapter tests: one session store and the
// game manager on top of it, configured like the default config.yml.
type Suite struct {
	*testing.T
	Logger *slog.Logger

	Storage repository.GameRepository
	Games   *usecase.GameManager
}

func New(t *testing.T) (context.Context, *Suite) {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), maxWaitDuration)
	t.Cleanup(func() {
		cancel()
	})

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelWarn}))

	storage := repository.NewGameRepository()

	return ctx, &Suite{
		T:       t,
		Logger:  logger,
		Storage: storage,
		Games:   usecase.NewGameManager(logger, storage, entity.DefaultBoardSize, surfaceSize),
	}
}

package application

import (
	"context"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/gomoku/internal/config"
	"github.com/rocketscienceinc/gomoku/internal/repository"
	"github.com/rocketscienceinc/gomoku/internal/usecase"
	"github.com/rocketscienceinc/gomoku/transport/rest"
	"github.com/rocketscienceinc/gomoku/transport/terminal"
	"github.com/rocketscienceinc/gomoku/transport/websocket"
)

// RunApp - runs the HTTP and WebSocket servers until a signal arrives or one of them fails.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	gameManager := newGameManager(logger, conf)

	group, ctx := errgroup.WithContext(ctx)

	// run HTTP server
	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)

		if err := rest.Start(ctx, conf.HTTPPort, rest.NewRouter(logger, gameManager)); err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}

		return nil
	})

	// run Websocket server
	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)

		if err := websocket.New(logger, gameManager).Start(ctx, conf.SocketPort); err != nil {
			return fmt.Errorf("WebSocket server error: %w", err)
		}

		return nil
	})

	err := group.Wait()

	log.Info("Application stopped")

	return err
}

// RunTerminal - plays a game in the terminal until the user quits.
func RunTerminal(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM)
	defer stop()

	if err := terminal.Run(ctx, logger, newGameManager(logger, conf)); err != nil {
		return fmt.Errorf("terminal error: %w", err)
	}

	return nil
}

func newGameManager(logger *slog.Logger, conf *config.Config) *usecase.GameManager {
	return usecase.NewGameManager(logger, repository.NewGameRepository(), conf.Board.Size, conf.Board.SurfaceSize)
}

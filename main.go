package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	app "github.com/rocketscienceinc/gomoku/internal"
	"github.com/rocketscienceinc/gomoku/internal/config"
)

// main - is the entry point of the application. It initializes the configuration, logger, and runs the application.
func main() {
	defer func() {
		if err := recover(); err != nil {
			fmt.Fprintf(os.Stderr, "recovered from panic: %v\n", err)
			os.Exit(1)
		}
	}()

	if err := newRootCmd().ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:          "gomoku",
		Short:        "Two-player Gomoku on a 15x15 board",
		SilenceUsage: true,
	}

	root.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yml", "path to the config file")

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Serve games over HTTP and WebSocket",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := config.MustLoad(configPath)
			logger := initLogger(conf, os.Stdout)

			return app.RunApp(cmd.Context(), logger, conf)
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "play",
		Short: "Play a hot-seat game in the terminal",
		RunE: func(cmd *cobra.Command, _ []string) error {
			conf := config.MustLoad(configPath)

			out, closeLog, err := openLogFile(conf.LogFile)
			if err != nil {
				return err
			}
			defer closeLog()

			return app.RunTerminal(cmd.Context(), initLogger(conf, out), conf)
		},
	})

	return root
}

// openLogFile - the terminal owns stdout while playing, so logs go to a file or nowhere.
func openLogFile(path string) (io.Writer, func(), error) {
	if path == "" {
		return io.Discard, func() {}, nil
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}

	return file, func() { _ = file.Close() }, nil
}

// initialize logger.
func initLogger(conf *config.Config, out io.Writer) *slog.Logger {
	var level slog.Level

	switch conf.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	return slog.New(slog.NewJSONHandler(out, &slog.HandlerOptions{Level: level}))
}

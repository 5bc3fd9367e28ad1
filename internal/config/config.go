package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel   string `yaml:"log-level" env:"LOG_LEVEL" env-default:"info"`
	LogFile    string `yaml:"log-file" env:"LOG_FILE" env-default:""`
	HTTPPort   string `yaml:"http-port" env:"HTTP_PORT" env-default:"9090"`
	SocketPort string `yaml:"socket-port" env:"SOCKET_PORT" env-default:"9091"`
	Board      Board  `yaml:"board"`
}

type Board struct {
	Size int `yaml:"size" env:"BOARD_SIZE" env-default:"15"`
	// SurfaceSize is the side, in pixels, of the area HTTP clients draw the board on.
	SurfaceSize float64 `yaml:"surface-size" env:"BOARD_SURFACE_SIZE" env-default:"600"`
}

// MustLoad - load all configurations in config.yml file.
// Without the file, settings come from the environment and defaults.
func MustLoad(path string) *Config {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			panic(fmt.Errorf("unable to load config from env: %w", err))
		}

		return config
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

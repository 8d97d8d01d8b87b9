package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the settings that may be supplied through the environment.
// Command-line flags take these as their defaults.
type Env struct {
	FPS           int    `env:"TETRIS_FPS" envDefault:"60"`
	Seed          int64  `env:"TETRIS_SEED" envDefault:"0"`
	DBPath        string `env:"TETRIS_DB" envDefault:"~/.tetris/scores.db"`
	ConfigPath    string `env:"TETRIS_CONFIG"`
	Difficulty    string `env:"TETRIS_DIFFICULTY" envDefault:"fixed"`
	HighScoreFile string `env:"TETRIS_HIGHSCORE_FILE"`
	LogLevel      string `env:"TETRIS_LOG_LEVEL" envDefault:"info"`
	SSHHost       string `env:"TETRIS_SSH_HOST" envDefault:"0.0.0.0"`
	SSHPort       int    `env:"TETRIS_SSH_PORT" envDefault:"2222"`
	HostKeyPath   string `env:"TETRIS_SSH_HOST_KEY" envDefault:".ssh/tetris_host_ed25519"`
}

// LoadEnv parses the TETRIS_* environment variables.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("config: parse env: %w", err)
	}
	return e, nil
}

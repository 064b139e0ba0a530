package config

import (
	"fmt"
	"log/slog"

	"github.com/caarlos0/env/v11"
)

type Env struct {
	Development bool   `env:"DEVELOPMENT"`
	LogLevel    string `env:"MINES_LOG_LEVEL" envDefault:"info"`
	LogFile     string `env:"MINES_LOG_FILE"`
	PresetsFile string `env:"MINES_PRESETS_FILE" envDefault:"presets.hcl"`
	Seed        uint64 `env:"MINES_SEED"`
}

func LoadEnv() (*Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return &e, nil
}

// Level is the configured log level; development always logs at debug.
func (e Env) Level() slog.Level {
	if e.Development {
		return slog.LevelDebug
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(e.LogLevel)); err != nil {
		return slog.LevelInfo
	}
	return level
}

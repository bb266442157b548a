package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"color-snake/game/types"

	"gopkg.in/yaml.v3"
)

// Window defaults
const (
	DefaultTitle = "Snake Game"
	DefaultFPS   = 60
)

// LogConfig selects the logger's level and output style.
type LogConfig struct {
	Level       string `yaml:"level"`       // debug, info, warn, error
	Development bool   `yaml:"development"` // console output with colored levels
}

// Config holds the runtime settings. Game rules are fixed and not part of
// it.
type Config struct {
	Title        string        `yaml:"title"`
	TickInterval time.Duration `yaml:"tick_interval"`
	Seed         uint64        `yaml:"seed"` // 0 seeds from the clock
	FPS          int32         `yaml:"fps"`
	Log          LogConfig     `yaml:"log"`
}

func Default() Config {
	return Config{
		Title:        DefaultTitle,
		TickInterval: types.TickInterval,
		FPS:          DefaultFPS,
		Log: LogConfig{
			Level: "info",
		},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, nil
}

var (
	ErrTickInterval = errors.New("tick_interval must be positive")
	ErrFPS          = errors.New("fps must be positive")
	ErrLogLevel     = errors.New("unknown log level")
)

func (c Config) Validate() error {
	if c.TickInterval <= 0 {
		return ErrTickInterval
	}
	if c.FPS <= 0 {
		return ErrFPS
	}
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("%w: %q", ErrLogLevel, c.Log.Level)
	}
	return nil
}

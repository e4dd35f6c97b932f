// Package config parses pongcade settings from the environment and flags.
package config

import (
	"errors"
	"flag"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds front-end configuration shared by the desktop and terminal
// binaries.
type Config struct {
	Resources    string  `env:"PONGCADE_RESOURCES" envDefault:"resources"`
	Fullscreen   bool    `env:"PONGCADE_FULLSCREEN" envDefault:"false"`
	Mute         bool    `env:"PONGCADE_MUTE" envDefault:"false"`
	Volume       float64 `env:"PONGCADE_VOLUME" envDefault:"0"`
	SpectateAddr string  `env:"PONGCADE_SPECTATE_ADDR"`
	TPS          int     `env:"PONGCADE_TPS" envDefault:"60"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// ParseConfig parses environment and flags into Config. Flags win over the
// environment.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := ParseEnv(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Resources, "resources", cfg.Resources, "Directory holding images/ and sound/")
	fs.BoolVar(&cfg.Fullscreen, "fullscreen", cfg.Fullscreen, "Start in fullscreen mode")
	fs.BoolVar(&cfg.Mute, "mute", cfg.Mute, "Disable sound effects")
	fs.Float64Var(&cfg.Volume, "volume", cfg.Volume, "Sound effect volume, base 2 exponent (0 is unchanged)")
	fs.StringVar(&cfg.SpectateAddr, "spectate", cfg.SpectateAddr, "Address to serve the spectator websocket on (empty disables)")
	fs.IntVar(&cfg.TPS, "tps", cfg.TPS, "Frames per second of the terminal loop")
	if err := fs.Parse(args); err != nil {
		return Config{}, fmt.Errorf("parse flags: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks values that flags and env tags cannot.
func (c Config) Validate() error {
	if c.TPS <= 0 {
		return errors.New("tps must be positive")
	}
	if c.Resources == "" {
		return errors.New("resources directory is required")
	}
	return nil
}

// Package config provides YAML-based configuration loading for the 2048
// shell: board size, tile spawning and logging.
package config

import (
	"fmt"

	"github.com/charmbracelet/log"
)

// Config contains all configuration for a 2048 session.
type Config struct {
	Board BoardConfig `yaml:"board"`
	Spawn SpawnConfig `yaml:"spawn"`
	Log   LogConfig   `yaml:"log"`
}

// BoardConfig defines the playing field.
type BoardConfig struct {
	Size int `yaml:"size"`
}

// SpawnConfig defines how new tiles appear.
type SpawnConfig struct {
	InitialTiles    int     `yaml:"initial_tiles"`    // Tiles placed on reset
	FourProbability float64 `yaml:"four_probability"` // Chance a new tile is 4 instead of 2 (0.0-1.0)
}

// LogConfig defines logging output.
type LogConfig struct {
	Level string `yaml:"level"` // debug, info, warn, error
}

// Validate checks that the configuration describes a playable game.
func (c Config) Validate() error {
	if c.Board.Size < 2 {
		return fmt.Errorf("config: board.size must be at least 2, got %d", c.Board.Size)
	}
	if cells := c.Board.Size * c.Board.Size; c.Spawn.InitialTiles < 0 || c.Spawn.InitialTiles > cells {
		return fmt.Errorf("config: spawn.initial_tiles must be in [0, %d], got %d", cells, c.Spawn.InitialTiles)
	}
	if c.Spawn.FourProbability < 0 || c.Spawn.FourProbability > 1 {
		return fmt.Errorf("config: spawn.four_probability must be in [0, 1], got %g", c.Spawn.FourProbability)
	}
	if _, err := c.LogLevel(); err != nil {
		return err
	}
	return nil
}

// LogLevel parses Log.Level. An empty level means info.
func (c Config) LogLevel() (log.Level, error) {
	if c.Log.Level == "" {
		return log.InfoLevel, nil
	}
	lvl, err := log.ParseLevel(c.Log.Level)
	if err != nil {
		return lvl, fmt.Errorf("config: log.level: %w", err)
	}
	return lvl, nil
}

package config

import (
	_ "embed"
)

//go:embed defaults/game2048.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Size: 4,
		},
		Spawn: SpawnConfig{
			InitialTiles:    2,
			FourProbability: 0.1,
		},
		Log: LogConfig{
			Level: "info",
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

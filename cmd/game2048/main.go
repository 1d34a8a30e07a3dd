// game2048 is the 2048 sliding-tile puzzle for the terminal.
//
// Usage:
//
//	game2048 play                    - Play in the terminal
//	game2048 tilt --grid <g> <side>  - Apply tilts to a fixed board and print it
//	game2048 config                  - Print the effective configuration
//
// Global flags:
//
//	--config <path>     - Config file (default search: ~/.game2048, ./configs, built-in)
//	--size <n>          - Board size, overrides the config
//	--seed <value>      - RNG seed for reproducible tile spawning
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/config"
)

// options holds the global flags.
type options struct {
	configPath string
	size       int
	seed       int64
	logLevel   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "game2048",
		Short: "2048 - Slide and merge tiles in your terminal",
		Long: `2048 is a sliding-tile puzzle: tilt the board to slide every tile
toward one edge, merge equal tiles and try to build a 2048 tile.

Available commands:
  play     - Play interactively
  tilt     - Apply tilts to a fixed board and print the result
  config   - Print the effective configuration

Examples:
  game2048 play
  game2048 play --size 5 --seed 42
  game2048 tilt --grid "2,2,2,2/0,0,0,0/0,0,0,0/0,0,0,0" west
  game2048 config`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().IntVar(&opts.size, "size", 0, "Board size (overrides config)")
	rootCmd.PersistentFlags().Int64Var(&opts.seed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(newPlayCmd(opts))
	rootCmd.AddCommand(newTiltCmd(opts))
	rootCmd.AddCommand(newConfigCmd(opts))

	return rootCmd
}

// loadConfig loads the config file and applies flag overrides.
func loadConfig(cmd *cobra.Command, opts *options) (config.Config, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return cfg, err
	}
	if cmd.Flags().Changed("size") {
		cfg.Board.Size = opts.size
	}
	if cmd.Flags().Changed("log-level") {
		cfg.Log.Level = opts.logLevel
	}
	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// newLogger creates the application logger writing to w.
func newLogger(w io.Writer, cfg config.Config) (*log.Logger, error) {
	level, err := cfg.LogLevel()
	if err != nil {
		return nil, err
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "game2048",
		Level:           level,
	}), nil
}

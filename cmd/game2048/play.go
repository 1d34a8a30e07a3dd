package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/platform/tui"
	"github.com/vovakirdan/tui-2048/internal/session"
)

func newPlayCmd(opts *options) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play 2048",
		Long: `Start an interactive game.

Controls:
  Arrows/WASD/HJKL - Tilt the board
  R                - New game
  ?                - Toggle help
  Q/Esc/Ctrl+C     - Quit

Logs go to --log-file when set; otherwise they are discarded so they do
not draw over the board.

Examples:
  game2048 play
  game2048 play --size 5
  game2048 play --seed 42 --log-file /tmp/2048.log --log-level debug`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPlay(cmd, opts, logFile)
		},
	}

	cmd.Flags().StringVar(&logFile, "log-file", "", "Write logs to this file")

	return cmd
}

func runPlay(cmd *cobra.Command, opts *options, logFile string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}

	var logOut io.Writer = io.Discard
	if logFile != "" {
		f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		defer f.Close()
		logOut = f
	}
	logger, err := newLogger(logOut, cfg)
	if err != nil {
		return err
	}

	// Get terminal size for the first frame
	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rt := core.RuntimeConfig{
		ScreenW: width,
		ScreenH: height,
		Seed:    opts.seed,
	}
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	s := session.New(cfg, rt.Seed, logger)
	if err := tui.Run(s, rt); err != nil {
		return fmt.Errorf("running game: %w", err)
	}

	logger.Info("session ended", "score", s.Score(), "best", s.Best(), "over", s.Over())
	return nil
}

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-2048/internal/game2048"
)

func newTiltCmd(opts *options) *cobra.Command {
	var (
		grid  string
		score int
	)

	cmd := &cobra.Command{
		Use:   "tilt <side>...",
		Short: "Apply tilts to a fixed board and print the result",
		Long: `Load a board, apply each tilt in order and print the board after
every step. No new tiles are spawned, so the output is deterministic.

The grid lists rows from the bottom row up, separated by "/", with
cells separated by ",". 0 is an empty cell.

Sides: north/up, east/right, south/down, west/left.

Examples:
  game2048 tilt --grid "2,2,2,2/0,0,0,0/0,0,0,0/0,0,0,0" west
  game2048 tilt --grid "2,0/2,0" --score 10 north east`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTilt(cmd, opts, grid, score, args)
		},
	}

	cmd.Flags().StringVar(&grid, "grid", "", "Board rows, bottom first (e.g. \"2,0/0,2\")")
	cmd.Flags().IntVar(&score, "score", 0, "Starting score")
	_ = cmd.MarkFlagRequired("grid")

	return cmd
}

func runTilt(cmd *cobra.Command, opts *options, grid string, score int, args []string) error {
	cfg, err := loadConfig(cmd, opts)
	if err != nil {
		return err
	}
	logger, err := newLogger(cmd.ErrOrStderr(), cfg)
	if err != nil {
		return err
	}

	sides := make([]game2048.Side, 0, len(args))
	for _, arg := range args {
		side, ok := game2048.ParseSide(strings.ToLower(arg))
		if !ok {
			return fmt.Errorf("unknown side %q", arg)
		}
		sides = append(sides, side)
	}

	raw, err := parseGrid(grid)
	if err != nil {
		return err
	}
	m, err := game2048.NewFromValues(raw, score, 0, false)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, side := range sides {
		changed := m.Tilt(side)
		logger.Debug("tilt", "side", side, "changed", changed, "score", m.Score())
		fmt.Fprintf(out, "tilt %s: changed=%t", side, changed)
		fmt.Fprint(out, m)
	}
	if m.GameOver() {
		fmt.Fprintf(out, "game over, max score %d\n", m.MaxScore())
	}
	return nil
}

// parseGrid reads "r0c0,r0c1/r1c0,r1c1" with the bottom row first.
func parseGrid(s string) ([][]int, error) {
	rows := strings.Split(strings.TrimSpace(s), "/")
	raw := make([][]int, len(rows))
	for r, row := range rows {
		cells := strings.Split(row, ",")
		raw[r] = make([]int, len(cells))
		for c, cell := range cells {
			v, err := strconv.Atoi(strings.TrimSpace(cell))
			if err != nil {
				return nil, fmt.Errorf("grid row %d, column %d: %w", r, c, err)
			}
			raw[r][c] = v
		}
	}
	return raw, nil
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/session"
)

const cellWidth = 6 // Width of each cell, without borders

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:       lipgloss.NewStyle(),
	core.ColorGray:          lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorWhite:         lipgloss.NewStyle().Foreground(lipgloss.Color("7")),
	core.ColorYellow:        lipgloss.NewStyle().Foreground(lipgloss.Color("3")),
	core.ColorOrange:        lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorRed:           lipgloss.NewStyle().Foreground(lipgloss.Color("1")),
	core.ColorBrightRed:     lipgloss.NewStyle().Foreground(lipgloss.Color("9")),
	core.ColorMagenta:       lipgloss.NewStyle().Foreground(lipgloss.Color("5")),
	core.ColorBrightMagenta: lipgloss.NewStyle().Foreground(lipgloss.Color("13")),
	core.ColorCyan:          lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorBrightCyan:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")),
	core.ColorGreen:         lipgloss.NewStyle().Foreground(lipgloss.Color("2")),
	core.ColorBrightYellow:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

var (
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	boardStyle  = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("240")).Padding(0, 1)
	statusStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11"))
	helpStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// tileStyle returns the style for a tile value.
func tileStyle(value int) lipgloss.Style {
	style, ok := colorStyles[core.TileColor(value)]
	if !ok {
		style = colorStyles[core.ColorDefault]
	}
	return style.Width(cellWidth).Align(lipgloss.Right)
}

// renderBoard draws the grid with the top row first.
func renderBoard(board [][]int) string {
	var sb strings.Builder
	for row := len(board) - 1; row >= 0; row-- {
		cells := make([]string, len(board[row]))
		for col, v := range board[row] {
			text := "·"
			if v != 0 {
				text = fmt.Sprintf("%d", v)
			}
			cells[col] = tileStyle(v).Render(text)
		}
		sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, cells...))
		if row > 0 {
			sb.WriteString("\n\n")
		}
	}
	return boardStyle.Render(sb.String())
}

// renderHUD draws the title and score line.
func renderHUD(snap session.Snapshot) string {
	title := titleStyle.Render("2 0 4 8")
	score := fmt.Sprintf("Score: %d   Best: %d   Moves: %d", snap.Score, snap.Best, snap.Moves)
	return lipgloss.JoinVertical(lipgloss.Center, title, score)
}

// renderStatus describes how the game ended, or nothing while playing.
func renderStatus(snap session.Snapshot) string {
	switch snap.State {
	case session.StateWon:
		return statusStyle.Render("You made 2048!  Press R to play again")
	case session.StateGameOver:
		return statusStyle.Render("No moves left.  Press R to play again")
	}
	return ""
}

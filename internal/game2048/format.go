package game2048

import (
	"fmt"
	"strings"
)

// String renders the model for debugging: rows from top to bottom, each
// cell "|%4d" or blank, then a status line. The output is stable and
// used by tests and the tilt command. A finished game shows the max score
// GameOver would record, without updating MaxScore.
func (m *Model) String() string {
	var sb strings.Builder
	n := m.Size()
	sb.WriteString("\n[\n")
	for row := n - 1; row >= 0; row-- {
		for col := 0; col < n; col++ {
			if t, ok := m.Tile(col, row); ok {
				fmt.Fprintf(&sb, "|%4d", t.value)
			} else {
				sb.WriteString("|    ")
			}
		}
		sb.WriteString("|\n")
	}
	over := "not over"
	if checkGameOver(m.board) {
		over = "over"
	}
	fmt.Fprintf(&sb, "] %d (max: %d) (game is %s) \n", m.score, m.effectiveMaxScore(), over)
	return sb.String()
}

// Equal reports whether m and o hold the same tiles, score, max score and
// game-over status. Max scores are compared as GameOver would leave them,
// so the result does not depend on whether GameOver was called.
func (m *Model) Equal(o *Model) bool {
	if m == nil || o == nil {
		return m == o
	}
	if m.Size() != o.Size() || m.score != o.score || m.effectiveMaxScore() != o.effectiveMaxScore() {
		return false
	}
	for col := range m.board.cells {
		for row, v := range m.board.cells[col] {
			if o.board.cells[col][row] != v {
				return false
			}
		}
	}
	return checkGameOver(m.board) == checkGameOver(o.board)
}

// effectiveMaxScore is MaxScore as it stands once a finished game is latched.
func (m *Model) effectiveMaxScore() int {
	if checkGameOver(m.board) {
		return max(m.score, m.maxScore)
	}
	return m.maxScore
}

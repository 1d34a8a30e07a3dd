package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/session"
)

// Model is the Bubble Tea model for playing 2048.
// Play is turn based, so there is no tick loop: every key press is one move.
type Model struct {
	session  *session.Session
	keys     KeyMap
	help     help.Model
	width    int
	height   int
	quitting bool
}

// NewModel creates a new Bubble Tea model for the given session.
func NewModel(s *session.Session, cfg core.RuntimeConfig) Model {
	h := help.New()
	h.Width = cfg.ScreenW

	return Model{
		session: s,
		keys:    DefaultKeyMap(),
		help:    h,
		width:   cfg.ScreenW,
		height:  cfg.ScreenH,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)

	switch action {
	case core.ActionQuit:
		m.quitting = true
		return m, tea.Quit
	case core.ActionRestart:
		m.session.Reset()
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	default:
		if side, ok := SideFor(action); ok {
			m.session.Move(side)
		}
	}

	return m, nil
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	snap := m.session.Snapshot()

	parts := []string{
		renderHUD(snap),
		"",
		renderBoard(snap.Board),
	}
	if status := renderStatus(snap); status != "" {
		parts = append(parts, "", status)
	}
	parts = append(parts, "", helpStyle.Render(m.help.View(m.keys)))

	content := lipgloss.JoinVertical(lipgloss.Center, parts...)
	if m.width <= 0 || m.height <= 0 {
		return content
	}
	if lipgloss.Width(content) > m.width || strings.Count(content, "\n")+1 > m.height {
		return content
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// Run starts the Bubble Tea program for the given session.
func Run(s *session.Session, cfg core.RuntimeConfig) error {
	model := NewModel(s, cfg)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}

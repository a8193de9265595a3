package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

// NewProgram wraps the scrub model in a bubbletea program. Options are
// forwarded so callers can redirect input/output for headless runs.
func NewProgram(m Model, opts ...tea.ProgramOption) *tea.Program {
	return tea.NewProgram(m, opts...)
}

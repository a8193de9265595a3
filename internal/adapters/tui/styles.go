package tui

import (
	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/transit/internal/ui/style"
)

var (
	fetchingStyle = lipgloss.NewStyle().
			Foreground(style.Indigo)

	errorStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	helpStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Faint(true)

	waitingStyle = lipgloss.NewStyle().
			Foreground(style.Slate).
			Padding(1, 2)
)

// Package tui implements the interactive scrub view on top of bubbletea.
package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"go.trai.ch/transit/internal/core/domain"
)

// tickInterval is how often the view polls the scrub session for state
// that changes without a key press (debounced commits, prefetch results).
const tickInterval = 100 * time.Millisecond

// Session is the scrub engine surface the view drives. It is satisfied
// by *scrub.Controller.
type Session interface {
	Scrub(date time.Time) domain.Snapshot
	Step(n int) domain.Snapshot
	Display() (domain.Snapshot, bool)
	Target() time.Time
	Fetching() bool
	Err() string
}

type tickMsg time.Time

// Model holds the scrub TUI state. All snapshot state lives in the
// session; the model only tracks presentation concerns.
type Model struct {
	session Session
	now     func() time.Time

	markerStaleness time.Duration

	// disableTick suspends the polling loop so tests can drive the
	// model step by step.
	disableTick bool
}

// Option configures a Model.
type Option func(*Model)

// WithNow overrides the clock used by the "jump to today" key.
func WithNow(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithDisableTick turns off the polling loop for deterministic tests.
func WithDisableTick() Option {
	return func(m *Model) { m.disableTick = true }
}

// WithMarkerStaleness overrides the bound past which carried period
// markers are flagged as stale.
func WithMarkerStaleness(bound time.Duration) Option {
	return func(m *Model) { m.markerStaleness = bound }
}

// NewModel creates a scrub view over an already-bootstrapped session.
func NewModel(session Session, opts ...Option) Model {
	m := Model{
		session:         session,
		now:             time.Now,
		markerStaleness: domain.DefaultMarkerStaleness,
	}
	for _, opt := range opts {
		opt(&m)
	}
	return m
}

func tick() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the polling loop.
func (m Model) Init() tea.Cmd {
	if m.disableTick {
		return nil
	}
	return tick()
}

// Update handles key presses and the polling tick. Every scrub key
// resolves synchronously against the session, so the view updates on
// the same frame as the key press.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "left", "h":
			m.session.Step(-1)
		case "right", "l":
			m.session.Step(1)
		case "up", "k":
			m.session.Step(12)
		case "down", "j":
			m.session.Step(-12)
		case "t":
			m.session.Scrub(m.now())
		}

	case tickMsg:
		if m.disableTick {
			return m, nil
		}
		return m, tick()
	}

	return m, nil
}

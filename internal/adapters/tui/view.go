package tui

import (
	"strings"

	"go.trai.ch/transit/internal/core/domain"
	"go.trai.ch/transit/internal/ui/render"
)

const helpLine = "←/→ month  ↑/↓ year  t today  q quit"

// View renders the current display snapshot with a status line. The
// snapshot area never blanks while a fetch is in flight; fetching shows
// up only as an unobtrusive indicator next to the target.
func (m Model) View() string {
	snap, ok := m.session.Display()
	if !ok {
		out := waitingStyle.Render("contacting ephemeris service...") + "\n"
		if errMsg := m.session.Err(); errMsg != "" {
			out += errorStyle.Render("! "+errMsg) + "\n"
		}
		return out
	}

	var b strings.Builder
	b.WriteString(render.Snapshot(snap))
	b.WriteString("\n")
	b.WriteString(m.statusLine(snap))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(helpLine))
	b.WriteString("\n")
	return b.String()
}

func (m Model) statusLine(snap domain.Snapshot) string {
	var parts []string

	if target := m.session.Target(); !target.IsZero() {
		parts = append(parts, target.Format("2006-01"))
	}
	if m.session.Fetching() {
		parts = append(parts, fetchingStyle.Render("fetching..."))
	}
	if snap.MarkersStale(m.markerStaleness) {
		parts = append(parts, helpStyle.Render("markers outdated"))
	}
	if errMsg := m.session.Err(); errMsg != "" {
		parts = append(parts, errorStyle.Render("! "+errMsg))
	}

	return strings.Join(parts, "  ")
}

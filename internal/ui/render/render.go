// Package render turns snapshots into styled terminal text. It is shared
// by the one-shot show output and the interactive scrub view.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"go.trai.ch/transit/internal/core/domain"
	"go.trai.ch/transit/internal/ui/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(0, 1).
			Background(style.Indigo).
			Foreground(style.White)

	approxStyle = lipgloss.NewStyle().
			Foreground(style.Yellow)

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(style.Slate)

	bodyStyle = lipgloss.NewStyle().
			Foreground(style.Mist)

	retroStyle = lipgloss.NewStyle().
			Foreground(style.Red)

	mutedStyle = lipgloss.NewStyle().
			Foreground(style.Slate)
)

func signStyle(s domain.Sign) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(style.Elements[int(s)%4])
}

// Snapshot renders the full snapshot view: header, positions, aspects,
// period markers and upcoming events.
func Snapshot(snap domain.Snapshot) string {
	var b strings.Builder

	b.WriteString(header(snap))
	b.WriteString("\n\n")
	b.WriteString(positions(snap.Positions))

	if len(snap.Aspects) > 0 {
		b.WriteString("\n")
		b.WriteString(aspects(snap.Aspects))
	}

	b.WriteString("\n")
	b.WriteString(markers(snap))

	if len(snap.Events) > 0 {
		b.WriteString("\n")
		b.WriteString(events(snap.Events))
	}

	return b.String()
}

func header(snap domain.Snapshot) string {
	title := titleStyle.Render(snap.Date.Format("January 2006"))
	if snap.Approximate {
		return title + " " + approxStyle.Render(style.Tilde+" approximate")
	}
	return title
}

func positions(ps domain.PositionSet) string {
	var b strings.Builder
	for _, p := range ps.Positions {
		b.WriteString(fmt.Sprintf("%s %-8s %s %-12s %6.2f°",
			p.Body.Glyph(),
			bodyStyle.Render(titleCase(string(p.Body))),
			p.Sign.Glyph(),
			signStyle(p.Sign).Render(p.Sign.String()),
			p.Longitude,
		))
		if p.Retrograde {
			b.WriteString(" " + retroStyle.Render(style.Retrograde))
		}
		b.WriteString("\n")
	}
	return b.String()
}

func aspects(list []domain.Aspect) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Aspects") + "\n")
	for _, a := range list {
		b.WriteString(fmt.Sprintf("%s %s %s  %-11s orb %.1f°\n",
			a.A.Glyph(), aspectGlyph(a.Kind), a.B.Glyph(),
			string(a.Kind), a.Orb,
		))
	}
	return b.String()
}

func markers(snap domain.Snapshot) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Period") + "\n")
	b.WriteString(fmt.Sprintf("ruled by %s / %s",
		titleCase(string(snap.Markers.Primary)),
		titleCase(string(snap.Markers.Secondary)),
	))
	if !snap.MarkersAsOf.IsZero() && !snap.MarkersAsOf.Equal(snap.Date) {
		b.WriteString(mutedStyle.Render(
			fmt.Sprintf(" (as of %s)", snap.MarkersAsOf.Format("2006-01"))))
	}
	b.WriteString("\n")
	return b.String()
}

func events(list []domain.TransitEvent) string {
	var b strings.Builder
	b.WriteString(sectionStyle.Render("Events") + "\n")
	for _, ev := range list {
		b.WriteString(fmt.Sprintf("%s %-28s %s\n",
			ev.Body.Glyph(), ev.Label, formatRemaining(ev.Remaining)))
	}
	return b.String()
}

// formatRemaining renders a countdown in whole days, with past events
// marked as such instead of showing a negative count.
func formatRemaining(d time.Duration) string {
	days := int(d.Hours() / 24)
	if days < 0 {
		return mutedStyle.Render(fmt.Sprintf("%dd ago", -days))
	}
	return fmt.Sprintf("in %dd", days)
}

func aspectGlyph(kind domain.AspectKind) string {
	switch kind {
	case domain.Conjunction:
		return "☌"
	case domain.Sextile:
		return "⚹"
	case domain.Square:
		return "□"
	case domain.Trine:
		return "△"
	case domain.Opposition:
		return "☍"
	default:
		return "?"
	}
}

// titleCase uppercases the first byte of an ASCII body name.
func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

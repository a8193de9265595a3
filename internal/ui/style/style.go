// Package style provides shared UI styling primitives: the transit color
// palette, element colors for the zodiac and common icons.
package style

import "github.com/charmbracelet/lipgloss"

// Brand Colors.
var (
	Indigo = lipgloss.Color("#6366F1")
	Slate  = lipgloss.Color("#667085")
	White  = lipgloss.Color("#FFFFFF")
	Ink    = lipgloss.Color("#0B0F19")
	Mist   = lipgloss.Color("#F6F7FB")
	Gold   = lipgloss.Color("#D4A017")
	Green  = lipgloss.Color("#22A06B")
	Red    = lipgloss.Color("#D93025")
	Yellow = lipgloss.Color("#F59E0B")
)

// Element colors, indexed by sign ordinal modulo four: fire, earth, air,
// water.
var Elements = [4]lipgloss.Color{
	lipgloss.Color("#EF4444"),
	lipgloss.Color("#10B981"),
	lipgloss.Color("#60A5FA"),
	lipgloss.Color("#818CF8"),
}

// Icons.
const (
	Check      = "✓"
	Cross      = "✗"
	Warning    = "!"
	Tilde      = "~"
	Dot        = "●"
	Circle     = "○"
	Retrograde = "℞"
)

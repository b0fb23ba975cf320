// Package tui provides the interactive terminal search console.
// It uses the Charm Bubble Tea framework; lipgloss styles come in a light
// and a dark flavour selected by the persisted theme preference.
package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// palette is the set of colors a theme is built from.
type palette struct {
	primary   lipgloss.Color
	secondary lipgloss.Color
	accent    lipgloss.Color
	errorFg   lipgloss.Color
	fg        lipgloss.Color
	muted     lipgloss.Color
	border    lipgloss.Color
	selected  lipgloss.Color
	highlight lipgloss.Color
	link      lipgloss.Color
}

var darkPalette = palette{
	primary:   lipgloss.Color("#7C3AED"), // Violet
	secondary: lipgloss.Color("#10B981"), // Emerald
	accent:    lipgloss.Color("#F59E0B"), // Amber
	errorFg:   lipgloss.Color("#EF4444"), // Red
	fg:        lipgloss.Color("#CDD6F4"),
	muted:     lipgloss.Color("#6C7086"),
	border:    lipgloss.Color("#45475A"),
	selected:  lipgloss.Color("#313244"),
	highlight: lipgloss.Color("#45475A"),
	link:      lipgloss.Color("#89B4FA"),
}

var lightPalette = palette{
	primary:   lipgloss.Color("#4F46E5"), // Indigo
	secondary: lipgloss.Color("#047857"),
	accent:    lipgloss.Color("#B45309"),
	errorFg:   lipgloss.Color("#DC2626"),
	fg:        lipgloss.Color("#111827"),
	muted:     lipgloss.Color("#6B7280"),
	border:    lipgloss.Color("#D1D5DB"),
	selected:  lipgloss.Color("#E0E7FF"),
	highlight: lipgloss.Color("#E5E7EB"),
	link:      lipgloss.Color("#1D4ED8"),
}

// Styles holds every style the views render with.
type Styles struct {
	Dark bool

	Header       lipgloss.Style
	Button       lipgloss.Style
	Subtitle     lipgloss.Style
	Help         lipgloss.Style
	Box          lipgloss.Style
	Error        lipgloss.Style
	InputLabel   lipgloss.Style
	Progress     lipgloss.Style
	StatusBar    lipgloss.Style
	Cursor       lipgloss.Style
	Item         lipgloss.Style
	SelectedItem lipgloss.Style
	Option       lipgloss.Style
	ActiveOption lipgloss.Style
	Meta         lipgloss.Style
	Link         lipgloss.Style
	Danger       lipgloss.Style
}

// NewStyles builds the dark or light style set.
func NewStyles(dark bool) Styles {
	p := lightPalette
	if dark {
		p = darkPalette
	}

	return Styles{
		Dark: dark,

		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.primary).
			Padding(0, 2),

		Button: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.highlight).
			Padding(0, 1).
			MarginLeft(1),

		Subtitle: lipgloss.NewStyle().
			Foreground(p.muted).
			Italic(true),

		Help: lipgloss.NewStyle().
			Foreground(p.muted).
			MarginTop(1),

		Box: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(p.border).
			Padding(0, 1),

		Error: lipgloss.NewStyle().
			Foreground(p.errorFg).
			Bold(true),

		InputLabel: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true),

		Progress: lipgloss.NewStyle().
			Foreground(p.accent),

		StatusBar: lipgloss.NewStyle().
			Foreground(p.muted).
			Background(p.highlight).
			Padding(0, 1),

		Cursor: lipgloss.NewStyle().
			Foreground(p.accent).
			Bold(true),

		Item: lipgloss.NewStyle().
			Foreground(p.fg).
			PaddingLeft(2),

		SelectedItem: lipgloss.NewStyle().
			Foreground(p.secondary).
			Bold(true).
			Background(p.selected).
			PaddingLeft(1),

		Option: lipgloss.NewStyle().
			Foreground(p.muted).
			Padding(0, 1),

		ActiveOption: lipgloss.NewStyle().
			Foreground(p.fg).
			Background(p.selected).
			Bold(true).
			Padding(0, 1),

		Meta: lipgloss.NewStyle().
			Foreground(p.muted),

		Link: lipgloss.NewStyle().
			Foreground(p.link).
			Underline(true),

		Danger: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(p.errorFg).
			Padding(0, 1),
	}
}

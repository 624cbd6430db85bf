package styles

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha accents
var (
	Green    = lipgloss.Color("#a6e3a1")
	Red      = lipgloss.Color("#f38ba8")
	Mauve    = lipgloss.Color("#cba6f7")
	Subtext0 = lipgloss.Color("#a6adc8")
	Surface1 = lipgloss.Color("#45475a")
)

var (
	// Line state styles
	StateOnStyle = lipgloss.NewStyle().
			Foreground(Green).
			Bold(true)

	StateOffStyle = lipgloss.NewStyle().
			Foreground(Red).
			Bold(true)

	StateUnchangedStyle = lipgloss.NewStyle().
				Foreground(Subtext0)

	// Label for the "PTT (DTR) was:" prefix
	LabelStyle = lipgloss.NewStyle().
			Foreground(Mauve)

	// Table header
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Mauve).
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(Surface1).
			BorderBottom(true)
)

// StateStyle returns the style for a line that is on or off.
func StateStyle(on bool) lipgloss.Style {
	if on {
		return StateOnStyle
	}
	return StateOffStyle
}

// FormatState renders ON or OFF, styled when styled is true.
func FormatState(on bool, styled bool) string {
	s := "OFF"
	if on {
		s = "ON"
	}
	if !styled {
		return s
	}
	return StateStyle(on).Render(s)
}

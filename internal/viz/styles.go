package viz

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	canvasStyle = lipgloss.NewStyle().Padding(1, 2)
	statsStyle  = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, false, true).
			BorderForeground(lipgloss.Color("240")).
			Padding(1, 2).
			Width(46)
	headerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("86")).Bold(true).MarginBottom(1)
	labelStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("252"))
	activeParamStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("205")).Bold(true)
	graphStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("49")).Padding(1, 0)
	helpStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("240")).MarginTop(2)
	loggedStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))

	bandHigh = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff88"))
	bandFair = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ffcc00"))
	bandOff  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff4444"))
)

// BandStyle maps a quality band class key to its display style.
func BandStyle(class string) lipgloss.Style {
	switch class {
	case "high":
		return bandHigh
	case "fair":
		return bandFair
	default:
		return bandOff
	}
}

// Meter renders a strength bar colored by the band class.
func Meter(fraction float64, width int, class string) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(fraction * float64(width))
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
	return BandStyle(class).Render(bar)
}

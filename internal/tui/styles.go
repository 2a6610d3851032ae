package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/launchboard/internal/model"
)

// Palette. Overwritten by applySkin.
var (
	ColorNavy   lipgloss.Color
	ColorBlue   lipgloss.Color
	ColorGray   lipgloss.Color
	ColorWhite  lipgloss.Color
	ColorGreen  lipgloss.Color
	ColorRed    lipgloss.Color
	ColorOrange lipgloss.Color
	ColorYellow lipgloss.Color
)

var (
	sectionStyle       lipgloss.Style
	activeSectionStyle lipgloss.Style
	chartTitleStyle    lipgloss.Style
	helpStyle          lipgloss.Style
	headerStyle        lipgloss.Style
	tableHeaderStyle   lipgloss.Style
	selectedRowStyle   lipgloss.Style
	errorTitleStyle    lipgloss.Style
)

func init() {
	applySkin(builtinSkins[model.DefaultSkin])
}

// rebuildStyles derives every style from the current palette.
func rebuildStyles() {
	sectionStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorGray).
		Padding(0, 1)

	activeSectionStyle = sectionStyle.
		BorderForeground(ColorBlue)

	chartTitleStyle = lipgloss.NewStyle().
		Foreground(ColorBlue).
		Bold(true)

	helpStyle = lipgloss.NewStyle().
		Foreground(ColorGray)

	headerStyle = lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite).
		Bold(true).
		Padding(0, 1)

	tableHeaderStyle = lipgloss.NewStyle().
		Foreground(ColorGray).
		Bold(true)

	selectedRowStyle = lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite)

	errorTitleStyle = lipgloss.NewStyle().
		Foreground(ColorRed).
		Bold(true)
}

// statusColor is the badge color for a launch status.
func statusColor(s model.Status) lipgloss.Color {
	switch s {
	case model.StatusSuccess:
		return ColorGreen
	case model.StatusFailed:
		return ColorRed
	case model.StatusUpcoming:
		return ColorOrange
	default:
		return ColorGray
	}
}

func statusLabel(s model.Status) string {
	switch s {
	case model.StatusSuccess:
		return "Success"
	case model.StatusFailed:
		return "Failed"
	case model.StatusUpcoming:
		return "Upcoming"
	}
	return string(s)
}

func renderStatusBadge(s model.Status) string {
	return lipgloss.NewStyle().
		Foreground(statusColor(s)).
		Bold(true).
		Render(statusLabel(s))
}

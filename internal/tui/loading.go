package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/launchboard/internal/launchapi"
)

// renderLoading renders the spinner shown while the initial fetch runs.
func (m *DashboardModel) renderLoading(width, height int) string {
	loadingStyle := lipgloss.NewStyle().
		Foreground(ColorGray).
		Italic(true)

	text := m.spinner.View() + " " + loadingStyle.Render("Loading...")
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, text)
}

// renderErrorScreen replaces the whole view when a load fails. No partial
// data is shown.
func renderErrorScreen(message string, width, height int) string {
	if message == "" {
		message = launchapi.GenericErrorMessage
	}
	block := lipgloss.JoinVertical(lipgloss.Center,
		errorTitleStyle.Render("Error loading data"),
		lipgloss.NewStyle().Foreground(ColorWhite).Render(message),
		"",
		helpStyle.Render("r: reload • q: quit"),
	)
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, block)
}

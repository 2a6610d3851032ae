package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"
)

// renderHelpModalWithViewport renders the help modal using the provided viewport.
func (m *DashboardModel) renderHelpModalWithViewport(vp *viewport.Model, width, height int) string {
	status := modalStatusBar("up/down/Wheel: Scroll", "PgUp/PgDn: Page", "?/h: Toggle Help", "ESC: Close")
	return renderModalFrame(vp, "Help", m.renderHelpModalContent(), status, width, height)
}

// renderHelpModalContent returns the help text followed by the live key map.
func (m *DashboardModel) renderHelpModalContent() string {
	helpContent := `Launch Dashboard Help

BROWSING:
  up/down or k/j   - Move the row cursor
  Mouse Wheel      - Move the row cursor
  Mouse Click      - Select a row, click again for details
  Enter            - Show details for the selected launch
  left/right, p/n  - Previous / next page
  Home/End, g/G    - First / last page

FILTERING:
  / or s           - Search mission names (case-insensitive, live)
  Esc              - Clear the search
  f                - Cycle status: All, Success, Failed, Upcoming
  z                - Cycle page size: 10, 20, 50
  Changing search, status or page size returns to page 1.

OTHER:
  r                - Reload launches and stats
  ? or h           - Toggle this help
  q/Ctrl+C         - Quit

KEY MAP:
`
	keymap := m.help.FullHelpView(m.keys.FullHelp())

	return lipgloss.NewStyle().
		Width(72).
		Render(helpContent + keymap)
}

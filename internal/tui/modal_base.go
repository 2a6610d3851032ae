package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// renderModalFrame renders a centered scrollable modal around vp.
func renderModalFrame(vp *viewport.Model, title, content, status string, width, height int) string {
	modalWidth := width - 8   // 4 chars margin on each side
	modalHeight := height - 4 // 2 lines margin top and bottom

	contentWidth := modalWidth - 4   // Modal borders
	contentHeight := modalHeight - 4 // Header + status

	vp.Width = contentWidth - 2
	vp.Height = contentHeight
	vp.SetContent(lipgloss.NewStyle().Width(contentWidth - 2).Render(content))

	contentPane := lipgloss.NewStyle().
		Width(contentWidth).
		Height(contentHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(ColorGray).
		Render(vp.View())

	header := lipgloss.NewStyle().
		Width(contentWidth).
		Foreground(ColorBlue).
		Bold(true).
		Render(title)

	statusBar := lipgloss.NewStyle().
		Foreground(ColorGray).
		Render(status)

	modal := lipgloss.JoinVertical(lipgloss.Left, header, contentPane, statusBar)

	finalModal := lipgloss.NewStyle().
		Width(modalWidth).
		Height(modalHeight).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorBlue).
		Render(modal)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, finalModal)
}

// modalStatusBar joins status hints with the separator used across modals.
func modalStatusBar(items ...string) string {
	return strings.Join(items, " | ")
}

// scrollViewport applies the shared scroll keys and wheel handling. It
// reports whether msg was consumed.
func scrollViewport(vp *viewport.Model, ctx ModalContext, msg tea.Msg) (bool, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "up", "k":
			vp.ScrollUp(1)
			return true, nil
		case "down", "j":
			vp.ScrollDown(1)
			return true, nil
		case "pgup":
			vp.HalfPageUp()
			return true, nil
		case "pgdown":
			vp.HalfPageDown()
			return true, nil
		case "home", "g":
			vp.GotoTop()
			return true, nil
		case "end", "G":
			vp.GotoBottom()
			return true, nil
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress {
			return true, nil
		}
		up := msg.Button == tea.MouseButtonWheelUp
		down := msg.Button == tea.MouseButtonWheelDown
		if ctx.ReverseScrollWheel {
			up, down = down, up
		}
		switch {
		case up:
			vp.ScrollUp(1)
		case down:
			vp.ScrollDown(1)
		}
		return true, nil
	}
	return false, nil
}

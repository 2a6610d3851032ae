package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/launchboard/internal/board"
)

// searchInputHandler edits the mission search. Every keystroke re-filters.
type searchInputHandler struct{}

func (h searchInputHandler) HandleKey(m *DashboardModel, msg tea.KeyMsg) (bool, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return true, tea.Quit
	case "escape", "esc":
		m.searchActive = false
		m.searchInput.Blur()
		m.searchInput.SetValue("")
		m.dispatch(board.SearchChanged{Search: ""})
		return true, nil
	case "enter", "down", "tab":
		m.searchActive = false
		m.searchInput.Blur()
		return true, nil
	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		if value := m.searchInput.Value(); value != m.store.State().Search {
			m.dispatch(board.SearchChanged{Search: value})
		}
		return true, cmd
	}
}

func (h searchInputHandler) HandleMouse(_ *DashboardModel, _ tea.MouseMsg) (bool, tea.Cmd) {
	return true, nil // swallow mouse events during search input
}

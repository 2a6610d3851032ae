package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/launchboard/internal/board"
	"github.com/tinytelemetry/launchboard/internal/model"
)

// handleKeyPress dispatches key events: modal stack first, then the inline
// search handler, then global dashboard shortcuts.
func (m *DashboardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.ForceQuit) {
		return m, tea.Quit
	}

	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	for _, entry := range m.inlineHandlers {
		if entry.isActive(m) {
			handled, cmd := entry.handler.HandleKey(m, msg)
			if handled {
				return m, cmd
			}
			break
		}
	}

	return m.handleGlobalKeys(msg)
}

// handleGlobalKeys handles dashboard-level shortcuts.
// Only reached when no modal is on the stack and search is not being edited.
func (m *DashboardModel) handleGlobalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	k := m.keys
	state := m.store.State()

	switch {
	case key.Matches(msg, k.Quit):
		return m, tea.Quit

	case key.Matches(msg, k.Help):
		m.PushModal(NewHelpModal(m))
		return m, nil

	case key.Matches(msg, k.Reload):
		// Reload is a new session; the old one's results are dropped.
		return m, m.startLoad()
	}

	// Everything below edits the selection, which only exists once loaded.
	if state.Phase != board.PhaseReady {
		return m, nil
	}

	switch {
	case key.Matches(msg, k.Escape):
		if state.Search != "" {
			m.searchInput.SetValue("")
			m.dispatch(board.SearchChanged{Search: ""})
		}

	case key.Matches(msg, k.Search):
		m.searchActive = true
		m.searchInput.SetValue(state.Search)
		m.searchInput.CursorEnd()
		return m, m.searchInput.Focus()

	case key.Matches(msg, k.StatusFilter):
		m.dispatch(board.StatusFilterChanged{Status: state.Status.Next()})

	case key.Matches(msg, k.PageSize):
		m.dispatch(board.PageSizeChanged{Size: nextPageSize(state.PageSize)})

	case key.Matches(msg, k.NextPage):
		m.dispatch(board.NextPage{})

	case key.Matches(msg, k.PrevPage):
		m.dispatch(board.PrevPage{})

	case key.Matches(msg, k.FirstPage):
		m.dispatch(board.PageRequested{Page: 1})

	case key.Matches(msg, k.LastPage):
		m.dispatch(board.PageRequested{Page: m.store.CurrentPage().TotalPages})

	case key.Matches(msg, k.Up):
		m.moveCursor(-1)

	case key.Matches(msg, k.Down):
		m.moveCursor(1)

	case key.Matches(msg, k.Enter):
		return m, m.openDetail()
	}
	return m, nil
}

// nextPageSize cycles through model.PageSizes.
func nextPageSize(current int) int {
	for i, size := range model.PageSizes {
		if size == current {
			return model.PageSizes[(i+1)%len(model.PageSizes)]
		}
	}
	return model.DefaultPageSize
}

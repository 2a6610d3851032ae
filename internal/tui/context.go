package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/launchboard/internal/board"
)

// ModalContext provides read-only context to modals, replacing direct
// access to *DashboardModel.
type ModalContext struct {
	ReverseScrollWheel bool
}

// loadResultMsg carries the outcome of board.Load back into Update.
type loadResultMsg struct {
	event board.Event
}

// dispatchMsg lets modals feed the store without mutating the dashboard
// directly.
type dispatchMsg struct {
	event board.Event
}

func dispatchCmd(ev board.Event) tea.Cmd {
	return func() tea.Msg { return dispatchMsg{event: ev} }
}

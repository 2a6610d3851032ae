package tui

import tea "github.com/charmbracelet/bubbletea"

// Modal is a self-contained overlay that owns its own Update/View lifecycle.
// Modals are managed via a stack on DashboardModel; the topmost modal
// receives all input and renders full-screen.
type Modal interface {
	// ID returns a unique identifier used to deduplicate pushes.
	ID() string
	// Update processes a message. Return pop=true to close the modal.
	Update(msg tea.Msg) (pop bool, cmd tea.Cmd)
	// View renders the modal content for the given terminal dimensions.
	View(width, height int) string
}

// InlineHandler handles input for an inline editing mode. The search bar is
// part of the dashboard layout, so it is not a modal.
type InlineHandler interface {
	// HandleKey processes a key press. Return handled=true if consumed.
	HandleKey(m *DashboardModel, msg tea.KeyMsg) (handled bool, cmd tea.Cmd)
	// HandleMouse processes mouse events. Return handled=true if consumed.
	HandleMouse(m *DashboardModel, msg tea.MouseMsg) (handled bool, cmd tea.Cmd)
}

// inlineHandlerEntry pairs an activation predicate with an inline handler.
type inlineHandlerEntry struct {
	isActive func(m *DashboardModel) bool
	handler  InlineHandler
}

package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/tinytelemetry/launchboard/internal/board"
)

// Update handles messages
func (m *DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		return m.handleMouseEvent(msg)

	case loadResultMsg:
		m.applyLoadResult(msg.event)
		return m, nil

	case dispatchMsg:
		m.dispatch(msg.event)
		return m, nil

	case spinner.TickMsg:
		// Stop ticking once the load has settled.
		if m.store.State().Phase != board.PhaseLoading {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *DashboardModel) applyLoadResult(ev board.Event) {
	before := m.store.State()
	after := m.store.Dispatch(ev)
	if after.Phase == before.Phase {
		m.log.Debug("dropped stale load result", zap.Uint64("generation", m.store.Generation()))
		return
	}

	elapsed := zap.Duration("elapsed", time.Since(m.loadStarted))
	switch after.Phase {
	case board.PhaseReady:
		m.log.Info("launches loaded",
			zap.Int("launches", len(after.Launches)),
			zap.Int("total", after.Stats.Total),
			elapsed)
	case board.PhaseError:
		if failed, ok := ev.(board.LoadFailed); ok {
			m.log.Error("loading launches failed", zap.Error(failed.Err), elapsed)
		}
	}
	m.cursor = 0
	m.clampCursor()
}

// handleMouseEvent processes mouse interactions
func (m *DashboardModel) handleMouseEvent(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	// Modal on stack gets the mouse event first.
	if modal := m.TopModal(); modal != nil {
		pop, cmd := modal.Update(msg)
		if pop {
			m.PopModal()
		}
		return m, cmd
	}

	for _, entry := range m.inlineHandlers {
		if entry.isActive(m) {
			handled, cmd := entry.handler.HandleMouse(m, msg)
			if handled {
				return m, cmd
			}
			break
		}
	}

	if m.store.State().Phase != board.PhaseReady || msg.Action != tea.MouseActionPress {
		return m, nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		if idx, ok := m.rowAtMouse(msg.Y); ok {
			if idx == m.cursor {
				return m, m.openDetail()
			}
			m.cursor = idx
		}
	case tea.MouseButtonWheelUp:
		if m.reverseScrollWheel {
			m.moveCursor(1)
		} else {
			m.moveCursor(-1)
		}
	case tea.MouseButtonWheelDown:
		if m.reverseScrollWheel {
			m.moveCursor(-1)
		} else {
			m.moveCursor(1)
		}
	}
	return m, nil
}

func (m *DashboardModel) moveCursor(delta int) {
	m.cursor += delta
	m.clampCursor()
}

// openDetail selects the launch under the cursor and shows its detail modal.
func (m *DashboardModel) openDetail() tea.Cmd {
	row, ok := m.selectedRow()
	if !ok {
		return nil
	}
	m.dispatch(board.DetailSelected{ID: row.ID})
	if launch, ok := m.store.Selected(); ok {
		m.PushModal(NewLaunchModal(m.modalContext(), launch))
	}
	return nil
}

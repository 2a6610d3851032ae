package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// HelpModal displays the key bindings.
type HelpModal struct {
	ctx        ModalContext
	viewport   viewport.Model
	renderView func(vp *viewport.Model, width, height int) string
}

func NewHelpModal(m *DashboardModel) *HelpModal {
	return &HelpModal{
		ctx:      m.modalContext(),
		viewport: viewport.New(80, 20),
		renderView: func(vp *viewport.Model, width, height int) string {
			return m.renderHelpModalWithViewport(vp, width, height)
		},
	}
}

func (h *HelpModal) ID() string { return "help" }

func (h *HelpModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "?", "h", "escape", "esc", "q":
			return true, nil
		}
	}
	if handled, cmd := scrollViewport(&h.viewport, h.ctx, msg); handled {
		return false, cmd
	}
	var cmd tea.Cmd
	h.viewport, cmd = h.viewport.Update(msg)
	return false, cmd
}

func (h *HelpModal) View(width, height int) string {
	return h.renderView(&h.viewport, width, height)
}

package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tinytelemetry/launchboard/internal/board"
	"github.com/tinytelemetry/launchboard/internal/model"
)

// LaunchModal shows the detail view of one launch.
type LaunchModal struct {
	ctx      ModalContext
	viewport viewport.Model
	launch   model.Launch
}

func NewLaunchModal(ctx ModalContext, launch model.Launch) *LaunchModal {
	return &LaunchModal{
		ctx:      ctx,
		viewport: viewport.New(80, 20),
		launch:   launch,
	}
}

func (l *LaunchModal) ID() string { return "launch" }

// Launch returns the launch being shown.
func (l *LaunchModal) Launch() model.Launch { return l.launch }

func (l *LaunchModal) Update(msg tea.Msg) (bool, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.String() {
		case "escape", "esc", "q", "enter":
			return true, dispatchCmd(board.DetailClosed{})
		}
	}
	if handled, cmd := scrollViewport(&l.viewport, l.ctx, msg); handled {
		return false, cmd
	}
	var cmd tea.Cmd
	l.viewport, cmd = l.viewport.Update(msg)
	return false, cmd
}

func (l *LaunchModal) View(width, height int) string {
	return renderLaunchModalView(&l.viewport, l.launch, width, height)
}

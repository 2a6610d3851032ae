package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/launchboard/internal/board"
	"github.com/tinytelemetry/launchboard/internal/model"
)

const (
	rocketColWidth = 26
	dateColWidth   = 14
	statusColWidth = 10
	colGap         = 2
)

// tableColumns returns the mission column width for the given total width;
// the rocket column is dropped on narrow terminals.
func tableColumns(width int) (mission, rocket int) {
	inner := width - 2 // padding
	rocket = rocketColWidth
	mission = inner - rocket - dateColWidth - statusColWidth - 3*colGap
	if mission < 16 {
		rocket = 0
		mission = inner - dateColWidth - statusColWidth - 2*colGap
	}
	return mission, rocket
}

// renderTable renders the header plus exactly rows lines of the page.
func (m *DashboardModel) renderTable(page board.Page, width, rows int) string {
	missionW, rocketW := tableColumns(width)
	gap := strings.Repeat(" ", colGap)

	cols := []string{padRight("MISSION", missionW)}
	if rocketW > 0 {
		cols = append(cols, padRight("ROCKET", rocketW))
	}
	cols = append(cols, padRight("DATE", dateColWidth), "STATUS")
	lines := []string{" " + tableHeaderStyle.Render(strings.Join(cols, gap))}

	offset := m.rowOffset(rows)
	for i := offset; i < len(page.Records) && i < offset+rows; i++ {
		lines = append(lines, m.renderRow(page.Records[i], i == m.cursor, missionW, rocketW))
	}
	for len(lines) < rows+1 {
		lines = append(lines, "")
	}

	return lipgloss.NewStyle().
		Width(width).
		Render(strings.Join(lines, "\n"))
}

func (m *DashboardModel) renderRow(l model.Launch, selected bool, missionW, rocketW int) string {
	gap := strings.Repeat(" ", colGap)

	cols := []string{padRight(truncate(l.MissionName, missionW), missionW)}
	if rocketW > 0 {
		cols = append(cols, padRight(truncate(l.RocketID, rocketW), rocketW))
	}
	cols = append(cols, padRight(truncate(l.ShortDate(), dateColWidth), dateColWidth))

	if selected {
		cols = append(cols, padRight(statusLabel(l.Status), statusColWidth))
		return " " + selectedRowStyle.Render(strings.Join(cols, gap))
	}
	cols = append(cols, renderStatusBadge(l.Status))
	return " " + strings.Join(cols, gap)
}

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/launchboard/internal/board"
)

const (
	minWidth  = 60
	minHeight = 16
)

// dashboardLayout is the vertical split of the Ready view. View and mouse
// handling share it so clicks land on the rendered rows.
type dashboardLayout struct {
	statsHeight int // including border
	chartHeight int // 0 hides the year chart
	tableTop    int // screen row of the first table row
	tableRows   int
}

func (m *DashboardModel) layout() dashboardLayout {
	var l dashboardLayout
	switch {
	case m.height >= 34:
		l.chartHeight = 8
	case m.height >= 26:
		l.chartHeight = 5
	}

	l.statsHeight = 2 + 1
	if l.chartHeight > 0 {
		l.statsHeight += 2 + l.chartHeight
	}

	const headerLines = 1
	const filterLines = 1
	const tableHeaderLines = 1
	const footerLines = 2 // pagination + status line

	l.tableTop = headerLines + l.statsHeight + filterLines + tableHeaderLines
	l.tableRows = m.height - l.tableTop - footerLines
	if l.tableRows < 1 {
		l.tableRows = 1
	}
	return l
}

// rowOffset is the first page row shown when the page is taller than the
// table area.
func (m *DashboardModel) rowOffset(visible int) int {
	if m.cursor < visible {
		return 0
	}
	return m.cursor - visible + 1
}

// rowAtMouse maps a screen row to a cursor index on the current page.
func (m *DashboardModel) rowAtMouse(y int) (int, bool) {
	l := m.layout()
	rel := y - l.tableTop
	if rel < 0 || rel >= l.tableRows {
		return 0, false
	}
	idx := m.rowOffset(l.tableRows) + rel
	if idx >= len(m.store.CurrentPage().Records) {
		return 0, false
	}
	return idx, true
}

// View renders the dashboard
func (m *DashboardModel) View() string {
	if m.width <= 0 || m.height <= 0 {
		return "Initializing dashboard..."
	}
	if m.width < minWidth || m.height < minHeight {
		return "Terminal too small. Resize to at least 60x16."
	}

	if modal := m.TopModal(); modal != nil {
		return modal.View(m.width, m.height)
	}

	header := m.renderHeader()
	statusLine := m.renderStatusLine()
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(statusLine)

	var body string
	state := m.store.State()
	switch state.Phase {
	case board.PhaseLoading:
		body = m.renderLoading(m.width, bodyHeight)
	case board.PhaseError:
		body = renderErrorScreen(state.Err, m.width, bodyHeight)
	default:
		body = m.renderReady(bodyHeight)
	}

	return lipgloss.JoinVertical(lipgloss.Left, header, body, statusLine)
}

func (m *DashboardModel) renderReady(height int) string {
	l := m.layout()
	state := m.store.State()
	page := m.store.CurrentPage()

	sections := []string{
		m.renderStatsCard(state.Stats, m.width, l.chartHeight),
		m.renderFilterBar(state),
	}

	if page.TotalRecords == 0 {
		empty := lipgloss.Place(m.width, height-l.statsHeight-1, lipgloss.Center, lipgloss.Center,
			helpStyle.Render("No launches found"))
		sections = append(sections, empty)
	} else {
		sections = append(sections,
			m.renderTable(page, m.width, l.tableRows),
			m.renderPagination(page),
		)
	}

	return lipgloss.NewStyle().
		MaxHeight(height).
		Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/launchboard/internal/board"
	"github.com/tinytelemetry/launchboard/internal/model"
)

const dashboardTitle = "SpaceX Launches"

// renderHeader renders the title bar with the API host on the right.
func (m *DashboardModel) renderHeader() string {
	left := dashboardTitle
	right := m.apiBaseURL

	space := m.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if space < 1 {
		right = ""
		space = max(1, m.width-lipgloss.Width(left)-2)
	}
	return headerStyle.Width(m.width).Render(left + strings.Repeat(" ", space) + right)
}

// renderStatusLine renders the key hints at the bottom of the screen.
func (m *DashboardModel) renderStatusLine() string {
	baseStyle := lipgloss.NewStyle().
		Background(ColorNavy).
		Foreground(ColorWhite)

	w := m.width
	narrow := w < 80

	var text string
	switch {
	case m.searchActive:
		if narrow {
			text = "Enter: Done • ESC: Clear"
		} else {
			text = "Type to filter missions • Enter: Done • ESC: Clear search"
		}
	case m.HasModal():
		text = "ESC: Close"
	default:
		switch m.store.State().Phase {
		case board.PhaseLoading:
			text = "q: Quit"
		case board.PhaseError:
			text = "r: Reload • q: Quit"
		default:
			m.help.Width = w
			text = m.help.ShortHelpView(m.keys.ShortHelp())
		}
	}

	return baseStyle.Width(w).MaxHeight(1).Render(" " + text)
}

// renderFilterBar shows search text, status filter and page size.
func (m *DashboardModel) renderFilterBar(state board.State) string {
	var search string
	switch {
	case m.searchActive:
		search = lipgloss.NewStyle().Foreground(ColorYellow).Render("🔎 ") + m.searchInput.View()
	case state.Search != "":
		search = lipgloss.NewStyle().Foreground(ColorYellow).Render(fmt.Sprintf("🔎 [%s]", state.Search))
	default:
		search = helpStyle.Render("🔎 / to search missions")
	}

	var filters []string
	for _, f := range board.StatusFilters {
		label := filterLabel(f)
		if f == state.Status {
			filters = append(filters, lipgloss.NewStyle().Foreground(ColorBlue).Bold(true).Render("["+label+"]"))
		} else {
			filters = append(filters, helpStyle.Render(" "+label+" "))
		}
	}

	size := helpStyle.Render(fmt.Sprintf("%d per page", state.PageSize))
	right := strings.Join(filters, "") + "  " + size

	space := m.width - lipgloss.Width(search) - lipgloss.Width(right) - 2
	if space < 1 {
		space = 1
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		MaxWidth(m.width).
		MaxHeight(1).
		Render(search + strings.Repeat(" ", space) + right)
}

func filterLabel(f board.StatusFilter) string {
	if f == board.FilterAll {
		return "All Status"
	}
	return statusLabel(model.Status(f))
}

// renderPagination renders "Page X of Y" with the navigation hints. Previous
// is disabled on the first page and Next on the last.
func (m *DashboardModel) renderPagination(page board.Page) string {
	enabled := lipgloss.NewStyle().Foreground(ColorBlue)
	disabled := lipgloss.NewStyle().Foreground(ColorGray).Faint(true)

	prev := disabled.Render("‹ Previous")
	if page.HasPrev() {
		prev = enabled.Render("‹ Previous")
	}
	next := disabled.Render("Next ›")
	if page.HasNext() {
		next = enabled.Render("Next ›")
	}

	label := fmt.Sprintf("Page %d of %d", page.Number, page.TotalPages)
	count := helpStyle.Render(fmt.Sprintf("%d launches", page.TotalRecords))

	line := prev + "   " + label + "   " + next
	space := m.width - lipgloss.Width(line) - lipgloss.Width(count) - 2
	if space < 1 {
		space = 1
	}
	return lipgloss.NewStyle().
		Padding(0, 1).
		MaxWidth(m.width).
		Render(line + strings.Repeat(" ", space) + count)
}

// truncate shortens s to width cells, marking the cut with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// padRight pads s with spaces to width cells.
func padRight(s string, width int) string {
	if gap := width - lipgloss.Width(s); gap > 0 {
		return s + strings.Repeat(" ", gap)
	}
	return s
}

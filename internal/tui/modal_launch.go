package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/launchboard/internal/model"
)

// renderLaunchModalView renders the launch detail modal.
func renderLaunchModalView(vp *viewport.Model, l model.Launch, width, height int) string {
	status := modalStatusBar("up/down/Wheel: Scroll", "PgUp/PgDn: Page", "ESC: Close")
	return renderModalFrame(vp, l.MissionName, formatLaunchDetails(l), status, width, height)
}

// formatLaunchDetails lays out every field of a launch. Absent optional
// fields are omitted rather than shown empty.
func formatLaunchDetails(l model.Launch) string {
	label := lipgloss.NewStyle().Foreground(ColorGray).Bold(true)
	field := func(name, value string) string {
		return label.Render(name) + "\n" + value + "\n"
	}

	var sections []string
	sections = append(sections,
		field("Rocket", l.RocketID),
		field("Launch Date", l.LongDate()),
		field("Status", renderStatusBadge(l.Status)),
	)
	if l.LaunchpadID != nil && *l.LaunchpadID != "" {
		sections = append(sections, field("Launchpad", *l.LaunchpadID))
	}
	if l.Details != nil && *l.Details != "" {
		sections = append(sections, field("Details", *l.Details))
	}

	if links := l.Links(); len(links) > 0 {
		linkStyle := lipgloss.NewStyle().Foreground(ColorBlue).Underline(true)
		var lines []string
		for _, link := range links {
			lines = append(lines, fmt.Sprintf("%-10s %s", link.Label, linkStyle.Render(link.URL)))
		}
		sections = append(sections, field("Links", strings.Join(lines, "\n")))
	}

	sections = append(sections, helpStyle.Render("ID "+l.ID))
	return strings.Join(sections, "\n")
}

package tui

import (
	"fmt"
	"strings"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/charmbracelet/lipgloss"

	"github.com/tinytelemetry/launchboard/internal/model"
)

// renderStatsCard renders the summary counts and, when chartHeight > 0, the
// launches-by-year bar chart. Counts are shown as served; missing statuses
// count as zero.
func (m *DashboardModel) renderStatsCard(stats model.Stats, width, chartHeight int) string {
	innerWidth := width - 4 // border + padding

	counts := []struct {
		label string
		value int
		color lipgloss.Color
	}{
		{"Total", stats.Total, ColorWhite},
		{"Successful", stats.Count(model.StatusSuccess), ColorGreen},
		{"Failed", stats.Count(model.StatusFailed), ColorRed},
		{"Upcoming", stats.Count(model.StatusUpcoming), ColorOrange},
	}
	cells := make([]string, 0, len(counts))
	for _, c := range counts {
		label := helpStyle.Render(c.label + ": ")
		value := lipgloss.NewStyle().Foreground(c.color).Bold(true).Render(fmt.Sprintf("%d", c.value))
		cells = append(cells, label+value)
	}
	lines := []string{strings.Join(cells, "    ")}

	if chartHeight > 0 {
		lines = append(lines, chartTitleStyle.Render("Launches by Year"))
		lines = append(lines, renderYearChart(stats.Years(), innerWidth, chartHeight)...)
	}

	return sectionStyle.
		Width(width - 2).
		Render(strings.Join(lines, "\n"))
}

// renderYearChart draws one bar per year plus a label line with the first
// and last year. It always returns chartHeight+1 lines.
func renderYearChart(years []model.YearCount, width, chartHeight int) []string {
	if len(years) == 0 {
		lines := make([]string, chartHeight+1)
		lines[chartHeight/2] = helpStyle.Render("No data available")
		return lines
	}

	maxBars := max(1, width/2)
	if len(years) > maxBars {
		years = years[len(years)-maxBars:]
	}

	barStyle := lipgloss.NewStyle().Foreground(ColorBlue).Background(ColorBlue)
	bc := barchart.New(width, chartHeight,
		barchart.WithBarGap(1),
		barchart.WithBarWidth(1),
		barchart.WithNoAxis(),
	)
	for _, y := range years {
		bc.Push(barchart.BarData{
			Label: y.Year,
			Values: []barchart.BarValue{
				{Name: y.Year, Value: float64(y.Count), Style: barStyle},
			},
		})
	}
	bc.Draw()

	chartLines := strings.Split(bc.View(), "\n")
	for len(chartLines) < chartHeight {
		chartLines = append(chartLines, "")
	}
	chartLines = chartLines[:chartHeight]

	first, last := years[0], years[len(years)-1]
	peak := first
	for _, y := range years {
		if y.Count > peak.Count {
			peak = y
		}
	}
	legend := fmt.Sprintf("%s … %s  peak %s (%d)", first.Year, last.Year, peak.Year, peak.Count)
	if len(years) == 1 {
		legend = fmt.Sprintf("%s (%d)", first.Year, first.Count)
	}
	return append(chartLines, helpStyle.Render(truncate(legend, width)))
}

// Package board is the data view pipeline shared by the terminal dashboard and
// the web view: filtering, pagination, the selection state machine and the
// parallel initial load.
package board

import (
	"strings"

	"github.com/tinytelemetry/launchboard/internal/model"
)

// StatusFilter is either FilterAll or one of the launch statuses.
type StatusFilter string

// FilterAll keeps launches of every status.
const FilterAll StatusFilter = "all"

// StatusFilters lists the selectable filters in cycling order.
var StatusFilters = []StatusFilter{
	FilterAll,
	StatusFilter(model.StatusSuccess),
	StatusFilter(model.StatusFailed),
	StatusFilter(model.StatusUpcoming),
}

// Valid reports whether f is FilterAll or a known status.
func (f StatusFilter) Valid() bool {
	return f == FilterAll || model.Status(f).Valid()
}

// ParseStatusFilter maps user input to a filter. Empty input means FilterAll.
func ParseStatusFilter(raw string) (StatusFilter, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return FilterAll, true
	}
	f := StatusFilter(raw)
	return f, f.Valid()
}

// Next returns the filter after f in StatusFilters, wrapping around.
func (f StatusFilter) Next() StatusFilter {
	for i, sf := range StatusFilters {
		if sf == f {
			return StatusFilters[(i+1)%len(StatusFilters)]
		}
	}
	return FilterAll
}

// Filter returns the launches matching status and whose mission name contains
// search, ignoring case. Input order is preserved and records is not modified.
func Filter(records []model.Launch, status StatusFilter, search string) []model.Launch {
	needle := strings.ToLower(search)
	out := make([]model.Launch, 0, len(records))
	for _, l := range records {
		if status != FilterAll && StatusFilter(l.Status) != status {
			continue
		}
		if needle != "" && !strings.Contains(strings.ToLower(l.MissionName), needle) {
			continue
		}
		out = append(out, l)
	}
	return out
}

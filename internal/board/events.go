package board

import "github.com/tinytelemetry/launchboard/internal/model"

// Event is an input to Reduce.
type Event interface {
	isEvent()
}

// LoadSucceeded carries the result of a successful Load.
type LoadSucceeded struct {
	Generation uint64
	Launches   []model.Launch
	Stats      model.Stats
}

// LoadFailed carries the first failure of a Load.
type LoadFailed struct {
	Generation uint64
	Err        error
}

// StatusFilterChanged selects a new status filter.
type StatusFilterChanged struct{ Status StatusFilter }

// SearchChanged replaces the search text.
type SearchChanged struct{ Search string }

// PageSizeChanged selects a new page size.
type PageSizeChanged struct{ Size int }

// PageRequested jumps to a page.
type PageRequested struct{ Page int }

// NextPage moves one page forward.
type NextPage struct{}

// PrevPage moves one page back.
type PrevPage struct{}

// DetailSelected opens the detail view for a launch.
type DetailSelected struct{ ID string }

// DetailClosed closes the detail view.
type DetailClosed struct{}

func (LoadSucceeded) isEvent()       {}
func (LoadFailed) isEvent()          {}
func (StatusFilterChanged) isEvent() {}
func (SearchChanged) isEvent()       {}
func (PageSizeChanged) isEvent()     {}
func (PageRequested) isEvent()       {}
func (NextPage) isEvent()            {}
func (PrevPage) isEvent()            {}
func (DetailSelected) isEvent()      {}
func (DetailClosed) isEvent()        {}

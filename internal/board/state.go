package board

import (
	"github.com/tinytelemetry/launchboard/internal/launchapi"
	"github.com/tinytelemetry/launchboard/internal/model"
)

// Phase is the lifecycle of one load session.
type Phase int

const (
	PhaseLoading Phase = iota
	PhaseError
	PhaseReady
)

func (p Phase) String() string {
	switch p {
	case PhaseLoading:
		return "loading"
	case PhaseError:
		return "error"
	case PhaseReady:
		return "ready"
	}
	return "unknown"
}

// State is everything the view renders from. It is a value; Reduce returns
// a new one and never mutates the launches it holds.
type State struct {
	Phase      Phase
	Generation uint64 // load session this state belongs to
	Err        string // user-facing message, set in PhaseError

	Launches []model.Launch
	Stats    model.Stats

	Status     StatusFilter
	Search     string
	Page       int
	PageSize   int
	SelectedID string // empty when no detail is open
}

// NewState returns the Loading state of session gen. An invalid pageSize
// falls back to model.DefaultPageSize.
func NewState(gen uint64, pageSize int) State {
	if !model.ValidPageSize(pageSize) {
		pageSize = model.DefaultPageSize
	}
	return State{
		Phase:      PhaseLoading,
		Generation: gen,
		Status:     FilterAll,
		Page:       1,
		PageSize:   pageSize,
	}
}

// Reduce applies ev to s. Events that do not apply in the current phase, or
// that carry invalid values, leave s unchanged.
func Reduce(s State, ev Event) State {
	return reduce(s, ev, func(st State) int {
		return len(Filter(st.Launches, st.Status, st.Search))
	})
}

// reduce takes the filtered count as a function so the Store can answer it
// from its memo.
func reduce(s State, ev Event, filteredLen func(State) int) State {
	switch ev := ev.(type) {
	case LoadSucceeded:
		if s.Phase != PhaseLoading || ev.Generation != s.Generation {
			return s
		}
		s.Phase = PhaseReady
		s.Launches = ev.Launches
		s.Stats = ev.Stats
		s.Page = 1
		return s

	case LoadFailed:
		if s.Phase != PhaseLoading || ev.Generation != s.Generation {
			return s
		}
		s.Phase = PhaseError
		s.Err = launchapi.UserMessage(ev.Err)
		if s.Err == "" {
			s.Err = launchapi.GenericErrorMessage
		}
		return s
	}

	if s.Phase != PhaseReady {
		return s
	}

	switch ev := ev.(type) {
	case StatusFilterChanged:
		if !ev.Status.Valid() {
			return s
		}
		s.Status = ev.Status
		s.Page = 1

	case SearchChanged:
		s.Search = ev.Search
		s.Page = 1

	case PageSizeChanged:
		if !model.ValidPageSize(ev.Size) {
			return s
		}
		s.PageSize = ev.Size
		s.Page = 1

	case PageRequested:
		return gotoPage(s, ev.Page, filteredLen)

	case NextPage:
		return gotoPage(s, s.Page+1, filteredLen)

	case PrevPage:
		return gotoPage(s, s.Page-1, filteredLen)

	case DetailSelected:
		for _, l := range s.Launches {
			if l.ID == ev.ID {
				s.SelectedID = ev.ID
				break
			}
		}

	case DetailClosed:
		s.SelectedID = ""
	}
	return s
}

func gotoPage(s State, page int, filteredLen func(State) int) State {
	if page < 1 || page > TotalPages(filteredLen(s), s.PageSize) {
		return s
	}
	s.Page = page
	return s
}

// Selected returns the launch shown in the detail view, if any.
func (s State) Selected() (model.Launch, bool) {
	if s.SelectedID == "" {
		return model.Launch{}, false
	}
	for _, l := range s.Launches {
		if l.ID == s.SelectedID {
			return l, true
		}
	}
	return model.Launch{}, false
}

package board

import (
	"github.com/tinytelemetry/launchboard/internal/model"
)

type filterKey struct {
	generation uint64
	phase      Phase
	status     StatusFilter
	search     string
}

type pageKey struct {
	filter filterKey
	page   int
	size   int
}

// Store owns the State of one view and memoizes its derived collections.
// It is not safe for concurrent use; callers drive it from a single loop.
type Store struct {
	state    State
	gen      uint64
	pageSize int

	filteredValid bool
	filteredKey   filterKey
	filtered      []model.Launch

	pageValid bool
	pageKey   pageKey
	page      Page

	// filterRuns counts Filter evaluations, for tests.
	filterRuns int
}

// NewStore creates a store whose sessions start with pageSize rows per page.
func NewStore(pageSize int) *Store {
	s := &Store{pageSize: pageSize}
	s.state = NewState(0, pageSize)
	return s
}

// Begin starts a new load session and returns its generation. Loads of
// earlier sessions are ignored from now on.
func (s *Store) Begin() uint64 {
	s.gen++
	pageSize := s.state.PageSize
	if pageSize == 0 {
		pageSize = s.pageSize
	}
	s.state = NewState(s.gen, pageSize)
	s.invalidate()
	return s.gen
}

// Close retires the current session. Results still in flight are dropped.
func (s *Store) Close() {
	s.gen++
}

// Generation is the generation of the live session.
func (s *Store) Generation() uint64 { return s.gen }

// State returns a copy of the current state.
func (s *Store) State() State { return s.state }

// Dispatch applies ev and returns the new state.
func (s *Store) Dispatch(ev Event) State {
	switch ev := ev.(type) {
	case LoadSucceeded:
		if ev.Generation != s.gen {
			return s.state
		}
	case LoadFailed:
		if ev.Generation != s.gen {
			return s.state
		}
	}
	s.state = reduce(s.state, ev, func(st State) int {
		return len(s.filteredFor(st))
	})
	return s.state
}

// Filtered returns the launches matching the current filter and search.
// The slice is shared with the memo and must not be modified.
func (s *Store) Filtered() []model.Launch {
	return s.filteredFor(s.state)
}

// CurrentPage returns the visible page of the filtered collection.
func (s *Store) CurrentPage() Page {
	filtered := s.filteredFor(s.state)
	key := pageKey{filter: s.filteredKey, page: s.state.Page, size: s.state.PageSize}
	if s.pageValid && s.pageKey == key {
		return s.page
	}
	s.page = Paginate(filtered, s.state.Page, s.state.PageSize)
	s.pageKey = key
	s.pageValid = true
	return s.page
}

// Selected returns the launch in the detail view, if any.
func (s *Store) Selected() (model.Launch, bool) {
	return s.state.Selected()
}

func (s *Store) filteredFor(st State) []model.Launch {
	key := filterKey{generation: st.Generation, phase: st.Phase, status: st.Status, search: st.Search}
	if s.filteredValid && s.filteredKey == key {
		return s.filtered
	}
	s.filterRuns++
	s.filtered = Filter(st.Launches, st.Status, st.Search)
	s.filteredKey = key
	s.filteredValid = true
	return s.filtered
}

func (s *Store) invalidate() {
	s.filteredValid = false
	s.filtered = nil
	s.pageValid = false
	s.page = Page{}
}

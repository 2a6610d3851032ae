package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/launchboard/internal/launchapi"
	"github.com/tinytelemetry/launchboard/internal/model"
)

func readyState(t *testing.T, records []model.Launch) State {
	t.Helper()
	s := Reduce(NewState(1, 10), LoadSucceeded{Generation: 1, Launches: records})
	require.Equal(t, PhaseReady, s.Phase)
	return s
}

func TestNewState(t *testing.T) {
	s := NewState(3, 20)
	assert.Equal(t, PhaseLoading, s.Phase)
	assert.Equal(t, uint64(3), s.Generation)
	assert.Equal(t, FilterAll, s.Status)
	assert.Equal(t, 1, s.Page)
	assert.Equal(t, 20, s.PageSize)

	assert.Equal(t, model.DefaultPageSize, NewState(1, 15).PageSize)
}

func TestReduce_LoadTransitions(t *testing.T) {
	stats := model.Stats{Total: 2}

	s := Reduce(NewState(1, 10), LoadSucceeded{Generation: 1, Launches: mixedLaunches(2, 1), Stats: stats})
	assert.Equal(t, PhaseReady, s.Phase)
	assert.Equal(t, stats, s.Stats)

	again := Reduce(s, LoadFailed{Generation: 1, Err: errors.New("late")})
	assert.Equal(t, PhaseReady, again.Phase, "only Loading accepts load results")

	failed := Reduce(NewState(1, 10), LoadFailed{Generation: 1, Err: &launchapi.FetchError{Message: "Failed to fetch launches", StatusCode: 500}})
	assert.Equal(t, PhaseError, failed.Phase)
	assert.Equal(t, "Failed to fetch launches", failed.Err)
	assert.Empty(t, failed.Launches)

	stale := Reduce(NewState(2, 10), LoadSucceeded{Generation: 1, Launches: mixedLaunches(2, 1)})
	assert.Equal(t, PhaseLoading, stale.Phase)

	generic := Reduce(NewState(1, 10), LoadFailed{Generation: 1, Err: errors.New("")})
	assert.Equal(t, launchapi.GenericErrorMessage, generic.Err)
}

func TestReduce_SelectionIgnoredOutsideReady(t *testing.T) {
	loading := NewState(1, 10)
	for _, ev := range []Event{
		StatusFilterChanged{Status: StatusFilter(model.StatusSuccess)},
		SearchChanged{Search: "x"},
		PageSizeChanged{Size: 50},
		NextPage{},
		DetailSelected{ID: "l00"},
	} {
		assert.Equal(t, loading, Reduce(loading, ev), "%T", ev)
	}

	errState := Reduce(loading, LoadFailed{Generation: 1, Err: errors.New("boom")})
	assert.Equal(t, errState, Reduce(errState, SearchChanged{Search: "x"}))
}

func TestReduce_FilterChangesResetPage(t *testing.T) {
	s := readyState(t, mixedLaunches(40, 10))
	s = Reduce(s, PageRequested{Page: 3})
	require.Equal(t, 3, s.Page)

	events := []Event{
		StatusFilterChanged{Status: StatusFilter(model.StatusFailed)},
		SearchChanged{Search: "mission"},
		PageSizeChanged{Size: 20},
	}
	for _, ev := range events {
		moved := Reduce(s, ev)
		assert.Equal(t, 1, moved.Page, "%T", ev)
		assert.LessOrEqual(t, moved.Page, TotalPages(len(Filter(moved.Launches, moved.Status, moved.Search)), moved.PageSize))
	}
}

func TestReduce_InvalidValuesIgnored(t *testing.T) {
	s := readyState(t, mixedLaunches(40, 10))
	s = Reduce(s, PageRequested{Page: 2})

	assert.Equal(t, s, Reduce(s, StatusFilterChanged{Status: "scrubbed"}))
	assert.Equal(t, s, Reduce(s, PageSizeChanged{Size: 15}))
	assert.Equal(t, s, Reduce(s, DetailSelected{ID: "missing"}))
}

func TestScenarioB_PageBounds(t *testing.T) {
	s := readyState(t, mixedLaunches(25, 5))

	s = Reduce(s, PageRequested{Page: 3})
	assert.Equal(t, 3, s.Page)

	s = Reduce(s, PageRequested{Page: 4})
	assert.Equal(t, 3, s.Page, "page beyond total rejected")

	s = Reduce(s, NextPage{})
	assert.Equal(t, 3, s.Page)

	s = Reduce(s, PageRequested{Page: 1})
	s = Reduce(s, PrevPage{})
	assert.Equal(t, 1, s.Page)

	s = Reduce(s, PageRequested{Page: 0})
	assert.Equal(t, 1, s.Page)
}

func TestReduce_EmptyResultKeepsOnePage(t *testing.T) {
	s := readyState(t, mixedLaunches(5, 5))
	s = Reduce(s, SearchChanged{Search: "nothing matches"})

	assert.Equal(t, 1, s.Page)
	assert.Equal(t, s, Reduce(s, NextPage{}))
	assert.Equal(t, s, Reduce(s, PageRequested{Page: 1}))
}

func TestReduce_Detail(t *testing.T) {
	s := readyState(t, mixedLaunches(12, 5))
	s = Reduce(s, SearchChanged{Search: "07"})

	opened := Reduce(s, DetailSelected{ID: "l07"})
	got, ok := opened.Selected()
	require.True(t, ok)
	assert.Equal(t, "Mission 07", got.MissionName)

	opened.SelectedID = ""
	assert.Equal(t, s, opened, "only the selection changes")

	opened = Reduce(s, DetailSelected{ID: "l07"})
	closed := Reduce(opened, DetailClosed{})
	_, ok = closed.Selected()
	assert.False(t, ok)
	assert.Equal(t, s, closed)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "loading", PhaseLoading.String())
	assert.Equal(t, "error", PhaseError.String())
	assert.Equal(t, "ready", PhaseReady.String())
}

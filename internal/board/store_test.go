package board

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/launchboard/internal/model"
)

func TestStore_MemoizesFiltered(t *testing.T) {
	st := NewStore(10)
	gen := st.Begin()

	// Rendering while loading must not poison the memo for the loaded data.
	assert.Empty(t, st.CurrentPage().Records)

	st.Dispatch(LoadSucceeded{Generation: gen, Launches: mixedLaunches(25, 5)})
	assert.Len(t, st.Filtered(), 25)
	runs := st.filterRuns

	st.Filtered()
	st.CurrentPage()
	st.Dispatch(NextPage{})
	st.CurrentPage()
	assert.Equal(t, runs, st.filterRuns, "page changes reuse the filtered collection")

	st.Dispatch(SearchChanged{Search: "mission 0"})
	assert.Len(t, st.Filtered(), 10)
	assert.Equal(t, runs+1, st.filterRuns)
}

func TestStore_CurrentPageFollowsState(t *testing.T) {
	st := NewStore(10)
	gen := st.Begin()
	st.Dispatch(LoadSucceeded{Generation: gen, Launches: mixedLaunches(25, 5)})

	first := st.CurrentPage()
	assert.Equal(t, "l00", first.Records[0].ID)

	st.Dispatch(NextPage{})
	second := st.CurrentPage()
	assert.Equal(t, 2, second.Number)
	assert.Equal(t, "l10", second.Records[0].ID)

	st.Dispatch(PageSizeChanged{Size: 50})
	all := st.CurrentPage()
	assert.Equal(t, 1, all.Number)
	assert.Equal(t, 1, all.TotalPages)
	assert.Len(t, all.Records, 25)
}

func TestStore_DropsStaleLoads(t *testing.T) {
	st := NewStore(10)
	old := st.Begin()
	gen := st.Begin()
	require.NotEqual(t, old, gen)

	st.Dispatch(LoadSucceeded{Generation: old, Launches: mixedLaunches(3, 1)})
	assert.Equal(t, PhaseLoading, st.State().Phase)

	st.Close()
	st.Dispatch(LoadFailed{Generation: gen, Err: errors.New("too late")})
	assert.Equal(t, PhaseLoading, st.State().Phase, "closed session ignores results")
}

func TestStore_BeginKeepsPageSize(t *testing.T) {
	st := NewStore(20)
	gen := st.Begin()
	st.Dispatch(LoadSucceeded{Generation: gen, Launches: mixedLaunches(3, 1)})
	st.Dispatch(PageSizeChanged{Size: 50})
	st.Dispatch(SearchChanged{Search: "x"})

	st.Begin()
	s := st.State()
	assert.Equal(t, PhaseLoading, s.Phase)
	assert.Equal(t, 50, s.PageSize)
	assert.Empty(t, s.Search)
	assert.Empty(t, st.Filtered())
}

func TestStore_Selected(t *testing.T) {
	st := NewStore(10)
	gen := st.Begin()
	st.Dispatch(LoadSucceeded{Generation: gen, Launches: mixedLaunches(3, 1)})

	_, ok := st.Selected()
	assert.False(t, ok)

	st.Dispatch(DetailSelected{ID: "l02"})
	l, ok := st.Selected()
	require.True(t, ok)
	assert.Equal(t, model.StatusUpcoming, l.Status)
}

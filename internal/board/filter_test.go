package board

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tinytelemetry/launchboard/internal/model"
)

func launch(id, mission string, status model.Status) model.Launch {
	return model.Launch{
		ID:            id,
		MissionName:   mission,
		RocketID:      "falcon9",
		LaunchDateUTC: "2020-01-01T00:00:00Z",
		Status:        status,
	}
}

// mixedLaunches builds n launches; the first `success` are successful and the
// rest alternate failed and upcoming.
func mixedLaunches(n, success int) []model.Launch {
	out := make([]model.Launch, 0, n)
	for i := 0; i < n; i++ {
		status := model.StatusFailed
		switch {
		case i < success:
			status = model.StatusSuccess
		case i%2 == 0:
			status = model.StatusUpcoming
		}
		out = append(out, launch(fmt.Sprintf("l%02d", i), fmt.Sprintf("Mission %02d", i), status))
	}
	return out
}

func ids(records []model.Launch) []string {
	out := make([]string, len(records))
	for i, l := range records {
		out[i] = l.ID
	}
	return out
}

func TestFilter_StatusAndSearchCompose(t *testing.T) {
	records := []model.Launch{
		launch("a", "Falcon Heavy Demo", model.StatusSuccess),
		launch("b", "CRS-20", model.StatusSuccess),
		launch("c", "FalconSat", model.StatusFailed),
		launch("d", "Starlink", model.StatusUpcoming),
	}

	tests := []struct {
		name   string
		status StatusFilter
		search string
		want   []string
	}{
		{name: "all no search", status: FilterAll, want: []string{"a", "b", "c", "d"}},
		{name: "status only", status: StatusFilter(model.StatusSuccess), want: []string{"a", "b"}},
		{name: "search only", status: FilterAll, search: "falcon", want: []string{"a", "c"}},
		{name: "both", status: StatusFilter(model.StatusFailed), search: "FALCON", want: []string{"c"}},
		{name: "no match", status: StatusFilter(model.StatusUpcoming), search: "falcon", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(records, tt.status, tt.search)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_Properties(t *testing.T) {
	records := mixedLaunches(30, 7)
	records[3].MissionName = "Falcon 1 Flight 3"
	records[17].MissionName = "falcon heavy"

	for _, status := range StatusFilters {
		for _, search := range []string{"", "falcon", "mission 1", "zzz"} {
			got := Filter(records, status, search)

			assert.Equal(t, ids(got), ids(Filter(got, status, search)), "idempotent")

			last := -1
			for _, l := range got {
				if status != FilterAll {
					assert.Equal(t, StatusFilter(l.Status), status)
				}
				assert.True(t, strings.Contains(strings.ToLower(l.MissionName), strings.ToLower(search)))

				idx := -1
				for i, r := range records {
					if r.ID == l.ID {
						idx = i
					}
				}
				require.GreaterOrEqual(t, idx, 0, "subset")
				assert.Greater(t, idx, last, "stable order")
				last = idx
			}
		}
	}
}

func TestFilter_DoesNotModifyInput(t *testing.T) {
	records := mixedLaunches(5, 2)
	before := ids(records)

	got := Filter(records, StatusFilter(model.StatusSuccess), "")
	require.Len(t, got, 2)
	got[0].MissionName = "changed"

	assert.Equal(t, before, ids(records))
	assert.Equal(t, "Mission 00", records[0].MissionName)
}

func TestScenarioA_StatusFilter(t *testing.T) {
	records := mixedLaunches(12, 5)

	got := Filter(records, StatusFilter(model.StatusSuccess), "")
	assert.Len(t, got, 5)
	assert.Equal(t, 1, Paginate(got, 1, 10).TotalPages)
}

func TestScenarioC_CaseInsensitiveSearch(t *testing.T) {
	records := []model.Launch{
		launch("1", "FalconSat", model.StatusFailed),
		launch("2", "DemoSat", model.StatusFailed),
		launch("3", "Falcon Heavy Test Flight", model.StatusSuccess),
	}
	assert.Equal(t, []string{"1", "3"}, ids(Filter(records, FilterAll, "falcon")))
}

func TestParseStatusFilter(t *testing.T) {
	f, ok := ParseStatusFilter("")
	assert.True(t, ok)
	assert.Equal(t, FilterAll, f)

	f, ok = ParseStatusFilter("upcoming")
	assert.True(t, ok)
	assert.Equal(t, StatusFilter(model.StatusUpcoming), f)

	_, ok = ParseStatusFilter("Success")
	assert.False(t, ok, "status match is case-sensitive")
}

func TestStatusFilter_NextCycles(t *testing.T) {
	f := FilterAll
	seen := []StatusFilter{f}
	for i := 0; i < len(StatusFilters); i++ {
		f = f.Next()
		seen = append(seen, f)
	}
	assert.Equal(t, append(append([]StatusFilter{}, StatusFilters...), FilterAll), seen)
}

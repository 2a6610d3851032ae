package webview

import (
	"html/template"
	"net/url"
	"strconv"

	"github.com/tinytelemetry/launchboard/internal/board"
	"github.com/tinytelemetry/launchboard/internal/model"
)

var statusLabels = map[board.StatusFilter]string{
	board.FilterAll:                          "All Status",
	board.StatusFilter(model.StatusSuccess):  "Success",
	board.StatusFilter(model.StatusFailed):   "Failed",
	board.StatusFilter(model.StatusUpcoming): "Upcoming",
}

type option struct {
	Value    string
	Label    string
	Selected bool
}

type statCell struct {
	Label string
	Value int
	Class string
}

type yearBar struct {
	Year    string
	Count   int
	Percent int
}

type row struct {
	Mission   string
	Rocket    string
	Date      string
	Status    string
	Label     string
	DetailURL string
}

type detail struct {
	Mission   string
	ID        string
	Rocket    string
	Date      string
	Status    string
	Label     string
	Launchpad string
	Details   string
	Links     []model.Link
	CloseURL  string
}

type pageData struct {
	Phase string
	Error string

	Stats []statCell
	Years []yearBar

	StatusOptions []option
	SizeOptions   []option
	Search        string

	Rows         []row
	PageNumber   int
	TotalPages   int
	TotalRecords int
	PrevURL      string
	NextURL      string

	Detail *detail
}

// newPageData flattens a Ready state into what the template renders.
func newPageData(st board.State) pageData {
	filtered := board.Filter(st.Launches, st.Status, st.Search)
	page := board.Paginate(filtered, st.Page, st.PageSize)

	d := pageData{
		Phase:        st.Phase.String(),
		Search:       st.Search,
		PageNumber:   page.Number,
		TotalPages:   page.TotalPages,
		TotalRecords: page.TotalRecords,
		Stats: []statCell{
			{"Total Launches", st.Stats.Total, "total"},
			{"Successful", st.Stats.Count(model.StatusSuccess), "success"},
			{"Failed", st.Stats.Count(model.StatusFailed), "failed"},
			{"Upcoming", st.Stats.Count(model.StatusUpcoming), "upcoming"},
		},
		Years: yearBars(st.Stats.Years()),
	}

	for _, f := range board.StatusFilters {
		d.StatusOptions = append(d.StatusOptions, option{
			Value:    string(f),
			Label:    statusLabels[f],
			Selected: f == st.Status,
		})
	}
	for _, size := range model.PageSizes {
		d.SizeOptions = append(d.SizeOptions, option{
			Value:    strconv.Itoa(size),
			Label:    strconv.Itoa(size) + " per page",
			Selected: size == st.PageSize,
		})
	}

	for _, l := range page.Records {
		d.Rows = append(d.Rows, row{
			Mission:   l.MissionName,
			Rocket:    l.RocketID,
			Date:      l.ShortDate(),
			Status:    string(l.Status),
			Label:     statusLabels[board.StatusFilter(l.Status)],
			DetailURL: selectionURL(st, st.Page, l.ID),
		})
	}
	if page.HasPrev() {
		d.PrevURL = selectionURL(st, st.Page-1, "")
	}
	if page.HasNext() {
		d.NextURL = selectionURL(st, st.Page+1, "")
	}

	if l, ok := st.Selected(); ok {
		det := &detail{
			Mission:  l.MissionName,
			ID:       l.ID,
			Rocket:   l.RocketID,
			Date:     l.LongDate(),
			Status:   string(l.Status),
			Label:    statusLabels[board.StatusFilter(l.Status)],
			Links:    l.Links(),
			CloseURL: selectionURL(st, st.Page, ""),
		}
		if l.LaunchpadID != nil {
			det.Launchpad = *l.LaunchpadID
		}
		if l.Details != nil {
			det.Details = *l.Details
		}
		d.Detail = det
	}
	return d
}

// yearBars scales counts against the busiest year.
func yearBars(years []model.YearCount) []yearBar {
	peak := 0
	for _, y := range years {
		peak = max(peak, y.Count)
	}
	bars := make([]yearBar, 0, len(years))
	for _, y := range years {
		pct := 0
		if peak > 0 {
			pct = y.Count * 100 / peak
		}
		bars = append(bars, yearBar{Year: y.Year, Count: y.Count, Percent: pct})
	}
	return bars
}

// selectionURL encodes a selection as a dashboard link.
func selectionURL(st board.State, page int, launchID string) string {
	q := url.Values{}
	if st.Status != board.FilterAll {
		q.Set("status", string(st.Status))
	}
	if st.Search != "" {
		q.Set("q", st.Search)
	}
	q.Set("size", strconv.Itoa(st.PageSize))
	q.Set("page", strconv.Itoa(page))
	if launchID != "" {
		q.Set("launch", launchID)
	}
	return "/?" + q.Encode()
}

var pageTemplate = template.Must(template.New("dashboard").Parse(pageHTML))

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>SpaceX Launches</title>
{{if eq .Phase "loading"}}<meta http-equiv="refresh" content="2">{{end}}
<style>
body { font-family: system-ui, sans-serif; margin: 0; background: #f5f7fa; color: #1b2a4a; }
header { background: #1b2a4a; color: #fff; padding: 1rem 2rem; display: flex; justify-content: space-between; }
main { padding: 1.5rem 2rem; }
.stats { display: flex; gap: 1rem; margin-bottom: 1rem; }
.stat { background: #fff; padding: .75rem 1rem; border-radius: 6px; flex: 1; }
.stat b { display: block; font-size: 1.5rem; }
.success { color: #1a9850; } .failed { color: #d73027; } .upcoming { color: #f46d43; }
.chart { background: #fff; padding: .75rem 1rem; border-radius: 6px; margin-bottom: 1rem; }
.bar { display: flex; align-items: center; gap: .5rem; font-size: .85rem; }
.bar span.fill { background: #4a90d9; height: .8rem; display: inline-block; }
table { width: 100%; border-collapse: collapse; background: #fff; }
th, td { text-align: left; padding: .5rem; border-bottom: 1px solid #e3e7ee; }
.badge { padding: .1rem .5rem; border-radius: 10px; color: #fff; font-size: .8rem; }
.badge.success { background: #1a9850; } .badge.failed { background: #d73027; } .badge.upcoming { background: #f46d43; }
.pager { display: flex; gap: 1rem; align-items: center; margin-top: 1rem; }
.disabled { color: #aab; }
.detail { background: #fff; border: 1px solid #4a90d9; border-radius: 6px; padding: 1rem; margin-bottom: 1rem; }
.error { text-align: center; margin-top: 4rem; }
</style>
</head>
<body>
<header><strong>SpaceX Launches</strong><form method="post" action="/reload"><button>Reload</button></form></header>
<main>
{{if eq .Phase "loading"}}
<p>Loading...</p>
{{else if eq .Phase "error"}}
<div class="error"><h2>Error loading data</h2><p>{{.Error}}</p></div>
{{else}}
<section class="stats">
{{range .Stats}}<div class="stat"><span>{{.Label}}</span><b class="{{.Class}}">{{.Value}}</b></div>
{{end}}</section>
<section class="chart"><h3>Launches by Year</h3>
{{range .Years}}<div class="bar"><span>{{.Year}}</span><span class="fill" style="width: {{.Percent}}%"></span><span>{{.Count}}</span></div>
{{else}}<p>No data available</p>{{end}}
</section>
{{with .Detail}}
<section class="detail">
<h2>{{.Mission}}</h2>
<p><b>Rocket</b> {{.Rocket}}</p>
<p><b>Launch Date</b> {{.Date}}</p>
<p><b>Status</b> <span class="badge {{.Status}}">{{.Label}}</span></p>
{{if .Launchpad}}<p><b>Launchpad</b> {{.Launchpad}}</p>{{end}}
{{if .Details}}<p><b>Details</b> {{.Details}}</p>{{end}}
{{if .Links}}<p><b>Links</b> {{range .Links}}<a href="{{.URL}}" target="_blank" rel="noopener">{{.Label}}</a> {{end}}</p>{{end}}
<p><small>ID {{.ID}}</small> <a href="{{.CloseURL}}">Close</a></p>
</section>
{{end}}
<form method="get" action="/">
<input type="search" name="q" value="{{.Search}}" placeholder="Search by mission name...">
<select name="status">{{range .StatusOptions}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}</select>
<select name="size">{{range .SizeOptions}}<option value="{{.Value}}"{{if .Selected}} selected{{end}}>{{.Label}}</option>{{end}}</select>
<button>Apply</button>
</form>
{{if .Rows}}
<table>
<thead><tr><th>Mission</th><th>Rocket</th><th>Date</th><th>Status</th></tr></thead>
<tbody>
{{range .Rows}}<tr><td><a href="{{.DetailURL}}">{{.Mission}}</a></td><td>{{.Rocket}}</td><td>{{.Date}}</td><td><span class="badge {{.Status}}">{{.Label}}</span></td></tr>
{{end}}</tbody>
</table>
<div class="pager">
{{if .PrevURL}}<a href="{{.PrevURL}}">&lsaquo; Previous</a>{{else}}<span class="disabled">&lsaquo; Previous</span>{{end}}
<span>Page {{.PageNumber}} of {{.TotalPages}}</span>
{{if .NextURL}}<a href="{{.NextURL}}">Next &rsaquo;</a>{{else}}<span class="disabled">Next &rsaquo;</span>{{end}}
<span>{{.TotalRecords}} launches</span>
</div>
{{else}}
<p>No launches found</p>
{{end}}
{{end}}
</main>
</body>
</html>`

package model

import (
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
	"time"
)

// Status is the lifecycle state of a launch. Only the three constants below are valid.
type Status string

const (
	StatusSuccess  Status = "success"
	StatusFailed   Status = "failed"
	StatusUpcoming Status = "upcoming"
)

// Statuses lists every valid status in display order.
var Statuses = []Status{StatusSuccess, StatusFailed, StatusUpcoming}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusSuccess, StatusFailed, StatusUpcoming:
		return true
	}
	return false
}

// UnmarshalJSON rejects values outside the closed status set.
func (s *Status) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	st := Status(raw)
	if !st.Valid() {
		return fmt.Errorf("invalid launch status %q", raw)
	}
	*s = st
	return nil
}

// Launch is a single launch event as served by the launches API.
// Optional fields are nil when the server omits them.
type Launch struct {
	ID             string  `json:"launch_id"`
	MissionName    string  `json:"mission_name"`
	RocketID       string  `json:"rocket_id"`
	LaunchDateUTC  string  `json:"launch_date_utc"`
	LaunchDateUnix int64   `json:"launch_date_unix"`
	Status         Status  `json:"status"`
	LaunchpadID    *string `json:"launchpad_id,omitempty"`
	Details        *string `json:"details,omitempty"`
	ArticleLink    *string `json:"article_link,omitempty"`
	Wikipedia      *string `json:"wikipedia,omitempty"`
	VideoLink      *string `json:"video_link,omitempty"`
}

// LaunchTime returns the launch instant, preferring the ISO timestamp and
// falling back to the unix epoch. ok is false when neither is usable.
func (l Launch) LaunchTime() (t time.Time, ok bool) {
	if l.LaunchDateUTC != "" {
		if parsed, err := time.Parse(time.RFC3339, l.LaunchDateUTC); err == nil {
			return parsed.UTC(), true
		}
	}
	if l.LaunchDateUnix > 0 {
		return time.Unix(l.LaunchDateUnix, 0).UTC(), true
	}
	return time.Time{}, false
}

// ShortDate formats the launch date for table rows ("Jan 2, 2006").
func (l Launch) ShortDate() string {
	if t, ok := l.LaunchTime(); ok {
		return t.Format("Jan 2, 2006")
	}
	return l.LaunchDateUTC
}

// LongDate formats the launch date for the detail view.
func (l Launch) LongDate() string {
	if t, ok := l.LaunchTime(); ok {
		return t.Format("January 2, 2006 at 03:04 PM")
	}
	return l.LaunchDateUTC
}

// Link is a named external reference attached to a launch.
type Link struct {
	Label string
	URL   string
}

// Links returns the external links present on the launch, skipping absent
// and empty ones.
func (l Launch) Links() []Link {
	var links []Link
	add := func(label string, v *string) {
		if v != nil && *v != "" {
			links = append(links, Link{Label: label, URL: *v})
		}
	}
	add("Article", l.ArticleLink)
	add("Wikipedia", l.Wikipedia)
	add("Video", l.VideoLink)
	return links
}

// Stats is the pre-aggregated summary served by /stats/summary.
// The client displays it as given and never checks the sums against Total.
type Stats struct {
	Total    int            `json:"total"`
	ByStatus map[string]int `json:"by_status"`
	ByYear   map[string]int `json:"by_year"`
}

// Count returns the count for a status; a missing key counts as zero.
func (s Stats) Count(status Status) int {
	return s.ByStatus[string(status)]
}

// YearCount is one bar of the launches-by-year chart.
type YearCount struct {
	Year  string
	Count int
}

// Years returns ByYear sorted by numeric year ascending. Keys that are not
// numbers sort after the numeric ones, lexically.
func (s Stats) Years() []YearCount {
	out := make([]YearCount, 0, len(s.ByYear))
	for year, count := range s.ByYear {
		out = append(out, YearCount{Year: year, Count: count})
	}
	sort.Slice(out, func(i, j int) bool {
		yi, errI := strconv.Atoi(out[i].Year)
		yj, errJ := strconv.Atoi(out[j].Year)
		switch {
		case errI == nil && errJ == nil:
			return yi < yj
		case errI == nil:
			return true
		case errJ == nil:
			return false
		default:
			return out[i].Year < out[j].Year
		}
	})
	return out
}

// Health is the payload of the service health endpoint.
type Health struct {
	Status string `json:"status"`
	Table  string `json:"table,omitempty"`
}

package board

import "github.com/tinytelemetry/launchboard/internal/model"

// Page is one window of a filtered collection.
type Page struct {
	Records      []model.Launch
	Number       int // 1-based
	Size         int
	TotalPages   int // never below 1
	TotalRecords int
}

// HasPrev reports whether a previous page exists.
func (p Page) HasPrev() bool { return p.Number > 1 }

// HasNext reports whether a following page exists.
func (p Page) HasNext() bool { return p.Number < p.TotalPages }

// TotalPages is ceil(n/size), floored at 1 so an empty result still has a page.
func TotalPages(n, size int) int {
	if size <= 0 {
		size = model.DefaultPageSize
	}
	pages := (n + size - 1) / size
	if pages < 1 {
		return 1
	}
	return pages
}

// Paginate slices page number of records. A page outside [1, TotalPages]
// yields no records; the number is reported as given, never clamped.
func Paginate(records []model.Launch, number, size int) Page {
	if size <= 0 {
		size = model.DefaultPageSize
	}
	p := Page{
		Number:       number,
		Size:         size,
		TotalPages:   TotalPages(len(records), size),
		TotalRecords: len(records),
		Records:      []model.Launch{},
	}
	if number < 1 || number > p.TotalPages {
		return p
	}
	start := (number - 1) * size
	if start >= len(records) {
		return p
	}
	end := start + size
	if end > len(records) {
		end = len(records)
	}
	p.Records = records[start:end:end]
	return p
}

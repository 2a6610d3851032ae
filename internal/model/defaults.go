package model

import "time"

// Shared defaults used by the dashboard, the web view and the CLI.
const (
	DefaultLaunchLimit    = 500
	DefaultPageSize       = 10
	DefaultRequestTimeout = 10 * time.Second
	DefaultDevBaseURL     = "http://localhost:8000"
	DefaultSkin           = "default"
)

// PageSizes are the selectable page sizes, in cycling order.
var PageSizes = []int{10, 20, 50}

// ValidPageSize reports whether n is one of PageSizes.
func ValidPageSize(n int) bool {
	for _, s := range PageSizes {
		if s == n {
			return true
		}
	}
	return false
}

package launchapi

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/tinytelemetry/launchboard/internal/model"
)

// ResolveBaseURL picks the API host once per process: an explicit override
// wins, then the origin the dashboard is served from (production only), then
// the local development address.
func ResolveBaseURL(override, origin string, production bool) (string, error) {
	candidate := strings.TrimSpace(override)
	if candidate == "" && production {
		candidate = strings.TrimSpace(origin)
	}
	if candidate == "" {
		candidate = model.DefaultDevBaseURL
	}

	u, err := url.Parse(candidate)
	if err != nil {
		return "", fmt.Errorf("invalid api url %q: %w", candidate, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return "", fmt.Errorf("invalid api url %q: scheme must be http or https", candidate)
	}
	if u.Host == "" {
		return "", fmt.Errorf("invalid api url %q: missing host", candidate)
	}
	return strings.TrimRight(candidate, "/"), nil
}

package launchapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/tinytelemetry/launchboard/internal/logging"
	"github.com/tinytelemetry/launchboard/internal/metrics"
	"github.com/tinytelemetry/launchboard/internal/model"

	"go.uber.org/zap"
)

// Operation names, used in errors, logs and metric labels.
const (
	OpLaunches = "launches"
	OpLaunch   = "launch"
	OpStats    = "stats"
	OpHealth   = "health"
)

var failureMessages = map[string]string{
	OpLaunches: "Failed to fetch launches",
	OpLaunch:   "Failed to fetch launch",
	OpStats:    "Failed to fetch stats",
	OpHealth:   "Failed to check health",
}

// Options configures a Client. BaseURL is required; the rest have defaults.
type Options struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
	Logger     *zap.Logger
	Metrics    *metrics.Metrics
}

// Client implements model.LaunchSource over the launches REST API.
// Every call is a single GET with no retries and no caching.
type Client struct {
	baseURL string
	timeout time.Duration
	http    *http.Client
	log     *zap.Logger
	metrics *metrics.Metrics
}

var _ model.LaunchSource = (*Client)(nil)

// NewClient creates a client bound to opts.BaseURL for its whole lifetime.
func NewClient(opts Options) *Client {
	timeout := opts.Timeout
	if timeout <= 0 {
		timeout = model.DefaultRequestTimeout
	}
	httpClient := opts.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{}
	}
	return &Client{
		baseURL: opts.BaseURL,
		timeout: timeout,
		http:    httpClient,
		log:     logging.Component(opts.Logger, "launchapi"),
		metrics: opts.Metrics,
	}
}

// BaseURL returns the API host this client talks to.
func (c *Client) BaseURL() string { return c.baseURL }

// FetchLaunches returns up to limit launches in server order. limit <= 0
// requests model.DefaultLaunchLimit, which covers the whole collection.
func (c *Client) FetchLaunches(ctx context.Context, limit int) ([]model.Launch, error) {
	if limit <= 0 {
		limit = model.DefaultLaunchLimit
	}
	query := url.Values{"limit": []string{strconv.Itoa(limit)}}

	var launches []model.Launch
	if err := c.get(ctx, OpLaunches, "/launches", query, &launches); err != nil {
		return nil, err
	}
	if launches == nil {
		launches = []model.Launch{}
	}
	return launches, nil
}

// FetchLaunch returns a single launch by id.
func (c *Client) FetchLaunch(ctx context.Context, id string) (model.Launch, error) {
	var launch model.Launch
	err := c.get(ctx, OpLaunch, "/launches/"+url.PathEscape(id), nil, &launch)
	return launch, err
}

// FetchStats returns the summary statistics.
func (c *Client) FetchStats(ctx context.Context) (model.Stats, error) {
	var stats model.Stats
	err := c.get(ctx, OpStats, "/stats/summary", nil, &stats)
	return stats, err
}

// Health queries the service health endpoint.
func (c *Client) Health(ctx context.Context) (model.Health, error) {
	var health model.Health
	err := c.get(ctx, OpHealth, "/health", nil, &health)
	return health, err
}

// get performs one GET and decodes a JSON body into dest.
func (c *Client) get(ctx context.Context, op, path string, query url.Values, dest interface{}) (err error) {
	started := time.Now()
	defer func() {
		c.metrics.ObserveFetch(op, started, err)
		if err != nil {
			c.log.Warn("request failed", zap.String("op", op), zap.String("path", path), zap.Error(err))
			return
		}
		c.log.Debug("request ok", zap.String("op", op), zap.String("path", path),
			zap.Duration("elapsed", time.Since(started)))
	}()

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return c.fail(op, 0, fmt.Errorf("build request: %w", err))
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(op, 0, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		// Error bodies are not parsed; drain so the connection can be reused.
		_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64*1024))
		return c.fail(op, resp.StatusCode, nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return c.fail(op, resp.StatusCode, fmt.Errorf("decode response: %w", err))
	}
	return nil
}

func (c *Client) fail(op string, status int, cause error) error {
	return &FetchError{
		Op:         op,
		Message:    failureMessages[op],
		StatusCode: status,
		Err:        cause,
	}
}

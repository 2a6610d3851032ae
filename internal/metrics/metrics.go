package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Outcome labels for fetch metrics.
const (
	OutcomeOK    = "ok"
	OutcomeError = "error"
)

// Metrics holds the prometheus collectors for calls against the launches API.
type Metrics struct {
	FetchRequests *prometheus.CounterVec
	FetchDuration *prometheus.HistogramVec
}

// New creates the collectors and registers them on reg. A nil reg leaves
// them unregistered, which keeps tests free of global state.
func New(namespace string, reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		FetchRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fetch_requests_total",
			Help:      "Requests made to the launches API by operation and outcome",
		}, []string{"op", "outcome"}),
		FetchDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Latency of requests made to the launches API",
			Buckets:   prometheus.DefBuckets,
		}, []string{"op"}),
	}
	if reg != nil {
		reg.MustRegister(m.FetchRequests, m.FetchDuration)
	}
	return m
}

// ObserveFetch records one finished request.
func (m *Metrics) ObserveFetch(op string, started time.Time, err error) {
	if m == nil {
		return
	}
	outcome := OutcomeOK
	if err != nil {
		outcome = OutcomeError
	}
	m.FetchRequests.WithLabelValues(op, outcome).Inc()
	m.FetchDuration.WithLabelValues(op).Observe(time.Since(started).Seconds())
}

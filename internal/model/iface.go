package model

import "context"

// LaunchSource provides read-only access to the launches API.
type LaunchSource interface {
	FetchLaunches(ctx context.Context, limit int) ([]Launch, error)
	FetchLaunch(ctx context.Context, id string) (Launch, error)
	FetchStats(ctx context.Context) (Stats, error)
}

// HealthChecker reports the health of the launches API.
type HealthChecker interface {
	Health(ctx context.Context) (Health, error)
}

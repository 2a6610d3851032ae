package board

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tinytelemetry/launchboard/internal/model"
)

// Load fetches launches and stats in parallel for session gen. The first
// failure cancels the other request and discards its result; there is no
// partial success.
func Load(ctx context.Context, src model.LaunchSource, limit int, gen uint64) Event {
	var (
		launches []model.Launch
		stats    model.Stats
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		l, err := src.FetchLaunches(gctx, limit)
		if err != nil {
			return err
		}
		launches = l
		return nil
	})
	g.Go(func() error {
		st, err := src.FetchStats(gctx)
		if err != nil {
			return err
		}
		stats = st
		return nil
	})

	if err := g.Wait(); err != nil {
		return LoadFailed{Generation: gen, Err: err}
	}
	return LoadSucceeded{Generation: gen, Launches: launches, Stats: stats}
}

package app

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// forEach calls fn for every index in [0, n), running at most limit calls at once.
// Once ctx is done no new calls are started; calls already running are waited for.
// Returns which indices were started.
//
// fn must only write to state owned by its index.
func forEach(ctx context.Context, n int, limit int, fn func(ctx context.Context, i int)) []bool {
	started := make([]bool, n)
	if limit < 1 {
		limit = 1
	}

	var g errgroup.Group
	g.SetLimit(limit)
	for i := 0; i < n; i++ {
		if ctx.Err() != nil {
			break
		}
		g.Go(func() error {
			// g.Go blocks while all slots are busy, ctx may be done by now.
			if ctx.Err() != nil {
				return nil
			}
			started[i] = true
			fn(ctx, i)
			return nil
		})
	}
	_ = g.Wait()

	return started
}

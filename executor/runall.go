package executor

import (
	"context"

	futures "github.com/joeycumines/go-futures"
	"golang.org/x/sync/errgroup"
)

// Job pairs a future with the per-job input [RunAll] drives it with.
type Job[T, E any] struct {
	Future futures.Future[T, E]
}

// Outcome is one [RunAll] result slot: either the job's resolved
// [futures.PollResult], or, if Cause is non-nil, a launch-level failure
// (context cancellation) rather than a domain resolution.
type Outcome[T, E any] struct {
	Result futures.PollResult[T, E]
	Cause  error
}

// RunAll drives every job in jobs to completion concurrently, each on its
// own goroutine and its own, fully isolated [futures.Task] - no TaskData
// or wake state is shared between jobs, matching the isolation guarantee
// spec'd for multi-future top-level concurrency. It returns once every job
// has either resolved or ctx has been canceled, whichever comes first
// (errgroup.Group's usual fail-fast semantics: the first cancellation
// cancels gctx for every other still-running job too).
func RunAll[T, E any](ctx context.Context, jobs []Job[T, E]) ([]Outcome[T, E], error) {
	out := make([]Outcome[T, E], len(jobs))
	g, gctx := errgroup.WithContext(ctx)
	for i, job := range jobs {
		g.Go(func() error {
			r, err := Run(gctx, job.Future)
			out[i] = Outcome[T, E]{Result: r, Cause: err}
			return err
		})
	}
	err := g.Wait()
	return out, err
}

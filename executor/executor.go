// Package executor provides the sole sanctioned blocking entry point for
// driving a futures.Future to completion: everywhere else in this module,
// Poll is required never to block. Grounded on eventloop.Loop's run-loop
// shape - specifically its channel-based "fastWakeupCh" path for
// task-only workloads - but stripped of the epoll/kqueue poller, timer
// heap, and wake-pipe machinery that loop also carries, since this
// package only ever has one thing to wait on: the next notification from
// the future tree it is driving.
package executor

import (
	"context"

	futures "github.com/joeycumines/go-futures"
)

// Run polls f to completion, blocking the calling goroutine between polls
// until f's task is notified or ctx is done. The returned error is non-nil
// only when ctx is done before f resolves; the [futures.PollResult] is
// then the zero value and the error is ctx.Err().
func Run[T, E any](ctx context.Context, f futures.Future[T, E]) (futures.PollResult[T, E], error) {
	t := futures.NewTask()
	wake := make(chan struct{}, 1)
	t.SetWaker(func() {
		select {
		case wake <- struct{}{}:
		default:
		}
	})

	for {
		r := f.Poll(t)
		if r.IsReady() {
			return r, nil
		}

		select {
		case <-wake:
			// Drain the accumulated ready-event tokens so the Task's dormant
			// latch resets; otherwise a second Notify before the next drain
			// would coalesce into the one that already woke us, and every
			// Notify after that would too, since the latch never clears -
			// a future that suspends across more than one wakeup (e.g. a
			// Join or Collect of independently-completing promises) would
			// hang forever waiting on a wake channel nothing ever refills.
			t.Events()
		case <-ctx.Done():
			return futures.PollResult[T, E]{}, ctx.Err()
		}
	}
}

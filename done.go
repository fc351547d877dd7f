package futures

// doneFuture is the trivial future that is already resolved on its first
// poll. Finished, Failed, and Done all construct one; it is the base case
// every other combinator eventually bottoms out on (spec §4.1).
type doneFuture[T, E any] struct {
	result PollResult[T, E]
	polled bool
}

// Poll implements [Future]. Per the contract, polling a doneFuture again
// after it has reported ready is undefined; in debug-oriented builds this
// is surfaced as a logged DPanic rather than silently returning garbage.
func (f *doneFuture[T, E]) Poll(*Task) PollResult[T, E] {
	if f.polled {
		logPolledAfterComplete("done")
	}
	f.polled = true
	return f.result
}

// Done lifts an already-resolved [Result] into a [Future] that returns it
// on the first poll. It is the Future-level counterpart to Result's own
// [IntoFuture] implementation, for call sites that want an explicit
// constructor rather than relying on implicit conversion.
func Done[T, E any](r Result[T, E]) Future[T, E] {
	return &doneFuture[T, E]{result: r.Poll(nil)}
}

// Finished constructs a future that resolves successfully with v on its
// first poll.
func Finished[T, E any](v T) Future[T, E] {
	return &doneFuture[T, E]{result: ReadyOk[T, E](v)}
}

// Failed constructs a future that resolves with err on its first poll.
func Failed[T, E any](err E) Future[T, E] {
	return &doneFuture[T, E]{result: ReadyErr[T, E](err)}
}

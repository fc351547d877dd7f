package stream

import futures "github.com/joeycumines/go-futures"

// foldFuture drains a Stream to completion, accumulating every item
// through f, and resolves as a [futures.Future] once the stream ends
// (spec's fold: Stream -> Future, the reduction counterpart to
// [Collect]).
type foldFuture[T, A, E any] struct {
	inner Stream[T, E]
	acc   A
	f     func(A, T) A
	done  bool
}

// Poll implements [futures.Future].
func (fo *foldFuture[T, A, E]) Poll(t *futures.Task) futures.PollResult[A, E] {
	if fo.done {
		return futures.NotReady[A, E]()
	}
	for {
		s := fo.inner.Poll(t)
		if !s.IsReady() {
			return futures.NotReady[A, E]()
		}
		if s.IsEnded() {
			fo.done = true
			return futures.ReadyOk[A, E](fo.acc)
		}
		v, ok := s.Value()
		if !ok {
			err, _ := s.Err()
			fo.done = true
			return futures.ReadyErr[A, E](err)
		}
		fo.acc = fo.f(fo.acc, v)
	}
}

// Fold reduces every item of s into a single value via f, starting from
// init, and resolves once s ends. An error from s propagates as the
// fold's own error, discarding whatever had accumulated so far.
func Fold[T, A, E any](s Stream[T, E], init A, f func(A, T) A) futures.Future[A, E] {
	return &foldFuture[T, A, E]{inner: s, acc: init, f: f}
}

package stream

import futures "github.com/joeycumines/go-futures"

type filterStream[T, E any] struct {
	inner Stream[T, E]
	pred  func(T) bool
}

// Poll implements [Stream]. A rejected item is simply not returned; the
// combinator loops internally until it finds one that passes, the stream
// ends, or the inner stream goes NotReady (in which case the inner stream
// itself is responsible for waking the task for the next attempt).
func (f *filterStream[T, E]) Poll(t *futures.Task) Maybe[T, E] {
	for {
		s := f.inner.Poll(t)
		if !s.IsReady() {
			return NotReady[T, E]()
		}
		if s.IsEnded() {
			return Ended[T, E]()
		}
		v, ok := s.Value()
		if !ok {
			err, _ := s.Err()
			return Fail[T, E](err)
		}
		if f.pred(v) {
			return Item[T, E](v)
		}
	}
}

// Filter keeps only the items of s for which pred returns true.
func Filter[T, E any](s Stream[T, E], pred func(T) bool) Stream[T, E] {
	return &filterStream[T, E]{inner: s, pred: pred}
}

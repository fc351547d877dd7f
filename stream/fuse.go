package stream

import futures "github.com/joeycumines/go-futures"

// fuseStream is the Stream analogue of [futures.Fuse]: once the inner
// stream reports Ended, every later poll returns Ended again instead of
// re-polling it.
type fuseStream[T, E any] struct {
	inner Stream[T, E]
	ended bool
}

// Poll implements [Stream].
func (f *fuseStream[T, E]) Poll(t *futures.Task) Maybe[T, E] {
	if f.ended {
		return Ended[T, E]()
	}
	m := f.inner.Poll(t)
	if m.IsEnded() {
		f.ended = true
		f.inner = nil
	}
	return m
}

// Fuse wraps s so that polling continues safely after it ends.
func Fuse[T, E any](s Stream[T, E]) Stream[T, E] {
	return &fuseStream[T, E]{inner: s}
}

package stream

import futures "github.com/joeycumines/go-futures"

type mapStream[T, U, E any] struct {
	inner Stream[T, E]
	f     func(T) U
}

// Poll implements [Stream].
func (m *mapStream[T, U, E]) Poll(t *futures.Task) Maybe[U, E] {
	s := m.inner.Poll(t)
	if !s.IsReady() {
		return NotReady[U, E]()
	}
	if s.IsEnded() {
		return Ended[U, E]()
	}
	if v, ok := s.Value(); ok {
		return Item[U, E](m.f(v))
	}
	err, _ := s.Err()
	return Fail[U, E](err)
}

// Map transforms every item produced by s with f, passing end-of-stream
// and errors through unchanged.
func Map[T, U, E any](s Stream[T, E], f func(T) U) Stream[U, E] {
	return &mapStream[T, U, E]{inner: s, f: f}
}

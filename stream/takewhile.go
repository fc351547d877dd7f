package stream

import futures "github.com/joeycumines/go-futures"

type takeWhileStream[T, E any] struct {
	inner Stream[T, E]
	pred  func(T) bool
	done  bool
}

// Poll implements [Stream].
func (s *takeWhileStream[T, E]) Poll(t *futures.Task) Maybe[T, E] {
	if s.done {
		return Ended[T, E]()
	}
	m := s.inner.Poll(t)
	if !m.IsReady() {
		return NotReady[T, E]()
	}
	if m.IsEnded() {
		s.done = true
		return Ended[T, E]()
	}
	v, ok := m.Value()
	if !ok {
		err, _ := m.Err()
		s.done = true
		return Fail[T, E](err)
	}
	if !s.pred(v) {
		s.done = true
		return Ended[T, E]()
	}
	return Item[T, E](v)
}

// TakeWhile passes items of s through unchanged until pred returns false
// for one of them, at which point the stream ends (that item is
// discarded, matching the original futures-rs take_while semantics).
func TakeWhile[T, E any](s Stream[T, E], pred func(T) bool) Stream[T, E] {
	return &takeWhileStream[T, E]{inner: s, pred: pred}
}

package stream

import futures "github.com/joeycumines/go-futures"

type skipWhileStream[T, E any] struct {
	inner   Stream[T, E]
	pred    func(T) bool
	skipped bool
}

// Poll implements [Stream].
func (s *skipWhileStream[T, E]) Poll(t *futures.Task) Maybe[T, E] {
	for {
		m := s.inner.Poll(t)
		if !m.IsReady() {
			return NotReady[T, E]()
		}
		if m.IsEnded() {
			return Ended[T, E]()
		}
		v, ok := m.Value()
		if !ok {
			err, _ := m.Err()
			return Fail[T, E](err)
		}
		if !s.skipped && s.pred(v) {
			continue
		}
		s.skipped = true
		return Item[T, E](v)
	}
}

// SkipWhile drops items from the front of s for as long as pred holds,
// then passes every item through unchanged, including the first one for
// which pred returned false.
func SkipWhile[T, E any](s Stream[T, E], pred func(T) bool) Stream[T, E] {
	return &skipWhileStream[T, E]{inner: s, pred: pred}
}

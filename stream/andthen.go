package stream

import futures "github.com/joeycumines/go-futures"

type andThenStream[T, U, E any] struct {
	inner Stream[T, E]
	f     func(T) futures.Future[U, E]
	cur   futures.Future[U, E]
}

// Poll implements [Stream]. Unlike [Map], AndThen's transform is itself
// asynchronous: a produced item is held while its future runs, and the
// next item isn't requested from the inner stream until that future
// resolves (spec's Stream AndThen, the per-item sibling of
// [futures.AndThen]).
func (a *andThenStream[T, U, E]) Poll(t *futures.Task) Maybe[U, E] {
	if a.cur != nil {
		r := a.cur.Poll(t)
		if !r.IsReady() {
			return NotReady[U, E]()
		}
		a.cur = nil
		if v, ok := r.Value(); ok {
			return Item[U, E](v)
		}
		err, _ := r.Err()
		return Fail[U, E](err)
	}

	s := a.inner.Poll(t)
	if !s.IsReady() {
		return NotReady[U, E]()
	}
	if s.IsEnded() {
		return Ended[U, E]()
	}
	v, ok := s.Value()
	if !ok {
		err, _ := s.Err()
		return Fail[U, E](err)
	}
	a.cur = a.f(v)
	return a.Poll(t)
}

// AndThen chains an asynchronous transform onto every item of s.
func AndThen[T, U, E any](s Stream[T, E], f func(T) futures.Future[U, E]) Stream[U, E] {
	return &andThenStream[T, U, E]{inner: s, f: f}
}

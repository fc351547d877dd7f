package stream

import futures "github.com/joeycumines/go-futures"

type thenStream[T, E, U, F any] struct {
	inner Stream[T, E]
	f     func(futures.Result[T, E]) futures.Future[U, F]
	cur   futures.Future[U, F]
}

// Poll implements [Stream]. Then is AndThen's unconditional sibling: f
// runs on every produced item or error alike, never short-circuiting.
func (th *thenStream[T, E, U, F]) Poll(t *futures.Task) Maybe[U, F] {
	if th.cur != nil {
		r := th.cur.Poll(t)
		if !r.IsReady() {
			return NotReady[U, F]()
		}
		th.cur = nil
		if v, ok := r.Value(); ok {
			return Item[U, F](v)
		}
		err, _ := r.Err()
		return Fail[U, F](err)
	}

	s := th.inner.Poll(t)
	if !s.IsReady() {
		return NotReady[U, F]()
	}
	if s.IsEnded() {
		return Ended[U, F]()
	}
	var res futures.Result[T, E]
	if v, ok := s.Value(); ok {
		res = futures.Ok[T, E](v)
	} else {
		err, _ := s.Err()
		res = futures.Err[T, E](err)
	}
	th.cur = th.f(res)
	return th.Poll(t)
}

// Then maps every item or error of s, via f, into a future producing the
// stream's next output.
func Then[T, E, U, F any](s Stream[T, E], f func(futures.Result[T, E]) futures.Future[U, F]) Stream[U, F] {
	return &thenStream[T, E, U, F]{inner: s, f: f}
}

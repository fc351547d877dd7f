package stream

import futures "github.com/joeycumines/go-futures"

type orElseStream[T, E, F any] struct {
	inner Stream[T, E]
	f     func(E) futures.Future[T, F]
	cur   futures.Future[T, F]
}

// Poll implements [Stream]. An error from the inner stream does not end
// this stream: instead f is given the chance to recover it into a future
// producing a replacement item, after which polling resumes from the
// inner stream as normal.
func (o *orElseStream[T, E, F]) Poll(t *futures.Task) Maybe[T, F] {
	if o.cur != nil {
		r := o.cur.Poll(t)
		if !r.IsReady() {
			return NotReady[T, F]()
		}
		o.cur = nil
		if v, ok := r.Value(); ok {
			return Item[T, F](v)
		}
		err, _ := r.Err()
		return Fail[T, F](err)
	}

	s := o.inner.Poll(t)
	if !s.IsReady() {
		return NotReady[T, F]()
	}
	if s.IsEnded() {
		return Ended[T, F]()
	}
	if v, ok := s.Value(); ok {
		return Item[T, F](v)
	}
	err, _ := s.Err()
	o.cur = o.f(err)
	return o.Poll(t)
}

// OrElse recovers every error produced by s into a future that resolves
// with a replacement item or a new error, letting the stream continue
// past what would otherwise have ended it.
func OrElse[T, E, F any](s Stream[T, E], f func(E) futures.Future[T, F]) Stream[T, F] {
	return &orElseStream[T, E, F]{inner: s, f: f}
}

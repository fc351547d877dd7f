package stream

import futures "github.com/joeycumines/go-futures"

// bufferedStream runs up to n of the futures produced by inner
// concurrently, but yields their results strictly in the order the
// futures were produced - the ordered counterpart to a buffer_unordered.
// Concurrency here means "advanced independently across poll cycles",
// the same sense [futures.Join] uses it in; there are no goroutines.
type bufferedStream[T, E any] struct {
	inner Stream[futures.Future[T, E], E]
	cap   int
	queue []futures.Future[T, E]
	ended bool
}

// Poll implements [Stream].
func (b *bufferedStream[T, E]) Poll(t *futures.Task) Maybe[T, E] {
	for !b.ended && len(b.queue) < b.cap {
		m := b.inner.Poll(t)
		if !m.IsReady() {
			break
		}
		if m.IsEnded() {
			b.ended = true
			break
		}
		f, ok := m.Value()
		if !ok {
			err, _ := m.Err()
			return Fail[T, E](err)
		}
		b.queue = append(b.queue, f)
	}

	if len(b.queue) == 0 {
		if b.ended {
			return Ended[T, E]()
		}
		return NotReady[T, E]()
	}

	// Advance every queued future behind the front one; a resolved one is
	// replaced by its Result, which re-polls harmlessly until it reaches the
	// front.
	for i := 1; i < len(b.queue); i++ {
		r := b.queue[i].Poll(t)
		if v, ok := r.Value(); ok {
			b.queue[i] = futures.Ok[T, E](v)
		} else if err, ok := r.Err(); ok {
			b.queue[i] = futures.Err[T, E](err)
		}
	}

	front := b.queue[0]
	r := front.Poll(t)
	if !r.IsReady() {
		return NotReady[T, E]()
	}
	b.queue = b.queue[1:]
	if v, ok := r.Value(); ok {
		return Item[T, E](v)
	}
	err, _ := r.Err()
	return Fail[T, E](err)
}

// Buffered runs up to n futures produced by s concurrently, ahead of
// demand, while still yielding their results in production order.
func Buffered[T, E any](s Stream[futures.Future[T, E], E], n int) Stream[T, E] {
	if n < 1 {
		n = 1
	}
	return &bufferedStream[T, E]{inner: s, cap: n}
}

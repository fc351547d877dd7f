package futures

// flattenFuture collapses a future-of-a-future into a single future (spec
// §4.4): poll the outer future until it resolves Ok with an inner Future,
// then poll that inner future in its place. An outer Err short-circuits
// without ever touching the inner future.
type flattenFuture[T, E any] struct {
	outer Future[Future[T, E], E]
	inner Future[T, E]
}

// Poll implements [Future].
func (f *flattenFuture[T, E]) Poll(t *Task) PollResult[T, E] {
	if f.inner != nil {
		return f.inner.Poll(t)
	}
	r := f.outer.Poll(t)
	if !r.IsReady() {
		return NotReady[T, E]()
	}
	f.outer = nil
	if inner, ok := r.Value(); ok {
		f.inner = inner
		return f.inner.Poll(t)
	}
	err, _ := r.Err()
	return ReadyErr[T, E](err)
}

// Flatten collapses a future that resolves to another future into a
// single future equivalent to polling the inner one directly.
func Flatten[T, E any](outer Future[Future[T, E], E]) Future[T, E] {
	return &flattenFuture[T, E]{outer: outer}
}

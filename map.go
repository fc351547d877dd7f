package futures

// mapFuture transforms the success value of its inner future once it
// resolves (spec §4.4). It is a structural combinator: a distinct,
// monomorphized node rather than a callback registered against a shared
// dispatcher, matching every other combinator in this package.
type mapFuture[T, U, E any] struct {
	inner Future[T, E]
	f     func(T) U
}

// Poll implements [Future].
func (m *mapFuture[T, U, E]) Poll(t *Task) PollResult[U, E] {
	if m.inner == nil {
		logPolledAfterComplete("map")
		return NotReady[U, E]()
	}
	r := m.inner.Poll(t)
	if !r.IsReady() {
		return NotReady[U, E]()
	}
	m.inner = nil
	out := MapPoll(r, m.f)
	m.f = nil
	return out
}

// Map returns a future that resolves to f applied to first's success
// value, passing an Err result through unchanged.
func Map[T, U, E any](first Future[T, E], f func(T) U) Future[U, E] {
	return &mapFuture[T, U, E]{inner: first, f: f}
}

package futures

// mapErrFuture transforms the error value of its inner future once it
// resolves (spec §4.4), the error-side mirror of [mapFuture].
type mapErrFuture[T, E, F any] struct {
	inner Future[T, E]
	f     func(E) F
}

// Poll implements [Future].
func (m *mapErrFuture[T, E, F]) Poll(t *Task) PollResult[T, F] {
	if m.inner == nil {
		logPolledAfterComplete("maperr")
		return NotReady[T, F]()
	}
	r := m.inner.Poll(t)
	if !r.IsReady() {
		return NotReady[T, F]()
	}
	m.inner = nil
	out := MapPollErr(r, m.f)
	m.f = nil
	return out
}

// MapErr returns a future that resolves to f applied to first's error
// value, passing an Ok result through unchanged.
func MapErr[T, E, F any](first Future[T, E], f func(E) F) Future[T, F] {
	return &mapErrFuture[T, E, F]{inner: first, f: f}
}

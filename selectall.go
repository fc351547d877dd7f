package futures

// SelectAllOutcome is the result of a [SelectAll]: whichever future in the
// set resolved first, its index in the original slice, and every other
// future, still live, for the caller to re-select over if desired.
type SelectAllOutcome[T, E any] struct {
	Result PollResult[T, E]
	Index  int
	Rest   []Future[T, E]
}

type selectAllFuture[T, E any] struct {
	futures []Future[T, E]
}

// Poll implements [Future]. Every remaining future is polled once per
// cycle, in slice order, until one resolves.
func (s *selectAllFuture[T, E]) Poll(t *Task) PollResult[SelectAllOutcome[T, E], E] {
	for i, f := range s.futures {
		r := f.Poll(t)
		if !r.IsReady() {
			continue
		}
		rest := make([]Future[T, E], 0, len(s.futures)-1)
		rest = append(rest, s.futures[:i]...)
		rest = append(rest, s.futures[i+1:]...)
		s.futures = nil
		return ReadyOk[SelectAllOutcome[T, E], E](SelectAllOutcome[T, E]{Result: r, Index: i, Rest: rest})
	}
	return NotReady[SelectAllOutcome[T, E], E]()
}

// SelectAll generalizes [Select] to an arbitrary non-empty set of
// homogeneous futures (spec §4.4): it resolves as soon as any one of them
// does, reporting which one via SelectAllOutcome.Index and handing back
// every other still-live future via SelectAllOutcome.Rest.
//
// SelectAll panics if futs is empty: there is no well-defined "first to
// resolve" among zero futures.
func SelectAll[T, E any](futs []Future[T, E]) Future[SelectAllOutcome[T, E], E] {
	if len(futs) == 0 {
		panic("futures: SelectAll requires at least one future")
	}
	cp := make([]Future[T, E], len(futs))
	copy(cp, futs)
	return &selectAllFuture[T, E]{futures: cp}
}

package futures

// collectFuture polls every member of a fixed set of homogeneous futures
// until all resolve Ok, gathering their values in original order, or
// until the first one resolves Err, at which point it cancels every other
// still-pending member by dropping its slot (spec's restored collect
// primitive, supplementing the distillation per original_source/src/lib.rs's
// `pub use collect::{collect, Collect}`).
type collectFuture[T, E any] struct {
	futures []Future[T, E]
	values  []T
	done    []bool
	pending int
}

// Poll implements [Future].
func (c *collectFuture[T, E]) Poll(t *Task) PollResult[[]T, E] {
	if c.futures == nil {
		logPolledAfterComplete("collect")
		return NotReady[[]T, E]()
	}
	for i, f := range c.futures {
		if c.done[i] || f == nil {
			continue
		}
		r := f.Poll(t)
		if r.IsErr() {
			err, _ := r.Err()
			c.futures = nil
			c.values = nil
			return ReadyErr[[]T, E](err)
		}
		if v, ok := r.Value(); ok {
			c.values[i] = v
			c.done[i] = true
			c.futures[i] = nil
			c.pending--
		}
	}
	if c.pending == 0 {
		out := c.values
		c.futures = nil
		return ReadyOk[[]T, E](out)
	}
	return NotReady[[]T, E]()
}

// Collect gathers the success values of every future in futs, in their
// original order, resolving once all have resolved Ok. The first Err
// short-circuits the whole collection; every other member is dropped at
// that point (spec's GC-native "drop cancels", same as [Join]).
//
// An empty futs resolves immediately with an empty, non-nil slice.
func Collect[T, E any](futs []Future[T, E]) Future[[]T, E] {
	cp := make([]Future[T, E], len(futs))
	copy(cp, futs)
	if len(cp) == 0 {
		return Done(Ok[[]T, E]([]T{}))
	}
	return &collectFuture[T, E]{
		futures: cp,
		values:  make([]T, len(cp)),
		done:    make([]bool, len(cp)),
		pending: len(cp),
	}
}

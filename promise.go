package futures

// Promise is the future half of a producer/consumer pair created by
// [NewPromise]: a future that resolves once its paired [Complete] sends a
// value, or resolves with the error passed to [Complete.Cancel] (spec
// §4.6). A Complete that is dropped without Send or Cancel leaves its
// Promise NotReady. It is built directly on [Slot] rather than introducing a
// second coordination primitive.
type Promise[T, E any] struct {
	slot       *Slot[Result[T, E]]
	tok        SlotToken
	have       bool
	registered bool
}

// NewPromise returns a connected (Promise, Complete) pair: a single
// producer (Complete) handing exactly one [Result] to a single consumer
// (Promise), the same shape as eventloop's promise.go but
// generalized to the Future poll contract instead of a callback.
func NewPromise[T, E any]() (*Promise[T, E], *Complete[T, E]) {
	s := NewSlot[Result[T, E]](WithSlotName("promise"))
	return &Promise[T, E]{slot: s}, &Complete[T, E]{slot: s}
}

// Poll implements [Future].
func (p *Promise[T, E]) Poll(t *Task) PollResult[T, E] {
	if p.have {
		logPolledAfterComplete("promise")
		return NotReady[T, E]()
	}
	if v, ok := p.slot.TryConsume(); ok {
		p.have = true
		p.slot = nil
		return v.Poll(nil)
	}
	if !p.registered {
		handle := t.Handle()
		token := t.NewToken()
		tok, err := p.slot.OnFull(func() { handle.Notify(token) })
		if err == nil {
			p.tok = tok
			p.registered = true
		}
	}
	return NotReady[T, E]()
}

// Complete is the producer half of a [NewPromise] pair. Exactly one of
// Send or Cancel should be called; calling either a second time, or
// calling both, has no effect beyond the first.
type Complete[T, E any] struct {
	slot *Slot[Result[T, E]]
}

// Send resolves the paired Promise with r. Returns false if the Promise
// side has already been resolved (by a previous Send or Cancel).
func (c *Complete[T, E]) Send(r Result[T, E]) bool {
	if c.slot == nil {
		return false
	}
	ok := c.slot.TryProduce(r)
	if ok {
		c.slot = nil
	}
	return ok
}

// Cancel resolves the paired Promise with err, for producers that are
// abandoning the computation rather than completing it normally. Callers
// whose E is the plain error type conventionally pass [Canceled].
func (c *Complete[T, E]) Cancel(err E) bool {
	return c.Send(Err[T, E](err))
}

package futures

// chainFuture is the shared machinery behind [Then], [AndThen], and
// [OrElse]: poll a first future to completion, then hand its result to a
// continuation function that produces a second future to poll in its
// place. Once the second future is running, the chainFuture forwards
// every poll to it directly - this is the tailcall compaction spec §4.5
// calls out: a chain of N Thens collapses to O(1) poll-stack depth once
// each stage resolves, rather than growing a new wrapper per stage.
//
// step distinguishes the three spec combinators: Then always chains
// (regardless of Ok/Err) by calling its continuation; AndThen and OrElse
// short-circuit by having step itself return a [Done] future wrapping the
// unchanged result, so the Poll plumbing below never has to know
// which of the three it is implementing.
type chainFuture[T, E, U, F any] struct {
	first  Future[T, E]
	step   func(PollResult[T, E]) Future[U, F]
	second Future[U, F]
}

func newChain[T, E, U, F any](first Future[T, E], step func(PollResult[T, E]) Future[U, F]) *chainFuture[T, E, U, F] {
	return &chainFuture[T, E, U, F]{first: first, step: step}
}

// Poll implements [Future].
func (c *chainFuture[T, E, U, F]) Poll(t *Task) PollResult[U, F] {
	if c.second != nil {
		return c.second.Poll(t)
	}
	r := c.first.Poll(t)
	if !r.IsReady() {
		return NotReady[U, F]()
	}
	c.first = nil
	c.second = c.step(r)
	c.step = nil
	return c.second.Poll(t)
}

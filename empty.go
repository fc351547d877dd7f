package futures

// emptyFuture never resolves: every poll returns NotReady, and it never
// schedules a wakeup. It serves as a placeholder operand, for example a
// [Select] or [SelectAll] branch guaranteed never to win a race (spec
// §4.1, "never resolves").
type emptyFuture[T, E any] struct{}

// Poll implements [Future].
func (emptyFuture[T, E]) Poll(*Task) PollResult[T, E] { return NotReady[T, E]() }

// Empty returns a future that never resolves and never wakes its task.
// Combining it with anything via [Select] or [Join] means that combinator
// can only ever resolve through its other branch(es).
func Empty[T, E any]() Future[T, E] {
	return emptyFuture[T, E]{}
}

package futures

// storeFuture inserts its value into the Task's local arena on first poll
// and resolves to the [TaskData] key that names it (spec §4.6: "store(v) -
// inserts v into the task's local storage on first poll; resolves to its
// TaskData key"). Grounded on the same first-poll-does-the-work shape as
// [lazyFuture], specialized to [Insert] instead of an arbitrary closure.
type storeFuture[T, E any] struct {
	v      T
	key    TaskData[T]
	stored bool
}

// Poll implements [Future]. Inserting a value can never itself fail, so
// this always resolves Ok; re-polling after resolution returns the same
// key rather than inserting v a second time.
func (f *storeFuture[T, E]) Poll(t *Task) PollResult[TaskData[T], E] {
	if !f.stored {
		f.key = Insert(t, f.v)
		f.stored = true
	}
	return ReadyOk[TaskData[T], E](f.key)
}

// Store constructs a future that, on its first poll, inserts v into the
// polling Task's local arena (see [Insert]) and resolves to the resulting
// [TaskData] key, ready for later exclusive access via [With].
func Store[T, E any](v T) Future[TaskData[T], E] {
	return &storeFuture[T, E]{v: v}
}

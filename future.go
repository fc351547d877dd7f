package futures

// Future is the core abstraction of this package: a deferred computation
// driven by repeated Poll calls from a [Task]'s owning executor (spec §3).
//
// Contract:
//   - Poll never blocks. It returns immediately, either with a resolved
//     [PollResult] or with NotReady.
//   - A NotReady result is only meaningful if the future has, by the time
//     it returns, arranged for t's [TaskHandle] to be notified once
//     progress becomes possible (directly, or transitively through every
//     child future it polled).
//   - Once a Future has returned a ready PollResult, polling it again is a
//     contract violation: behavior is undefined except through [Fuse],
//     which makes repeated polling after completion safe by returning
//     NotReady forever.
type Future[T, E any] interface {
	Poll(t *Task) PollResult[T, E]
}

// FutureFunc adapts a plain poll function to the [Future] interface,
// mirroring the frequent *Func adapter idiom this package uses for single-method
// interfaces.
type FutureFunc[T, E any] func(t *Task) PollResult[T, E]

// Poll implements [Future].
func (f FutureFunc[T, E]) Poll(t *Task) PollResult[T, E] { return f(t) }

// IntoFuture is implemented by types that have a canonical conversion into
// a [Future] (spec §3's IntoFuture device). [Result] is the prototypical
// example: it converts directly into an already-resolved future without
// needing a poll loop. The combinator constructors in this package take a
// Future, not an IntoFuture.
type IntoFuture[T, E any] interface {
	IntoFuture() Future[T, E]
}

// asFuture resolves any combination of Future and IntoFuture to a concrete
// Future, panicking on any other value. Nothing in this package calls it.
func asFuture[T, E any](v any) Future[T, E] {
	switch f := v.(type) {
	case Future[T, E]:
		return f
	case IntoFuture[T, E]:
		return f.IntoFuture()
	default:
		panic("futures: value is neither a Future nor an IntoFuture")
	}
}

// Result is a resolved value: either a success of type T or an error of
// type E. It implements [Future] directly, and its [IntoFuture] method
// returns the Result itself as an already-complete future - the bridge
// spec §3 describes between plain values and the Future algebra.
type Result[T, E any] struct {
	ok  bool
	val T
	err E
}

// Ok wraps a success value as a resolved Result.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{ok: true, val: v}
}

// Err wraps an error value as a resolved Result.
func Err[T, E any](err E) Result[T, E] {
	return Result[T, E]{ok: false, err: err}
}

// IsOk reports whether the Result holds a success value.
func (r Result[T, E]) IsOk() bool { return r.ok }

// Value returns the success value and true, or the zero value and false.
func (r Result[T, E]) Value() (T, bool) {
	if !r.ok {
		var zero T
		return zero, false
	}
	return r.val, true
}

// Err returns the error value and true, or the zero value and false.
func (r Result[T, E]) Err() (E, bool) {
	if r.ok {
		var zero E
		return zero, false
	}
	return r.err, true
}

// Poll implements [Future] directly: a Result is already resolved, so it
// never returns NotReady.
func (r Result[T, E]) Poll(*Task) PollResult[T, E] {
	if r.ok {
		return ReadyOk[T, E](r.val)
	}
	return ReadyErr[T, E](r.err)
}

// IntoFuture implements [IntoFuture].
func (r Result[T, E]) IntoFuture() Future[T, E] { return r }

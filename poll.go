// Package futures implements a composable, poll-driven futures algebra:
// a small set of combinators that build trees of deferred computations
// without per-node callback indirection. A [Future] is driven by repeated
// calls to Poll from an executor (see the sibling executor package); it
// never blocks and never spawns goroutines on its own.
package futures

// pollState tags the three possible outcomes of polling a [Future].
type pollState uint8

const (
	pollNotReady pollState = iota
	pollOk
	pollErr
)

// PollResult is the tri-state outcome of polling a [Future]: not yet ready,
// resolved with a value, or resolved with an error. Once a PollResult
// reports IsReady, the future that produced it is considered completed;
// polling it again is a contract violation (see [Fuse] for the one
// sanctioned exception).
type PollResult[T, E any] struct {
	state pollState
	value T
	err   E
}

// NotReady constructs the not-yet-resolved PollResult.
func NotReady[T, E any]() PollResult[T, E] {
	return PollResult[T, E]{state: pollNotReady}
}

// ReadyOk constructs a successfully resolved PollResult.
func ReadyOk[T, E any](v T) PollResult[T, E] {
	return PollResult[T, E]{state: pollOk, value: v}
}

// ReadyErr constructs an erroneously resolved PollResult.
func ReadyErr[T, E any](err E) PollResult[T, E] {
	return PollResult[T, E]{state: pollErr, err: err}
}

// IsReady reports whether the result is either Ok or Err (as opposed to
// NotReady).
func (p PollResult[T, E]) IsReady() bool {
	return p.state != pollNotReady
}

// IsOk reports whether the result resolved successfully.
func (p PollResult[T, E]) IsOk() bool {
	return p.state == pollOk
}

// IsErr reports whether the result resolved with an error.
func (p PollResult[T, E]) IsErr() bool {
	return p.state == pollErr
}

// Value returns the success value and true if the result is Ok; otherwise
// the zero value and false.
func (p PollResult[T, E]) Value() (T, bool) {
	if p.state != pollOk {
		var zero T
		return zero, false
	}
	return p.value, true
}

// Err returns the error value and true if the result is Err; otherwise the
// zero value and false.
func (p PollResult[T, E]) Err() (E, bool) {
	if p.state != pollErr {
		var zero E
		return zero, false
	}
	return p.err, true
}

// MapPoll transforms the success payload of a ready PollResult, leaving
// NotReady and Err untouched. It is the PollResult-level analogue of
// [Map].
func MapPoll[T, U, E any](p PollResult[T, E], f func(T) U) PollResult[U, E] {
	switch p.state {
	case pollOk:
		return ReadyOk[U, E](f(p.value))
	case pollErr:
		return ReadyErr[U, E](p.err)
	default:
		return NotReady[U, E]()
	}
}

// MapPollErr transforms the error payload of a ready PollResult, leaving
// NotReady and Ok untouched.
func MapPollErr[T, E, F any](p PollResult[T, E], f func(E) F) PollResult[T, F] {
	switch p.state {
	case pollOk:
		return ReadyOk[T, F](p.value)
	case pollErr:
		return ReadyErr[T, F](f(p.err))
	default:
		return NotReady[T, F]()
	}
}

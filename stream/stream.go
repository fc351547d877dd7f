// Package stream generalizes the poll contract in the parent futures
// package from "resolves once" to "resolves zero or more times, then
// ends": a Stream is to a Future what an iterator is to a single value.
// It shares the same Task/TaskHandle substrate, so a Stream and a Future
// can be composed (joined, selected) within the same executor loop.
package stream

import futures "github.com/joeycumines/go-futures"

// Maybe is the tri-plus-one-state outcome of polling a [Stream]: it adds
// "the stream has ended" to [futures.PollResult]'s not-ready/ok/err states
// (spec's Stream module, generalizing PollResult the way Rust's
// futures-rs Stream::Poll generalizes Future::Poll with an Option-wrapped
// item).
type Maybe[T, E any] struct {
	result futures.PollResult[futures.Result[T, E], E]
	ended  bool
}

// NotReady reports that the Stream has not produced an item yet, but has
// not ended either.
func NotReady[T, E any]() Maybe[T, E] {
	return Maybe[T, E]{result: futures.NotReady[futures.Result[T, E], E]()}
}

// Item reports a successfully produced value.
func Item[T, E any](v T) Maybe[T, E] {
	return Maybe[T, E]{result: futures.ReadyOk[futures.Result[T, E], E](futures.Ok[T, E](v))}
}

// Fail reports a stream-ending error.
func Fail[T, E any](err E) Maybe[T, E] {
	return Maybe[T, E]{result: futures.ReadyErr[futures.Result[T, E], E](err)}
}

// Ended reports that the stream is exhausted: no further poll will ever
// produce an item. Polling an already-Ended stream again is a contract
// violation, mirroring [futures.Future]'s "polling after completion" rule.
func Ended[T, E any]() Maybe[T, E] {
	return Maybe[T, E]{ended: true}
}

// IsReady reports whether the Maybe carries a decision at all (item,
// error, or end), as opposed to NotReady.
func (m Maybe[T, E]) IsReady() bool {
	return m.ended || m.result.IsReady()
}

// IsEnded reports whether the stream has ended.
func (m Maybe[T, E]) IsEnded() bool { return m.ended }

// Value returns the produced item and true, if this Maybe carries one.
func (m Maybe[T, E]) Value() (T, bool) {
	r, ok := m.result.Value()
	if !ok {
		var zero T
		return zero, false
	}
	return r.Value()
}

// Err returns the stream-ending error and true, if this Maybe carries one.
func (m Maybe[T, E]) Err() (E, bool) {
	if v, ok := m.result.Value(); ok {
		return v.Err()
	}
	return m.result.Err()
}

// Stream is a poll-driven sequence of values, sharing the Task-based
// scheduling contract [futures.Future] uses: Poll never blocks, and a
// NotReady result is only meaningful once the stream has arranged for
// t's TaskHandle to be notified when the next item (or end) is available.
type Stream[T, E any] interface {
	Poll(t *futures.Task) Maybe[T, E]
}

// StreamFunc adapts a plain poll function to the [Stream] interface.
type StreamFunc[T, E any] func(t *futures.Task) Maybe[T, E]

// Poll implements [Stream].
func (f StreamFunc[T, E]) Poll(t *futures.Task) Maybe[T, E] { return f(t) }

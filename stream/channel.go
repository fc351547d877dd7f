package stream

import (
	"sync/atomic"

	futures "github.com/joeycumines/go-futures"
)

// channelItem is what flows through a Channel's underlying Slot: either a
// value, an error, or the closed marker.
type channelItem[T, E any] struct {
	closed bool
	value  T
	err    E
	isErr  bool
}

// chanState is the coordination shared by a [Sender]/[Receiver] pair: the
// single-cell [futures.Slot] handoff plus an abandonment flag in each
// direction. Go has no destructor to hook "dropping the Receiver cancels
// pending sends" (spec §4.8) to, so abandonment is an explicit call
// ([Receiver.Abandon]) rather than a GC-triggered one - the same deliberate
// narrowing already recorded for [futures.Complete.Cancel] in DESIGN.md.
type chanState[T, E any] struct {
	slot         *futures.Slot[channelItem[T, E]]
	senderClosed atomic.Bool
	receiverGone atomic.Bool
}

// Sender is the producer half of a [Channel]: a capacity-1 handoff built
// directly on [futures.Slot], the same way [futures.Promise]/
// [futures.Complete] are, generalized from "exactly one value" to "zero or
// more values, then Close" (spec's Stream channel, grounded on the
// teacher's longpoll.Channel - a receive loop over a plain Go channel -
// but rebuilt atop the poll contract's own Slot instead of a native
// channel, so it composes with the rest of this package without an
// executor goroutine in between).
type Sender[T, E any] struct {
	st *chanState[T, E]
}

// TrySend deposits v into the channel immediately, without waiting for
// flow control, returning false if the slot is already full (a previous
// item hasn't been consumed yet) or the receiver is gone. Prefer [Send]
// for the backpressured, spec-shaped API; TrySend exists for callers that
// want to poll-and-retry on their own terms instead of driving a future.
func (s *Sender[T, E]) TrySend(v T) bool {
	if s.st.receiverGone.Load() {
		return false
	}
	return s.st.slot.TryProduce(channelItem[T, E]{value: v})
}

// TrySendErr deposits an error item, ending the stream with that error
// once the consumer observes it.
func (s *Sender[T, E]) TrySendErr(err E) bool {
	if s.st.receiverGone.Load() {
		return false
	}
	return s.st.slot.TryProduce(channelItem[T, E]{err: err, isErr: true})
}

// Close deposits the closed marker, ending the stream normally once the
// consumer observes it.
func (s *Sender[T, E]) Close() bool {
	if s.st.senderClosed.Swap(true) {
		return false
	}
	return s.st.slot.TryProduce(channelItem[T, E]{closed: true})
}

// Send returns a [futures.Future] that deposits r into the channel and
// resolves to s again once the receiver has consumed it - the flow-control
// shape spec §4.8 describes ("Sender::send(...) -> Future<Sender>"). A
// caller that awaits each Send before issuing the next is guaranteed never
// to overrun the capacity-1 slot. If the receiver has been abandoned (see
// [Receiver.Abandon]), the returned future resolves with E's zero value as
// the error instead of placing the item, since there is no receiver left
// to consume it.
func (s *Sender[T, E]) Send(r futures.Result[T, E]) futures.Future[*Sender[T, E], E] {
	item := channelItem[T, E]{}
	if v, ok := r.Value(); ok {
		item.value = v
	} else {
		e, _ := r.Err()
		item.err, item.isErr = e, true
	}
	return &sendFuture[T, E]{s: s, item: item}
}

type sendFuture[T, E any] struct {
	s          *Sender[T, E]
	item       channelItem[T, E]
	placed     bool
	registered bool
}

// Poll implements [futures.Future].
func (f *sendFuture[T, E]) Poll(t *futures.Task) futures.PollResult[*Sender[T, E], E] {
	if f.s.st.receiverGone.Load() {
		var zero E
		return futures.ReadyErr[*Sender[T, E], E](zero)
	}
	if !f.placed {
		if !f.s.st.slot.TryProduce(f.item) {
			f.schedule(t)
			return futures.NotReady[*Sender[T, E], E]()
		}
		f.placed = true
	}
	if f.s.st.slot.IsFull() {
		f.schedule(t)
		return futures.NotReady[*Sender[T, E], E]()
	}
	return futures.ReadyOk[*Sender[T, E], E](f.s)
}

func (f *sendFuture[T, E]) schedule(t *futures.Task) {
	if f.registered {
		return
	}
	handle := t.Handle()
	token := t.NewToken()
	if _, err := f.s.st.slot.OnEmpty(func() { handle.Notify(token) }); err == nil {
		f.registered = true
	}
}

// Receiver is the [Stream] half of a [Channel] pair.
type Receiver[T, E any] struct {
	st         *chanState[T, E]
	registered bool
}

// Poll implements [Stream].
func (r *Receiver[T, E]) Poll(t *futures.Task) Maybe[T, E] {
	v, ok := r.st.slot.TryConsume()
	if !ok {
		if !r.registered {
			handle := t.Handle()
			token := t.NewToken()
			if _, err := r.st.slot.OnFull(func() { handle.Notify(token) }); err == nil {
				r.registered = true
			}
		}
		return NotReady[T, E]()
	}
	r.registered = false
	if v.closed {
		return Ended[T, E]()
	}
	if v.isErr {
		return Fail[T, E](v.err)
	}
	return Item[T, E](v.value)
}

// Abandon marks the Receiver as gone: every pending or future [Sender.Send]
// fails immediately instead of waiting for an item that will never be
// consumed (spec §4.8, "dropping the Receiver cancels pending sends"). Call
// it explicitly when discarding a Receiver before it reaches end-of-stream.
func (r *Receiver[T, E]) Abandon() {
	r.st.receiverGone.Store(true)
}

// Channel returns a connected (Sender, Receiver) pair forming a capacity-1
// item channel: each item sent must be received before the next Send
// succeeds, the same backpressure [futures.Slot] already provides for a
// single value, extended here across a whole sequence.
func Channel[T, E any]() (*Sender[T, E], *Receiver[T, E]) {
	st := &chanState[T, E]{slot: futures.NewSlot[channelItem[T, E]](futures.WithSlotName("stream-channel"))}
	return &Sender[T, E]{st: st}, &Receiver[T, E]{st: st}
}

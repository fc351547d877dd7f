package futures

import "errors"

// ErrCallbackSlotOccupied is returned by [Slot.OnFull] or [Slot.OnEmpty]
// when a callback of that flavor is already registered. This is a
// resource-exhaustion failure (spec §7 point 4): it is reported directly to
// the caller of the registration call, never threaded through a
// [PollResult].
var ErrCallbackSlotOccupied = errors.New("futures: callback slot already occupied")

type slotState uint8

const (
	slotEmpty slotState = iota
	slotFull
	slotEmptyWaitingFull // empty, with an on-full callback registered
	slotFullWaitingEmpty // full, with an on-empty callback registered
)

type tokenFlavor uint8

const (
	tokenFull tokenFlavor = iota
	tokenEmpty
)

// SlotToken identifies a registered [Slot] callback for cancellation via
// [Slot.Cancel]. The zero value is never returned by a successful
// registration and is safe to pass to Cancel as a no-op.
type SlotToken struct {
	flavor tokenFlavor
	gen    uint64
}

// Slot is a single-cell handoff between at most one producer and one
// consumer. It is the coordination primitive underlying [Promise] and the
// stream channel (spec §4.2); the join/select combinators reach it only
// through such children.
//
// A Slot guards its state with a [tryLock] rather than a full mutex: the
// critical sections here are a handful of field writes plus, at most, the
// synchronous invocation of one previously-registered callback - never a
// blocking call.
type Slot[T any] struct {
	mu       tryLock
	name     string
	state    slotState
	value    T
	onFull   func()
	onEmpty  func()
	fullGen  uint64
	emptyGen uint64
}

// NewSlot returns an empty Slot.
func NewSlot[T any](opts ...SlotOption) *Slot[T] {
	cfg := resolveSlotOptions(opts)
	return &Slot[T]{name: cfg.name}
}

// TryProduce succeeds, filling the slot with v, iff the slot was empty. If a
// callback was registered via OnFull, it fires synchronously, on this
// goroutine, before TryProduce returns.
func (s *Slot[T]) TryProduce(v T) bool {
	s.mu.Lock()
	if s.state == slotFull || s.state == slotFullWaitingEmpty {
		s.mu.Unlock()
		return false
	}
	fire := s.state == slotEmptyWaitingFull
	cb := s.onFull
	s.onFull = nil
	s.value = v
	s.state = slotFull
	s.mu.Unlock()

	if fire && cb != nil {
		cb()
	}
	return true
}

// TryConsume succeeds, emptying the slot and returning its value, iff the
// slot was full. If a callback was registered via OnEmpty, it fires
// synchronously before TryConsume returns.
func (s *Slot[T]) TryConsume() (T, bool) {
	s.mu.Lock()
	if s.state == slotEmpty || s.state == slotEmptyWaitingFull {
		s.mu.Unlock()
		var zero T
		return zero, false
	}
	fire := s.state == slotFullWaitingEmpty
	cb := s.onEmpty
	s.onEmpty = nil
	v := s.value
	var zero T
	s.value = zero
	s.state = slotEmpty
	s.mu.Unlock()

	if fire && cb != nil {
		cb()
	}
	return v, true
}

// OnFull registers cb to run exactly once, as soon as the slot next becomes
// full. If the slot is already full, cb runs immediately, inline, and no
// token is needed. If another on-full callback is already pending,
// ErrCallbackSlotOccupied is returned and cb is not registered.
func (s *Slot[T]) OnFull(cb func()) (SlotToken, error) {
	s.mu.Lock()
	switch s.state {
	case slotFull, slotFullWaitingEmpty:
		s.mu.Unlock()
		cb()
		return SlotToken{}, nil
	case slotEmptyWaitingFull:
		s.mu.Unlock()
		logSlotCallbackOccupied(s.name, "on_full")
		return SlotToken{}, ErrCallbackSlotOccupied
	default:
		s.fullGen++
		gen := s.fullGen
		s.onFull = cb
		s.state = slotEmptyWaitingFull
		s.mu.Unlock()
		return SlotToken{flavor: tokenFull, gen: gen}, nil
	}
}

// OnEmpty registers cb to run exactly once, as soon as the slot next becomes
// empty. Symmetric to OnFull.
func (s *Slot[T]) OnEmpty(cb func()) (SlotToken, error) {
	s.mu.Lock()
	switch s.state {
	case slotEmpty, slotEmptyWaitingFull:
		s.mu.Unlock()
		cb()
		return SlotToken{}, nil
	case slotFullWaitingEmpty:
		s.mu.Unlock()
		logSlotCallbackOccupied(s.name, "on_empty")
		return SlotToken{}, ErrCallbackSlotOccupied
	default:
		s.emptyGen++
		gen := s.emptyGen
		s.onEmpty = cb
		s.state = slotFullWaitingEmpty
		s.mu.Unlock()
		return SlotToken{flavor: tokenEmpty, gen: gen}, nil
	}
}

// Cancel best-effort removes a not-yet-fired callback registered by OnFull
// or OnEmpty. Racing with the transition that would have fired it is
// allowed; the firing wins and Cancel becomes a no-op.
func (s *Slot[T]) Cancel(token SlotToken) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch token.flavor {
	case tokenFull:
		if s.state == slotEmptyWaitingFull && s.fullGen == token.gen {
			s.onFull = nil
			s.state = slotEmpty
		}
	case tokenEmpty:
		if s.state == slotFullWaitingEmpty && s.emptyGen == token.gen {
			s.onEmpty = nil
			s.state = slotFull
		}
	}
}

// IsFull reports whether the slot currently holds a value. This is a
// point-in-time snapshot; the result may be stale by the time the caller
// acts on it.
func (s *Slot[T]) IsFull() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state == slotFull || s.state == slotFullWaitingEmpty
}

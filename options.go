package futures

// This file holds package-wide functional options shared across more than
// one constructor. Per-constructor option sets (e.g. TaskOption in
// task.go) live alongside the type they configure; anything here is
// genuinely cross-cutting. Grounded on eventloop/options.go's
// LoopOption pattern: an unexported config struct, a functional-option
// interface wrapping a closure, and a resolve helper that tolerates nil
// entries so callers can conditionally append options.

// SlotOption configures a [Slot].
type SlotOption interface {
	applySlot(*slotOptions)
}

type slotOptions struct {
	name string
}

type slotOptionFunc func(*slotOptions)

func (f slotOptionFunc) applySlot(o *slotOptions) { f(o) }

// WithSlotName attaches a diagnostic name to a Slot, included in log
// entries emitted when a callback registration is rejected (see
// [logSlotCallbackOccupied]).
func WithSlotName(name string) SlotOption {
	return slotOptionFunc(func(o *slotOptions) { o.name = name })
}

func resolveSlotOptions(opts []SlotOption) slotOptions {
	var cfg slotOptions
	for _, o := range opts {
		if o == nil {
			continue
		}
		o.applySlot(&cfg)
	}
	return cfg
}

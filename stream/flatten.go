package stream

import futures "github.com/joeycumines/go-futures"

type flattenStream[T, E any] struct {
	outer Stream[Stream[T, E], E]
	inner Stream[T, E]
}

// Poll implements [Stream]: drains each inner stream produced by outer to
// completion before requesting the next one.
func (f *flattenStream[T, E]) Poll(t *futures.Task) Maybe[T, E] {
	for {
		if f.inner != nil {
			m := f.inner.Poll(t)
			if !m.IsReady() {
				return NotReady[T, E]()
			}
			if !m.IsEnded() {
				return m
			}
			f.inner = nil
			continue
		}

		m := f.outer.Poll(t)
		if !m.IsReady() {
			return NotReady[T, E]()
		}
		if m.IsEnded() {
			return Ended[T, E]()
		}
		next, ok := m.Value()
		if !ok {
			err, _ := m.Err()
			return Fail[T, E](err)
		}
		f.inner = next
	}
}

// Flatten concatenates a stream of streams into a single stream, item
// order preserved within and across each inner stream.
func Flatten[T, E any](outer Stream[Stream[T, E], E]) Stream[T, E] {
	return &flattenStream[T, E]{outer: outer}
}

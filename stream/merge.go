package stream

import futures "github.com/joeycumines/go-futures"

// mergeStream interleaves items from a fixed set of homogeneous streams,
// in whichever order they happen to produce them, ending only once every
// source stream has ended.
type mergeStream[T, E any] struct {
	sources []Stream[T, E]
}

// Poll implements [Stream]. Every still-live source is polled once per
// cycle, in order; the first to produce an item wins that cycle, and
// sources that end are dropped from future cycles.
func (m *mergeStream[T, E]) Poll(t *futures.Task) Maybe[T, E] {
	i := 0
	for i < len(m.sources) {
		s := m.sources[i]
		r := s.Poll(t)
		switch {
		case !r.IsReady():
			i++
		case r.IsEnded():
			m.sources = append(m.sources[:i], m.sources[i+1:]...)
		default:
			return r
		}
	}
	if len(m.sources) == 0 {
		return Ended[T, E]()
	}
	return NotReady[T, E]()
}

// Merge interleaves items from every stream in sources as they become
// available, ending once all of them have ended.
func Merge[T, E any](sources ...Stream[T, E]) Stream[T, E] {
	cp := make([]Stream[T, E], len(sources))
	copy(cp, sources)
	return &mergeStream[T, E]{sources: cp}
}

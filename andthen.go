package futures

// AndThen chains f to run only if the receiver resolves Ok; an Err result
// short-circuits straight through unchanged, without calling f (spec
// §4.5, the Future analogue of Result.and_then).
func AndThen[T, E, U any](first Future[T, E], f func(T) Future[U, E]) Future[U, E] {
	return newChain(first, func(r PollResult[T, E]) Future[U, E] {
		if v, ok := r.Value(); ok {
			return f(v)
		}
		err, _ := r.Err()
		return Done(Err[U, E](err))
	})
}

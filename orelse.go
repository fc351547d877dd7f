package futures

// OrElse chains f to run only if the receiver resolves Err; an Ok result
// short-circuits straight through unchanged, without calling f (spec
// §4.5, the Future analogue of Result.or_else).
func OrElse[T, E, F any](first Future[T, E], f func(E) Future[T, F]) Future[T, F] {
	return newChain(first, func(r PollResult[T, E]) Future[T, F] {
		if err, ok := r.Err(); ok {
			return f(err)
		}
		v, _ := r.Value()
		return Done(Ok[T, F](v))
	})
}

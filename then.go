package futures

// Then chains f to run, regardless of whether the receiver resolves Ok or
// Err, once it completes. f receives the full [PollResult] and returns the
// next future to poll in its place (spec §4.5). Unlike [AndThen]/[OrElse],
// Then always calls f - it never short-circuits.
func Then[T, E, U, F any](first Future[T, E], f func(PollResult[T, E]) Future[U, F]) Future[U, F] {
	return newChain(first, f)
}

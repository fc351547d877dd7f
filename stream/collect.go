package stream

import futures "github.com/joeycumines/go-futures"

// Collect drains s into a slice, resolving as a [futures.Future] once s
// ends; it is Fold specialized to slice-append, the Stream-to-Future
// mirror of [futures.Collect]'s Future-slice-to-Future form.
func Collect[T, E any](s Stream[T, E]) futures.Future[[]T, E] {
	return Fold(s, []T(nil), func(acc []T, v T) []T {
		return append(acc, v)
	})
}

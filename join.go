package futures

// joinPair is the shared result of [Join]: the two success values, once
// both branches resolve Ok.
type joinPair[A, B any] struct {
	A A
	B B
}

// joinFuture polls every branch once per poll call, as long as it hasn't
// resolved yet, and completes only once every branch has resolved Ok. The
// first branch to resolve Err wins the race and completes the join
// immediately: every other branch is dropped right there (its field is
// nil'd, so the join stops polling, and hence stops retaining, it), which
// is this package's GC-native reading of "drop cancels" (spec §5).
type joinFuture[A, B, E any] struct {
	a    Future[A, E]
	b    Future[B, E]
	aVal A
	bVal B
	aOK  bool
	bOK  bool
}

// Poll implements [Future].
func (j *joinFuture[A, B, E]) Poll(t *Task) PollResult[joinPair[A, B], E] {
	if !j.aOK && j.a != nil {
		r := j.a.Poll(t)
		if r.IsErr() {
			err, _ := r.Err()
			j.a, j.b = nil, nil
			return ReadyErr[joinPair[A, B], E](err)
		}
		if v, ok := r.Value(); ok {
			j.aVal, j.aOK = v, true
			j.a = nil
		}
	}
	if !j.bOK && j.b != nil {
		r := j.b.Poll(t)
		if r.IsErr() {
			err, _ := r.Err()
			j.a, j.b = nil, nil
			return ReadyErr[joinPair[A, B], E](err)
		}
		if v, ok := r.Value(); ok {
			j.bVal, j.bOK = v, true
			j.b = nil
		}
	}
	if j.aOK && j.bOK {
		return ReadyOk[joinPair[A, B], E](joinPair[A, B]{A: j.aVal, B: j.bVal})
	}
	return NotReady[joinPair[A, B], E]()
}

// Join polls a and b concurrently (from the executor's point of view -
// each poll call advances whichever of the two hasn't yet resolved) and
// resolves once both have resolved Ok, or as soon as either resolves Err
// (spec §4.4).
func Join[A, B, E any](a Future[A, E], b Future[B, E]) Future[joinPair[A, B], E] {
	return &joinFuture[A, B, E]{a: a, b: b}
}

type joinTriple[A, B, C any] struct {
	A A
	B B
	C C
}

// Join3 is [Join] generalized to three branches.
func Join3[A, B, C, E any](a Future[A, E], b Future[B, E], c Future[C, E]) Future[joinTriple[A, B, C], E] {
	pair := Join(Join(a, b), c)
	return Map(pair, func(v joinPair[joinPair[A, B], C]) joinTriple[A, B, C] {
		return joinTriple[A, B, C]{A: v.A.A, B: v.A.B, C: v.B}
	})
}

type joinQuad[A, B, C, D any] struct {
	A A
	B B
	C C
	D D
}

// Join4 is [Join] generalized to four branches.
func Join4[A, B, C, D, E any](a Future[A, E], b Future[B, E], c Future[C, E], d Future[D, E]) Future[joinQuad[A, B, C, D], E] {
	q := Join(Join(a, b), Join(c, d))
	return Map(q, func(v joinPair[joinPair[A, B], joinPair[C, D]]) joinQuad[A, B, C, D] {
		return joinQuad[A, B, C, D]{A: v.A.A, B: v.A.B, C: v.B.A, D: v.B.B}
	})
}

type joinQuint[A, B, C, D, X any] struct {
	A A
	B B
	C C
	D D
	X X
}

// Join5 is [Join] generalized to five branches.
func Join5[A, B, C, D, X, E any](a Future[A, E], b Future[B, E], c Future[C, E], d Future[D, E], x Future[X, E]) Future[joinQuint[A, B, C, D, X], E] {
	q := Join(Join4(a, b, c, d), x)
	return Map(q, func(v joinPair[joinQuad[A, B, C, D], X]) joinQuint[A, B, C, D, X] {
		return joinQuint[A, B, C, D, X]{A: v.A.A, B: v.A.B, C: v.A.C, D: v.A.D, X: v.B}
	})
}

package futures

// SelectOutcome is the result of a [Select]: whichever of the two
// operands resolved first, plus the other one, still live and pollable,
// for the caller to keep driving if desired (spec §4.4 - select "returns
// the winner together with the loser, rather than discarding it").
type SelectOutcome[T, E any] struct {
	Result PollResult[T, E]
	Other  Future[T, E]
	Index  int // 0 if the first operand won, 1 if the second did
}

type selectFuture[T, E any] struct {
	a, b Future[T, E]
}

// Poll implements [Future]. Both operands are polled every cycle until one
// resolves; the moment one does, the other is handed back to the caller
// through SelectOutcome.Other rather than being dropped, matching the
// original select semantics of preserving the loser.
func (s *selectFuture[T, E]) Poll(t *Task) PollResult[SelectOutcome[T, E], E] {
	if ra := s.a.Poll(t); ra.IsReady() {
		other := s.b
		s.a, s.b = nil, nil
		return ReadyOk[SelectOutcome[T, E], E](SelectOutcome[T, E]{Result: ra, Other: other, Index: 0})
	}
	if rb := s.b.Poll(t); rb.IsReady() {
		other := s.a
		s.a, s.b = nil, nil
		return ReadyOk[SelectOutcome[T, E], E](SelectOutcome[T, E]{Result: rb, Other: other, Index: 1})
	}
	return NotReady[SelectOutcome[T, E], E]()
}

// Select races a against b, resolving as soon as either does, with the
// loser handed back unchanged for the caller to keep polling (spec §4.4).
// Unlike [Join], a Select never itself resolves Err: whichever PollResult
// won the race - Ok or Err - is reported inside SelectOutcome.Result.
func Select[T, E any](a, b Future[T, E]) Future[SelectOutcome[T, E], E] {
	return &selectFuture[T, E]{a: a, b: b}
}

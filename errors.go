package futures

import (
	"errors"
	"fmt"
)

// Canceled is the conventional error to pass to [Complete.Cancel] when a
// [Promise]'s E is error. Dropping a [Complete] without calling Send or
// Cancel does not resolve its Promise with Canceled: the Promise stays
// NotReady.
var Canceled = errors.New("futures: promise canceled")

// AggregateError collects several error causes into one error value. A
// [PollResult] itself only ever carries the first error encountered (spec
// §4.7); no combinator in this package ([Join], [Collect], [SelectAll])
// builds an AggregateError, so one exists only where a caller constructs
// it. Grounded on the teacher's eventloop/errors.go AggregateError,
// adapted from its ES2022 `.cause`-chain flavor to plain errors.Join-style
// unwrapping.
type AggregateError struct {
	// Errors holds every cause collected, in the order given.
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "futures: aggregate error (no causes)"
	}
	return fmt.Sprintf("futures: %d error(s), first: %v", len(e.Errors), e.Errors[0])
}

// Unwrap enables errors.Is/errors.As to match against any collected cause.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// newAggregateError adapts a slice of arbitrary error-ish payloads (a
// combinator's E type parameter need not itself implement error) into an
// AggregateError: causes that implement error are kept as they are, others
// are formatted with %+v. No combinator in this package calls it.
func newAggregateError[E any](causes []E) *AggregateError {
	errs := make([]error, len(causes))
	for i, c := range causes {
		if e, ok := any(c).(error); ok {
			errs[i] = e
		} else {
			errs[i] = fmt.Errorf("%+v", c)
		}
	}
	return &AggregateError{Errors: errs}
}

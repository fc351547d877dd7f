package futures

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAggregateError_Unwrap(t *testing.T) {
	e1 := errors.New("one")
	e2 := errors.New("two")
	agg := &AggregateError{Errors: []error{e1, e2}}

	assert.ErrorIs(t, agg, e1)
	assert.ErrorIs(t, agg, e2)
	assert.Contains(t, agg.Error(), "one")
}

func TestNewAggregateError_NonErrorCause(t *testing.T) {
	agg := newAggregateError([]string{"not-an-error"})
	assert.Len(t, agg.Errors, 1)
	assert.Contains(t, agg.Errors[0].Error(), "not-an-error")
}

func TestNewAggregateError_ErrorCause(t *testing.T) {
	e := errors.New("real")
	agg := newAggregateError([]error{e})
	assert.Same(t, e, agg.Errors[0])
}

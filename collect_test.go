package futures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollect_PreservesOrder(t *testing.T) {
	task := NewTask()
	futs := []Future[int, string]{
		Finished[int, string](1),
		Finished[int, string](2),
		Finished[int, string](3),
	}
	f := Collect(futs)
	r := drive(t, task, f, 1)
	v, ok := r.Value()
	assert.True(t, ok)
	assert.Equal(t, []int{1, 2, 3}, v)
}

func TestCollect_Empty(t *testing.T) {
	task := NewTask()
	f := Collect[int, string](nil)
	r := f.Poll(task)
	v, ok := r.Value()
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestCollect_ShortCircuitsOnErr(t *testing.T) {
	task := NewTask()
	futs := []Future[int, string]{
		Finished[int, string](1),
		Failed[int, string]("bad"),
		Empty[int, string](),
	}
	f := Collect(futs)
	r := drive(t, task, f, 1)
	assert.True(t, r.IsErr())
	e, _ := r.Err()
	assert.Equal(t, "bad", e)
}

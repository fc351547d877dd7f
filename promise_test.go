package futures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPromise_ResolvesAfterSend(t *testing.T) {
	task := NewTask()
	p, c := NewPromise[int, string]()

	r := p.Poll(task)
	assert.False(t, r.IsReady())

	ok := c.Send(Ok[int, string](5))
	assert.True(t, ok)

	r = p.Poll(task)
	v, ok2 := r.Value()
	assert.True(t, ok2)
	assert.Equal(t, 5, v)
}

func TestPromise_CancelDeliversErr(t *testing.T) {
	task := NewTask()
	p, c := NewPromise[int, error]()

	c.Cancel(Canceled)

	r := p.Poll(task)
	err, ok := r.Err()
	assert.True(t, ok)
	assert.Equal(t, Canceled, err)
}

func TestPromise_WakesTaskOnSend(t *testing.T) {
	task := NewTask()
	woken := false
	task.SetWaker(func() { woken = true })

	p, c := NewPromise[int, string]()
	_ = p.Poll(task) // registers the callback

	c.Send(Ok[int, string](1))
	assert.True(t, woken)
}

func TestComplete_SecondSendIsNoop(t *testing.T) {
	_, c := NewPromise[int, string]()
	assert.True(t, c.Send(Ok[int, string](1)))
	assert.False(t, c.Send(Ok[int, string](2)))
}

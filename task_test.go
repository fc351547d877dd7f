package futures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTask_IDDefaultsToUUID(t *testing.T) {
	a := NewTask()
	b := NewTask()
	assert.NotEmpty(t, a.ID())
	assert.NotEqual(t, a.ID(), b.ID())
}

func TestTask_WithTaskID(t *testing.T) {
	task := NewTask(WithTaskID("fixed"))
	assert.Equal(t, "fixed", task.ID())
}

func TestTask_WakeCoalescesPerDormantPeriod(t *testing.T) {
	task := NewTask()
	wakes := 0
	task.SetWaker(func() { wakes++ })

	tok := task.NewToken()
	task.Handle().Notify(tok)
	task.Handle().Notify(tok)
	assert.Equal(t, 1, wakes, "repeated notifications before a drain coalesce to one wake")

	events := task.Events()
	assert.Equal(t, []uint64{tok}, events)

	task.Handle().Notify(tok)
	assert.Equal(t, 2, wakes, "a notification after a drain must wake again")
}

func TestTaskData_InsertAndWith(t *testing.T) {
	task := NewTask()
	key := Insert(task, 10)

	out := With(task, key, func(v *int) int {
		*v += 5
		return *v
	})
	assert.Equal(t, 15, out)

	out2 := With(task, key, func(v *int) int { return *v })
	assert.Equal(t, 15, out2, "mutation through With persists across calls")
}

func TestTaskData_ReentrantAccessPanics(t *testing.T) {
	task := NewTask()
	key := Insert(task, 1)

	assert.Panics(t, func() {
		With(task, key, func(v *int) int {
			return With(task, key, func(v2 *int) int { return *v2 })
		})
	})
}

func TestTaskData_WrongTaskPanics(t *testing.T) {
	a := NewTask()
	b := NewTask()
	key := Insert(a, 1)

	assert.Panics(t, func() {
		With(b, key, func(v *int) int { return *v })
	})
}

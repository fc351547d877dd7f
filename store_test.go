package futures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStore_ResolvesToInsertedKey(t *testing.T) {
	task := NewTask()
	f := Store[string, string]("hello")

	r := f.Poll(task)
	assert.True(t, r.IsReady())
	key, ok := r.Value()
	assert.True(t, ok)

	got := With(task, key, func(p *string) string { return *p })
	assert.Equal(t, "hello", got)
}

func TestStore_RepollReturnsSameKeyWithoutReinserting(t *testing.T) {
	task := NewTask()
	f := Store[int, string](1)

	r1 := f.Poll(task)
	k1, _ := r1.Value()
	r2 := f.Poll(task)
	k2, _ := r2.Value()

	assert.Equal(t, k1, k2)
	assert.Equal(t, 1, len(task.arena.values))
}

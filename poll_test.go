package futures

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPollResult_NotReady(t *testing.T) {
	p := NotReady[int, string]()
	assert.False(t, p.IsReady())
	assert.False(t, p.IsOk())
	assert.False(t, p.IsErr())
	_, ok := p.Value()
	assert.False(t, ok)
	_, ok = p.Err()
	assert.False(t, ok)
}

func TestPollResult_ReadyOk(t *testing.T) {
	p := ReadyOk[int, string](42)
	assert.True(t, p.IsReady())
	assert.True(t, p.IsOk())
	assert.False(t, p.IsErr())
	v, ok := p.Value()
	assert.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestPollResult_ReadyErr(t *testing.T) {
	p := ReadyErr[int, string]("boom")
	assert.True(t, p.IsReady())
	assert.False(t, p.IsOk())
	assert.True(t, p.IsErr())
	err, ok := p.Err()
	assert.True(t, ok)
	assert.Equal(t, "boom", err)
}

func TestMapPoll(t *testing.T) {
	ok := MapPoll(ReadyOk[int, string](2), func(v int) int { return v * 10 })
	v, _ := ok.Value()
	assert.Equal(t, 20, v)

	errResult := MapPoll(ReadyErr[int, string]("x"), func(v int) int { return v * 10 })
	assert.True(t, errResult.IsErr())

	nr := MapPoll(NotReady[int, string](), func(v int) int { return v * 10 })
	assert.False(t, nr.IsReady())
}

func TestMapPollErr(t *testing.T) {
	errResult := MapPollErr(ReadyErr[int, string]("x"), func(e string) string { return e + "!" })
	e, _ := errResult.Err()
	assert.Equal(t, "x!", e)

	ok := MapPollErr(ReadyOk[int, string](1), func(e string) string { return e + "!" })
	assert.True(t, ok.IsOk())
}

package stream

import (
	"testing"

	futures "github.com/joeycumines/go-futures"
	"github.com/stretchr/testify/assert"
)

// sliceStream replays a fixed slice of values, ending after the last one.
type sliceStream[T any] struct {
	items []T
	i     int
}

func (s *sliceStream[T]) Poll(t *futures.Task) Maybe[T, string] {
	if s.i >= len(s.items) {
		return Ended[T, string]()
	}
	v := s.items[s.i]
	s.i++
	return Item[T, string](v)
}

func driveStream[T, E any](t *testing.T, task *futures.Task, s Stream[T, E], maxPolls int) []Maybe[T, E] {
	t.Helper()
	var out []Maybe[T, E]
	for i := 0; i < maxPolls; i++ {
		m := s.Poll(task)
		out = append(out, m)
		if m.IsEnded() {
			break
		}
	}
	return out
}

func TestMap_Stream(t *testing.T) {
	task := futures.NewTask()
	s := Map[int, int](&sliceStream[int]{items: []int{1, 2, 3}}, func(v int) int { return v * 10 })
	results := driveStream[int, string](t, task, s, 4)
	var got []int
	for _, m := range results {
		if v, ok := m.Value(); ok {
			got = append(got, v)
		}
	}
	assert.Equal(t, []int{10, 20, 30}, got)
}

func TestFilter_Stream(t *testing.T) {
	task := futures.NewTask()
	s := Filter[int, string](&sliceStream[int]{items: []int{1, 2, 3, 4, 5}}, func(v int) bool { return v%2 == 0 })
	results := driveStream[int, string](t, task, s, 6)
	var got []int
	for _, m := range results {
		if v, ok := m.Value(); ok {
			got = append(got, v)
		}
	}
	assert.Equal(t, []int{2, 4}, got)
}

func TestFold(t *testing.T) {
	task := futures.NewTask()
	sum := Fold[int, int, string](&sliceStream[int]{items: []int{1, 2, 3, 4}}, 0, func(acc, v int) int { return acc + v })
	var r futures.PollResult[int, string]
	for i := 0; i < 6; i++ {
		r = sum.Poll(task)
		if r.IsReady() {
			break
		}
	}
	v, ok := r.Value()
	assert.True(t, ok)
	assert.Equal(t, 10, v)
}

func TestCollect_Stream(t *testing.T) {
	task := futures.NewTask()
	f := Collect[int, string](&sliceStream[int]{items: []int{5, 6, 7}})
	var r futures.PollResult[[]int, string]
	for i := 0; i < 5; i++ {
		r = f.Poll(task)
		if r.IsReady() {
			break
		}
	}
	v, _ := r.Value()
	assert.Equal(t, []int{5, 6, 7}, v)
}

func TestTakeWhile(t *testing.T) {
	task := futures.NewTask()
	s := TakeWhile[int, string](&sliceStream[int]{items: []int{1, 2, 3, 10, 4}}, func(v int) bool { return v < 5 })
	results := driveStream[int, string](t, task, s, 10)
	var got []int
	for _, m := range results {
		if v, ok := m.Value(); ok {
			got = append(got, v)
		}
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestSkipWhile(t *testing.T) {
	task := futures.NewTask()
	s := SkipWhile[int, string](&sliceStream[int]{items: []int{1, 2, 3, 10, 4}}, func(v int) bool { return v < 5 })
	results := driveStream[int, string](t, task, s, 10)
	var got []int
	for _, m := range results {
		if v, ok := m.Value(); ok {
			got = append(got, v)
		}
	}
	assert.Equal(t, []int{10, 4}, got)
}

func TestChannel(t *testing.T) {
	task := futures.NewTask()
	sender, s := Channel[int, string]()

	m := s.Poll(task)
	assert.False(t, m.IsReady())

	assert.True(t, sender.TrySend(1))
	m = s.Poll(task)
	v, ok := m.Value()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	assert.True(t, sender.Close())
	m = s.Poll(task)
	assert.True(t, m.IsEnded())
}

// TestChannel_SendSequence exercises spec §8 scenario 3: producing
// 20, 19, ..., 1 through repeated Send, then closing, and observing the
// receiver drain exactly that sequence followed by end-of-stream.
func TestChannel_SendSequence(t *testing.T) {
	senderTask := futures.NewTask()
	receiverTask := futures.NewTask()
	sender, receiver := Channel[int, string]()

	var got []int
	for n := 20; n >= 1; n-- {
		send := sender.Send(futures.Ok[int, string](n))
		var r futures.PollResult[*Sender[int, string], string]
		for i := 0; i < 4 && !r.IsReady(); i++ {
			r = send.Poll(senderTask)
			if r.IsReady() {
				break
			}
			m := receiver.Poll(receiverTask)
			if v, ok := m.Value(); ok {
				got = append(got, v)
			}
		}
		assert.True(t, r.IsReady(), "send of %d must eventually resolve once consumed", n)
		_, ok := r.Value()
		assert.True(t, ok)
	}
	assert.True(t, sender.Close())
	m := receiver.Poll(receiverTask)
	assert.True(t, m.IsEnded())

	want := make([]int, 0, 20)
	for n := 20; n >= 1; n-- {
		want = append(want, n)
	}
	assert.Equal(t, want, got)
}

// TestChannel_ClosedSenderEndsStreamImmediately exercises spec §8 scenario
// 4: closing the Sender before any item is sent means the receiver
// immediately observes end-of-stream.
func TestChannel_ClosedSenderEndsStreamImmediately(t *testing.T) {
	task := futures.NewTask()
	sender, receiver := Channel[int, string]()
	assert.True(t, sender.Close())
	m := receiver.Poll(task)
	assert.True(t, m.IsEnded())
}

// TestChannel_AbandonedReceiverCancelsSend mirrors spec §8 scenario 5
// (Promise cancellation) for the stream channel: abandoning the Receiver
// fails a pending Send instead of leaving it waiting forever.
func TestChannel_AbandonedReceiverCancelsSend(t *testing.T) {
	task := futures.NewTask()
	sender, receiver := Channel[int, string]()

	send := sender.Send(futures.Ok[int, string](1))
	r := send.Poll(task)
	assert.False(t, r.IsReady(), "nothing has consumed the item yet")

	receiver.Abandon()
	r = send.Poll(task)
	assert.True(t, r.IsReady())
	assert.True(t, r.IsErr())
}

func TestMerge(t *testing.T) {
	task := futures.NewTask()
	a := &sliceStream[int]{items: []int{1, 2}}
	b := &sliceStream[int]{items: []int{3}}
	merged := Merge[int, string](a, b)

	var got []int
	for i := 0; i < 10; i++ {
		m := merged.Poll(task)
		if m.IsEnded() {
			break
		}
		if v, ok := m.Value(); ok {
			got = append(got, v)
		}
	}
	assert.ElementsMatch(t, []int{1, 2, 3}, got)
}

func TestAndThen_Stream(t *testing.T) {
	task := futures.NewTask()
	s := AndThen[int, int, string](&sliceStream[int]{items: []int{1, 2, 3}}, func(v int) futures.Future[int, string] {
		return futures.Finished[int, string](v * v)
	})
	var got []int
	for i := 0; i < 6; i++ {
		m := s.Poll(task)
		if m.IsEnded() {
			break
		}
		if v, ok := m.Value(); ok {
			got = append(got, v)
		}
	}
	assert.Equal(t, []int{1, 4, 9}, got)
}

func TestOrElse_Stream_RecoversAndContinues(t *testing.T) {
	task := futures.NewTask()
	var calls int
	counted := StreamFunc[int, string](func(t *futures.Task) Maybe[int, string] {
		calls++
		switch calls {
		case 1:
			return Item[int, string](1)
		case 2:
			return Fail[int, string]("boom")
		case 3:
			return Item[int, string](2)
		default:
			return Ended[int, string]()
		}
	})

	s := OrElse[int, string, string](counted, func(e string) futures.Future[int, string] {
		return futures.Finished[int, string](-1)
	})

	var got []int
	for i := 0; i < 8; i++ {
		m := s.Poll(task)
		if m.IsEnded() {
			break
		}
		if v, ok := m.Value(); ok {
			got = append(got, v)
		}
	}
	assert.Equal(t, []int{1, -1, 2}, got)
}

func TestThen_Stream_RunsOnEveryItemAndErr(t *testing.T) {
	task := futures.NewTask()
	var calls int
	counted := StreamFunc[int, string](func(t *futures.Task) Maybe[int, string] {
		calls++
		switch calls {
		case 1:
			return Item[int, string](1)
		case 2:
			return Fail[int, string]("boom")
		default:
			return Ended[int, string]()
		}
	})

	var seen []bool // true if Ok was observed
	s := Then[int, string, string, string](counted, func(r futures.Result[int, string]) futures.Future[string, string] {
		if v, ok := r.Value(); ok {
			seen = append(seen, true)
			return futures.Finished[string, string]("ok:" + string(rune('0'+v)))
		}
		seen = append(seen, false)
		return futures.Finished[string, string]("err")
	})

	var got []string
	for i := 0; i < 6; i++ {
		m := s.Poll(task)
		if m.IsEnded() {
			break
		}
		if v, ok := m.Value(); ok {
			got = append(got, v)
		}
	}
	assert.Equal(t, []string{"ok:1", "err"}, got)
	assert.Equal(t, []bool{true, false}, seen)
}

func TestFlatten_Stream(t *testing.T) {
	task := futures.NewTask()
	outer := &sliceStream[Stream[int, string]]{items: []Stream[int, string]{
		&sliceStream[int]{items: []int{1, 2}},
		&sliceStream[int]{items: []int{3}},
	}}
	s := Flatten[int, string](outer)

	var got []int
	for i := 0; i < 10; i++ {
		m := s.Poll(task)
		if m.IsEnded() {
			break
		}
		if v, ok := m.Value(); ok {
			got = append(got, v)
		}
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestFuse_Stream(t *testing.T) {
	task := futures.NewTask()
	s := Fuse[int, string](&sliceStream[int]{items: []int{1}})

	m := s.Poll(task)
	v, ok := m.Value()
	assert.True(t, ok)
	assert.Equal(t, 1, v)

	m = s.Poll(task)
	assert.True(t, m.IsEnded())

	m = s.Poll(task)
	assert.True(t, m.IsEnded(), "fused stream must keep reporting Ended, not re-poll its now-exhausted inner stream")
}

func TestBuffered(t *testing.T) {
	task := futures.NewTask()
	producers := &sliceStream[futures.Future[int, string]]{items: []futures.Future[int, string]{
		futures.Finished[int, string](1),
		futures.Finished[int, string](2),
		futures.Finished[int, string](3),
	}}
	s := Buffered[int, string](producers, 2)

	var got []int
	for i := 0; i < 8; i++ {
		m := s.Poll(task)
		if m.IsEnded() {
			break
		}
		if v, ok := m.Value(); ok {
			got = append(got, v)
		}
	}
	assert.Equal(t, []int{1, 2, 3}, got)
}

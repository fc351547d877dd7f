package executor

import (
	"context"
	"testing"
	"time"

	futures "github.com/joeycumines/go-futures"
	"github.com/stretchr/testify/assert"
)

func TestRun_ResolvesImmediately(t *testing.T) {
	ctx := context.Background()
	r, err := Run(ctx, futures.Finished[int, string](9))
	assert.NoError(t, err)
	v, ok := r.Value()
	assert.True(t, ok)
	assert.Equal(t, 9, v)
}

func TestRun_WaitsForPromise(t *testing.T) {
	ctx := context.Background()
	p, c := futures.NewPromise[int, string]()

	go func() {
		time.Sleep(10 * time.Millisecond)
		c.Send(futures.Ok[int, string](3))
	}()

	r, err := Run(ctx, p)
	assert.NoError(t, err)
	v, _ := r.Value()
	assert.Equal(t, 3, v)
}

func TestRun_JoinOfTwoPromisesResolvingAtDifferentTimes(t *testing.T) {
	ctx := context.Background()
	p1, c1 := futures.NewPromise[int, string]()
	p2, c2 := futures.NewPromise[int, string]()

	go func() {
		time.Sleep(5 * time.Millisecond)
		c1.Send(futures.Ok[int, string](1))
		time.Sleep(15 * time.Millisecond)
		c2.Send(futures.Ok[int, string](2))
	}()

	r, err := Run(ctx, futures.Join(p1, p2))
	assert.NoError(t, err)
	v, ok := r.Value()
	assert.True(t, ok)
	assert.Equal(t, 1, v.A)
	assert.Equal(t, 2, v.B)
}

func TestRun_CollectOfPromisesResolvingAtDifferentTimes(t *testing.T) {
	ctx := context.Background()
	p1, c1 := futures.NewPromise[int, string]()
	p2, c2 := futures.NewPromise[int, string]()
	p3, c3 := futures.NewPromise[int, string]()

	go func() {
		time.Sleep(5 * time.Millisecond)
		c1.Send(futures.Ok[int, string](10))
		time.Sleep(5 * time.Millisecond)
		c2.Send(futures.Ok[int, string](20))
		time.Sleep(5 * time.Millisecond)
		c3.Send(futures.Ok[int, string](30))
	}()

	r, err := Run(ctx, futures.Collect[int, string]([]futures.Future[int, string]{p1, p2, p3}))
	assert.NoError(t, err)
	v, ok := r.Value()
	assert.True(t, ok)
	assert.Equal(t, []int{10, 20, 30}, v)
}

func TestRun_ContextCancellation(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Millisecond)
	defer cancel()

	_, err := Run(ctx, futures.Empty[int, string]())
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestRunAll_IsolatesTasks(t *testing.T) {
	ctx := context.Background()
	jobs := []Job[int, string]{
		{Future: futures.Finished[int, string](1)},
		{Future: futures.Finished[int, string](2)},
		{Future: futures.Finished[int, string](3)},
	}

	out, err := RunAll(ctx, jobs)
	assert.NoError(t, err)
	assert.Len(t, out, 3)
	for i, o := range out {
		v, ok := o.Result.Value()
		assert.True(t, ok)
		assert.Equal(t, i+1, v)
	}
}

func TestRunAll_PropagatesFirstError(t *testing.T) {
	ctx := context.Background()
	jobs := []Job[int, string]{
		{Future: futures.Empty[int, string]()},
	}

	cctx, cancel := context.WithTimeout(ctx, 5*time.Millisecond)
	defer cancel()

	_, err := RunAll(cctx, jobs)
	assert.Error(t, err)
}

package futures

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTryLock_MutualExclusion(t *testing.T) {
	var l tryLock
	assert.True(t, l.TryLock())
	assert.False(t, l.TryLock(), "a second TryLock must fail while held")
	l.Unlock()
	assert.True(t, l.TryLock())
}

func TestTryLock_ConcurrentIncrement(t *testing.T) {
	var l tryLock
	var counter int
	var wg sync.WaitGroup
	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Lock()
			counter++
			l.Unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, 100, counter)
}

package sync

import (
	stdsync "sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMutexGuardsCounter(t *testing.T) {
	var (
		mtx Mutex
		wg  stdsync.WaitGroup
		n   int
	)
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			mtx.Lock()
			n++
			mtx.Unlock()
		}()
	}
	wg.Wait()
	assert.Equal(t, 50, n)
}

func TestRWMutexReaders(t *testing.T) {
	var mtx RWMutex
	mtx.RLock()
	mtx.RLock()
	mtx.RUnlock()
	mtx.RUnlock()

	mtx.Lock()
	defer mtx.Unlock()
}

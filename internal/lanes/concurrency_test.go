package lanes

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestUpdateStatus_NeverRevertsConcurrentAdd re-adds a segment with growing
// lengths while another goroutine keeps updating its status. A completed Add
// must never be undone by a status update.
func TestUpdateStatus_NeverRevertsConcurrentAdd(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Add("A", 1))

	const iterations = 20000
	stop := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			select {
			case <-stop:
				return
			default:
				_ = reg.UpdateStatus("A", "X")
			}
		}
	}()

	regressions := 0
	for i := 2; i <= iterations; i++ {
		require.NoError(t, reg.Add("A", float64(i)))
		if got := reg.Segments()["A"]; got < float64(i) {
			regressions++
		}
	}
	close(stop)
	wg.Wait()

	assert.Zero(t, regressions, "length went backwards after a completed Add")
	assert.Equal(t, float64(iterations), reg.Segments()["A"])
}

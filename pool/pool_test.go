// ABOUTME: Tests for the worker pool and its ordered Map helper
// ABOUTME: Verifies every task runs and results keep their submission order

package pool

import (
	"sync/atomic"
	"testing"
)

func TestSubmitAndWait(t *testing.T) {
	p := NewWorkerPool(4)
	defer p.Close()

	var count atomic.Int64
	for range 100 {
		p.Submit(func() { count.Add(1) })
	}
	p.Wait()

	if got := count.Load(); got != 100 {
		t.Errorf("tasks run = %d, want 100", got)
	}
}

func TestMap(t *testing.T) {
	tests := []struct {
		name string
		pool *WorkerPool
		n    int
	}{
		{name: "pooled", pool: NewWorkerPool(2), n: 50},
		{name: "inline", pool: nil, n: 5},
		{name: "empty", pool: nil, n: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.pool != nil {
				defer tt.pool.Close()
			}

			got := Map(tt.pool, tt.n, func(i int) int { return i * i })

			if len(got) != tt.n {
				t.Fatalf("Map() len = %d, want %d", len(got), tt.n)
			}

			for i, v := range got {
				if v != i*i {
					t.Errorf("Map()[%d] = %d, want %d", i, v, i*i)
				}
			}
		})
	}
}

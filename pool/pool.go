// ABOUTME: Small worker pool for fanning out measurement work
// ABOUTME: Submit-and-wait plus an indexed Map helper that joins results in order

package pool

import (
	"runtime"
	"sync"
)

// WorkerPool runs submitted tasks on a fixed set of goroutines
type WorkerPool struct {
	workers  int
	taskChan chan func()
	workerWg sync.WaitGroup // worker goroutine lifetime
	taskWg   sync.WaitGroup // outstanding tasks
}

// NewWorkerPool starts one worker per CPU.
// bufferSize is the task channel capacity.
func NewWorkerPool(bufferSize int) *WorkerPool {
	p := &WorkerPool{
		workers:  runtime.NumCPU(),
		taskChan: make(chan func(), bufferSize),
	}

	for range p.workers {
		p.workerWg.Add(1)

		go func() {
			defer p.workerWg.Done()

			for task := range p.taskChan {
				task()
				p.taskWg.Done()
			}
		}()
	}

	return p
}

// Workers returns the number of worker goroutines
func (p *WorkerPool) Workers() int {
	return p.workers
}

// Submit queues a task, blocking while the channel is full
func (p *WorkerPool) Submit(task func()) {
	p.taskWg.Add(1)
	p.taskChan <- task
}

// Wait blocks until every submitted task has finished
func (p *WorkerPool) Wait() {
	p.taskWg.Wait()
}

// Close stops the workers once queued tasks drain
func (p *WorkerPool) Close() {
	close(p.taskChan)
	p.workerWg.Wait()
}

// Map runs fn for every index in [0, n) on the pool and returns the results
// in index order. A nil pool runs fn inline.
func Map[T any](p *WorkerPool, n int, fn func(i int) T) []T {
	out := make([]T, n)

	if p == nil {
		for i := range n {
			out[i] = fn(i)
		}

		return out
	}

	var wg sync.WaitGroup
	for i := range n {
		wg.Add(1)
		p.Submit(func() {
			defer wg.Done()
			out[i] = fn(i)
		})
	}
	wg.Wait()

	return out
}

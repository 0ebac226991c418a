// SPDX-License-Identifier: MIT

package batch

import (
	"context"
	"runtime"
	"sync"
)

// workerPool runs submitted tasks on a fixed set of goroutines.
// The task channel is buffered to twice the worker count for backpressure.
type workerPool struct {
	tasks  chan func()
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// newWorkerPool starts n workers; n <= 0 means runtime.NumCPU().
func newWorkerPool(n int) *workerPool {
	if n <= 0 {
		n = runtime.NumCPU()
	}
	p := &workerPool{tasks: make(chan func(), n*2)}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go p.worker()
	}

	return p
}

func (p *workerPool) worker() {
	defer p.wg.Done()
	for task := range p.tasks {
		task()
	}
}

// submit queues task, blocking while the buffer is full.
func (p *workerPool) submit(ctx context.Context, task func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrPoolShutdown
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	select {
	case p.tasks <- task:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// shutdown stops accepting tasks and waits for queued ones to finish.
func (p *workerPool) shutdown() {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
	p.mu.Unlock()
	p.wg.Wait()
}

// Package workpool provides a fixed-size pool of long-lived workers for
// running blocking calls off a caller's goroutine, with an awaitable
// submission API. Shutdown is graceful: queued and in-flight tasks run to
// completion before Close returns.
package workpool

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by submissions after Close has been called.
var ErrClosed = errors.New("workpool: pool is closed")

// Pool runs submitted tasks on a fixed set of workers.
type Pool struct {
	tasks  chan func()
	wg     sync.WaitGroup
	mu     sync.RWMutex
	closed bool
}

// New starts a pool with the given number of workers (minimum 1).
func New(workers int) *Pool {
	if workers <= 0 {
		workers = 1
	}
	p := &Pool{tasks: make(chan func())}
	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer p.wg.Done()
			for fn := range p.tasks {
				fn()
			}
		}()
	}
	return p
}

// submit hands fn to a worker, blocking until one accepts it.
func (p *Pool) submit(fn func()) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}
	p.tasks <- fn
	return nil
}

// Close stops accepting work and waits for all queued and in-flight tasks
// to finish. Safe to call more than once.
func (p *Pool) Close() {
	p.mu.Lock()
	if p.closed {
		p.mu.Unlock()
		return
	}
	p.closed = true
	close(p.tasks)
	p.mu.Unlock()
	p.wg.Wait()
}

type result[T any] struct {
	val T
	err error
}

// Do submits fn to the pool and awaits its result. Errors returned by fn are
// preserved and returned to the caller. If ctx is canceled before the result
// is available the wait is abandoned and ctx.Err() returned; the task itself
// is not preempted and still runs to completion on its worker.
func Do[T any](ctx context.Context, p *Pool, fn func() (T, error)) (T, error) {
	var zero T
	res := make(chan result[T], 1)
	if err := p.submit(func() {
		v, err := fn()
		res <- result[T]{val: v, err: err}
	}); err != nil {
		return zero, err
	}
	select {
	case r := <-res:
		return r.val, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

package worker

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/eagleeyes/storefront/internal/metrics"
)

var ErrPoolStopped = errors.New("worker: pool stopped")

const defaultQueueSize = 1024

type task func()

type Pool struct {
	mu       sync.RWMutex
	stopped  bool
	quit     chan struct{}
	quitOnce sync.Once
	wg       sync.WaitGroup
	jobs     chan task
}

func NewPool(n int) *Pool {
	return newPool(n, defaultQueueSize)
}

func newPool(n, queue int) *Pool {
	if n <= 0 {
		n = 1
	}
	p := &Pool{jobs: make(chan task, queue), quit: make(chan struct{})}
	for i := 0; i < n; i++ {
		p.wg.Add(1)
		go func() {
			defer p.wg.Done()
			for job := range p.jobs {
				metrics.WorkerQueueDepth.Set(float64(len(p.jobs)))
				job()
			}
		}()
	}
	return p
}

func (p *Pool) Submit(f task) error {
	return p.SubmitContext(context.Background(), f)
}

// SubmitContext queues f, waiting for room in the queue until ctx ends or the pool stops.
func (p *Pool) SubmitContext(ctx context.Context, f task) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.stopped {
		return ErrPoolStopped
	}
	select {
	case p.jobs <- f:
	case <-p.quit:
		return ErrPoolStopped
	case <-ctx.Done():
		return ctx.Err()
	}
	metrics.WorkerQueueDepth.Set(float64(len(p.jobs)))
	return nil
}

// Stop drains queued jobs and waits for the workers. Submitters still waiting for queue room
// get ErrPoolStopped. Safe to call twice.
func (p *Pool) Stop() {
	p.quitOnce.Do(func() { close(p.quit) })

	p.mu.Lock()
	if p.stopped {
		p.mu.Unlock()
		return
	}
	p.stopped = true
	close(p.jobs)
	p.mu.Unlock()
	p.wg.Wait()
}

// Delay runs fn on the pool once d has elapsed and hands back its result. ctx bounds the whole
// wait, including time spent queued behind busy workers. If ctx ends before fn starts, fn
// never runs and the context error is returned. There is no retry.
func Delay[T any](ctx context.Context, p *Pool, d time.Duration, fn func() (T, error)) (T, error) {
	type result struct {
		v   T
		err error
	}
	var zero T
	done := make(chan result, 1)

	err := p.SubmitContext(ctx, func() {
		if d > 0 {
			t := time.NewTimer(d)
			defer t.Stop()
			select {
			case <-ctx.Done():
				done <- result{err: ctx.Err()}
				return
			case <-t.C:
			}
		}
		if err := ctx.Err(); err != nil {
			done <- result{err: err}
			return
		}
		v, err := fn()
		done <- result{v: v, err: err}
	})
	if err != nil {
		return zero, err
	}
	select {
	case r := <-done:
		return r.v, r.err
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}

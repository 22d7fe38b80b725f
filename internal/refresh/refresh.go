package refresh

import (
	"context"
	"sync"
	"time"
)

type Job struct {
	Key string
}

// Refresher runs jobs on a fixed worker pool. A key already queued or in
// flight is not queued again.
type Refresher struct {
	ch      chan Job
	inFly   sync.Map // key -> struct{}
	do      func(ctx context.Context, j Job)
	timeout time.Duration
	wg      sync.WaitGroup
}

// New starts workerCount workers that stop when ctx is cancelled.
func New(ctx context.Context, capacity int, workerCount int, timeout time.Duration, do func(ctx context.Context, j Job)) *Refresher {
	if capacity <= 0 {
		capacity = 256
	}
	if workerCount <= 0 {
		workerCount = 2
	}
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	r := &Refresher{ch: make(chan Job, capacity), do: do, timeout: timeout}
	for i := 0; i < workerCount; i++ {
		r.wg.Add(1)
		go r.worker(ctx)
	}
	return r
}

// Enqueue reports whether j was accepted. Jobs are dropped when the queue
// is saturated.
func (r *Refresher) Enqueue(j Job) bool {
	if _, exists := r.inFly.LoadOrStore(j.Key, struct{}{}); exists {
		return false
	}
	select {
	case r.ch <- j:
		return true
	default:
		r.inFly.Delete(j.Key)
		return false
	}
}

// Wait blocks until every worker has exited.
func (r *Refresher) Wait() { r.wg.Wait() }

func (r *Refresher) worker(ctx context.Context) {
	defer r.wg.Done()
	for {
		select {
		case <-ctx.Done():
			return
		case j := <-r.ch:
			r.run(ctx, j)
		}
	}
}

func (r *Refresher) run(parent context.Context, j Job) {
	ctx, cancel := context.WithTimeout(parent, r.timeout)
	defer func() {
		r.inFly.Delete(j.Key)
		cancel()
	}()
	if r.do != nil {
		r.do(ctx, j)
	}
}

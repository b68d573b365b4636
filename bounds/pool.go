package bounds

import (
	"runtime"

	"golang.org/x/sync/semaphore"

	"parbox.dev/parbox/geo"
)

// Pool bounds how many reductions may run at once. It is passed
// explicitly into every reduction rather than living in a global, so a
// single-worker pool is a fully sequential, deterministic configuration.
type Pool struct {
	sem *semaphore.Weighted
}

// NewPool creates a pool with the given number of workers. Zero or
// negative means one worker per available execution unit. With one
// worker every split is evaluated inline.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	p := &Pool{}
	if workers > 1 {
		// the calling goroutine is itself a worker
		p.sem = semaphore.NewWeighted(int64(workers - 1))
	}
	return p
}

type joinResult struct {
	box geo.Box
	err error
}

// join evaluates both halves of a split and unions them in structural
// left-then-right order. When a worker token is free the right half is
// dispatched to its own goroutine while the left proceeds locally;
// otherwise both run inline. The token check never blocks, so a parent
// waiting at a join point cannot starve its own children of workers.
// Either way the numeric result is identical because Union is
// associative.
func (p *Pool) join(left, right func() (geo.Box, error)) (geo.Box, error) {
	if p == nil || p.sem == nil || !p.sem.TryAcquire(1) {
		leftBox, err := left()
		if err != nil {
			return geo.Empty(), err
		}
		rightBox, err := right()
		if err != nil {
			return geo.Empty(), err
		}
		return leftBox.Union(rightBox), nil
	}

	ch := make(chan joinResult, 1)
	go func() {
		defer p.sem.Release(1)
		box, err := right()
		ch <- joinResult{box: box, err: err}
	}()

	leftBox, leftErr := left()
	res := <-ch
	if leftErr != nil {
		return geo.Empty(), leftErr
	}
	if res.err != nil {
		return geo.Empty(), res.err
	}
	return leftBox.Union(res.box), nil
}

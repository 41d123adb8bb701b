// Package executor provides the bounded parallel dispatcher used by the
// tree package's bulk set operations (Union/Intersection/Difference).
// It is deliberately much smaller than a general task scheduler: a
// recursive divide-and-conquer algorithm just needs "try to hand this
// subtree off to another goroutine, otherwise do it here," not a DAG
// of dependent jobs.
package executor

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Executor bounds how many concurrent goroutines a caller may fan out
// to. Go lets fn return an error; Go reports ErrSaturated when the
// pool has no free slot and the caller should run fn inline instead.
type Executor interface {
	// Go attempts to run fn on a pooled goroutine. It returns
	// ErrSaturated immediately, without running fn, if every slot is
	// currently in use; the caller is expected to fall back to running
	// fn synchronously in that case. A non-nil error from fn itself is
	// delivered through Wait.
	Go(fn func() error) error
	// Wait blocks until every fn submitted via Go has returned, and
	// returns the first non-nil error among them, if any.
	Wait() error
}

// ErrSaturated is returned by Go when the pool has no free slot.
var ErrSaturated = errSaturated{}

type errSaturated struct{}

func (errSaturated) Error() string { return "executor: pool saturated" }

// Pool is an Executor backed by errgroup.Group with a bounded
// concurrency semaphore. The zero value is not usable; construct with
// New.
type Pool struct {
	g   *errgroup.Group
	sem chan struct{}
}

// New constructs a Pool allowing up to parallelism concurrent Go
// calls. parallelism <= 0 defaults to runtime.GOMAXPROCS(0), mirroring
// the teacher's NewExecutor(workers) <=0-means-NumCPU convention
// (internal/teacherref/build/executor.go).
func New(ctx context.Context, parallelism int) *Pool {
	if parallelism <= 0 {
		parallelism = runtime.GOMAXPROCS(0)
	}
	g, _ := errgroup.WithContext(ctx)
	return &Pool{g: g, sem: make(chan struct{}, parallelism)}
}

// Go implements Executor. It never blocks: if every slot is taken it
// returns ErrSaturated rather than queuing, since a caller that
// blocked here while itself occupying the last slot needed to make
// progress would deadlock the pool.
func (p *Pool) Go(fn func() error) error {
	select {
	case p.sem <- struct{}{}:
	default:
		return ErrSaturated
	}
	p.g.Go(func() error {
		defer func() { <-p.sem }()
		return fn()
	})
	return nil
}

// Wait implements Executor.
func (p *Pool) Wait() error { return p.g.Wait() }

// Inline is an Executor that never parallelizes; Go always returns
// ErrSaturated so callers fall back to running fn synchronously. It
// is useful for deterministic tests and for callers that want the set
// operations' sequential code path without conditionally compiling it
// out.
type Inline struct{}

func (Inline) Go(func() error) error { return ErrSaturated }
func (Inline) Wait() error           { return nil }

// RunOrInline attempts to dispatch fn on ex. If the pool is saturated
// (or ex is nil), it runs fn synchronously instead and returns its
// error directly; otherwise fn's error surfaces later through ex.Wait.
// The tree package's setop follows the same submit-or-inline pattern
// but calls Go directly, pairing it with a sync.WaitGroup so it can
// wait for its own dispatched task alone.
func RunOrInline(ex Executor, fn func() error) error {
	if ex == nil {
		return fn()
	}
	if err := ex.Go(fn); err == ErrSaturated {
		return fn()
	}
	return nil
}

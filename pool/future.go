// SPDX-License-Identifier: MIT
package pool

import (
	"context"
	"fmt"

	"github.com/davecgh/go-spew/spew"
)

type (
	// Future holds the eventual result of a computation running on a [Pool].
	Future[T any] struct {
		done chan struct{}

		// value & err are written once, before done closes.
		value T
		err   error
	}
)

// Go schedules fn on the [Pool], returning its [Future].
//
// A panicking fn resolves the [Future] with an [ErrPanicked] error.
func Go[T any](p *Pool, fn func() (T, error)) (f *Future[T], err error) {
	f = &Future[T]{done: make(chan struct{})}

	submitErr := p.inner.Submit(func() {
		defer close(f.done)
		defer func() {
			if r := recover(); r != nil {
				f.err = fmt.Errorf("%w: %v", ErrPanicked, r)
			}
		}()

		f.value, f.err = fn()

		if p.cfg.Debug {
			// Skip expensive operation if not debug.
			p.cfg.Logger.Debugf("future resolved: %s err: %v", spew.Sprint(f.value), f.err)
		}
	})
	if submitErr != nil {
		return nil, submitErr
	}

	return
}

// Resolved wraps an already-computed value in a completed [Future].
func Resolved[T any](value T) *Future[T] {
	f := &Future[T]{done: make(chan struct{}), value: value}
	close(f.done)

	return f
}

// Done reports whether the [Future] has resolved, without blocking.
func (f *Future[T]) Done() bool {
	select {
	case <-f.done:
		return true
	default:
		return false
	}
}

// Wait blocks until the [Future] resolves or ctx ends.
func (f *Future[T]) Wait(ctx context.Context) (value T, err error) {
	select {
	case <-ctx.Done():
		err = ctx.Err()
		return
	case <-f.done:
	}

	return f.value, f.err
}

// get retrieves a resolved [Future]'s payload without synchronization; valid
// only after done closes.
func (f *Future[T]) get() (T, error) { return f.value, f.err }

// Join2 awaits two heterogeneous [Future]s, returning their combined results
// once both complete.
//
// When both are already resolved the results return on a fast path with no
// channel operations.
func Join2[A, B any](ctx context.Context, fa *Future[A], fb *Future[B]) (a A, b B, err error) {
	if fa.Done() && fb.Done() {
		var errA, errB error
		a, errA = fa.get()
		b, errB = fb.get()
		err = combineErrs(errA, errB)

		return
	}

	var errA, errB error
	a, errA = fa.Wait(ctx)
	b, errB = fb.Wait(ctx)
	err = combineErrs(errA, errB)

	return
}

// Join3 awaits three heterogeneous [Future]s, returning their combined
// results once all complete.
//
// When all are already resolved the results return on a fast path with no
// channel operations.
func Join3[A, B, C any](ctx context.Context, fa *Future[A], fb *Future[B], fc *Future[C]) (a A, b B, c C, err error) {
	if fa.Done() && fb.Done() && fc.Done() {
		var errA, errB, errC error
		a, errA = fa.get()
		b, errB = fb.get()
		c, errC = fc.get()
		err = combineErrs(errA, errB, errC)

		return
	}

	var errA, errB, errC error
	a, errA = fa.Wait(ctx)
	b, errB = fb.Wait(ctx)
	c, errC = fc.Wait(ctx)
	err = combineErrs(errA, errB, errC)

	return
}

// combineErrs folds several errors into one, preserving order.
func combineErrs(errs ...error) (err error) {
	for _, e := range errs {
		if e == nil {
			continue
		}

		if err == nil {
			err = e
			continue
		}

		err = fmt.Errorf("%v, %w", err, e)
	}

	return
}

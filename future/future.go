// Package future provides a single-assignment asynchronous result.
//
// A Future is resolved at most once, with either a value or an error,
// through its producer-side Promise. Continuations registered with
// OnComplete run on the goroutine that resolves the promise; Then and
// ThenFuture compose futures into chains that short-circuit on the
// first failure.
package future

import (
	"context"
	"sync"
)

// Nothing is the value of futures that carry a pure signal.
type Nothing struct{}

type Future[T any] struct {
	mu        sync.Mutex
	done      chan struct{}
	value     T
	err       error
	callbacks []func(T, error)
}

type Promise[T any] struct {
	f *Future[T]
}

func NewPromise[T any]() *Promise[T] {
	return &Promise[T]{f: &Future[T]{done: make(chan struct{})}}
}

func (p *Promise[T]) Future() *Future[T] {
	return p.f
}

// Set resolves the future with v. It reports whether this call performed
// the transition; a promise that has already been set or failed is left
// untouched and Set returns false.
func (p *Promise[T]) Set(v T) bool {
	return p.f.complete(v, nil)
}

// Fail resolves the future with err. Like Set, only the first transition
// wins.
func (p *Promise[T]) Fail(err error) bool {
	var zero T
	return p.f.complete(zero, err)
}

func (f *Future[T]) complete(v T, err error) bool {
	f.mu.Lock()
	select {
	case <-f.done:
		f.mu.Unlock()
		return false
	default:
	}
	f.value, f.err = v, err
	callbacks := f.callbacks
	f.callbacks = nil
	close(f.done)
	f.mu.Unlock()

	// Callbacks run outside the future's lock so they are free to
	// register further continuations or resolve other promises.
	for _, cb := range callbacks {
		cb(v, err)
	}
	return true
}

// Done returns a channel closed once the future is resolved.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Result blocks until the future is resolved.
func (f *Future[T]) Result() (T, error) {
	<-f.done
	return f.value, f.err
}

// Await blocks until the future is resolved or ctx is cancelled.
func (f *Future[T]) Await(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.value, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// OnComplete registers fn to run when the future resolves. If the future
// is already resolved, fn runs synchronously on the calling goroutine.
func (f *Future[T]) OnComplete(fn func(T, error)) {
	f.mu.Lock()
	select {
	case <-f.done:
		v, err := f.value, f.err
		f.mu.Unlock()
		fn(v, err)
		return
	default:
	}
	f.callbacks = append(f.callbacks, fn)
	f.mu.Unlock()
}

// Value returns a future already resolved with v.
func Value[T any](v T) *Future[T] {
	p := NewPromise[T]()
	p.Set(v)
	return p.Future()
}

// Failed returns a future already resolved with err.
func Failed[T any](err error) *Future[T] {
	p := NewPromise[T]()
	p.Fail(err)
	return p.Future()
}

// Then derives a future by applying fn to f's value. A failure of f, or
// an error returned by fn, fails the derived future without running any
// further continuation.
func Then[T, U any](f *Future[T], fn func(T) (U, error)) *Future[U] {
	p := NewPromise[U]()
	f.OnComplete(func(v T, err error) {
		if err != nil {
			p.Fail(err)
			return
		}
		u, err := fn(v)
		if err != nil {
			p.Fail(err)
			return
		}
		p.Set(u)
	})
	return p.Future()
}

// ThenFuture is Then for continuations that are themselves asynchronous.
func ThenFuture[T, U any](f *Future[T], fn func(T) *Future[U]) *Future[U] {
	p := NewPromise[U]()
	f.OnComplete(func(v T, err error) {
		if err != nil {
			p.Fail(err)
			return
		}
		fn(v).OnComplete(func(u U, err error) {
			if err != nil {
				p.Fail(err)
				return
			}
			p.Set(u)
		})
	})
	return p.Future()
}

// Package fetch provides a generic async-state container for remote lists.
//
// A Resource wraps a fetcher function and tracks the data/loading/error
// triple a page renders from. Refresh is explicit (no hidden re-run
// machinery), safe to call concurrently, and only the outcome of the most
// recently initiated fetch is ever applied: stale completions are discarded
// even when they settle later, and a closed resource never mutates again.
package fetch

import (
	"context"
	"errors"
	"sync"
)

// ErrClosed is returned by Refresh on a resource that has been closed.
var ErrClosed = errors.New("resource closed")

const fallbackErrMsg = "failed to load data"

// Fetcher loads the current list from the backend.
type Fetcher[T any] func(ctx context.Context) ([]T, error)

// State is a point-in-time snapshot of a resource.
type State[T any] struct {
	Data    []T
	Loading bool
	Err     string
}

// Resource holds the async state for one remote list.
type Resource[T any] struct {
	mu      sync.Mutex
	fetch   Fetcher[T]
	state   State[T]
	gen     uint64
	closed  bool
	cancels map[uint64]context.CancelFunc
	subs    []chan struct{}
}

func NewResource[T any](fetcher Fetcher[T]) *Resource[T] {
	return &Resource[T]{
		fetch:   fetcher,
		state:   State[T]{Data: []T{}},
		cancels: make(map[uint64]context.CancelFunc),
	}
}

// Refresh runs the fetcher and applies its outcome.
//
// On success the data is replaced (a nil result becomes an empty list) and
// the error is cleared; on failure the data is reset to empty and the error
// message recorded. Loading is cleared in all settled cases. If a newer
// Refresh was initiated while this one was in flight, or the resource was
// closed, the outcome is discarded; the fetch error is still returned to the
// caller either way.
func (r *Resource[T]) Refresh(ctx context.Context) error {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return ErrClosed
	}
	r.gen++
	gen := r.gen
	fctx, cancel := context.WithCancel(ctx)
	r.cancels[gen] = cancel
	r.state.Loading = true
	r.mu.Unlock()
	r.notify()

	data, err := r.fetch(fctx)
	cancel()

	r.mu.Lock()
	delete(r.cancels, gen)
	stale := r.closed || gen != r.gen
	if !stale {
		if err != nil {
			msg := err.Error()
			if msg == "" {
				msg = fallbackErrMsg
			}
			r.state = State[T]{Data: []T{}, Err: msg}
		} else {
			if data == nil {
				data = []T{}
			}
			r.state = State[T]{Data: data}
		}
	}
	r.mu.Unlock()

	if !stale {
		r.notify()
	}
	return err
}

// Snapshot returns the current state. The data slice is shared; treat it as
// read-only and mutate through SetData instead.
func (r *Resource[T]) Snapshot() State[T] {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// SetData replaces the cached list without a refetch, for optimistic
// mutations such as dropping a row after a successful delete. Ignored on a
// closed resource.
func (r *Resource[T]) SetData(data []T) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	if data == nil {
		data = []T{}
	}
	r.state.Data = data
	r.mu.Unlock()
	r.notify()
}

// Subscribe returns a channel that receives a signal after every applied
// state change. Signals are coalesced; slow consumers miss intermediate
// states, never the latest.
func (r *Resource[T]) Subscribe() <-chan struct{} {
	ch := make(chan struct{}, 1)
	r.mu.Lock()
	r.subs = append(r.subs, ch)
	r.mu.Unlock()
	return ch
}

// Close cancels every in-flight fetch and freezes the state: no outcome
// settling after Close is applied.
func (r *Resource[T]) Close() {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return
	}
	r.closed = true
	cancels := make([]context.CancelFunc, 0, len(r.cancels))
	for _, c := range r.cancels {
		cancels = append(cancels, c)
	}
	r.mu.Unlock()

	for _, cancel := range cancels {
		cancel()
	}
}

func (r *Resource[T]) notify() {
	r.mu.Lock()
	subs := r.subs
	r.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

package assets

import (
	"context"
	"errors"
)

// ErrNotDone is returned by Result before the task has finished.
var ErrNotDone = errors.New("assets: preload still running")

type outcome[T any] struct {
	value T
	err   error
}

// Task is a background load whose completion is polled once per tick by
// a single consumer. The producer goroutine hands its outcome over through a
// one-slot channel, so neither side ever blocks.
type Task[T any] struct {
	cancel  context.CancelFunc
	ch      chan outcome[T]
	release func(T)

	got   *outcome[T]
	taken bool
}

// Preload starts load in the background. release, when non-nil, frees a
// value that is produced but never taken because the task was cancelled.
func Preload[T any](ctx context.Context, load func(context.Context) (T, error), release func(T)) *Task[T] {
	ctx, cancel := context.WithCancel(ctx)
	t := &Task[T]{
		cancel:  cancel,
		ch:      make(chan outcome[T], 1),
		release: release,
	}
	go func() {
		v, err := load(ctx)
		t.ch <- outcome[T]{value: v, err: err}
	}()
	return t
}

// Done reports whether the load has finished. It never blocks.
func (t *Task[T]) Done() bool {
	if t.got != nil {
		return true
	}
	select {
	case o := <-t.ch:
		t.got = &o
		return true
	default:
		return false
	}
}

// Result returns the loaded value once Done is true. Ownership of the value
// passes to the caller.
func (t *Task[T]) Result() (T, error) {
	if !t.Done() {
		var zero T
		return zero, ErrNotDone
	}
	t.taken = true
	t.cancel()
	return t.got.value, t.got.err
}

// Wait blocks until the load finishes or ctx is done.
func (t *Task[T]) Wait(ctx context.Context) (T, error) {
	if t.got == nil {
		select {
		case o := <-t.ch:
			t.got = &o
		case <-ctx.Done():
			var zero T
			return zero, ctx.Err()
		}
	}
	return t.Result()
}

// Cancel abandons the task. A value that was or will be produced and not
// taken is released.
func (t *Task[T]) Cancel() {
	t.cancel()
	if t.taken {
		return
	}
	t.taken = true
	if t.got != nil {
		t.releaseOutcome(*t.got)
		return
	}
	go func() {
		t.releaseOutcome(<-t.ch)
	}()
}

func (t *Task[T]) releaseOutcome(o outcome[T]) {
	if o.err == nil && t.release != nil {
		t.release(o.value)
	}
}

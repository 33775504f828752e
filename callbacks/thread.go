package callbacks

import (
	"fmt"
	"sync/atomic"

	"github.com/npillmayer/guistyle/result"
)

// BlockError is the error of joining a Thread or a Task.
type BlockError uint8

// Values for BlockError. The order is fixed.
const (
	ArcUnlockError BlockError = iota
	ThreadJoinError
	MutexIntoInnerError
)

var blockErrorNames = []string{"ArcUnlockError", "ThreadJoinError", "MutexIntoInnerError"}

func (e BlockError) Error() string {
	switch e {
	case ArcUnlockError:
		return "state cell is still shared"
	case ThreadJoinError:
		return "cannot join thread"
	case MutexIntoInnerError:
		return "worker did not finish cleanly"
	}
	return enumName(blockErrorNames, uint8(e))
}

func (e BlockError) String() string { return enumName(blockErrorNames, uint8(e)) }

// Thread is a handle to work running on another goroutine. The work is
// started by an explicit call of Spawn and yields a single value.
type Thread[T any] struct {
	done   chan struct{}
	value  T
	err    error
	joined atomic.Bool
}

// Spawn starts f on a new goroutine and returns a handle to it. A panic in
// f is recovered and reported as ThreadJoinError by Join.
func Spawn[T any](f func() (T, error)) *Thread[T] {
	th := &Thread[T]{done: make(chan struct{})}
	go func() {
		defer close(th.done)
		defer func() {
			if r := recover(); r != nil {
				th.err = fmt.Errorf("%w: %v", ThreadJoinError, r)
			}
		}()
		th.value, th.err = f()
	}()
	return th
}

// IsFinished is true when the work of th has finished.
func (th *Thread[T]) IsFinished() bool {
	select {
	case <-th.done:
		return true
	default:
		return false
	}
}

// Join blocks until the work of th has finished and returns its result.
// A Thread may be joined once; joining again yields ThreadJoinError.
func (th *Thread[T]) Join() result.Result[T] {
	if !th.joined.CompareAndSwap(false, true) {
		return result.Err[T](ThreadJoinError)
	}
	<-th.done
	return result.Of(th.value, th.err)
}

// Task runs a function on a clone of a state cell. The worker is expected
// to access the cell with Borrow or BorrowMut, so the UI thread can see
// from the counts whether the cell is in use.
type Task struct {
	data   *RefAny
	thread *Thread[bool]
}

// NewTask starts f on data. data is cloned for the worker and the clone is
// dropped when f returns.
func NewTask(data *RefAny, f func(data *RefAny)) *Task {
	clone := data.Clone()
	th := Spawn(func() (bool, error) {
		defer clone.Drop()
		f(clone)
		return true, nil
	})
	return &Task{data: data, thread: th}
}

// IsFinished is true when the worker of t has finished.
func (t *Task) IsFinished() bool {
	return t.thread.IsFinished()
}

// Join waits for the worker of t. It returns the state cell, or
// MutexIntoInnerError if the worker panicked, or ArcUnlockError if the cell
// is still borrowed by someone else.
func (t *Task) Join() result.Result[*RefAny] {
	if _, err := t.thread.Join().Get(); err != nil {
		tracer().Errorf("task failed: %v", err)
		return result.Err[*RefAny](fmt.Errorf("%w: %v", MutexIntoInnerError, err))
	}
	if !t.data.CanBeSharedMut() {
		return result.Err[*RefAny](ArcUnlockError)
	}
	return result.Ok(t.data)
}

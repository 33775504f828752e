package callbacks

import (
	"time"
)

// TerminateTimer is part of the reply of a timer callback.
type TerminateTimer uint8

// Values for TerminateTimer
const (
	TimerContinue TerminateTimer = iota
	TimerTerminate
)

// TimerCallbackReturn is the reply of a timer callback.
type TimerCallbackReturn struct {
	ShouldUpdate    UpdateScreen
	ShouldTerminate TerminateTimer
}

// TimerCallbackInfo is handed to timer callbacks.
type TimerCallbackInfo struct {
	Node            NodeID    // node the timer is attached to, or NoNode
	FrameStart      time.Time // start of the current frame
	CallCount       int       // number of earlier invocations
	IsAboutToFinish bool      // true on the last invocation of a timer with a timeout
}

// Timer is a function which the runtime polls on every frame. Zero
// durations mean: no delay, run on every frame and run forever.
//
// A timer never runs by itself. The runtime calls ShouldRun and Invoke.
type Timer struct {
	Data     *RefAny
	Node     NodeID
	Created  time.Time
	LastRun  time.Time // zero if the timer has not run yet
	RunCount int
	Delay    time.Duration
	Interval time.Duration
	Timeout  time.Duration
	Callback TimerCallback
}

// NewTimer creates a timer, created at now.
func NewTimer(data *RefAny, cb TimerCallback, now time.Time) *Timer {
	return &Timer{Data: data, Node: NoNode, Created: now, Callback: cb}
}

// WithDelay delays the first run of t.
func (t *Timer) WithDelay(d time.Duration) *Timer {
	t.Delay = d
	return t
}

// WithInterval runs t at most once per interval.
func (t *Timer) WithInterval(d time.Duration) *Timer {
	t.Interval = d
	return t
}

// WithTimeout stops t after a timeout, counted from the creation of t.
func (t *Timer) WithTimeout(d time.Duration) *Timer {
	t.Timeout = d
	return t
}

// AttachedTo attaches t to a node. Timers attached to a node are dropped
// with the DOM.
func (t *Timer) AttachedTo(node NodeID) *Timer {
	t.Node = node
	return t
}

// NextRun returns the earliest time for the next run.
func (t *Timer) NextRun() time.Time {
	if t.LastRun.IsZero() {
		return t.Created.Add(t.Delay)
	}
	return t.LastRun.Add(t.Interval)
}

// IsExpired is true if the timeout of t has elapsed at now.
func (t *Timer) IsExpired(now time.Time) bool {
	return t.Timeout > 0 && now.Sub(t.Created) >= t.Timeout
}

// ShouldRun is true if t is due at now and has not expired.
func (t *Timer) ShouldRun(now time.Time) bool {
	return !t.IsExpired(now) && !now.Before(t.NextRun())
}

// Invoke calls the callback of t, if due. A timer which has expired answers
// with TimerTerminate without calling the callback.
func (t *Timer) Invoke(now time.Time) TimerCallbackReturn {
	if t.IsExpired(now) || t.Callback == nil {
		return TimerCallbackReturn{ShouldUpdate: DontRedraw, ShouldTerminate: TimerTerminate}
	}
	if !t.ShouldRun(now) {
		return TimerCallbackReturn{ShouldUpdate: DontRedraw, ShouldTerminate: TimerContinue}
	}
	info := &TimerCallbackInfo{
		Node:       t.Node,
		FrameStart: now,
		CallCount:  t.RunCount,
	}
	if t.Timeout > 0 && t.Interval > 0 {
		info.IsAboutToFinish = now.Add(t.Interval).Sub(t.Created) >= t.Timeout
	}
	ret := t.Callback(t.Data, info)
	t.LastRun = now
	t.RunCount++
	tracer().Debugf("timer on node %s ran %d times, replied %s", t.Node, t.RunCount, ret.ShouldUpdate)
	return ret
}

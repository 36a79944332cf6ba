// Package frame provides a cooperative next-frame scheduler
//
// A Loop is owned by a single goroutine. Callers queue one-shot frame
// callbacks and timeouts; the host drives the loop by calling RunFrame once
// per display refresh. Nothing runs between RunFrame calls, so all callbacks
// observe a consistent state without locking.
package frame

import (
	"slices"
	"time"
)

// Handle identifies a queued callback; the zero Handle is never issued
type Handle uint64

// Callback receives the timestamp of the frame it runs in
type Callback func(now time.Time)

type frameEntry struct {
	handle Handle
	cb     Callback
}

type timerEntry struct {
	handle   Handle
	deadline time.Time
	fn       func()
}

// Loop is a browser-style frame and timer queue
type Loop struct {
	clock Clock
	next  Handle

	frames  []frameEntry
	running []frameEntry // batch being executed by RunFrame

	timers []timerEntry
	due    []timerEntry // timers being executed by RunFrame

	frameCount uint64
}

// NewLoop creates a loop reading time from clock; nil uses the system clock
func NewLoop(clock Clock) *Loop {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Loop{
		clock:  clock,
		frames: make([]frameEntry, 0, 4),
		timers: make([]timerEntry, 0, 4),
	}
}

// Now returns the loop clock's current time
func (l *Loop) Now() time.Time {
	return l.clock.Now()
}

func (l *Loop) issue() Handle {
	l.next++
	return l.next
}

// RequestFrame queues cb to run on the next RunFrame
// A callback requested while RunFrame executes waits for the following frame
func (l *Loop) RequestFrame(cb Callback) Handle {
	h := l.issue()
	l.frames = append(l.frames, frameEntry{handle: h, cb: cb})
	return h
}

// CancelFrame drops a queued frame callback; unknown handles are ignored
func (l *Loop) CancelFrame(h Handle) {
	if h == 0 {
		return
	}
	for i := range l.running {
		if l.running[i].handle == h {
			l.running[i].cb = nil
			return
		}
	}
	l.frames = slices.DeleteFunc(l.frames, func(e frameEntry) bool { return e.handle == h })
}

// SetTimeout runs fn on the first RunFrame at or after now+d
func (l *Loop) SetTimeout(d time.Duration, fn func()) Handle {
	h := l.issue()
	l.timers = append(l.timers, timerEntry{
		handle:   h,
		deadline: l.clock.Now().Add(d),
		fn:       fn,
	})
	return h
}

// ClearTimeout drops a pending timeout; unknown handles are ignored
func (l *Loop) ClearTimeout(h Handle) {
	if h == 0 {
		return
	}
	for i := range l.due {
		if l.due[i].handle == h {
			l.due[i].fn = nil
			return
		}
	}
	l.timers = slices.DeleteFunc(l.timers, func(e timerEntry) bool { return e.handle == h })
}

// RunFrame executes due timers in deadline order, then every frame callback
// queued before the call
func (l *Loop) RunFrame(now time.Time) {
	l.frameCount++

	// Timers
	l.due = l.due[:0]
	kept := l.timers[:0]
	for _, t := range l.timers {
		if !t.deadline.After(now) {
			l.due = append(l.due, t)
		} else {
			kept = append(kept, t)
		}
	}
	clear(l.timers[len(kept):])
	l.timers = kept

	slices.SortStableFunc(l.due, func(a, b timerEntry) int {
		return a.deadline.Compare(b.deadline)
	})
	for i := range l.due {
		if fn := l.due[i].fn; fn != nil {
			l.due[i].fn = nil
			fn()
		}
	}
	l.due = l.due[:0]

	// Frame callbacks: swap so requests made during the run land in a fresh queue
	l.running, l.frames = l.frames, l.running[:0]
	for i := range l.running {
		if cb := l.running[i].cb; cb != nil {
			l.running[i].cb = nil
			cb(now)
		}
	}
	l.running = l.running[:0]
}

// PendingFrames returns the number of queued frame callbacks
func (l *Loop) PendingFrames() int {
	return len(l.frames)
}

// PendingTimers returns the number of queued timeouts
func (l *Loop) PendingTimers() int {
	return len(l.timers)
}

// FrameCount returns the number of RunFrame calls so far
func (l *Loop) FrameCount() uint64 {
	return l.frameCount
}

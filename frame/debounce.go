package frame

import "time"

// Debouncer runs fn once, wait after the last Trigger (trailing edge)
// At most one timer is pending at any time
type Debouncer struct {
	loop   *Loop
	wait   time.Duration
	fn     func()
	handle Handle
}

// NewDebouncer creates a trailing-edge debouncer on loop
func NewDebouncer(loop *Loop, wait time.Duration, fn func()) *Debouncer {
	return &Debouncer{loop: loop, wait: wait, fn: fn}
}

// Trigger restarts the wait window
func (d *Debouncer) Trigger() {
	d.loop.ClearTimeout(d.handle)
	d.handle = d.loop.SetTimeout(d.wait, d.fire)
}

// Cancel drops the pending call, if any
func (d *Debouncer) Cancel() {
	d.loop.ClearTimeout(d.handle)
	d.handle = 0
}

// Pending reports whether a call is scheduled
func (d *Debouncer) Pending() bool {
	return d.handle != 0
}

func (d *Debouncer) fire() {
	d.handle = 0
	d.fn()
}

// Package debounce collapses bursts of calls into a single delayed
// invocation. It is the only scheduling primitive in the application:
// the query service uses one Debouncer per instance so that rapid
// keystrokes produce one fetch after a quiet period.
package debounce

import (
	"sync"
	"time"

	"searchbox/internal/clock"
)

// Debouncer owns a single cancellable timer slot. Each Call cancels the
// previous pending invocation (which then never fires) and schedules a
// new one after the configured wait. A Debouncer must be created once
// and reused; a fresh Debouncer per call has no pending state to cancel
// and therefore does not debounce anything.
type Debouncer struct {
	clock clock.Clock
	wait  time.Duration

	mu    sync.Mutex
	timer *clock.Timer
	// generation guards against a stale timer firing after it was
	// superseded: Timer.Stop cannot cancel a callback that has already
	// been handed to the runtime.
	generation uint64
}

// New creates a Debouncer that delays each Call by wait.
func New(c clock.Clock, wait time.Duration) *Debouncer {
	return &Debouncer{clock: c, wait: wait}
}

// Call schedules fn to run after the quiet period. If a previous Call
// is still pending, it is discarded; for a burst of calls closer
// together than the wait, only the last fn runs, wait after the last
// Call.
func (d *Debouncer) Call(fn func()) {
	d.mu.Lock()
	d.generation++
	gen := d.generation
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
	if d.wait <= 0 {
		d.mu.Unlock()
		fn()
		return
	}
	d.timer = d.clock.AfterFunc(d.wait, func() {
		d.mu.Lock()
		if gen != d.generation {
			// Superseded between firing and running.
			d.mu.Unlock()
			return
		}
		d.timer = nil
		d.mu.Unlock()
		fn()
	})
	d.mu.Unlock()
}

// Cancel discards the pending invocation, if any. It reports whether
// there was one.
func (d *Debouncer) Cancel() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.generation++
	if d.timer == nil {
		return false
	}
	d.timer.Stop()
	d.timer = nil
	return true
}

// Pending reports whether an invocation is scheduled but not yet fired.
func (d *Debouncer) Pending() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.timer != nil
}

// Wait returns the configured quiet period.
func (d *Debouncer) Wait() time.Duration { return d.wait }

// Package clock provides an injectable time source so that debounce and
// blur-grace timers can be driven deterministically in tests. Production
// code uses Real(); tests use NewFake() and advance time explicitly.
package clock

import "time"

// Clock abstracts the time operations used by the application. Anything
// that schedules a delayed callback should hold a Clock instead of
// calling the time package directly.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc waits for duration d, then calls f in its own
	// goroutine. The returned Timer cancels the pending call via Stop.
	AfterFunc(d time.Duration, f func()) *Timer
}

// Timer is a handle to a scheduled callback.
type Timer struct {
	stopFunc func() bool
}

// Stop prevents the timer from firing. It returns true if the call
// stopped the timer, false if the timer already fired or was stopped.
func (t *Timer) Stop() bool { return t.stopFunc() }

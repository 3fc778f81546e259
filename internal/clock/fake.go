package clock

import (
	"sort"
	"sync"
	"time"
)

// NewFake returns a FakeClock starting at a fixed arbitrary instant.
// Time stands still until Advance is called.
func NewFake() *FakeClock {
	return &FakeClock{
		current: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	}
}

// FakeClock is a deterministic Clock for tests. Scheduled callbacks fire
// only when Advance moves the clock past their deadline, synchronously
// in the advancing goroutine and in deadline order.
//
// Safe for concurrent use. Do not call Advance from inside a scheduled
// callback.
type FakeClock struct {
	mu      sync.Mutex
	current time.Time
	pending []*fakeTimer
}

type fakeTimer struct {
	deadline time.Time
	fn       func()
	stopped  bool
	fired    bool
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// AfterFunc schedules f to run once the clock advances past d from now.
// If d <= 0, f runs synchronously before AfterFunc returns.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) *Timer {
	if d <= 0 {
		f()
		return &Timer{stopFunc: func() bool { return false }}
	}

	c.mu.Lock()
	ft := &fakeTimer{deadline: c.current.Add(d), fn: f}
	c.pending = append(c.pending, ft)
	c.mu.Unlock()

	return &Timer{stopFunc: func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		if ft.stopped || ft.fired {
			return false
		}
		ft.stopped = true
		return true
	}}
}

// Advance moves the clock forward by d and fires every pending timer
// whose deadline falls within the new time, in deadline order. Timers
// scheduled by a firing callback are honored within the same Advance if
// their deadline has also passed.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	c.current = c.current.Add(d)
	target := c.current
	c.mu.Unlock()

	for {
		next := c.takeExpired(target)
		if len(next) == 0 {
			return
		}
		sort.Slice(next, func(i, j int) bool {
			return next[i].deadline.Before(next[j].deadline)
		})
		for _, ft := range next {
			ft.fn()
		}
	}
}

// PendingCount returns the number of timers that are scheduled and not
// yet fired or stopped.
func (c *FakeClock) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	count := 0
	for _, ft := range c.pending {
		if !ft.stopped && !ft.fired {
			count++
		}
	}
	return count
}

func (c *FakeClock) takeExpired(target time.Time) []*fakeTimer {
	c.mu.Lock()
	defer c.mu.Unlock()

	var expired []*fakeTimer
	var remaining []*fakeTimer
	for _, ft := range c.pending {
		if ft.stopped {
			continue
		}
		if !ft.deadline.After(target) {
			ft.fired = true
			expired = append(expired, ft)
		} else {
			remaining = append(remaining, ft)
		}
	}
	c.pending = remaining
	return expired
}

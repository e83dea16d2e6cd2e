package clock

import (
	"sync"
	"time"
)

// Fake returns a FakeClock set to initial. Time stands still until
// Advance is called.
func Fake(initial time.Time) *FakeClock {
	c := &FakeClock{current: initial}
	c.waitersChanged = sync.NewCond(&c.mu)
	return c
}

// FakeClock is a deterministic Clock for tests. It is safe for
// concurrent use.
//
// AfterFunc callbacks run synchronously inside Advance, in deadline
// order, with Now reporting the callback's own deadline. Do not call
// Advance from inside a callback.
type FakeClock struct {
	mu             sync.Mutex
	current        time.Time
	seq            uint64
	waiters        []*fakeWaiter
	waitersChanged *sync.Cond
}

type fakeWaiter struct {
	deadline time.Time
	seq      uint64

	// channel is set for After waiters, callback for AfterFunc waiters.
	channel  chan time.Time
	callback func()

	stopped bool
	fired   bool
}

// Now returns the current fake time.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current
}

// After returns a channel that receives once the clock has advanced
// by d. If d <= 0 the channel is ready immediately.
func (c *FakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	ch := make(chan time.Time, 1)
	if d <= 0 {
		ch <- c.current
		return ch
	}
	c.addLocked(&fakeWaiter{deadline: c.current.Add(d), channel: ch})
	return ch
}

// AfterFunc schedules f to run once the clock has advanced by d. A
// non-positive d schedules f at the current instant; it runs on the
// next Advance, including Advance(0). Callbacks never run inside
// AfterFunc itself, so callers may hold their own locks while
// scheduling.
func (c *FakeClock) AfterFunc(d time.Duration, f func()) *Timer {
	c.mu.Lock()
	defer c.mu.Unlock()

	if d < 0 {
		d = 0
	}
	w := &fakeWaiter{deadline: c.current.Add(d), callback: f}
	c.addLocked(w)

	return &Timer{stopFunc: func() bool {
		c.mu.Lock()
		defer c.mu.Unlock()
		if w.stopped || w.fired {
			return false
		}
		w.stopped = true
		c.waitersChanged.Broadcast()
		return true
	}}
}

// Advance moves the clock forward by d, firing every waiter whose
// deadline falls within the window in deadline order. Waiters added by
// callbacks during the advance fire too if they fall inside it.
func (c *FakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	target := c.current.Add(d)
	c.mu.Unlock()

	for {
		w := c.popExpired(target)
		if w == nil {
			break
		}
		if w.callback != nil {
			w.callback()
			continue
		}
		select {
		case w.channel <- w.deadline:
		default:
		}
	}

	c.mu.Lock()
	if c.current.Before(target) {
		c.current = target
	}
	c.mu.Unlock()
}

// popExpired removes and returns the earliest live waiter due at or
// before target, moving the clock to its deadline. Ties fire in
// registration order.
func (c *FakeClock) popExpired(target time.Time) *fakeWaiter {
	c.mu.Lock()
	defer c.mu.Unlock()

	best := -1
	live := c.waiters[:0]
	for _, w := range c.waiters {
		if w.stopped {
			continue
		}
		live = append(live, w)
	}
	c.waiters = live

	for i, w := range c.waiters {
		if w.deadline.After(target) {
			continue
		}
		if best < 0 || w.deadline.Before(c.waiters[best].deadline) ||
			(w.deadline.Equal(c.waiters[best].deadline) && w.seq < c.waiters[best].seq) {
			best = i
		}
	}
	if best < 0 {
		return nil
	}

	w := c.waiters[best]
	c.waiters = append(c.waiters[:best], c.waiters[best+1:]...)
	w.fired = true
	if c.current.Before(w.deadline) {
		c.current = w.deadline
	}
	c.waitersChanged.Broadcast()
	return w
}

// WaitForTimers blocks until at least n waiters are pending. It closes
// the race between a goroutine registering a timer and the test
// advancing the clock.
func (c *FakeClock) WaitForTimers(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.pendingLocked() < n {
		c.waitersChanged.Wait()
	}
}

// PendingCount returns the number of waiters that have neither fired
// nor been stopped.
func (c *FakeClock) PendingCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.pendingLocked()
}

func (c *FakeClock) pendingLocked() int {
	n := 0
	for _, w := range c.waiters {
		if !w.stopped {
			n++
		}
	}
	return n
}

func (c *FakeClock) addLocked(w *fakeWaiter) {
	c.seq++
	w.seq = c.seq
	c.waiters = append(c.waiters, w)
	c.waitersChanged.Broadcast()
}

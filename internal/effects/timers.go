// Package effects holds the page's small frame-driven animations. Nothing here
// reads the wall clock: every effect advances by the frame delta it is given.
package effects

import "time"

// Timer is a handle to a scheduled callback.
type Timer struct {
	interval  time.Duration
	remaining time.Duration
	repeat    bool
	fn        func()
	stopped   bool
}

// Stop cancels the timer. Stopping twice is fine.
func (t *Timer) Stop() { t.stopped = true }

// Active reports whether the timer will still fire.
func (t *Timer) Active() bool { return !t.stopped }

// Timers is the set of one-shot and repeating timers owned by a page.
// StopAll tears every one of them down together.
type Timers struct {
	timers []*Timer
}

// After runs fn once, d from now.
func (ts *Timers) After(d time.Duration, fn func()) *Timer {
	return ts.add(&Timer{interval: d, remaining: d, fn: fn})
}

// Every runs fn each d until stopped. d must be positive.
func (ts *Timers) Every(d time.Duration, fn func()) *Timer {
	if d <= 0 {
		d = time.Millisecond
	}
	return ts.add(&Timer{interval: d, remaining: d, repeat: true, fn: fn})
}

func (ts *Timers) add(t *Timer) *Timer {
	ts.timers = append(ts.timers, t)
	return t
}

// Advance moves the clock forward by dt and fires everything that came due.
// A repeating timer fires once per elapsed interval. Timers added by a
// callback start counting on the next Advance.
func (ts *Timers) Advance(dt time.Duration) {
	n := len(ts.timers)
	for i := 0; i < n && i < len(ts.timers); i++ {
		t := ts.timers[i]
		if t.stopped {
			continue
		}
		t.remaining -= dt
		for !t.stopped && t.remaining <= 0 {
			t.fn()
			if !t.repeat {
				t.stopped = true
				break
			}
			t.remaining += t.interval
		}
	}

	live := ts.timers[:0]
	for _, t := range ts.timers {
		if !t.stopped {
			live = append(live, t)
		}
	}
	clear(ts.timers[len(live):])
	ts.timers = live
}

// Len returns the number of active timers.
func (ts *Timers) Len() int {
	n := 0
	for _, t := range ts.timers {
		if !t.stopped {
			n++
		}
	}
	return n
}

// StopAll cancels every timer in the set.
func (ts *Timers) StopAll() {
	for _, t := range ts.timers {
		t.stopped = true
	}
	ts.timers = nil
}

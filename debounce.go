package kwtable

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiescence window applied to interactive
// filter input before it reaches the query engine.
const DefaultDebounce = 200 * time.Millisecond

// Debouncer coalesces a burst of calls into a single deferred one: each
// Trigger cancels the pending call and schedules a new one after the
// configured delay. It is the caller-side scheduling companion to
// Session.SetFilter; the query engine itself has no notion of debounce.
type Debouncer struct {
	delay time.Duration

	mu    sync.Mutex
	timer *time.Timer
}

// NewDebouncer creates a debouncer. A non-positive delay falls back to
// DefaultDebounce.
func NewDebouncer(delay time.Duration) *Debouncer {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	return &Debouncer{delay: delay}
}

// Trigger schedules fn to run after the delay, cancelling any call
// still pending from a previous Trigger.
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.delay, fn)
}

// Stop cancels the pending call, if any.
func (d *Debouncer) Stop() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

package watcher

import (
	"sync"
	"time"
)

// DefaultDebounce is the quiet period before a change is reported
const DefaultDebounce = 250 * time.Millisecond

// Debouncer coalesces bursts of triggers into one callback. Editors often
// write a file as remove+create+write, so a save arrives as several events.
type Debouncer struct {
	duration time.Duration
	mu       sync.Mutex
	timer    *time.Timer
	seq      uint64
}

// NewDebouncer creates a Debouncer; zero selects DefaultDebounce
func NewDebouncer(d time.Duration) *Debouncer {
	if d <= 0 {
		d = DefaultDebounce
	}
	return &Debouncer{duration: d}
}

// Trigger schedules fn after the quiet period, replacing any pending call
func (d *Debouncer) Trigger(fn func()) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	seq := d.seq

	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.duration, func() {
		d.mu.Lock()
		current := seq == d.seq
		if current {
			d.timer = nil
		}
		d.mu.Unlock()
		// A stale timer can fire after Stop lost the race; only the latest runs.
		if current {
			fn()
		}
	})
}

// Cancel drops any pending callback
func (d *Debouncer) Cancel() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.seq++
	if d.timer != nil {
		d.timer.Stop()
		d.timer = nil
	}
}

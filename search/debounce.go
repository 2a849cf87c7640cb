// Package search runs the live general search: keystrokes are debounced and
// only the result of the latest input is ever delivered.
package search

import (
	"sync"
	"time"
)

// Debouncer delays a call until no new call arrives for the configured
// duration. Every Call and Cancel advances a monotonic sequence number, so
// work started for an older sequence can tell it has been superseded.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	duration time.Duration
	seq      uint64
	pending  sync.WaitGroup
}

// NewDebouncer creates a debouncer with the given quiescence duration.
func NewDebouncer(duration time.Duration) *Debouncer {
	return &Debouncer{duration: duration}
}

// Call schedules fn to run after the quiescence duration, replacing any
// pending call. fn receives the sequence it was scheduled under and is skipped
// if that sequence is no longer current when the timer fires.
func (d *Debouncer) Call(fn func(seq uint64)) uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.seq++
	seq := d.seq
	d.pending.Add(1)
	d.timer = time.AfterFunc(d.duration, func() {
		defer d.pending.Done()
		if d.IsCurrent(seq) {
			fn(seq)
		}
	})
	return seq
}

// Cancel drops the pending call and invalidates any call already running.
func (d *Debouncer) Cancel() uint64 {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.stopLocked()
	d.seq++
	return d.seq
}

// IsCurrent reports whether seq is still the latest sequence.
func (d *Debouncer) IsCurrent(seq uint64) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return seq == d.seq
}

// Wait blocks until no scheduled call is pending or running.
func (d *Debouncer) Wait() {
	d.pending.Wait()
}

func (d *Debouncer) stopLocked() {
	if d.timer != nil && d.timer.Stop() {
		d.pending.Done()
	}
	d.timer = nil
}

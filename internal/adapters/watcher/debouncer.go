// Package watcher implements configuration file watching so profile edits
// reset the engine without a restart.
package watcher

import (
	"sync"
	"time"
)

// Debouncer coalesces rapid trigger bursts into a single callback once the
// window has passed without a new trigger.
type Debouncer struct {
	mu       sync.Mutex
	timer    *time.Timer
	pending  bool
	window   time.Duration
	callback func()
}

// NewDebouncer creates a new debouncer with the given time window and callback.
func NewDebouncer(window time.Duration, callback func()) *Debouncer {
	return &Debouncer{
		window:   window,
		callback: callback,
	}
}

// Trigger marks work as pending and restarts the debounce window.
func (d *Debouncer) Trigger() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.pending = true
	if d.timer != nil {
		d.timer.Stop()
	}
	d.timer = time.AfterFunc(d.window, d.fire)
}

// fire is called when the debounce window expires.
func (d *Debouncer) fire() {
	d.mu.Lock()
	if !d.pending {
		// Flush raced us and already processed the burst.
		d.timer = nil
		d.mu.Unlock()
		return
	}
	d.pending = false
	d.timer = nil
	d.mu.Unlock()

	if d.callback != nil {
		go d.callback()
	}
}

// Flush runs the callback synchronously if work is pending. It is meant
// for shutdown paths where the pending burst must not be lost.
func (d *Debouncer) Flush() {
	d.mu.Lock()
	if d.timer != nil {
		if !d.timer.Stop() {
			// Timer already fired, let it complete rather than firing twice.
			d.mu.Unlock()
			return
		}
		d.timer = nil
	}
	pending := d.pending
	d.pending = false
	d.mu.Unlock()

	if pending && d.callback != nil {
		d.callback()
	}
}

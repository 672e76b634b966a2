package blob

import (
	"sync"
	"time"

	"github.com/lorekeep/lorekeep/pkg/core"
)

// debouncer coalesces bursts of filesystem events into a single emit.
// Atomic replaces typically surface as Create+Rename pairs within a few
// milliseconds; consumers only care that the blob changed once.
type debouncer struct {
	mu      sync.Mutex
	delay   time.Duration
	timer   *time.Timer
	pending core.Event
	emit    func(core.Event)
	stopped bool
	wg      sync.WaitGroup
}

func newDebouncer(delay time.Duration) *debouncer {
	return &debouncer{delay: delay}
}

// add schedules the event, replacing any pending one and restarting the
// delay window. The last event of a burst wins. Each scheduled fire owns
// exactly one waitgroup slot; a timer stopped before firing releases its
// slot here.
func (d *debouncer) add(event core.Event, emit func(core.Event)) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.stopped {
		return
	}
	d.pending = event
	d.emit = emit

	if d.timer != nil && d.timer.Stop() {
		d.wg.Done()
	}
	d.wg.Add(1)
	d.timer = time.AfterFunc(d.delay, d.fire)
}

func (d *debouncer) fire() {
	defer d.wg.Done()

	d.mu.Lock()
	event, emit := d.pending, d.emit
	stopped := d.stopped
	d.mu.Unlock()

	if !stopped && emit != nil {
		emit(event)
	}
}

// stopAndWait stops accepting events and waits for in-flight timers to
// finish, up to the given timeout.
func (d *debouncer) stopAndWait(timeout time.Duration) {
	d.mu.Lock()
	d.stopped = true
	if d.timer != nil && d.timer.Stop() {
		d.wg.Done()
	}
	d.timer = nil
	d.mu.Unlock()

	done := make(chan struct{})
	go func() {
		d.wg.Wait()
		close(done)
	}()
	select {
	case <-done:
	case <-time.After(timeout):
	}
}

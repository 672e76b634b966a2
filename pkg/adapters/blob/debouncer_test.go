package blob

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/lorekeep/lorekeep/pkg/core"
)

func TestDebouncerCoalesces(t *testing.T) {
	d := newDebouncer(30 * time.Millisecond)

	var fired atomic.Int32
	var last atomic.Value

	for i := 0; i < 10; i++ {
		d.add(core.Event{Type: core.EventModify, ID: "notes.json", Timestamp: int64(i)}, func(e core.Event) {
			fired.Add(1)
			last.Store(e)
		})
	}

	time.Sleep(100 * time.Millisecond)

	if got := fired.Load(); got != 1 {
		t.Fatalf("expected 1 emit for a burst, got %d", got)
	}
	if e := last.Load().(core.Event); e.Timestamp != 9 {
		t.Errorf("expected the last event of the burst, got timestamp %d", e.Timestamp)
	}
}

func TestDebouncerSeparateBursts(t *testing.T) {
	d := newDebouncer(10 * time.Millisecond)

	var fired atomic.Int32
	emit := func(core.Event) { fired.Add(1) }

	d.add(core.Event{Type: core.EventModify}, emit)
	time.Sleep(40 * time.Millisecond)
	d.add(core.Event{Type: core.EventModify}, emit)
	time.Sleep(40 * time.Millisecond)

	if got := fired.Load(); got != 2 {
		t.Errorf("expected 2 emits for separate bursts, got %d", got)
	}
}

func TestDebouncerStopDropsPending(t *testing.T) {
	d := newDebouncer(50 * time.Millisecond)

	var fired atomic.Int32
	d.add(core.Event{Type: core.EventModify}, func(core.Event) { fired.Add(1) })

	d.stopAndWait(time.Second)
	time.Sleep(80 * time.Millisecond)

	if got := fired.Load(); got != 0 {
		t.Errorf("expected stopped debouncer to drop pending event, got %d emits", got)
	}

	// Events after stop are ignored too.
	d.add(core.Event{Type: core.EventModify}, func(core.Event) { fired.Add(1) })
	time.Sleep(80 * time.Millisecond)
	if got := fired.Load(); got != 0 {
		t.Errorf("expected no emits after stop, got %d", got)
	}
}

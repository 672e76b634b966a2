package blob

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/lifecycle/pkg/core/supervisor"
	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/fsnotify/fsnotify"

	"github.com/lorekeep/lorekeep/pkg/core"
)

// Watch emits an event whenever the blob file changes underneath us
// (another process, a sync tool, a manual edit). The watcher runs as a
// supervised lifecycle worker and is restarted on failure; the channel
// closes when ctx is cancelled.
func (g *Gateway) Watch(ctx context.Context) (<-chan core.Event, error) {
	events := make(chan core.Event, 16)

	spec := supervisor.Spec{
		Name: "blob-watcher",
		Type: string(worker.TypeGoroutine),
		Factory: func() (worker.Worker, error) {
			return newWatchWorker(g, events), nil
		},
		Backoff: supervisor.Backoff{
			InitialInterval: 100 * time.Millisecond,
			MaxInterval:     2 * time.Second,
			Multiplier:      2,
			ResetDuration:   30 * time.Second,
			MaxRestarts:     5,
			MaxDuration:     time.Minute,
		},
		RestartPolicy: supervisor.RestartOnFailure,
	}

	sup := supervisor.New("blob-watch", supervisor.StrategyOneForOne, spec)
	if err := sup.Start(ctx); err != nil {
		return nil, fmt.Errorf("failed to start watch supervisor: %w", err)
	}

	lifecycle.Go(ctx, func(ctx context.Context) error {
		<-ctx.Done()
		stopCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = sup.Stop(stopCtx)
		close(events)
		return nil
	})

	return events, nil
}

type watchWorker struct {
	*worker.BaseWorker
	gw        *Gateway
	events    chan<- core.Event
	watcher   *fsnotify.Watcher
	debouncer *debouncer
	cancel    context.CancelFunc
}

func newWatchWorker(gw *Gateway, events chan<- core.Event) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("blob-watcher"),
		gw:         gw,
		events:     events,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the parent directory, not the file: atomic rename replaces the
	// inode, and a file watch would silently die on the first save.
	if err := watcher.Add(filepath.Dir(w.gw.config.Path)); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch blob directory: %w", err)
	}

	w.watcher = watcher
	w.debouncer = newDebouncer(50 * time.Millisecond)
	w.gw.setWatcherActive(true)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}
	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// shouldIgnore filters directory noise: anything that is not the blob
// itself, plus our own in-flight temp files.
func (w *watchWorker) shouldIgnore(event fsnotify.Event) bool {
	base := filepath.Base(event.Name)
	if strings.HasPrefix(base, TempFilePrefix) {
		return true
	}
	return base != filepath.Base(w.gw.config.Path)
}

func mapEventType(event fsnotify.Event) core.EventType {
	switch {
	case event.Has(fsnotify.Remove):
		return core.EventDelete
	case event.Has(fsnotify.Create), event.Has(fsnotify.Write), event.Has(fsnotify.Rename):
		// A rename onto the blob path is how atomic saves land.
		return core.EventModify
	default:
		return ""
	}
}

func (w *watchWorker) processFilesystemEvent(ctx context.Context, event fsnotify.Event) (processed bool) {
	if w.gw.config.Logger != nil {
		w.gw.config.Logger.Debug("event received", "name", event.Name, "op", event.Op.String())
	}

	if w.shouldIgnore(event) {
		return false
	}

	eType := mapEventType(event)
	if eType == "" {
		return false
	}

	w.sendEvent(ctx, core.Event{
		Type:      eType,
		ID:        filepath.Base(w.gw.config.Path),
		Timestamp: time.Now().Unix(),
	})
	return true
}

// sendEvent enqueues an event via the debouncer, protecting against
// channel closure during shutdown.
func (w *watchWorker) sendEvent(ctx context.Context, event core.Event) {
	w.debouncer.add(event, func(e core.Event) {
		defer func() {
			// Recover from panic if channel was closed (worker stopping)
			_ = recover()
		}()
		select {
		case w.events <- e:
		case <-ctx.Done():
		}
	})
}

func (w *watchWorker) handleWatcherError(err error) {
	if w.gw.config.Logger != nil {
		w.gw.config.Logger.Error("fsnotify error", "error", err)
	}
	if w.gw.config.ErrorHandler != nil {
		w.gw.config.ErrorHandler(err)
	}
}

func (w *watchWorker) run(ctx context.Context) (err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			panicErr := fmt.Errorf("watcher panic: %v", recovered)

			var stack string
			if w.gw.config.Logger.Enabled(ctx, slog.LevelDebug) {
				stack = string(debug.Stack())
			}
			if stack != "" {
				w.gw.config.Logger.Error("watcher panic", "error", panicErr, "stack", stack)
			} else {
				w.gw.config.Logger.Error("watcher panic", "error", panicErr)
			}
		}
	}()
	defer w.gw.setWatcherActive(false)
	defer w.watcher.Close()

	err = w.mainEventLoop(ctx)

	// Stop accepting new events and wait for in-flight timers, so no
	// debounced send races the channel close during shutdown.
	w.debouncer.stopAndWait(5 * time.Second)

	return err
}

func (w *watchWorker) mainEventLoop(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			w.processFilesystemEvent(ctx, event)

		case wErr, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			w.handleWatcherError(wErr)
		}
	}
}

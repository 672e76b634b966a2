package lorekeep

import (
	"log/slog"

	"github.com/lorekeep/lorekeep/internal/platform"
	"github.com/lorekeep/lorekeep/pkg/core"
)

// --- Types ---

// Note is a public alias for the core note record.
type Note = core.Note

// Section is a public alias for the core section key.
type Section = core.Section

// ViewState is a public alias for the persisted UI selection state.
type ViewState = core.ViewState

// Service is a public alias for the core service.
type Service = core.Service

// --- Configuration ---

// Option defines a functional option for configuring lorekeep.
type Option = platform.Option

// WithAutoSeed controls whether New loads (and seeds, on first run) the store.
func WithAutoSeed(seed bool) Option {
	return platform.WithAutoSeed(seed)
}

// WithLogger sets the logger for the service and its gateway.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithGateway allows injecting a custom persistence adapter.
func WithGateway(gw core.Gateway) Option {
	return platform.WithGateway(gw)
}

// WithWatcherErrorHandler receives asynchronous watcher errors.
func WithWatcherErrorHandler(fn func(error)) Option {
	return platform.WithWatcherErrorHandler(fn)
}

// --- Factory ---

// New creates a lorekeep Service over the JSON blob at path.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// --- Paths ---

// DefaultDataPath resolves the blob location from the environment.
func DefaultDataPath() (string, error) {
	return platform.DefaultDataPath()
}

// FindDataFile walks upward from startDir looking for a lorekeep.json.
func FindDataFile(startDir string) (string, bool) {
	return platform.FindDataFile(startDir)
}

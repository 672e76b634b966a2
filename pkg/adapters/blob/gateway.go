// Package blob persists the note store as a single JSON file on disk.
// Writes are whole-blob and atomic; there is no partial or delta write.
package blob

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/lorekeep/lorekeep/pkg/core"
)

// Config holds the configuration for the file-backed gateway.
type Config struct {
	// Path is the location of the JSON blob, e.g. ~/.config/lorekeep/notes.json.
	Path string

	Logger *slog.Logger

	// ErrorHandler receives asynchronous watcher errors. Optional.
	ErrorHandler func(error)
}

// Gateway implements core.Gateway (and core.Watchable) over a single file.
type Gateway struct {
	mu            sync.RWMutex
	config        Config
	watcherActive bool
	lastSave      *time.Time
}

// NewGateway creates a file-backed gateway. No I/O happens until Load or
// Save is called.
func NewGateway(config Config) *Gateway {
	if config.Logger == nil {
		config.Logger = slog.Default()
	}
	return &Gateway{config: config}
}

// Path returns the blob location.
func (g *Gateway) Path() string {
	return g.config.Path
}

// Load reads and decodes the blob. A missing file maps to core.ErrNotFound
// so the service can tell "first run" apart from an I/O failure it may
// want to log differently; both recover the same way.
func (g *Gateway) Load(ctx context.Context) (*core.Store, error) {
	data, err := os.ReadFile(g.config.Path)
	if os.IsNotExist(err) {
		return nil, core.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read store blob: %w", err)
	}

	store, err := core.DecodeStore(data)
	if err != nil {
		return nil, fmt.Errorf("failed to decode store blob: %w", err)
	}
	return store, nil
}

// Save stamps the store and atomically replaces the blob.
func (g *Gateway) Save(ctx context.Context, s *core.Store) error {
	s.Stamp()

	data, err := core.EncodeStore(s)
	if err != nil {
		return fmt.Errorf("failed to serialize store: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(g.config.Path), 0755); err != nil {
		return fmt.Errorf("failed to create blob directory: %w", err)
	}

	if err := writeFileAtomic(g.config.Path, data, 0644); err != nil {
		return fmt.Errorf("failed to write store blob: %w", err)
	}

	g.mu.Lock()
	now := time.Now()
	g.lastSave = &now
	g.mu.Unlock()

	g.config.Logger.Debug("store blob saved", "path", g.config.Path, "bytes", len(data))
	return nil
}

var _ core.Gateway = (*Gateway)(nil)
var _ core.Watchable = (*Gateway)(nil)

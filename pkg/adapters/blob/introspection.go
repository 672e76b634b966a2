package blob

import (
	"time"

	"github.com/aretw0/introspection"
)

// GatewayState exposes internal state for observability.
type GatewayState struct {
	Path          string     `json:"path"`
	WatcherActive bool       `json:"watcher_active"`
	LastSave      *time.Time `json:"last_save,omitempty"`
}

// State implements introspection.Introspectable.
func (g *Gateway) State() any {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return GatewayState{
		Path:          g.config.Path,
		WatcherActive: g.watcherActive,
		LastSave:      g.lastSave,
	}
}

// ComponentType implements introspection.Component.
func (g *Gateway) ComponentType() string {
	return "blob-gateway"
}

var _ introspection.Introspectable = (*Gateway)(nil)
var _ introspection.Component = (*Gateway)(nil)

func (g *Gateway) setWatcherActive(active bool) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.watcherActive = active
}

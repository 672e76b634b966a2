package platform

import (
	"log/slog"

	"github.com/lorekeep/lorekeep/pkg/core"
)

// options holds the internal configuration for the lorekeep service.
type options struct {
	autoSeed     bool
	gateway      core.Gateway
	logger       *slog.Logger
	errorHandler func(error)
}

// Option defines a functional option for configuring lorekeep.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		autoSeed: true,
		gateway:  nil,
		logger:   nil, // adapters fall back to slog.Default()
	}
}

// WithAutoSeed controls whether New loads the store immediately, seeding
// the demo dataset when no usable blob exists. Disable it to wire a
// service and call Load yourself.
func WithAutoSeed(seed bool) Option {
	return func(o *options) {
		o.autoSeed = seed
	}
}

// WithLogger sets the logger for the service and its gateway.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithGateway allows injecting a custom persistence adapter (e.g. mock,
// object store). If provided, the default file gateway is skipped.
func WithGateway(gw core.Gateway) Option {
	return func(o *options) {
		o.gateway = gw
	}
}

// WithWatcherErrorHandler receives asynchronous errors from the blob
// watcher instead of having them only logged.
func WithWatcherErrorHandler(fn func(error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}

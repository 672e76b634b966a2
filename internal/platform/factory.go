package platform

import (
	"context"

	"github.com/lorekeep/lorekeep/pkg/adapters/blob"
	"github.com/lorekeep/lorekeep/pkg/core"
)

// New wires a core.Service over the blob file at path and, unless
// disabled, loads it (seeding the demo dataset on first run or on a
// corrupt blob).
//
//	svc, err := lorekeep.New(path, lorekeep.WithLogger(slog.Default()))
func New(path string, opts ...Option) (*core.Service, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	gateway := o.gateway
	if gateway == nil {
		gateway = blob.NewGateway(blob.Config{
			Path:         path,
			Logger:       o.logger,
			ErrorHandler: o.errorHandler,
		})
	}

	service := core.NewService(gateway, o.logger)

	if o.autoSeed {
		if err := service.Load(context.Background()); err != nil {
			return nil, err
		}
	}

	return service, nil
}

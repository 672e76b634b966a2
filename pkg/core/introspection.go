package core

import (
	"time"

	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	Notes       int       `json:"notes"`
	Tags        int       `json:"tags"`
	Section     Section   `json:"section"`
	SelectedID  string    `json:"selected_id,omitempty"`
	Revision    time.Time `json:"revision"`
	GatewayType string    `json:"gateway_type"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	s.mu.RLock()
	defer s.mu.RUnlock()

	gatewayType := "gateway"
	if comp, ok := s.gateway.(introspection.Component); ok {
		gatewayType = comp.ComponentType()
	}

	return ServiceState{
		Notes:       len(s.store.Items),
		Tags:        len(AllTags(s.store)),
		Section:     s.view.Section,
		SelectedID:  s.view.SelectedID,
		Revision:    s.store.Meta.UpdatedAt,
		GatewayType: gatewayType,
	}
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)

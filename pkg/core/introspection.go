package core

import (
	"github.com/aretw0/introspection"
)

// ServiceState exposes internal state for observability.
type ServiceState struct {
	StoreType          string `json:"store_type"`
	RemoveEmptyBullets bool   `json:"remove_empty_bullets"`
	Store              any    `json:"store,omitempty"`
}

// State implements introspection.Introspectable.
func (s *Service) State() any {
	state := ServiceState{
		StoreType:          "unknown",
		RemoveEmptyBullets: s.config.RemoveEmptyBullets,
	}

	if s.store != nil {
		state.StoreType = "store"
		// Try to get component type if the store implements introspection.Component
		if comp, ok := s.store.(introspection.Component); ok {
			state.StoreType = comp.ComponentType()
		}
		if in, ok := s.store.(introspection.Introspectable); ok {
			state.Store = in.State()
		}
	}

	return state
}

// ComponentType implements introspection.Component.
func (s *Service) ComponentType() string {
	return "service"
}

var _ introspection.Introspectable = (*Service)(nil)
var _ introspection.Component = (*Service)(nil)

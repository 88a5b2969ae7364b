// Package registry maps each domain capability to exactly one live generator
// instance. The registry is an explicitly constructed object injected into
// the transport layer, not process-global state: registration happens during
// startup composition, resolution happens on the request path.
package registry

import (
	"sync"

	dErrors "trailtail/pkg/domain-errors"
)

// Capability names a domain generator slot.
type Capability string

const (
	CapabilityRoutes     Capability = "routes"
	CapabilityNarratives Capability = "narratives"
	CapabilityEncounters Capability = "encounters"
	CapabilitySafety     Capability = "safety"
	CapabilityFamily     Capability = "family"
)

// Registry holds one generator per capability. Writes happen during startup
// only; the lock guards against registration races when composition runs
// concurrently.
type Registry struct {
	mu         sync.RWMutex
	generators map[Capability]any
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{generators: make(map[Capability]any)}
}

// Register binds a generator instance to a capability. Rebinding an already
// registered capability is a startup composition bug and fails.
func (r *Registry) Register(capability Capability, instance any) error {
	if instance == nil {
		return dErrors.Newf(dErrors.CodeConfiguration, "nil generator for capability %q", capability)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.generators[capability]; ok {
		return dErrors.Newf(dErrors.CodeConfiguration, "capability %q already registered", capability)
	}
	r.generators[capability] = instance
	return nil
}

// Capabilities lists the registered capabilities.
func (r *Registry) Capabilities() []Capability {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Capability, 0, len(r.generators))
	for c := range r.generators {
		out = append(out, c)
	}
	return out
}

// Resolve returns the generator registered for a capability, typed as T.
// A missing registration or a type mismatch is a configuration error: both
// indicate a startup ordering bug, never a transient condition.
func Resolve[T any](r *Registry, capability Capability) (T, error) {
	var zero T

	r.mu.RLock()
	instance, ok := r.generators[capability]
	r.mu.RUnlock()
	if !ok {
		return zero, dErrors.Newf(dErrors.CodeConfiguration, "no generator registered for capability %q", capability)
	}

	typed, ok := instance.(T)
	if !ok {
		return zero, dErrors.Newf(dErrors.CodeConfiguration,
			"generator for capability %q is %T, not the requested interface", capability, instance)
	}
	return typed, nil
}

package golingo

import (
	"context"
	"sync"
)

// Provider is the interface for translation backends.
type Provider interface {
	// ID returns the stable identifier used in configuration and admin
	// operations (e.g., "google").
	ID() string

	// Name returns the display name recorded on cache entries.
	Name() string

	// Translate returns the translation of text from one language to
	// another. An empty translation is a failure and must be returned as
	// an error.
	Translate(ctx context.Context, text, from, to string) (string, error)
}

// Registry is an ordered collection of providers with mutable enabled
// state. Registration order defines the default trial order.
type Registry struct {
	mu    sync.Mutex
	order []string
	byID  map[string]*registration
}

type registration struct {
	provider Provider
	enabled  bool
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{byID: make(map[string]*registration)}
}

// Register appends a provider to the trial order. Registering an already
// known id replaces the provider and keeps its position.
func (r *Registry) Register(p Provider, enabled bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if existing, ok := r.byID[p.ID()]; ok {
		existing.provider = p
		existing.enabled = enabled
		return
	}
	r.order = append(r.order, p.ID())
	r.byID[p.ID()] = &registration{provider: p, enabled: enabled}
}

// Enabled returns the enabled providers in registration order.
func (r *Registry) Enabled() []Provider {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []Provider
	for _, id := range r.order {
		if reg := r.byID[id]; reg.enabled {
			out = append(out, reg.provider)
		}
	}
	return out
}

// SelectOrder returns the enabled providers in trial order. If a provider
// with the preferred id is enabled it is moved to the front; the relative
// order of the rest is unchanged.
func (r *Registry) SelectOrder(preferredID string) []Provider {
	enabled := r.Enabled()
	if preferredID == "" {
		return enabled
	}
	for i, p := range enabled {
		if p.ID() == preferredID {
			if i == 0 {
				return enabled
			}
			out := make([]Provider, 0, len(enabled))
			out = append(out, p)
			out = append(out, enabled[:i]...)
			out = append(out, enabled[i+1:]...)
			return out
		}
	}
	return enabled
}

// Toggle flips the enabled state of the provider with the given id.
// It returns the new state and whether the id was found.
func (r *Registry) Toggle(id string) (enabled, found bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.byID[id]
	if !ok {
		return false, false
	}
	reg.enabled = !reg.enabled
	return reg.enabled, true
}

// SetEnabled sets the enabled state of the provider with the given id.
// It reports whether the id was found.
func (r *Registry) SetEnabled(id string, enabled bool) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.byID[id]
	if !ok {
		return false
	}
	reg.enabled = enabled
	return true
}

// IsEnabled reports the enabled state of a provider id.
func (r *Registry) IsEnabled(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	reg, ok := r.byID[id]
	return ok && reg.enabled
}

// IDs returns all registered provider ids in registration order.
func (r *Registry) IDs() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

package golingo

import (
	"context"
	"log/slog"
	"strings"
	"sync"
)

// Cache is the interface the resolver uses for translation lookups and
// write-backs. The cache package provides the persistent implementation.
type Cache interface {
	// Get returns a cached translation for the text and language pair.
	Get(text, from, to string) (string, bool)

	// Put stores a translation tagged with the provider display name.
	Put(text, from, to, translation, provider string)
}

// Resolver orchestrates cache lookup, provider iteration and cache
// write-back. Resolve never fails: when every provider fails (or none are
// enabled) it returns the original input text.
type Resolver struct {
	registry *Registry
	cache    Cache
	log      *slog.Logger

	mu        sync.Mutex
	preferred string
}

// ResolverOption is a functional option for configuring the Resolver.
type ResolverOption func(*Resolver)

// WithCache sets the translation cache.
func WithCache(cache Cache) ResolverOption {
	return func(r *Resolver) {
		r.cache = cache
	}
}

// WithLogger sets the logger used for diagnostic output. Logging never
// affects resolution results.
func WithLogger(log *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		r.log = log
	}
}

// WithPreferredProvider promotes the provider with the given id to the
// front of the trial order.
func WithPreferredProvider(id string) ResolverOption {
	return func(r *Resolver) {
		r.preferred = id
	}
}

// NewResolver creates a Resolver over the given provider registry.
func NewResolver(registry *Registry, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		registry: registry,
		log:      slog.Default(),
	}

	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Resolve returns a translation for text. It consults the cache first,
// then tries each enabled provider in trial order, writing the first
// success back to the cache. If everything fails the original text is
// returned unchanged.
func (r *Resolver) Resolve(ctx context.Context, text, from, to string) string {
	if strings.TrimSpace(text) == "" {
		return text
	}

	// Same source and target language: nothing to translate.
	if !IsAuto(from) && NormalizeLang(from) == NormalizeLang(to) {
		return text
	}

	if r.cache != nil {
		if cached, ok := r.cache.Get(text, from, to); ok {
			r.log.Debug("cache hit", "from", from, "to", to)
			return cached
		}
	}

	for _, p := range r.registry.SelectOrder(r.PreferredProvider()) {
		translation, err := p.Translate(ctx, text, from, to)
		if err != nil {
			r.log.Warn("provider failed", "provider", p.ID(), "error", err)
			continue
		}
		if translation == "" {
			r.log.Warn("provider returned empty translation", "provider", p.ID())
			continue
		}

		if r.cache != nil {
			r.cache.Put(text, from, to, translation, p.Name())
		}
		r.log.Debug("translated", "provider", p.ID(), "from", from, "to", to)
		return translation
	}

	r.log.Warn("all providers failed, returning original text", "from", from, "to", to)
	return text
}

// PreferredProvider returns the current preferred provider id.
func (r *Resolver) PreferredProvider() string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.preferred
}

// SetPreferredProvider sets the provider id promoted to the front of the
// trial order. An empty id restores registration order.
func (r *Resolver) SetPreferredProvider(id string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.preferred = id
}

// ToggleProvider flips the enabled state of a provider. It returns the
// new state and whether the id was found.
func (r *Resolver) ToggleProvider(id string) (enabled, found bool) {
	return r.registry.Toggle(id)
}

// Registry returns the underlying provider registry.
func (r *Resolver) Registry() *Registry {
	return r.registry
}

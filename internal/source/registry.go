package source

import (
	"strings"

	"github.com/rotisserie/eris"
)

// Registry maps source identifiers to their configurations. It is populated
// once at startup and read-only afterwards, so concurrent lookups need no
// synchronization.
type Registry struct {
	sources map[string]Config
	order   []string // insertion order for deterministic iteration
}

// NewRegistry validates and indexes the given configs. Identifiers are
// normalized to lowercase.
func NewRegistry(configs ...Config) (*Registry, error) {
	r := &Registry{sources: make(map[string]Config, len(configs))}
	for _, c := range configs {
		if err := c.Validate(); err != nil {
			return nil, err
		}
		id := strings.ToLower(c.ID)
		if _, exists := r.sources[id]; exists {
			return nil, eris.Errorf("source: duplicate id %q", id)
		}
		c.ID = id
		r.sources[id] = c
		r.order = append(r.order, id)
	}
	return r, nil
}

// Lookup returns the config for an identifier, matching case-insensitively.
func (r *Registry) Lookup(id string) (Config, bool) {
	c, ok := r.sources[strings.ToLower(strings.TrimSpace(id))]
	return c, ok
}

// Resolve returns the configs for the requested identifiers in request order.
// Unknown identifiers are dropped silently.
func (r *Registry) Resolve(ids []string) []Config {
	var out []Config
	for _, id := range ids {
		if c, ok := r.Lookup(id); ok {
			out = append(out, c)
		}
	}
	return out
}

// All returns every config in registration order.
func (r *Registry) All() []Config {
	out := make([]Config, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.sources[id])
	}
	return out
}

// Names returns all registered identifiers in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.order))
	copy(out, r.order)
	return out
}

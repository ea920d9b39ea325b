package mapping

import (
	"errors"
	"fmt"
	"sort"
)

// Registry holds handler implementations keyed by kind.
type Registry[H any] struct {
	handlers map[HandlerKind]H
}

// Binding is a rule resolved to its handler.
type Binding[H any] struct {
	Rule    Rule
	Handler H
}

// NewRegistry creates a new empty registry.
func NewRegistry[H any]() *Registry[H] {
	return &Registry[H]{
		handlers: make(map[HandlerKind]H),
	}
}

// Add registers h for kind, replacing any previous handler.
func (r *Registry[H]) Add(kind HandlerKind, h H) {
	r.handlers[kind] = h
}

// Get returns the handler for kind.
func (r *Registry[H]) Get(kind HandlerKind) (H, bool) {
	h, ok := r.handlers[kind]
	return h, ok
}

// Kinds returns the registered kinds in ascending order.
func (r *Registry[H]) Kinds() []HandlerKind {
	kinds := make([]HandlerKind, 0, len(r.handlers))
	for k := range r.handlers {
		kinds = append(kinds, k)
	}

	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })

	return kinds
}

// Bind resolves every rule of cw to a registered handler, keeping rule order.
func (r *Registry[H]) Bind(cw *Crosswalk) ([]Binding[H], error) {
	if cw == nil {
		return nil, errors.New("crosswalk is nil")
	}

	out := make([]Binding[H], 0, len(cw.Rules))

	for _, rule := range cw.Rules {
		h, ok := r.Get(rule.Handler)
		if !ok {
			return nil, fmt.Errorf("field %q: no handler registered for %s", rule.Field, rule.Handler)
		}

		out = append(out, Binding[H]{Rule: rule, Handler: h})
	}

	return out, nil
}

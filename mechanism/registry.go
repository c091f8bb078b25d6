// Package mechanism holds the Mechanism Registry and Integration Loop
// (spec.md §4.9): the thing that drives a Network by repeatedly handing
// registered callbacks a fresh view.Context.
package mechanism

import (
	"fmt"

	"github.com/lorepozo/skn/view"
)

// Mechanism is a callback invoked once per iteration with a fresh
// context and the 1-based iteration number.
type Mechanism func(ctx *view.Context, iteration uint64) error

// Registry holds (name, callback) pairs in registration order. Order is
// significant: mechanisms run in the order they were registered, every
// iteration.
type Registry struct {
	names []string
	fns   map[string]Mechanism
}

// NewRegistry returns an empty Registry.
func NewRegistry() *Registry {
	return &Registry{fns: make(map[string]Mechanism)}
}

// Register adds a mechanism under name. Registering the same name twice
// replaces the callback but keeps its original position.
func (r *Registry) Register(name string, fn Mechanism) {
	if _, exists := r.fns[name]; !exists {
		r.names = append(r.names, name)
	}
	r.fns[name] = fn
}

// Names returns the registered mechanism names in registration order.
func (r *Registry) Names() []string {
	out := make([]string, len(r.names))
	copy(out, r.names)
	return out
}

func (r *Registry) mustGet(name string) (Mechanism, error) {
	fn, ok := r.fns[name]
	if !ok {
		return nil, fmt.Errorf("mechanism: unregistered name %q", name)
	}
	return fn, nil
}

// Package convert maps type-constraint names from route patterns to
// string-to-value conversion functions. The registry must be fully
// populated before any pattern is validated: unknown constraint names are
// a validation-time error, never a match-time surprise.
package convert

import (
	"fmt"
	"sort"
	"sync"
)

// Func converts one raw argument token into a typed value.
type Func func(raw string) (any, error)

// Registry holds named converters. The zero value is not usable; call
// NewRegistry, which installs the built-ins.
type Registry struct {
	mu    sync.RWMutex
	funcs map[string]Func
}

// NewRegistry returns a registry pre-populated with the built-in
// converters (see builtin.go).
func NewRegistry() *Registry {
	r := &Registry{funcs: make(map[string]Func, len(builtins))}
	for name, fn := range builtins {
		r.funcs[name] = fn
	}
	return r
}

// Register adds or replaces a converter. Replacing a built-in is allowed;
// an empty name or nil function is not.
func (r *Registry) Register(name string, fn Func) error {
	if name == "" {
		return fmt.Errorf("converter name must not be empty")
	}
	if fn == nil {
		return fmt.Errorf("converter %q: function must not be nil", name)
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.funcs[name] = fn
	return nil
}

// Has reports whether a converter is registered under name. It satisfies
// pattern.TypeSet for validation.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.funcs[name]
	return ok
}

// Convert runs the named converter on one raw token.
func (r *Registry) Convert(name, raw string) (any, error) {
	r.mu.RLock()
	fn, ok := r.funcs[name]
	r.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no converter registered for type %q", name)
	}
	return fn(raw)
}

// Names returns the registered converter names, sorted, for help output.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.funcs))
	for name := range r.funcs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

/*
File    : sigmaf/environment/environment.go
Package : environment
*/

// Package environment implements SigmaF's lexically scoped,
// append-only binding chain. Lookup searches the current scope then
// recurses into the parent; Set always targets the current scope
// only. Because `let` forbids rebinding a name already present in the
// current scope (see Has), each Environment behaves like an
// append-only map, which is what makes sharing one by reference safe
// for closures (spec.md §3.3, §9).
package environment

import "github.com/sigmaf-lang/sigmaf/object"

// Environment is one scope in the lexical chain. The root environment
// has a nil Parent.
type Environment struct {
	store  map[string]object.Object
	Parent *Environment
}

// New creates an empty scope with the given parent (nil for the root).
func New(parent *Environment) *Environment {
	return &Environment{store: make(map[string]object.Object), Parent: parent}
}

// Get searches the current scope then recursively the parent chain.
func (e *Environment) Get(name string) (object.Object, bool) {
	obj, ok := e.store[name]
	if !ok && e.Parent != nil {
		return e.Parent.Get(name)
	}
	return obj, ok
}

// Has reports whether name is already bound in THIS scope (not
// parents) — the check `let` uses to reject rebinding.
func (e *Environment) Has(name string) bool {
	_, ok := e.store[name]
	return ok
}

// Set binds name to val in the current scope only. Callers are
// expected to have already checked Has when rebinding must be
// rejected (see spec.md §3.3); Set itself performs no such check so
// that function-call parameter binding, which legitimately shadows
// outer names in a fresh child scope, can use the same primitive.
func (e *Environment) Set(name string, val object.Object) {
	e.store[name] = val
}

// Delete removes name from the current scope only. Used by the driver
// when merging a freshly reloaded module's environment into the live
// one (spec.md §4.7): colliding names are removed before the merge so
// the fresh definitions win without tripping the no-rebind rule.
func (e *Environment) Delete(name string) {
	delete(e.store, name)
}

// Names returns every name bound directly in this scope (not
// parents), used by the driver to enumerate a freshly loaded module's
// top-level bindings for merging.
func (e *Environment) Names() []string {
	names := make([]string, 0, len(e.store))
	for k := range e.store {
		names = append(names, k)
	}
	return names
}

// Package registry maps model names to their constructors so the CLI can
// address models by name.
//
// Each build constructs a fresh model instance: a model is used for one
// run and then discarded, so constructors rather than shared instances
// keep runs independent (parameter overrides on one build never leak into
// the next).
package registry

import (
	"fmt"
	"sort"

	"github.com/mmr-tortoise/clay/internal/model"
)

// Constructor builds a fresh instance of a model with its default
// parameters.
type Constructor func() model.Printable

// Registry holds the known models. The zero value is not usable; create
// one with New.
type Registry struct {
	constructors map[string]Constructor
}

// New creates an empty registry.
func New() *Registry {
	return &Registry{constructors: make(map[string]Constructor)}
}

// Register adds a model constructor under the name its instances declare.
// Registration happens once at startup with a fixed model set, so an
// invalid name or a duplicate is a programming error and panics.
func (r *Registry) Register(c Constructor) {
	name := c().Name()
	if err := model.ValidateName(name); err != nil {
		panic(fmt.Sprintf("registry: %v", err))
	}
	if _, exists := r.constructors[name]; exists {
		panic(fmt.Sprintf("registry: model %q registered twice", name))
	}
	r.constructors[name] = c
}

// New builds a fresh instance of the named model. The second return value
// reports whether the model is registered.
func (r *Registry) New(name string) (model.Printable, bool) {
	c, ok := r.constructors[name]
	if !ok {
		return nil, false
	}
	return c(), true
}

// Names returns the registered model names in sorted order for
// deterministic listings.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.constructors))
	for name := range r.constructors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered models.
func (r *Registry) Len() int {
	return len(r.constructors)
}

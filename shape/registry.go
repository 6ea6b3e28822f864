package shape

import (
	"maps"
	"slices"
	"sync"
)

// Registry maps shape names to shapes. It is safe for concurrent use;
// registries are typically populated at init time and read from many
// call sites afterwards.
type Registry struct {
	mu     sync.RWMutex
	shapes map[string]*Shape
}

func NewRegistry() *Registry {
	return &Registry{shapes: map[string]*Shape{}}
}

// Register adds a shape. Registering a second shape under an already
// registered name fails with a DefinitionError.
func (r *Registry) Register(s *Shape) error {
	if s == nil {
		return &DefinitionError{Message: "cannot register the unspecific shape"}
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.shapes[s.Name()]; exists {
		return &DefinitionError{
			Decl:    s.Name(),
			Message: "shape already registered",
		}
	}
	r.shapes[s.Name()] = s
	return nil
}

// Lookup resolves a shape by name.
func (r *Registry) Lookup(name string) (*Shape, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.shapes[name]
	return s, ok
}

// Names returns all registered shape names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Sorted(maps.Keys(r.shapes))
}

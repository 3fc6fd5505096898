package action

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a fresh, empty instance of an action type.
type Factory func() Action

// Registry maps action XML tags to factories.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register adds a factory for a tag.
func (r *Registry) Register(tag string, factory Factory) error {
	if factory == nil {
		return ErrNilFactory
	}
	if tag == "" {
		return fmt.Errorf("%w: empty tag", ErrInvalidArgument)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[tag]; exists {
		return fmt.Errorf("%w: %s", ErrDuplicateTag, tag)
	}
	r.factories[tag] = factory
	return nil
}

// Create instantiates a fresh action for a tag.
func (r *Registry) Create(tag string) (Action, error) {
	r.mu.RLock()
	factory, ok := r.factories[tag]
	r.mu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTag, tag)
	}
	return factory(), nil
}

// Known reports whether a tag has a registered factory.
func (r *Registry) Known(tag string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.factories[tag]
	return ok
}

// Tags returns all registered tags, sorted.
func (r *Registry) Tags() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tags := make([]string, 0, len(r.factories))
	for tag := range r.factories {
		tags = append(tags, tag)
	}
	sort.Strings(tags)
	return tags
}

// defaultRegistry backs the package-level registration helpers.
var defaultRegistry = NewRegistry()

// Default returns the process-wide registry that action packages
// register with from init.
func Default() *Registry {
	return defaultRegistry
}

// Register adds a factory to the default registry, panicking on
// conflict. Intended for use from init functions.
func Register(tag string, factory Factory) {
	if err := defaultRegistry.Register(tag, factory); err != nil {
		panic(fmt.Sprintf("action: registering %q: %v", tag, err))
	}
}

package validators

import (
	"fmt"
	"sync"
)

// Validator implements a single semantic type's validity check, e.g. a
// calendar-valid date. Implementations must be stateless: the registry
// constructs one instance per name and shares it for the process lifetime.
type Validator interface {
	// Validate reports whether value is acceptable for the semantic type.
	// Nil values are acceptable to every validator; nullability is a
	// separate not-null constraint.
	Validate(value any) bool
}

// Factory constructs a validator instance. Factories must be cheap and
// side-effect free; the registry invokes each at most once.
type Factory func() Validator

// Registry resolves semantic type names to memoized validator instances.
// Resolution is guarded by a mutex, so concurrent first use of the same
// name constructs exactly one instance.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
	instances map[string]Validator
}

// New creates a registry pre-populated with the built-in semantic types:
// "date", "time" and "timestamp".
func New() *Registry {
	r := &Registry{
		factories: make(map[string]Factory),
		instances: make(map[string]Validator),
	}
	r.Register("date", func() Validator { return &dateValidator{} })
	r.Register("time", func() Validator { return &timeValidator{} })
	r.Register("timestamp", func() Validator { return &timestampValidator{} })
	return r
}

// Register adds or replaces the factory for name. Replacing discards any
// memoized instance so the next Get constructs from the new factory.
func (r *Registry) Register(name string, factory Factory) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.factories[name] = factory
	delete(r.instances, name)
}

// Get returns the validator registered under name, constructing and
// memoizing it on first use. An unknown name is a configuration error and
// returns ErrValidatorNotFound wrapped with the requested name.
func (r *Registry) Get(name string) (Validator, error) {
	r.mu.RLock()
	if v, ok := r.instances[name]; ok {
		r.mu.RUnlock()
		return v, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()

	// Re-check under the write lock; another goroutine may have
	// constructed the instance between the two lock acquisitions.
	if v, ok := r.instances[name]; ok {
		return v, nil
	}

	factory, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrValidatorNotFound, name)
	}

	v := factory()
	r.instances[name] = v
	return v, nil
}

// Names returns the registered semantic type names in no particular order.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	return names
}

var (
	defaultRegistry *Registry
	once            sync.Once
)

// Default returns the process-wide registry, creating it on first use.
func Default() *Registry {
	once.Do(func() {
		defaultRegistry = New()
	})
	return defaultRegistry
}

// Get resolves name against the default registry.
func Get(name string) (Validator, error) {
	return Default().Get(name)
}

// Register adds a factory to the default registry.
func Register(name string, factory Factory) {
	Default().Register(name, factory)
}

package registry

import (
	"sort"
	"sync"

	"github.com/aretw0/transit/pkg/domain"
)

// Registry holds the named operations of one target: transition handlers by
// method name and state accessors by accessor name.
// It implements ports.Operations.
type Registry struct {
	mu       sync.RWMutex
	handlers map[string]domain.Handler
	getters  map[string]any
	setters  map[string]func(string)
}

// NewRegistry creates a new empty registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]domain.Handler),
		getters:  make(map[string]any),
		setters:  make(map[string]func(string)),
	}
}

// Register adds a transition handler under a method name.
// If a handler with the same name exists, it is overwritten.
func (r *Registry) Register(method string, fn domain.Handler) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.handlers[method] = fn
	return r
}

// RegisterFunc adds a handler that cannot fail.
// A nil fn registers a nil handler, which construction rejects.
func (r *Registry) RegisterFunc(method string, fn func() string) *Registry {
	if fn == nil {
		return r.Register(method, nil)
	}
	return r.Register(method, func() (string, error) { return fn(), nil })
}

// RegisterGetter adds a state getter under its accessor name (e.g. "getState").
func (r *Registry) RegisterGetter(name string, get any) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.getters[name] = get
	return r
}

// RegisterSetter adds a state setter under its accessor name (e.g. "setState").
func (r *Registry) RegisterSetter(name string, set func(string)) *Registry {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.setters[name] = set
	return r
}

// RegisterAccessors adds a getter and setter under the conventional names of field.
func (r *Registry) RegisterAccessors(field string, get any, set func(string)) *Registry {
	getName, setName := domain.AccessorNames(field)
	return r.RegisterGetter(getName, get).RegisterSetter(setName, set)
}

// Handler looks up a transition handler by method name.
func (r *Registry) Handler(method string) (domain.Handler, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.handlers[method]
	return fn, ok
}

// Getter looks up a state getter by accessor name.
func (r *Registry) Getter(name string) (any, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.getters[name]
	return fn, ok
}

// Setter looks up a state setter by accessor name.
func (r *Registry) Setter(name string) (func(string), bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	fn, ok := r.setters[name]
	return fn, ok
}

// Methods returns the registered handler names in lexical order.
func (r *Registry) Methods() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

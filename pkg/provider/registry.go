package provider

import (
	"fmt"
	"sort"
	"sync"
)

// Service is anything that can be bound into a Registry.
type Service interface {
	ServiceName() string
}

// Registry stores services by name. It is safe for concurrent use.
type Registry struct {
	mu       sync.RWMutex
	services map[string]Service
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		services: make(map[string]Service),
	}
}

// Register binds service under its ServiceName. Duplicate names return an
// error.
func (r *Registry) Register(service Service) error {
	if service == nil {
		return fmt.Errorf("provider: service is required")
	}
	name := service.ServiceName()
	if name == "" {
		return fmt.Errorf("provider: service name is required")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.services[name]; exists {
		return fmt.Errorf("provider: service %q already registered", name)
	}

	r.services[name] = service
	return nil
}

// MustRegister panics on registration failure.
func (r *Registry) MustRegister(service Service) {
	if err := r.Register(service); err != nil {
		panic(err)
	}
}

// Get retrieves a service by name.
func (r *Registry) Get(name string) (Service, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	service, ok := r.services[name]
	if !ok {
		return nil, fmt.Errorf("provider: service %q not found", name)
	}
	return service, nil
}

// MustGet panics if the service is missing.
func (r *Registry) MustGet(name string) Service {
	service, err := r.Get(name)
	if err != nil {
		panic(err)
	}
	return service
}

// List returns the registered names, sorted.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.services))
	for name := range r.services {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Has reports whether name is registered.
func (r *Registry) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	_, ok := r.services[name]
	return ok
}

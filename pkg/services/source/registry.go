package source

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"github.com/de-tools/sales-atlas/pkg/models/domain"
)

// Source loads a complete dataset from wherever the sales data lives.
type Source interface {
	Load(ctx context.Context) (*domain.Dataset, error)
	Close() error
}

// Factory creates a Source from a config path. What the path points at is up
// to the source: a data file for "file", a profile for the warehouses.
type Factory func(ctx context.Context, configPath string) (Source, error)

// Registry manages source factories by name.
type Registry interface {
	// Register adds a new source factory
	Register(name string, factory Factory) error
	// Create instantiates the named source using the provided config
	Create(ctx context.Context, name, configPath string) (Source, error)
	// ListSources returns the registered source names, sorted
	ListSources() []string
}

type registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates a registry pre-populated with factories.
func NewRegistry(factories map[string]Factory) Registry {
	r := &registry{
		factories: make(map[string]Factory, len(factories)),
	}
	for name, f := range factories {
		r.factories[name] = f
	}
	return r
}

func (r *registry) Register(name string, factory Factory) error {
	if name == "" {
		return fmt.Errorf("source name cannot be empty")
	}
	if factory == nil {
		return fmt.Errorf("factory cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.factories[name]; exists {
		return fmt.Errorf("source %q is already registered", name)
	}

	r.factories[name] = factory
	return nil
}

func (r *registry) Create(ctx context.Context, name, configPath string) (Source, error) {
	r.mu.RLock()
	factory, exists := r.factories[name]
	r.mu.RUnlock()

	if !exists {
		return nil, fmt.Errorf("source %q is not registered", name)
	}

	return factory(ctx, configPath)
}

func (r *registry) ListSources() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

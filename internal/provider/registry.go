package provider

import (
	"fmt"
	"sort"
	"sync"

	"github.com/maheshkv/newspulse/pkg/models"
)

// Registry is a thread-safe registry of news providers. It maps provider
// names to instances and countries to the provider serving them.
type Registry struct {
	mu        sync.RWMutex
	providers map[string]Provider       // name → provider
	byCountry map[models.Country]string // country → provider name
}

// NewRegistry creates a new empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		providers: make(map[string]Provider),
		byCountry: make(map[models.Country]string),
	}
}

// Register adds a provider to the registry. Duplicate registrations
// overwrite the previous entry.
func (r *Registry) Register(p Provider) error {
	info := p.Info()
	if info.Name == "" {
		return fmt.Errorf("provider name cannot be empty")
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.providers[info.Name] = p
	return nil
}

// Route maps a country to a registered provider name. Selectors without
// an explicit provider override resolve through this mapping.
func (r *Registry) Route(country models.Country, name string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.providers[name]; !ok {
		return &ErrProviderNotFound{Name: name}
	}
	r.byCountry[country] = name
	return nil
}

// Get returns a provider by name.
func (r *Registry) Get(name string) (Provider, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.providers[name]
	if !ok {
		return nil, &ErrProviderNotFound{Name: name}
	}
	return p, nil
}

// Resolve returns the provider serving a selector: the explicit override
// when set, otherwise the country route.
func (r *Registry) Resolve(sel models.Selector) (Provider, error) {
	if sel.Provider != "" {
		return r.Get(sel.Provider)
	}

	r.mu.RLock()
	name, ok := r.byCountry[sel.Country]
	r.mu.RUnlock()
	if !ok {
		return nil, &ErrProviderNotFound{Name: string(sel.Country)}
	}
	return r.Get(name)
}

// Names returns all registered provider names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// All returns all registered providers in name order.
func (r *Registry) All() []Provider {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.providers))
	for name := range r.providers {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Provider, 0, len(names))
	for _, name := range names {
		out = append(out, r.providers[name])
	}
	return out
}

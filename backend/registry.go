package backend

import (
	"fmt"
	"sort"
	"sync"
)

// Factory creates a new backend instance.
type Factory func() (Backend, error)

// Backend names known to the registry.
const (
	// NameSFNT is the golang.org/x/image backend in backend/sfnt.
	NameSFNT = "sfnt"
)

var (
	registryMu sync.RWMutex
	factories  = make(map[string]Factory)
	// Priority order for Default (first registered wins).
	priority = []string{NameSFNT}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it is replaced.
func Register(name string, f Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	factories[name] = f
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(factories, name)
}

// Available returns the registered backend names in sorted order.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(factories))
	for name := range factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Get creates the backend registered under name.
func Get(name string) (Backend, error) {
	registryMu.RLock()
	f, ok := factories[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrBackendNotAvailable, name)
	}
	return f()
}

// Default creates the best available backend. Backends in the priority list
// are tried first, then the rest in name order.
func Default() (Backend, error) {
	registryMu.RLock()
	names := make([]string, 0, len(factories))
	for _, name := range priority {
		if _, ok := factories[name]; ok {
			names = append(names, name)
		}
	}
	registryMu.RUnlock()

	for _, name := range Available() {
		if !contains(names, name) {
			names = append(names, name)
		}
	}

	var lastErr error = ErrBackendNotAvailable
	for _, name := range names {
		b, err := Get(name)
		if err == nil {
			return b, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

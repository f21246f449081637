package backend

import (
	"sync"

	"github.com/gogpu/glhal"
)

// Factory creates a new backend instance.
type Factory func(opts *glhal.InstanceOptions) (Instance, error)

// BackendGLES is the name of the OpenGL/OpenGL ES backend.
const BackendGLES = "gles"

// registry holds registered backends.
var (
	registryMu sync.RWMutex
	backends   = make(map[string]Factory)
	// Priority order for backend selection (first available wins).
	backendPriority = []string{BackendGLES}
)

// Register registers a backend factory with the given name.
// This is typically called from init() functions in backend packages.
// If a backend with the same name is already registered, it will be
// replaced.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	backends[name] = factory
}

// Unregister removes a backend from the registry.
// This is useful for testing.
func Unregister(name string) {
	registryMu.Lock()
	defer registryMu.Unlock()
	delete(backends, name)
}

// Available returns a list of registered backend names.
func Available() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	return names
}

// IsRegistered checks if a backend with the given name is registered.
func IsRegistered(name string) bool {
	registryMu.RLock()
	defer registryMu.RUnlock()
	_, ok := backends[name]
	return ok
}

// New creates an instance of the named backend.
// Returns ErrBackendNotAvailable if the backend is not registered.
func New(name string, opts *glhal.InstanceOptions) (Instance, error) {
	registryMu.RLock()
	factory, ok := backends[name]
	registryMu.RUnlock()
	if !ok {
		return nil, ErrBackendNotAvailable
	}
	return factory(opts)
}

// Default creates an instance of the best available backend based on
// priority. Returns ErrBackendNotAvailable if no backend is registered or
// none can be instantiated.
func Default(opts *glhal.InstanceOptions) (Instance, error) {
	registryMu.RLock()
	ordered := make([]Factory, 0, len(backends))
	for _, name := range backendPriority {
		if factory, ok := backends[name]; ok {
			ordered = append(ordered, factory)
		}
	}
	for name, factory := range backends {
		known := false
		for _, p := range backendPriority {
			if p == name {
				known = true
				break
			}
		}
		if !known {
			ordered = append(ordered, factory)
		}
	}
	registryMu.RUnlock()

	var firstErr error
	for _, factory := range ordered {
		inst, err := factory(opts)
		if err == nil {
			return inst, nil
		}
		if firstErr == nil {
			firstErr = err
		}
	}
	if firstErr != nil {
		return nil, firstErr
	}
	return nil, ErrBackendNotAvailable
}

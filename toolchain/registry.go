package toolchain

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

var (
	backendsMu sync.RWMutex
	backends   = make(map[string]Backend)
)

// ErrNoBackend is returned when no compiler backend has been linked in.
var ErrNoBackend = errors.New("no compiler backend linked into lsc")

// Register makes a backend available by name.  It panics if the backend is
// nil or the name is already taken.
func Register(name string, b Backend) {
	backendsMu.Lock()
	defer backendsMu.Unlock()

	if b == nil {
		panic("toolchain: Register backend is nil")
	}

	if _, dup := backends[name]; dup {
		panic("toolchain: Register called twice for backend " + name)
	}

	backends[name] = b
}

// Backends returns the sorted names of the registered backends.
func Backends() []string {
	backendsMu.RLock()
	defer backendsMu.RUnlock()

	names := make([]string, 0, len(backends))
	for name := range backends {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Lookup returns the backend registered under name.
func Lookup(name string) (Backend, bool) {
	backendsMu.RLock()
	defer backendsMu.RUnlock()

	b, ok := backends[name]
	return b, ok
}

// Default returns the only registered backend.  It fails if there is none or
// if the choice is ambiguous.
func Default() (Backend, error) {
	names := Backends()

	switch len(names) {
	case 0:
		return nil, ErrNoBackend
	case 1:
		b, _ := Lookup(names[0])
		return b, nil
	default:
		return nil, fmt.Errorf("multiple compiler backends linked into lsc: %v", names)
	}
}

// unregisterAll clears the registry.  Used by tests.
func unregisterAll() {
	backendsMu.Lock()
	defer backendsMu.Unlock()

	backends = make(map[string]Backend)
}

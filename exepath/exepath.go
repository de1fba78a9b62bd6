// Package exepath locates the executable of the running driver.  Exactly one
// platform lookup is compiled in: the dyld query on darwin, the module file
// name on Windows and the `/proc/self/exe` link everywhere else.
package exepath

import (
	"errors"
	"fmt"
	"path/filepath"
)

// ErrUnresolved is returned when the platform lookup cannot produce a path.
var ErrUnresolved = errors.New("unable to resolve executable path")

// Resolver produces the absolute path of the running executable.
type Resolver func() (string, error)

// Resolve returns the absolute path of the running executable using the
// platform lookup compiled into this build.  It never returns an empty or
// partial path without an error.
func Resolve() (string, error) {
	return resolveWith(executablePath)
}

func resolveWith(lookup Resolver) (string, error) {
	path, err := lookup()
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnresolved, err)
	}

	if path == "" {
		return "", fmt.Errorf("%w: platform returned an empty path", ErrUnresolved)
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("%w: %s", ErrUnresolved, err)
	}

	return absPath, nil
}

//go:build !unix && !windows

package exepath

import (
	"errors"
	"runtime"
)

func executablePath() (string, error) {
	return "", errors.New("executable path lookup is not supported on " + runtime.GOOS)
}

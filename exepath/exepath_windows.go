//go:build windows

package exepath

import (
	"errors"

	"golang.org/x/sys/windows"
)

// maxModulePath is the longest path GetModuleFileName can return.
const maxModulePath = 32768

func executablePath() (string, error) {
	buf := make([]uint16, windows.MAX_PATH)

	for {
		n, err := windows.GetModuleFileName(0, &buf[0], uint32(len(buf)))
		if err != nil {
			return "", err
		}

		// A result filling the whole buffer means the path was truncated.
		if int(n) < len(buf) {
			return windows.UTF16ToString(buf[:n]), nil
		}

		if len(buf) >= maxModulePath {
			return "", errors.New("module file name exceeds maximum path length")
		}

		buf = make([]uint16, len(buf)*2)
	}
}

//go:build unix && !darwin

package exepath

import (
	"errors"

	"golang.org/x/sys/unix"
)

const (
	selfExeLink = "/proc/self/exe"

	initialLinkSize = 4096

	maxLinkSize = 1 << 16
)

func executablePath() (string, error) {
	buf := make([]byte, initialLinkSize)

	for {
		n, err := unix.Readlink(selfExeLink, buf)
		if err != nil {
			return "", err
		}

		// readlink silently truncates: retry with a larger buffer.
		if n < len(buf) {
			return string(buf[:n]), nil
		}

		if len(buf) >= maxLinkSize {
			return "", errors.New("executable link target too long")
		}

		buf = make([]byte, len(buf)*2)
	}
}

//go:build darwin

package exepath

import "os"

// executablePath queries dyld for the image path.  os.Executable wraps the
// same _NSGetExecutablePath lookup and handles buffer resizing.
func executablePath() (string, error) {
	return os.Executable()
}

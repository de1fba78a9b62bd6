//go:build embedsyslib

package syslib

import _ "embed"

//go:embed System.loomlib
var systemLoomlib []byte

// Embedded returns the compiled-in System library.
func Embedded() (Bundle, bool) {
	return systemLoomlib, true
}

//go:build !embedsyslib

package syslib

// Embedded reports that this build carries no System library.
func Embedded() (Bundle, bool) {
	return nil, false
}

// Package syslib stages the optional compiled-in System standard library.
// Builds tagged `embedsyslib` carry the bundle; all other builds leave the
// compiler to discover the standard library on disk.
//
// The tagged build embeds System.loomlib from this directory.  The checked-in
// file is an empty placeholder: copy the SDK's compiled System.loomlib over it
// before running `go build -tags embedsyslib`.  An empty bundle stages to nil,
// so a tagged build with the placeholder behaves like an untagged one.
package syslib

// Bundle is the raw System library payload compiled into the driver.
type Bundle []byte

// Stage copies the bundle into a freshly allocated buffer of len+1 zeroed
// bytes so that the final byte terminates the text for the compiler.  An empty
// bundle stages to nil.
func Stage(b Bundle) []byte {
	if len(b) == 0 {
		return nil
	}

	data := make([]byte, len(b)+1)
	copy(data, b)
	return data
}

// Package toolchain declares the external collaborators driven by lsc: the
// LoomScript compiler pipeline and the virtual machine that runs the
// assemblies it produces.  Implementations are linked in by registering a
// Backend; a backend package must be blank-imported by main, otherwise lsc
// exits with ErrNoBackend in every mode other than --help.
package toolchain

// Config is the complete build configuration handed to the compiler.  It is
// assembled once by the driver and passed by value into Compiler.Initialize.
type Config struct {
	// Debug is false for release builds.
	Debug bool

	// Verbose enables verbose compiler logging.
	Verbose bool

	// DumpSymbols makes the compiler dump symbols for the binary executable.
	DumpSymbols bool

	// SourcePaths are additional source folders consulted in order.
	SourcePaths []string

	// RootBuildFile is the project descriptor to compile.
	RootBuildFile string

	// SDKRoot is a user-supplied SDK root that overrides detection.
	SDKRoot string

	// SDKBuild is the root the compiler resolves its bundled standard library
	// and default search paths against.  Empty for ordinary builds.
	SDKBuild string

	// EmbeddedSystemAssembly is the staged, terminated System library buffer
	// or nil if the standard library should be discovered on disk.
	EmbeddedSystemAssembly []byte
}

// IsSDKBuild reports whether the compiler runs relative to an installed SDK.
func (c Config) IsSDKBuild() bool {
	return c.SDKBuild != ""
}

// Compiler is the compiler pipeline.  Initialize runs the full pipeline for
// the configured root build file: parse, compile and emit.
type Compiler interface {
	Initialize(cfg Config) error
}

// VM is a virtual machine state.  It must be opened before loading assemblies
// and closed once execution is finished.
type VM interface {
	Open() error
	LoadExecutableAssembly(name string) (Assembly, error)
	Close() error
}

// Assembly is a compiled executable unit loaded into a VM.
type Assembly interface {
	Execute() error
}

// Backend creates the collaborators for a single driver run.
type Backend interface {
	NewCompiler() Compiler
	NewVM() VM
}

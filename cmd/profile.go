package cmd

import "lsc/toolchain"

// ExecutionMode selects what the driver does once arguments are parsed.
type ExecutionMode int

// Enumeration of execution modes.
const (
	ModeBuild     ExecutionMode = iota // Compile the root build file (default).
	ModeUnitTest                       // Compile and run the unit test suite.
	ModeBenchmark                      // Compile and run the benchmarks.
	ModeHelp                           // Print usage and exit.
)

func (m ExecutionMode) String() string {
	switch m {
	case ModeBuild:
		return "build"
	case ModeUnitTest:
		return "unittest"
	case ModeBenchmark:
		return "benchmark"
	case ModeHelp:
		return "help"
	}

	return "unknown"
}

// BuildProfile is the result of argument parsing: the build configuration
// that will be passed to the compiler and the selected execution mode.
type BuildProfile struct {
	Config toolchain.Config
	Mode   ExecutionMode
}

// newBuildProfile returns a profile holding the default configuration: a debug
// build with no extra source paths.
func newBuildProfile() *BuildProfile {
	return &BuildProfile{
		Config: toolchain.Config{Debug: true},
		Mode:   ModeBuild,
	}
}

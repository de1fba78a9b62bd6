package common

const (
	LSCVersion = "1.0.0"

	// BuildFileMarker is the substring identifying a root build file argument.
	BuildFileMarker = ".build"

	// ProjectFileName is the optional per-project driver configuration file.
	ProjectFileName = "lsc.toml"
)

// Conventional build files and assemblies consumed by the compiler and VM.
const (
	DefaultBuildFile    = "Main.build"
	DefaultAssemblyName = "Main.loom"

	TestsBuildFile    = "Tests.build"
	TestsAssemblyName = "Tests.loom"

	BenchmarksBuildFile    = "Benchmarks.build"
	BenchmarksAssemblyName = "Benchmarks.loom"
)

// SDKMarkers are the path fragments that identify an executable running from
// inside an installed SDK.
var SDKMarkers = []string{"loom/sdks/", `loom\sdks\`}

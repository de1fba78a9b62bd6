// Package cmd is the top-level "driver" package for lsc: it parses the command
// line, assembles the build configuration and dispatches to the compiler and
// virtual machine.
package cmd

import (
	"errors"

	"lsc/common"
	"lsc/exepath"
	"lsc/report"
	"lsc/syslib"
	"lsc/toolchain"
)

// Driver holds the capabilities a single run of lsc depends on.
type Driver struct {
	// LoadBackend provides the compiler and VM.  It is only called once a
	// mode that needs them is dispatched.
	LoadBackend func() (toolchain.Backend, error)

	// ResolveExe locates the running executable.
	ResolveExe exepath.Resolver

	// SystemLib is the compiled-in System library, if this build has one.
	SystemLib syslib.Bundle

	// Env is the environment overlay applied after the project file.
	Env common.EnvOverlay
}

// NewDriver creates a driver wired to the registered backend, the platform
// executable lookup, the embedded System library and the process environment.
func NewDriver() *Driver {
	bundle, _ := syslib.Embedded()

	return &Driver{
		LoadBackend: toolchain.Default,
		ResolveExe:  exepath.Resolve,
		SystemLib:   bundle,
		Env:         common.LoadEnvOverlay(),
	}
}

// Run executes lsc for the given arguments (excluding the program name) and
// returns the process exit status.
func (d *Driver) Run(args []string) int {
	if d.Env.Verbose {
		report.SetLogLevel(report.LogLevelVerbose)
	}

	systemLib := syslib.Stage(d.SystemLib)

	prof, err := parseArgs(args)
	if err != nil {
		return reportDriverError(err)
	}

	if prof.Mode == ModeHelp {
		report.ReportUsage(usage)
		return ExitSuccess
	}

	cfg := &prof.Config
	cfg.EmbeddedSystemAssembly = systemLib

	if err := applyProject(cfg); err != nil {
		return reportDriverError(err)
	}

	if err := applyEnv(cfg, d.Env); err != nil {
		return reportDriverError(err)
	}

	if cfg.Verbose {
		report.SetLogLevel(report.LogLevelVerbose)
	}

	report.ReportBanner()

	exePath, err := d.ResolveExe()
	if err != nil {
		return reportDriverError(fatalError(err, "error getting executable path"))
	}

	detectSDK(cfg, exePath)
	if cfg.IsSDKBuild() {
		report.ReportInfo("SDK", "building against "+cfg.SDKBuild)
	}

	return d.dispatch(prof)
}

// dispatch runs the selected execution mode and converts its outcome into an
// exit status.
func (d *Driver) dispatch(prof *BuildProfile) int {
	if d.LoadBackend == nil {
		return reportDriverError(fatalError(toolchain.ErrNoBackend, "unable to start compiler"))
	}

	backend, err := d.LoadBackend()
	if err != nil {
		return reportDriverError(fatalError(err, "unable to start compiler"))
	}

	var tag string
	switch prof.Mode {
	case ModeUnitTest:
		tag = "Test"
		err = runAssembly(backend, prof.Config, common.TestsBuildFile, common.TestsAssemblyName)
	case ModeBenchmark:
		tag = "Benchmark"
		err = runAssembly(backend, prof.Config, common.BenchmarksBuildFile, common.BenchmarksAssemblyName)
	default:
		tag = "Build"
		err = runBuild(backend, prof.Config)
	}

	if err != nil {
		report.ReportError(tag+" Error", err)
		report.ReportFinished(false)
		return ExitFailure
	}

	report.ReportFinished(true)
	return ExitSuccess
}

// reportDriverError reports a usage or fatal error and returns the failure
// status.
func reportDriverError(err error) int {
	var usageErr *UsageError
	if errors.As(err, &usageErr) {
		report.ReportError("Usage Error", usageErr)
		report.ReportUsage(usageHint)
		return ExitFailure
	}

	report.ReportFatal("%s", err)
	return ExitFailure
}

package cmd

import (
	"fmt"

	"lsc/common"
	"lsc/report"
	"lsc/toolchain"
)

// runBuild compiles the root build file, falling back to the default build
// file when none was given.  The compiler pipeline's outcome is returned.
func runBuild(backend toolchain.Backend, cfg toolchain.Config) error {
	if cfg.RootBuildFile == "" {
		report.ReportStatus("Building " + common.DefaultAssemblyName + " with default settings")
		cfg.RootBuildFile = common.DefaultBuildFile
	} else {
		report.ReportStatus("Building " + cfg.RootBuildFile)
	}

	return backend.NewCompiler().Initialize(cfg)
}

// runAssembly compiles buildFile and executes the resulting assembly in a
// fresh VM.  The VM is closed on every path once it has been opened.
func runAssembly(backend toolchain.Backend, cfg toolchain.Config, buildFile, assemblyName string) (err error) {
	cfg.RootBuildFile = buildFile
	report.ReportStatus("Building " + buildFile)

	if err := backend.NewCompiler().Initialize(cfg); err != nil {
		return err
	}

	vm := backend.NewVM()
	if err := vm.Open(); err != nil {
		return fmt.Errorf("failed to open VM: %w", err)
	}

	defer func() {
		if cerr := vm.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close VM: %w", cerr)
		}
	}()

	asm, err := vm.LoadExecutableAssembly(assemblyName)
	if err != nil {
		return fmt.Errorf("failed to load %s: %w", assemblyName, err)
	}

	report.ReportInfo("Run", assemblyName)
	if err := asm.Execute(); err != nil {
		return fmt.Errorf("%s: %w", assemblyName, err)
	}

	return nil
}

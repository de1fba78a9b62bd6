package cmd

import (
	"os"
	"path/filepath"

	"lsc/common"
	"lsc/project"
	"lsc/report"
	"lsc/toolchain"
)

// applyProject merges the project file in the working directory into cfg.
// Command-line settings take precedence: the file can only switch features on
// and its source paths follow those given on the command line.
func applyProject(cfg *toolchain.Config) error {
	wd, err := os.Getwd()
	if err != nil {
		return fatalError(err, "unable to determine working directory")
	}

	proj, err := project.Load(wd)
	if err != nil {
		return fatalError(err, "invalid project file")
	}

	if proj == nil {
		return nil
	}

	report.ReportInfo("Project", "loaded "+proj.FilePath)

	if proj.Release {
		cfg.Debug = false
	}

	cfg.Verbose = cfg.Verbose || proj.Verbose
	cfg.DumpSymbols = cfg.DumpSymbols || proj.Symbols
	cfg.SourcePaths = append(cfg.SourcePaths, proj.Classpath...)

	if cfg.SDKRoot == "" {
		cfg.SDKRoot = proj.SDKRoot
	}

	return nil
}

// applyEnv merges the environment overlay into cfg.  The environment SDK root
// overrides the project file.
func applyEnv(cfg *toolchain.Config, overlay common.EnvOverlay) error {
	cfg.Verbose = cfg.Verbose || overlay.Verbose

	if overlay.SDKRoot != "" {
		absPath, err := filepath.Abs(overlay.SDKRoot)
		if err != nil {
			return fatalError(err, "invalid %s", common.EnvSDKRoot)
		}

		cfg.SDKRoot = absPath
	}

	return nil
}

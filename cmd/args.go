package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lsc/common"
	"lsc/report"
)

const usage = `Usage: lsc [options] [<root build file>.build]

Options:
--------
--release                       build in release mode
--verbose                       enable verbose compilation
--unittest [--xmlfile file.xml] run unit tests with optional xml file output
--benchmark                     run benchmarks
--root <folder>                 set the SDK root (changes the working directory)
--symbols                       dump symbols for binary executable
--classpath <folder>            add an additional source folder; may be repeated
--help                          display this help
-D<define>                      reserved for defines; ignored
`

const usageHint = "lsc --help for a list of options"

// argParser is a command-line argument parser.
type argParser struct {
	// The arguments being parsed.
	args []string

	// The argument parser's position within those arguments.
	ndx int
}

// nextArg returns the next command-line token and advances past it.  The
// final value indicates whether there was a token left to consume.
func (ap *argParser) nextArg() (string, bool) {
	if ap.ndx < len(ap.args) {
		arg := ap.args[ap.ndx]
		ap.ndx++
		return arg, true
	}

	return "", false
}

// parseArgs scans the command-line tokens (excluding the program name) left to
// right into a build profile.  `--root` changes the working directory as soon
// as it is encountered.  `--help` stops the scan immediately.
func parseArgs(args []string) (*BuildProfile, error) {
	prof := newBuildProfile()
	ap := argParser{args: args, ndx: 0}

	runTests, runBenchmarks := false, false

	for {
		arg, ok := ap.nextArg()
		if !ok {
			break
		}

		switch {
		case len(arg) >= 2 && strings.HasPrefix(arg, "-D"):
			continue
		case arg == "--release":
			prof.Config.Debug = false
		case arg == "--verbose":
			prof.Config.Verbose = true
			report.SetLogLevel(report.LogLevelVerbose)
		case arg == "--unittest":
			runTests = true
		case arg == "--benchmark":
			runBenchmarks = true
		case arg == "--symbols":
			prof.Config.DumpSymbols = true
		case arg == "--xmlfile":
			// accepted for the unit test runner; the file name is unused
			if _, ok := ap.nextArg(); !ok {
				report.ReportWarning("Test", "--xmlfile given without a file name")
			}
		case arg == "--classpath":
			value, ok := ap.nextArg()
			if !ok {
				return nil, usageErrorf("--classpath option requires folder to be specified")
			}

			absPath, err := filepath.Abs(value)
			if err != nil {
				return nil, usageErrorf("invalid classpath: %s", value)
			}

			prof.Config.SourcePaths = append(prof.Config.SourcePaths, absPath)
		case arg == "--root":
			value, ok := ap.nextArg()
			if !ok {
				return nil, fatalError(nil, "--root option requires folder to be specified")
			}

			if err := os.Chdir(value); err != nil {
				return nil, fatalError(err, "unable to set root to %s", value)
			}

			report.ReportStatus("Root set to " + value)
		case arg == "--help":
			prof.Mode = ModeHelp
			return prof, nil
		case strings.Contains(arg, common.BuildFileMarker):
			// the last build file on the command line wins
			absPath, err := filepath.Abs(arg)
			if err != nil {
				return nil, usageErrorf("invalid build file: %s", arg)
			}

			if prof.Config.RootBuildFile != "" {
				report.ReportWarning("Build", fmt.Sprintf("%s replaces earlier build file %s", arg, prof.Config.RootBuildFile))
			}

			prof.Config.RootBuildFile = absPath
		default:
			return nil, usageErrorf("unknown option: %s", arg)
		}
	}

	switch {
	case runTests:
		prof.Mode = ModeUnitTest
	case runBenchmarks:
		prof.Mode = ModeBenchmark
	}

	return prof, nil
}

// Package project loads the optional per-project driver settings stored in
// `lsc.toml` in the driver's working directory (after any `--root` change).
package project

import (
	"errors"
	"fmt"
	"io/ioutil"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"

	"lsc/common"
)

// tomlProjectFile represents the project file as it is encoded in TOML
type tomlProjectFile struct {
	Build *tomlBuild `toml:"build"`
}

// tomlBuild represents the build table as it is encoded in TOML
type tomlBuild struct {
	Release   bool     `toml:"release"`
	Verbose   bool     `toml:"verbose"`
	Symbols   bool     `toml:"symbols"`
	Classpath []string `toml:"classpath,omitempty"`
	SDKRoot   string   `toml:"sdk-root,omitempty"`
}

// Project holds the decoded project settings.  All paths are absolute.
type Project struct {
	// FilePath is the path of the file the settings were loaded from.
	FilePath string

	Release bool
	Verbose bool
	Symbols bool

	// Classpath lists additional source folders in file order.
	Classpath []string

	// SDKRoot overrides SDK root detection when non-empty.
	SDKRoot string
}

// Load reads the project file in dir.  A missing file is not an error: Load
// returns nil in that case.
func Load(dir string) (*Project, error) {
	fpath := filepath.Join(dir, common.ProjectFileName)

	f, err := os.Open(fpath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}

		return nil, err
	}
	defer f.Close()

	buff, err := ioutil.ReadAll(f)
	if err != nil {
		return nil, err
	}

	tpf := &tomlProjectFile{}
	if err := toml.Unmarshal(buff, tpf); err != nil {
		return nil, fmt.Errorf("%s: %w", fpath, err)
	}

	proj := &Project{FilePath: fpath}

	// a file with no build table is valid but sets nothing
	if tpf.Build == nil {
		return proj, nil
	}

	if err := convertBuild(proj, tpf.Build, dir); err != nil {
		return nil, fmt.Errorf("%s: %w", fpath, err)
	}

	return proj, nil
}

// convertBuild validates the TOML build table and moves it into proj,
// resolving relative paths against the project directory.
func convertBuild(proj *Project, tb *tomlBuild, dir string) error {
	proj.Release = tb.Release
	proj.Verbose = tb.Verbose
	proj.Symbols = tb.Symbols

	for i, cp := range tb.Classpath {
		if cp == "" {
			return fmt.Errorf("classpath entry %d is empty", i)
		}

		proj.Classpath = append(proj.Classpath, absFrom(dir, cp))
	}

	if tb.SDKRoot != "" {
		proj.SDKRoot = absFrom(dir, tb.SDKRoot)
	}

	return nil
}

func absFrom(dir, path string) string {
	if filepath.IsAbs(path) {
		return filepath.Clean(path)
	}

	return filepath.Join(dir, path)
}

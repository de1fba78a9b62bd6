package cmd

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"lsc/common"
	"lsc/report"
	"lsc/toolchain"
)

// fakeBackend records every collaborator call in order.
type fakeBackend struct {
	calls    []string
	compiled []toolchain.Config

	compileErr error
	openErr    error
	loadErr    error
	execErr    error
	closeErr   error
}

func (b *fakeBackend) NewCompiler() toolchain.Compiler { return &fakeCompiler{b} }
func (b *fakeBackend) NewVM() toolchain.VM             { return &fakeVM{b} }

type fakeCompiler struct{ b *fakeBackend }

func (c *fakeCompiler) Initialize(cfg toolchain.Config) error {
	c.b.calls = append(c.b.calls, "initialize")
	c.b.compiled = append(c.b.compiled, cfg)
	return c.b.compileErr
}

type fakeVM struct{ b *fakeBackend }

func (vm *fakeVM) Open() error {
	vm.b.calls = append(vm.b.calls, "open")
	return vm.b.openErr
}

func (vm *fakeVM) LoadExecutableAssembly(name string) (toolchain.Assembly, error) {
	vm.b.calls = append(vm.b.calls, "load:"+name)
	if vm.b.loadErr != nil {
		return nil, vm.b.loadErr
	}

	return &fakeAssembly{vm.b}, nil
}

func (vm *fakeVM) Close() error {
	vm.b.calls = append(vm.b.calls, "close")
	return vm.b.closeErr
}

type fakeAssembly struct{ b *fakeBackend }

func (a *fakeAssembly) Execute() error {
	a.b.calls = append(a.b.calls, "execute")
	return a.b.execErr
}

const plainExePath = "/usr/local/bin/lsc"

// testRun bundles a driver with its fakes and captured output.
type testRun struct {
	driver  *Driver
	backend *fakeBackend
	out     *bytes.Buffer

	backendLoads int
	exeLookups   int
}

// newTestRun creates a driver over fakes, captures verbose output and moves
// the test into a fresh working directory that is restored afterwards.
func newTestRun(t *testing.T) *testRun {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(t.TempDir()))
	t.Cleanup(func() { _ = os.Chdir(wd) })

	tr := &testRun{backend: &fakeBackend{}, out: &bytes.Buffer{}}
	report.InitReporter(tr.out, report.LogLevelVerbose)

	tr.driver = &Driver{
		LoadBackend: func() (toolchain.Backend, error) {
			tr.backendLoads++
			return tr.backend, nil
		},
		ResolveExe: func() (string, error) {
			tr.exeLookups++
			return plainExePath, nil
		},
		Env: common.EnvOverlay{},
	}

	return tr
}

// lastConfig returns the configuration most recently given to the compiler.
func (tr *testRun) lastConfig(t *testing.T) toolchain.Config {
	t.Helper()
	require.NotEmpty(t, tr.backend.compiled, "compiler was never initialized")
	return tr.backend.compiled[len(tr.backend.compiled)-1]
}

// requireSamePath compares two absolute paths whose directories exist,
// ignoring symlinks in the directory part (temp dirs are symlinked on some
// platforms).
func requireSamePath(t *testing.T, want, got string) {
	t.Helper()
	require.True(t, filepath.IsAbs(got), "%s is not absolute", got)
	require.Equal(t, filepath.Base(want), filepath.Base(got))

	wantDir, err := filepath.EvalSymlinks(filepath.Dir(want))
	require.NoError(t, err)
	gotDir, err := filepath.EvalSymlinks(filepath.Dir(got))
	require.NoError(t, err)
	require.Equal(t, wantDir, gotDir)
}

func requireSamePaths(t *testing.T, want, got []string) {
	t.Helper()
	require.Len(t, got, len(want))
	for i := range want {
		requireSamePath(t, want[i], got[i])
	}
}

// cwd returns the current working directory.
func cwd(t *testing.T) string {
	t.Helper()
	wd, err := os.Getwd()
	require.NoError(t, err)
	return wd
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

var errBoom = errors.New("boom")

// stagedText returns a staged System library buffer without its terminator.
func stagedText(staged []byte) string {
	if len(staged) == 0 {
		return ""
	}

	return string(staged[:len(staged)-1])
}

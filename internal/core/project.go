package core

import (
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fuzzbed/fuzzenv/internal/scratch"
)

// buildDirName is the per-project build-output directory under the root.
// Note that generated projects do not normally build here: FuzzCommand
// redirects build output into the shared scratch target directory.
const buildDirName = "target"

// Project is the immutable result of Builder.Build: a name, a root, and the
// shared scratch locations baked in at construction. All methods derive
// paths deterministically or construct process descriptors; none touch the
// filesystem.
type Project struct {
	name        string
	root        string
	scratchArea string
	cargoBinary string
}

// Name returns the project's package name.
func (p Project) Name() string {
	return p.name
}

// Root returns the project root directory.
func (p Project) Root() string {
	return p.root
}

// BuildDir returns the project's own build-output directory.
func (p Project) BuildDir() string {
	return filepath.Join(p.root, buildDirName)
}

// FuzzDir returns the fuzz sub-project directory.
func (p Project) FuzzDir() string {
	return filepath.Join(p.root, fuzzDirName)
}

// FuzzManifest returns the path of the fuzz sub-project's manifest.
func (p Project) FuzzManifest() string {
	return filepath.Join(p.FuzzDir(), manifestPath)
}

// FuzzTargetsDir returns the directory holding fuzz-target sources.
func (p Project) FuzzTargetsDir() string {
	return filepath.Join(p.FuzzDir(), fuzzTargetsName)
}

// FuzzTargetPath returns the source file path for the fuzz target with the
// given name.
func (p Project) FuzzTargetPath(target string) string {
	return filepath.Join(p.FuzzTargetsDir(), target+targetSourceExt)
}

// CargoHome returns the package-cache/home directory the prepared command
// points the external tool at. It is shared across all generated projects.
func (p Project) CargoHome() string {
	return scratch.CargoHome(p.scratchArea)
}

// CargoTargetDir returns the build-artifact directory the prepared command
// points the external tool at. It is shared across all generated projects.
func (p Project) CargoTargetDir() string {
	return scratch.TargetDir(p.scratchArea)
}

// FuzzCommand returns an unexecuted command invoking the external tool's
// fuzz subcommand with the given arguments, working directory set to the
// project root. CARGO_HOME and CARGO_TARGET_DIR are overridden to the shared
// scratch locations: per-project isolation of those two caches is
// deliberately given up so the fuzzing-support dependency is downloaded and
// compiled once per test run instead of once per project. Running the
// command and interpreting its result is the caller's responsibility.
func (p Project) FuzzCommand(args ...string) *exec.Cmd {
	cmd := exec.Command(p.cargoBinary, append([]string{"fuzz"}, args...)...)
	cmd.Dir = p.root
	cmd.Env = append(os.Environ(),
		"CARGO_HOME="+p.CargoHome(),
		"CARGO_TARGET_DIR="+p.CargoTargetDir(),
	)
	return cmd
}

package fuzzenv

import (
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/fuzzbed/fuzzenv/internal/cmdio"
	"github.com/fuzzbed/fuzzenv/internal/core"
)

// logsDirName is the directory under the project root that holds captured
// command output.
const logsDirName = "logs"

// Project is the immutable result of Build: canonical paths plus prepared,
// never-executed invocations of the external fuzz subcommand.
//
// The core.Project is stored as a named (unexported) field rather than
// embedded so only the public path and command surface is reachable.
type Project struct {
	tb testing.TB
	p  core.Project
}

// Name returns the project's package name.
func (p *Project) Name() string { return p.p.Name() }

// Root returns the project root directory.
func (p *Project) Root() string { return p.p.Root() }

// BuildDir returns the project's own build-output directory. Prepared
// commands redirect build output to the shared cache instead; this path
// exists for callers invoking the build tool without the prepared
// environment.
func (p *Project) BuildDir() string { return p.p.BuildDir() }

// FuzzDir returns the fuzz sub-project directory.
func (p *Project) FuzzDir() string { return p.p.FuzzDir() }

// FuzzManifest returns the path of the fuzz sub-project's manifest.
func (p *Project) FuzzManifest() string { return p.p.FuzzManifest() }

// FuzzTargetsDir returns the directory holding fuzz-target sources.
func (p *Project) FuzzTargetsDir() string { return p.p.FuzzTargetsDir() }

// FuzzTargetPath returns the source file path for the named fuzz target.
func (p *Project) FuzzTargetPath(target string) string { return p.p.FuzzTargetPath(target) }

// CargoHome returns the package-cache/home location prepared commands point
// the external tool at. Shared across all generated projects in the run.
func (p *Project) CargoHome() string { return p.p.CargoHome() }

// CargoTargetDir returns the build-artifact location prepared commands point
// the external tool at. Shared across all generated projects in the run.
func (p *Project) CargoTargetDir() string { return p.p.CargoTargetDir() }

// FuzzCommand returns an unexecuted command invoking the external tool's
// fuzz subcommand with the given arguments: working directory is the project
// root, and CARGO_HOME and CARGO_TARGET_DIR are overridden to the shared
// scratch locations. Running the command and interpreting its result is the
// caller's responsibility.
func (p *Project) FuzzCommand(args ...string) *exec.Cmd {
	return p.p.FuzzCommand(args...)
}

// FuzzCommandLogged is FuzzCommand with the command's stdout and stderr
// wired to files under <root>/logs, created immediately so they are present
// even if the command is never started. Close the returned logs after the
// command finishes. Aborts the test if the log files cannot be created.
func (p *Project) FuzzCommandLogged(args ...string) (*exec.Cmd, *OutputLogs) {
	p.tb.Helper()

	cmd := p.p.FuzzCommand(args...)
	files, err := cmdio.Attach(cmd, filepath.Join(p.p.Root(), logsDirName), "fuzz")
	if err != nil {
		p.tb.Fatalf("fuzzenv: attach command logs: %v", err)
	}
	return cmd, &OutputLogs{files: files}
}

// OutputLogs exposes the log files attached by FuzzCommandLogged.
type OutputLogs struct {
	files *cmdio.LogFiles
}

// StdoutPath returns the absolute path of the captured stdout log.
func (o *OutputLogs) StdoutPath() string { return o.files.StdoutPath() }

// StderrPath returns the absolute path of the captured stderr log.
func (o *OutputLogs) StderrPath() string { return o.files.StderrPath() }

// Close closes both log files. Safe to call more than once.
func (o *OutputLogs) Close() { o.files.Close() }

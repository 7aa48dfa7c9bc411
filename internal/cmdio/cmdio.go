package cmdio

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"

	"github.com/fuzzbed/fuzzenv/internal/fileutil"
)

// LogFiles manages the stdout/stderr file handles attached to a prepared
// command. Close after the command has finished (or was abandoned).
type LogFiles struct {
	stdoutFile *os.File
	stderrFile *os.File
	dir        string
	stdoutName string // e.g. "fuzz-stdout.log"
	stderrName string // e.g. "fuzz-stderr.log"
}

// Attach creates <dir>/<name>-stdout.log and <dir>/<name>-stderr.log,
// creating dir as needed, and wires them to cmd's stdout and stderr. Both
// files are truncated if they exist. On error nothing is attached and any
// partially created file is closed.
func Attach(cmd *exec.Cmd, dir, name string) (*LogFiles, error) {
	l := &LogFiles{
		dir:        dir,
		stdoutName: name + "-stdout.log",
		stderrName: name + "-stderr.log",
	}

	if err := fileutil.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("create log dir: %w", err)
	}

	stdoutFile, err := os.Create(l.StdoutPath())
	if err != nil {
		return nil, fmt.Errorf("create stdout log: %w", err)
	}
	stderrFile, err := os.Create(l.StderrPath())
	if err != nil {
		_ = stdoutFile.Close()
		return nil, fmt.Errorf("create stderr log: %w", err)
	}

	l.stdoutFile = stdoutFile
	l.stderrFile = stderrFile
	cmd.Stdout = stdoutFile
	cmd.Stderr = stderrFile
	return l, nil
}

// Close closes both log file handles and nils them to prevent double-close.
func (l *LogFiles) Close() {
	if l.stdoutFile != nil {
		_ = l.stdoutFile.Close()
		l.stdoutFile = nil
	}
	if l.stderrFile != nil {
		_ = l.stderrFile.Close()
		l.stderrFile = nil
	}
}

// StdoutPath returns the absolute path to the stdout log file.
func (l *LogFiles) StdoutPath() string {
	return filepath.Join(l.dir, l.stdoutName)
}

// StderrPath returns the absolute path to the stderr log file.
func (l *LogFiles) StderrPath() string {
	return filepath.Join(l.dir, l.stderrName)
}

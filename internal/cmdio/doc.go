// Package cmdio wires prepared commands to on-disk log files.
//
// Attaching log files is part of preparing an invocation, not running it:
// the files are created up front so a caller inspecting a failed run always
// finds them, even when the command never started.
package cmdio

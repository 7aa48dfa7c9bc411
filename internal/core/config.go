package core

import (
	"errors"
	"path/filepath"
)

// Config holds everything a Builder needs. All fields are immutable after
// construction.
type Config struct {
	// Name is the generated project's package name.
	Name string

	// Root is the absolute directory the project is materialized into. It
	// is wiped (best-effort) and recreated by NewBuilder.
	Root string

	// ScratchArea is the shared scratch directory holding the caches reused
	// across all generated projects (see internal/scratch).
	ScratchArea string

	// CargoBinary is the external build tool binary whose "fuzz" subcommand
	// the project handle prepares invocations of.
	CargoBinary string
}

// Validate checks all Config invariants and reports every violation found,
// joined, so callers can fix all problems in one pass.
func (c Config) Validate() error {
	var errs []error

	if c.Name == "" {
		errs = append(errs, errors.New("project name must not be empty"))
	}
	if c.Root == "" {
		errs = append(errs, errors.New("project root must not be empty"))
	} else if !filepath.IsAbs(c.Root) {
		errs = append(errs, errors.New("project root must be absolute"))
	}
	if c.ScratchArea == "" {
		errs = append(errs, errors.New("scratch area must not be empty"))
	}
	if c.CargoBinary == "" {
		errs = append(errs, errors.New("cargo binary must not be empty"))
	}

	return errors.Join(errs...)
}
